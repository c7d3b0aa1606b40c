package output

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/canpolat/snipr/internal/model"
	"github.com/canpolat/snipr/internal/statuscolor"
)

var (
	successLine = color.New(color.FgGreen)
	errorLine   = color.New(color.FgRed)
)

// PrintChain prints each recorded hop with a color-coded status.
func PrintChain(res model.Result) {
	for _, h := range res.Chain {
		marker := "↪"
		if h.Final {
			marker = "✔"
		}
		fmt.Printf("  %s [%d] %s %s (%dms)\n", marker, h.Index, h.URL, statuscolor.Sprint(h.Status), h.TimeMs)
	}
}

// PrintOutcome prints the final line for an operation: the labeled result
// URL on success, the error otherwise.
func PrintOutcome(label string, res model.Result) {
	if res.OK() {
		_, _ = successLine.Printf("%s: %s\n", label, res.Output)
		return
	}
	_, _ = errorLine.Printf("Error: %s\n", res.Error)
}
