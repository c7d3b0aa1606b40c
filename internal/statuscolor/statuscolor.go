package statuscolor

import "fmt"

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
	colorReset  = "\033[0m"
)

func colorFor(status int) string {
	switch {
	case status == 0:
		return colorGray
	case status >= 200 && status < 300:
		return colorGreen
	case status >= 300 && status < 400:
		return colorYellow
	default:
		return colorRed
	}
}

// Sprint returns a colorized status code string (2xx green, 3xx yellow,
// errors red).
func Sprint(status int) string {
	if status == 0 {
		return fmt.Sprintf("%s—%s", colorGray, colorReset)
	}
	return fmt.Sprintf("%s%d%s", colorFor(status), status, colorReset)
}

// WrapByStatus wraps the provided text with the color that corresponds to
// the supplied status code.
func WrapByStatus(text string, status int) string {
	return fmt.Sprintf("%s%s%s", colorFor(status), text, colorReset)
}

// Gray wraps the provided text with a gray ANSI color.
func Gray(text string) string {
	return fmt.Sprintf("%s%s%s", colorGray, text, colorReset)
}
