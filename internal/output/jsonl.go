package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/canpolat/snipr/internal/model"
)

// JSONLWriter writes one Result per line as JSON.
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter wraps an io.Writer with buffering.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: bufio.NewWriter(w)}
}

// Write writes a single result as a JSON line.
func (j *JSONLWriter) Write(r model.Result) error {
	enc := json.NewEncoder(j.w)
	// For stable lines without extra spaces.
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

// Close flushes the underlying buffer.
func (j *JSONLWriter) Close() error {
	return j.w.Flush()
}
