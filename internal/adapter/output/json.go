package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/mdblog/internal/theme"
)

// JSONFormatter formats manifests as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes the manifest as an indented JSON object.
func (f *JSONFormatter) Format(w io.Writer, m theme.Manifest) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(m)
}
