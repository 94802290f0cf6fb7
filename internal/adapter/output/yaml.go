package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/mdblog/internal/theme"
)

// YAMLFormatter formats manifests as YAML.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Format writes the manifest as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, m theme.Manifest) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(m); err != nil {
		return err
	}
	return encoder.Close()
}
