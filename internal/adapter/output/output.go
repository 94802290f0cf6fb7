// Package output provides output formatters for theme manifests.
package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/mdblog/internal/theme"
)

// Formatter formats a theme manifest for output.
type Formatter interface {
	// Format writes the formatted manifest to the writer.
	Format(w io.Writer, m theme.Manifest) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// FormatTypes lists the accepted --format values.
var FormatTypes = []FormatType{FormatPlain, FormatJSON, FormatYAML}

// ParseFormatType validates a format name.
func ParseFormatType(s string) (FormatType, error) {
	for _, f := range FormatTypes {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want plain, json or yaml)", s)
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	ShowChecksums bool // Include SHA-256 digests in plain output
	ChecksumLen   int  // Characters of the digest to show (0 = full)
	NoColor       bool // Disable styling in plain output
}

// DefaultFormatterOptions returns sensible defaults for terminal output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowChecksums: true,
		ChecksumLen:   12,
	}
}
