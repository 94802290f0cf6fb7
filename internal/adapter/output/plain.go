package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/mdblog/internal/theme"
)

// PlainFormatter formats manifests as an aligned, optionally styled table.
type PlainFormatter struct {
	opts        FormatterOptions
	headerStyle lipgloss.Style
	labelStyle  lipgloss.Style
	kindStyle   lipgloss.Style
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	f := &PlainFormatter{
		opts:        opts,
		headerStyle: lipgloss.NewStyle(),
		labelStyle:  lipgloss.NewStyle(),
		kindStyle:   lipgloss.NewStyle(),
	}

	if !opts.NoColor {
		f.headerStyle = f.headerStyle.Bold(true).Foreground(lipgloss.Color("12"))
		f.labelStyle = f.labelStyle.Foreground(lipgloss.Color("8"))
		f.kindStyle = f.kindStyle.Foreground(lipgloss.Color("10"))
	}

	return f
}

// Format writes the manifest as plain text.
func (f *PlainFormatter) Format(w io.Writer, m theme.Manifest) error {
	if m.Name == "" {
		_, err := fmt.Fprintln(w, f.labelStyle.Render("no theme resolved"))
		return err
	}

	var sb strings.Builder

	sb.WriteString(f.labelStyle.Render("Theme:  "))
	sb.WriteString(f.headerStyle.Render(m.Name))
	sb.WriteString(fmt.Sprintf(" (%s)\n", m.Source))
	sb.WriteString(f.labelStyle.Render("Root:   "))
	sb.WriteString(m.Root)
	sb.WriteString("\n\n")

	pathWidth := 0
	for _, a := range m.Assets {
		pathWidth = max(pathWidth, len(a.Path))
	}

	for _, a := range m.Assets {
		sb.WriteString("  ")
		sb.WriteString(f.kindStyle.Render(fmt.Sprintf("%-8s", a.Kind)))
		sb.WriteString(fmt.Sprintf("  %-*s  %10s", pathWidth, a.Path, humanize.Bytes(uint64(a.Size))))
		if f.opts.ShowChecksums {
			sb.WriteString("  ")
			sb.WriteString(f.labelStyle.Render(f.checksum(a.SHA256)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n%d assets, %s\n", len(m.Assets), humanize.Bytes(uint64(m.TotalSize()))))

	_, err := io.WriteString(w, sb.String())
	return err
}

func (f *PlainFormatter) checksum(sum string) string {
	if f.opts.ChecksumLen > 0 && len(sum) > f.opts.ChecksumLen {
		return sum[:f.opts.ChecksumLen]
	}
	return sum
}
