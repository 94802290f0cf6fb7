package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/mdblog/internal/theme"
)

func testManifest() theme.Manifest {
	return theme.Manifest{
		Name:   "simple",
		Source: theme.SourceBuiltin,
		Root:   "/proj",
		Assets: []theme.AssetInfo{
			{
				Name:   "favicon",
				Path:   "static/img/favicon.png",
				Kind:   "static",
				Size:   82,
				SHA256: "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
			},
			{
				Name:   "base",
				Path:   "templates/base.tpl",
				Kind:   "template",
				Size:   2048,
				SHA256: "fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210",
			},
		},
	}
}

func TestParseFormatType(t *testing.T) {
	for _, f := range FormatTypes {
		got, err := ParseFormatType(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormatType("xml")
	assert.Error(t, err)
}

func TestNewFormatter(t *testing.T) {
	opts := DefaultFormatterOptions()

	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON, opts))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML, opts))
	assert.IsType(t, &PlainFormatter{}, NewFormatter(FormatPlain, opts))
	assert.IsType(t, &PlainFormatter{}, NewFormatter("", opts))
}

func TestPlainFormatter_Format(t *testing.T) {
	opts := DefaultFormatterOptions()
	opts.NoColor = true
	var buf bytes.Buffer

	err := NewPlainFormatter(opts).Format(&buf, testManifest())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Theme:  simple (builtin)")
	assert.Contains(t, out, "Root:   /proj")
	assert.Contains(t, out, "static/img/favicon.png")
	assert.Contains(t, out, "templates/base.tpl")
	assert.Contains(t, out, "82 B")
	assert.Contains(t, out, "2.0 kB")
	assert.Contains(t, out, "0123456789ab")
	assert.NotContains(t, out, "0123456789abcdef0123")
	assert.Contains(t, out, "2 assets, 2.1 kB")
}

func TestPlainFormatter_NoChecksums(t *testing.T) {
	opts := FormatterOptions{NoColor: true}
	var buf bytes.Buffer

	require.NoError(t, NewPlainFormatter(opts).Format(&buf, testManifest()))
	assert.NotContains(t, buf.String(), "0123456789ab")
}

func TestPlainFormatter_Unresolved(t *testing.T) {
	var buf bytes.Buffer

	err := NewPlainFormatter(FormatterOptions{NoColor: true}).Format(&buf, theme.Manifest{})
	require.NoError(t, err)
	assert.Equal(t, "no theme resolved", strings.TrimSpace(buf.String()))
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	err := NewJSONFormatter(DefaultFormatterOptions()).Format(&buf, testManifest())
	require.NoError(t, err)

	var decoded theme.Manifest
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, testManifest(), decoded)
	assert.Contains(t, buf.String(), `"source": "builtin"`)
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	err := NewYAMLFormatter(DefaultFormatterOptions()).Format(&buf, testManifest())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "name: simple")
	assert.Contains(t, out, "source: builtin")
	assert.Contains(t, out, "path: templates/base.tpl")

	var decoded theme.Manifest
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, testManifest(), decoded)
}
