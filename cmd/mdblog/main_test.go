package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/mdblog/internal/theme"
)

// runCLI executes the root command with fresh option state.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	globalOpts.verbose = false
	globalOpts.root = "."
	globalOpts.configPath = ""
	themeOpts.name = ""
	buildOpts.watch = false
	showOpts.format = "plain"
	showOpts.checksums = true
	showOpts.noColor = true
	cfg = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestThemeBuild_Builtin(t *testing.T) {
	root := t.TempDir()

	out, err := runCLI(t, "theme", "build", "-C", root)
	require.NoError(t, err)
	assert.Contains(t, out, `exported 6 static assets of theme "simple"`)

	for _, a := range theme.StaticAssets() {
		_, err := os.Stat(filepath.Join(root, theme.BuildsDirName, filepath.FromSlash(a.Path())))
		assert.NoError(t, err, a.Path())
	}
	_, err = os.Stat(filepath.Join(root, theme.BuildsDirName, "templates"))
	assert.True(t, os.IsNotExist(err))
}

func TestThemeInit_ThenShowFromDisk(t *testing.T) {
	root := t.TempDir()

	out, err := runCLI(t, "theme", "init", "-C", root)
	require.NoError(t, err)
	assert.Contains(t, out, "written to")

	out, err = runCLI(t, "theme", "init", "-C", root)
	require.NoError(t, err)
	assert.Contains(t, out, "already present")

	out, err = runCLI(t, "theme", "show", "-C", root, "--format", "json")
	require.NoError(t, err)

	var m theme.Manifest
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, "simple", m.Name)
	assert.Equal(t, theme.SourceDisk, m.Source)
	assert.Len(t, m.Assets, 10)
}

func TestThemeShow_Plain(t *testing.T) {
	out, err := runCLI(t, "theme", "show", "-C", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "simple (builtin)")
	assert.Contains(t, out, "templates/tag.tpl")
}

func TestThemeShow_BadFormat(t *testing.T) {
	_, err := runCLI(t, "theme", "show", "-C", t.TempDir(), "--format", "xml")
	assert.Error(t, err)
}

func TestThemeBuild_ConfigSelectsTheme(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "mdblog.toml"), []byte("[theme]\nname = \"missing\"\n"), 0644))

	_, err := runCLI(t, "theme", "build", "-C", root)
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrThemeNotFound)
	assert.Contains(t, err.Error(), "missing")

	// The flag takes precedence over config.
	_, err = runCLI(t, "theme", "build", "-C", root, "--theme", "simple")
	assert.NoError(t, err)
}

func TestThemeBuild_WatchBuiltinRejected(t *testing.T) {
	_, err := runCLI(t, "theme", "build", "-C", t.TempDir(), "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "builtin")
}

func TestSelectedThemeName(t *testing.T) {
	cfg = nil
	themeOpts.name = ""
	assert.Equal(t, theme.DefaultThemeName, selectedThemeName())

	themeOpts.name = "dark"
	assert.Equal(t, "dark", selectedThemeName())
	themeOpts.name = ""
}
