package theme

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_CallsBackOnChange(t *testing.T) {
	root := t.TempDir()
	dir := writeThemeDir(t, root, "live")

	w, err := NewWatcher(dir, 20*time.Millisecond, nil)
	require.NoError(t, err)

	var calls atomic.Int32
	w.SetChangeCallback(func() { calls.Add(1) })

	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { _ = w.Stop() })
	assert.True(t, w.IsRunning())

	// Nested directories are watched too.
	target := filepath.Join(dir, filepath.FromSlash(AssetHighlightCSS.Path()))
	require.NoError(t, os.WriteFile(target, []byte(".hljs{}"), 0644))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	root := t.TempDir()
	dir := writeThemeDir(t, root, "burst")

	w, err := NewWatcher(dir, 300*time.Millisecond, nil)
	require.NoError(t, err)

	var calls atomic.Int32
	w.SetChangeCallback(func() { calls.Add(1) })
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { _ = w.Stop() })

	for _, a := range StaticAssets() {
		path := filepath.Join(dir, filepath.FromSlash(a.Path()))
		require.NoError(t, os.WriteFile(path, []byte("changed"), 0644))
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	dir := writeThemeDir(t, t.TempDir(), "ctx")

	w, err := NewWatcher(dir, 0, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	require.NoError(t, w.Stop())
	assert.False(t, w.IsRunning())
}

func TestWatcher_StartMissingDir(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), 0, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	assert.Error(t, w.Start(context.Background()))
	assert.False(t, w.IsRunning())
}
