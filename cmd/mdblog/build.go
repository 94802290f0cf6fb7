package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mdblog/internal/theme"
)

var buildOpts struct {
	watch bool
}

var themeBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export theme static assets to _builds/static",
	Long: `Write the theme's static assets (images, stylesheets, scripts) to
<root>/_builds/static/, overwriting existing files. Templates are not copied.

With --watch, the theme directory is watched and the assets are exported again
after every change until interrupted. The builtin theme cannot be watched.

Examples:
  mdblog theme build
  mdblog theme build --theme dark --watch`,
	Args: cobra.NoArgs,
	RunE: runThemeBuild,
}

func init() {
	themeCmd.AddCommand(themeBuildCmd)

	themeBuildCmd.Flags().BoolVarP(&buildOpts.watch, "watch", "w", false,
		"Rebuild when the theme directory changes")
}

func runThemeBuild(cmd *cobra.Command, args []string) error {
	th, err := resolveTheme()
	if err != nil {
		return err
	}

	if err := th.MaterializeAsOutput(); err != nil {
		return fmt.Errorf("failed to export theme %q: %w", th.Name(), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d static assets of theme %q to %s\n",
		len(theme.StaticAssets()), th.Name(), filepath.Join(th.Root(), theme.BuildsDirName))

	if !buildOpts.watch {
		return nil
	}
	if th.Source() != theme.SourceDisk {
		return fmt.Errorf("theme %q is builtin; run 'mdblog theme init' to create an editable copy before watching", th.Name())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchTheme(ctx, th)
}

// watchTheme re-resolves and re-exports th after each change until ctx ends.
// A failed rebuild is logged and the previous output is left in place.
func watchTheme(ctx context.Context, th *theme.Theme) error {
	name := th.Name()
	w, err := theme.NewWatcher(th.Dir(), getConfig().Watch.Debounce.Duration(), logger)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	w.SetChangeCallback(func() {
		if err := th.Resolve(name); err != nil {
			logger.Warn("failed to reload theme", "theme", name, "error", err)
			return
		}
		if err := th.MaterializeAsOutput(); err != nil {
			logger.Warn("failed to export theme", "theme", name, "error", err)
			return
		}
		logger.Info("rebuilt theme static assets", "theme", name)
	})

	if err := w.Start(ctx); err != nil {
		_ = w.Stop()
		return fmt.Errorf("failed to watch %s: %w", th.Dir(), err)
	}
	logger.Info("watching theme", "theme", name, "path", th.Dir())

	<-ctx.Done()
	return w.Stop()
}
