package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mdblog/internal/theme"
)

var themeOpts struct {
	name string
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the project theme",
	Long: `Resolve, customize and export the project theme.

The theme name is taken from --theme, then from theme.name in mdblog.toml,
and defaults to "simple".`,
}

func init() {
	rootCmd.AddCommand(themeCmd)

	themeCmd.PersistentFlags().StringVarP(&themeOpts.name, "theme", "t", "",
		"Theme name (default: theme.name from config, or \"simple\")")
}

// selectedThemeName applies flag > config > builtin precedence.
func selectedThemeName() string {
	if themeOpts.name != "" {
		return themeOpts.name
	}
	return getConfig().ThemeName()
}

// resolveTheme creates a store for the project root and resolves the selected theme.
func resolveTheme() (*theme.Theme, error) {
	name := selectedThemeName()
	th := theme.New(globalOpts.root, theme.WithLogger(logger))
	if err := th.Resolve(name); err != nil {
		return nil, fmt.Errorf("failed to resolve theme %q: %w", name, err)
	}
	return th, nil
}
