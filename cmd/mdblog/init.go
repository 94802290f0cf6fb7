package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mdblog/internal/fsutil"
)

var themeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the theme to _themes/<name> for editing",
	Long: `Write every theme file (static assets and templates) to
<root>/_themes/<name>/ so the theme can be customized.

If the directory already exists nothing is written.

Examples:
  # Copy the builtin theme into the project
  mdblog theme init

  # Re-init under an explicit name (must already exist on disk or be "simple")
  mdblog theme init --theme simple`,
	Args: cobra.NoArgs,
	RunE: runThemeInit,
}

func init() {
	themeCmd.AddCommand(themeInitCmd)
}

func runThemeInit(cmd *cobra.Command, args []string) error {
	th, err := resolveTheme()
	if err != nil {
		return err
	}

	existed, err := fsutil.Exists(th.Dir())
	if err != nil {
		return err
	}

	if err := th.MaterializeAsSource(); err != nil {
		return fmt.Errorf("failed to write theme %q: %w", th.Name(), err)
	}

	out := cmd.OutOrStdout()
	if existed {
		fmt.Fprintf(out, "theme %q already present at %s\n", th.Name(), th.Dir())
		return nil
	}
	fmt.Fprintf(out, "theme %q written to %s\n", th.Name(), th.Dir())
	return nil
}
