package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/mdblog/internal/adapter/output"
)

var showOpts struct {
	format    string
	checksums bool
	noColor   bool
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved theme and its assets",
	Long: `Resolve the theme and print where it came from (disk or builtin) along
with every asset's path, size and SHA-256 digest.

Examples:
  mdblog theme show
  mdblog theme show --format json`,
	Args: cobra.NoArgs,
	RunE: runThemeShow,
}

func init() {
	themeCmd.AddCommand(themeShowCmd)

	themeShowCmd.Flags().StringVarP(&showOpts.format, "format", "f", string(output.FormatPlain),
		"Output format: plain, json, yaml")
	themeShowCmd.Flags().BoolVar(&showOpts.checksums, "checksums", true,
		"Show digests in plain output")
	themeShowCmd.Flags().BoolVar(&showOpts.noColor, "no-color", false,
		"Disable colored plain output")
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormatType(showOpts.format)
	if err != nil {
		return err
	}

	th, err := resolveTheme()
	if err != nil {
		return err
	}

	opts := output.DefaultFormatterOptions()
	opts.ShowChecksums = showOpts.checksums
	opts.NoColor = showOpts.noColor

	return output.NewFormatter(format, opts).Format(cmd.OutOrStdout(), th.Manifest())
}
