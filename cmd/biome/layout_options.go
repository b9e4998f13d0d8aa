package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MakakWasTaken/biome/internal/config"
	"github.com/MakakWasTaken/biome/internal/printer"
)

// registerLayoutFlags attaches the per-command overrides for biome.toml
// settings. A zero/empty flag means "keep the configured value".
func registerLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 0, "max line width in columns (overrides biome.toml)")
	cmd.Flags().Int("indent-width", 0, "columns per indentation unit (overrides biome.toml)")
	cmd.Flags().Bool("use-tabs", false, "indent with tabs (overrides biome.toml)")
	cmd.Flags().String("line-ending", "", "line ending: lf or crlf (overrides biome.toml)")
}

// resolveLayoutOptions loads the configuration (--config, else discovered
// upward from the working directory, else defaults) and applies any flag
// overrides on top.
func resolveLayoutOptions(cmd *cobra.Command) (printer.Options, error) {
	cfg := config.Default()

	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return printer.Options{}, err
	}
	if path == "" {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			path, _ = config.Discover(cwd)
		}
	}
	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return printer.Options{}, err
		}
	}

	opts := cfg.PrinterOptions()

	if cmd.Flags().Changed("width") {
		opts.MaxWidth, _ = cmd.Flags().GetInt("width")
	}
	if cmd.Flags().Changed("indent-width") {
		opts.IndentWidth, _ = cmd.Flags().GetInt("indent-width")
	}
	if cmd.Flags().Changed("use-tabs") {
		opts.UseTabs, _ = cmd.Flags().GetBool("use-tabs")
	}
	if cmd.Flags().Changed("line-ending") {
		raw, _ := cmd.Flags().GetString("line-ending")
		ending, parseErr := printer.ParseLineEnding(raw)
		if parseErr != nil {
			return printer.Options{}, parseErr
		}
		opts.LineEnding = ending
	}

	if err := opts.Validate(); err != nil {
		return printer.Options{}, err
	}
	return opts, nil
}
