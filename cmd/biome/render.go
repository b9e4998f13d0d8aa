package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MakakWasTaken/biome/internal/driver"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <path> [path...]",
	Short: "Render document files into formatted source text",
	Long: `Render decodes .doc / .doc.json files, lays each document out within
the configured width, and writes the result next to the document file
(src/app.js.doc becomes src/app.js).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Bool("stdout", false, "print rendered output to stdout instead of writing targets")
	renderCmd.Flags().Bool("no-cache", false, "bypass the render cache")
	renderCmd.Flags().Int("jobs", 0, "max parallel renders (0 = number of CPUs)")
	renderCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
	registerLayoutFlags(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	layout, err := resolveLayoutOptions(cmd)
	if err != nil {
		return err
	}

	opts := driver.RenderOptions{
		Stdout:         writeToStdout,
		Printer:        layout,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
	}
	if !noCache {
		if cache, cacheErr := driver.OpenDiskCache("biome"); cacheErr == nil {
			opts.Cache = cache
		}
	}

	var results []driver.RenderResult
	if !writeToStdout && shouldUseTUI(mode) {
		results, err = runRenderWithUI(cmd, args, opts)
	} else {
		results, err = driver.RenderPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	var hasErrors bool
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "render: %s: %v\n", res.Path, res.Err)
			continue
		}
		if writeToStdout {
			_, _ = os.Stdout.Write(res.Output)
			continue
		}
		if res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "rendered %s\n", res.Target)
		}
	}
	reportWidthNotices(results, quiet)

	if hasErrors {
		return fmt.Errorf("render: failed to render some files")
	}
	return nil
}

// reportWidthNotices prints over-wide-line diagnostics to stderr. They never
// affect the exit code: a document whose narrowest layout still exceeds the
// budget is rendered anyway.
func reportWidthNotices(results []driver.RenderResult, quiet bool) {
	if quiet {
		return
	}
	for _, res := range results {
		if res.Bag == nil || res.Err != nil {
			continue
		}
		for _, d := range res.Bag.Items() {
			fmt.Fprintln(os.Stderr, d.String())
		}
	}
}
