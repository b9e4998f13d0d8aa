package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MakakWasTaken/biome/internal/driver"
	"github.com/MakakWasTaken/biome/internal/widthcheck"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <path> [path...]",
	Short: "Check whether rendered targets are up to date",
	Long: `Check renders every document file without touching the targets and
reports the ones whose content would change. The exit code is non-zero
when any target is stale.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "text", "output format (text|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel renders (0 = number of CPUs)")
	checkCmd.Flags().Bool("widths", false, "also report output lines wider than the budget")
	registerLayoutFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	showWidths, err := cmd.Flags().GetBool("widths")
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

	results, err := driver.RenderPaths(cmd.Context(), args, driver.RenderOptions{
		Check:          true,
		Printer:        layout,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
	})
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	switch outputFormat {
	case "text":
		renderCheckText(results, quiet, showWidths, layout.WithDefaults().MaxWidth, &hasErrors, &hasChanges)
	case "json":
		if err := renderCheckJSON(results, &hasErrors, &hasChanges); err != nil {
			return err
		}
	default:
		return fmt.Errorf("check: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("check: failed to render some files")
	}
	if hasChanges {
		return fmt.Errorf("check: stale targets found")
	}
	return nil
}

func renderCheckText(results []driver.RenderResult, quiet, showWidths bool, maxWidth int, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "check: %s: %v\n", res.Path, res.Err)
			if res.Bag != nil && res.Bag.HasErrors() {
				res.Bag.Sort()
				fmt.Fprintln(os.Stderr, res.Bag.Format())
			}
			continue
		}
		if res.Changed {
			*hasChanges = true
			if !quiet {
				fmt.Fprintln(os.Stdout, res.Target)
			}
		}
		if showWidths && len(res.Violations) > 0 && !quiet {
			fmt.Fprintf(os.Stderr, "%s:\n%s", res.Path, widthcheck.Report(res.Violations, maxWidth))
		}
	}
}

func renderCheckJSON(results []driver.RenderResult, hasErrors, hasChanges *bool) error {
	type jsonViolation struct {
		Line  uint32 `json:"line"`
		Width int    `json:"width"`
	}
	type jsonResult struct {
		Path       string          `json:"path"`
		Target     string          `json:"target"`
		Changed    bool            `json:"changed"`
		Error      string          `json:"error,omitempty"`
		Violations []jsonViolation `json:"violations,omitempty"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Target: res.Target, Changed: res.Changed}
		if res.Err != nil {
			*hasErrors = true
			jr.Error = res.Err.Error()
		} else if res.Changed {
			*hasChanges = true
		}
		for _, v := range res.Violations {
			jr.Violations = append(jr.Violations, jsonViolation{Line: v.Line, Width: v.Width})
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
