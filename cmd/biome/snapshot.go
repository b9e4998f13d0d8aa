package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MakakWasTaken/biome/internal/driver"
	"github.com/MakakWasTaken/biome/internal/ir"
	"github.com/MakakWasTaken/biome/internal/printer"
	"github.com/MakakWasTaken/biome/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [flags] <doc-file>",
	Short: "Render a comparative-testing snapshot for one document file",
	Long: `Snapshot renders a document file and emits a fixture with the original
input, a diff against a reference rendering, the output, and any lines
exceeding the width budget.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().String("source", "", "original source file (default: the render target, if present)")
	snapshotCmd.Flags().String("reference", "", "reference rendering to diff against")
	snapshotCmd.Flags().String("out", "", "write the snapshot to a file instead of stdout")
	registerLayoutFlags(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	docPath := args[0]
	sourcePath, err := cmd.Flags().GetString("source")
	if err != nil {
		return err
	}
	referencePath, err := cmd.Flags().GetString("reference")
	if err != nil {
		return err
	}
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	layout, err := resolveLayoutOptions(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(docPath)
	if err != nil {
		return err
	}
	root, envelope, err := ir.Decode(data, ir.DetectFormat(docPath))
	if err != nil {
		return err
	}
	printed, err := printer.Print(root, layout)
	if err != nil {
		return err
	}

	in := snapshot.Input{
		Output:   printed.Output,
		MaxWidth: layout.WithDefaults().MaxWidth,
	}

	if sourcePath == "" {
		// The envelope records where the document came from; fall back to
		// the render target.
		sourcePath = envelope.Source
	}
	if sourcePath == "" {
		sourcePath = driver.TargetPath(docPath)
	}
	if sourcePath != "" {
		if src, readErr := os.ReadFile(sourcePath); readErr == nil {
			in.Source = src
		}
	}
	if referencePath != "" {
		ref, readErr := os.ReadFile(referencePath)
		if readErr != nil {
			return readErr
		}
		in.Reference = ref
	}

	rendered, err := snapshot.Render(in)
	if err != nil {
		return err
	}

	if outPath != "" {
		return os.WriteFile(outPath, []byte(rendered), 0o644)
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	if useColor {
		printSnapshotColored(rendered)
		return nil
	}
	fmt.Fprint(os.Stdout, rendered)
	return nil
}

func printSnapshotColored(rendered string) {
	header := color.New(color.FgCyan, color.Bold)
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)

	for _, line := range strings.Split(rendered, "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			header.Println(line)
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			added.Println(line)
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			removed.Println(line)
		default:
			fmt.Println(line)
		}
	}
}
