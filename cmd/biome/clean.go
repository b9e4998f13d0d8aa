package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MakakWasTaken/biome/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the render cache",
	Long:  "Remove cached renderings under $XDG_CACHE_HOME/biome.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(_ *cobra.Command, _ []string) error {
	cache, err := driver.OpenDiskCache("biome")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to drop cache: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, "render cache removed")
	return nil
}
