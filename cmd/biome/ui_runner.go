package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/MakakWasTaken/biome/internal/driver"
	"github.com/MakakWasTaken/biome/internal/ui"
)

type renderOutcome struct {
	results []driver.RenderResult
	err     error
}

func runRenderWithUI(cmd *cobra.Command, paths []string, opts driver.RenderOptions) ([]driver.RenderResult, error) {
	files, err := driver.ListDocFiles(cmd.Context(), paths)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan renderOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		results, err := driver.RenderPaths(cmd.Context(), paths, optsCopy)
		outcomeCh <- renderOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("rendering documents", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
