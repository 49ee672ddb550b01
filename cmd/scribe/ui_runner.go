package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"scribe/internal/driver"
	"scribe/internal/ui"
)

// progressMode selects between the interactive progress view and plain
// line output. Auto follows whether stdout is a terminal.
type progressMode uint8

const (
	progressAuto progressMode = iota
	progressAlways
	progressNever
)

func parseProgressMode(value string) (progressMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return progressAuto, nil
	case "on":
		return progressAlways, nil
	case "off":
		return progressNever, nil
	}
	return 0, fmt.Errorf("--ui must be auto, on, or off, got %q", value)
}

func (m progressMode) interactive() bool {
	switch m {
	case progressAlways:
		return true
	case progressNever:
		return false
	}
	return isTerminal(os.Stdout)
}

type emitOutcome struct {
	results []driver.FileResult
	err     error
}

// runEmitWithUI runs the batch under a Bubble Tea progress view. Driver
// events stream into the model; the channel close signals completion.
func runEmitWithUI(ctx context.Context, title string, opts driver.Options, paths []string) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan emitOutcome, 1)

	opts.Observer = func(ev driver.Event) {
		events <- ev
	}
	d := driver.New(treeFrontend, opts)

	go func() {
		results, err := d.EmitPaths(ctx, paths)
		outcomeCh <- emitOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
