package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jskw/internal/driver"
	"jskw/internal/ui"
)

type scanOutcome struct {
	result *driver.ScanResult
	err    error
}

// runScanWithUI runs the scan in the background while the progress view
// consumes its events.
func runScanWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*driver.ScanResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan scanOutcome, 1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		o := opts
		o.Progress = func(ev driver.Event) {
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		}
		res, err := driver.ScanPaths(ctx, files, o)
		outcomeCh <- scanOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// the view is gone: a finished scan ignores this, an interrupted one stops
	cancel()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
