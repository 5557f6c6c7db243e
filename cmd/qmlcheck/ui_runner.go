package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"qmlcheck/internal/driver"
	"qmlcheck/internal/source"
	"qmlcheck/internal/ui"
)

type checkOutcome struct {
	fs      *source.FileSet
	results []driver.CheckResult
	err     error
}

// runCheckDirWithUI runs CheckDir with a live progress display. The
// driver feeds events through a channel; closing it ends the UI.
func runCheckDirWithUI(ctx context.Context, dir string, opts driver.Options) (*source.FileSet, []driver.CheckResult, error) {
	files, err := driver.ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return driver.CheckDir(ctx, dir, opts)
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Observer = func(ev driver.Event) { events <- ev }
		fs, results, err := driver.CheckDir(ctx, dir, optsCopy)
		outcomeCh <- checkOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("checking "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
