package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"beleg/internal/diag"
	"beleg/internal/driver"
	"beleg/internal/ui"
)

type parseOutcome struct {
	result *driver.DirResult
	err    error
}

// runParseDirWithUI гоняет ParseDir в фоне и рисует прогресс в Bubble Tea.
func runParseDirWithUI(cmd *cobra.Command, title, root string, run *diag.Context, opts driver.Options) (*driver.DirResult, error) {
	files, err := driver.SourcePaths(root)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.ParseDir(cmd.Context(), root, run, optsCopy)
		outcomeCh <- parseOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := awaitOutcome(events, outcomeCh)
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

// awaitOutcome дожидается фонового ParseDir, вычитывая оставшиеся
// события прогресса. После раннего выхода UI (Ctrl-C, ошибка рендера)
// канал событий больше никто не читает, а воркеры блокируются на
// отправке в заполненный буфер; без дренажа обе стороны ждали бы друг
// друга вечно.
func awaitOutcome(events <-chan driver.Event, outcomeCh <-chan parseOutcome) parseOutcome {
	for range events {
	}
	return <-outcomeCh
}
