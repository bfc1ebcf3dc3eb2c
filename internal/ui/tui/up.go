package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user quits the dashboard before the
// pipeline has finished.
var ErrAborted = errors.New("aborted by user")

// RunUpTUI wraps a provisioning run with a Bubble Tea TUI. runFn
// executes the pipeline, reporting progress through the given send
// function. It runs on a background goroutine while Bubble Tea owns
// the terminal. Quitting the dashboard mid-run cancels the context
// handed to runFn and returns ErrAborted once the pipeline goroutine
// has stopped.
func RunUpTUI(ctx context.Context, runFn func(ctx context.Context, send func(tea.Msg)) error, domain, region string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewUpModel(domain, region)

	p := tea.NewProgram(m, tea.WithAltScreen())

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := runFn(ctx, p.Send); err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	result := finishErr(finalModel.(Model))
	if errors.Is(result, ErrAborted) {
		// Stop the pipeline before handing control back; the caller
		// must not observe state the goroutine is still writing.
		cancel()
		<-done
	}
	return result
}

// finishErr maps the final model state to the run result. A model
// that quit without Done or Err means the user aborted mid-run.
func finishErr(fm Model) error {
	if fm.Err != nil {
		return fm.Err
	}
	if !fm.Done {
		return ErrAborted
	}
	return nil
}
