// Package tui provides a Bubble Tea-based terminal UI for provisioning runs.
package tui

// PhaseMsg reports progress of a provisioning phase.
type PhaseMsg struct {
	Phase string
	Done  bool
	Err   error
}

// OutputLineMsg carries one line of external tool output (packer,
// terraform, git) for the rolling tail view.
type OutputLineMsg struct {
	Line string
}

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the operation is complete.
type DoneMsg struct{}
