package tui

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/supado/internal/provisioning"
)

// Observer translates pipeline events into Bubble Tea messages.
type Observer struct {
	send   func(tea.Msg)
	fields map[string]string
}

// NewObserver creates an observer that forwards events through send.
func NewObserver(send func(tea.Msg)) *Observer {
	return &Observer{send: send, fields: make(map[string]string)}
}

// Printf implements provisioning.Logger. Plain log lines go to the
// output tail.
func (o *Observer) Printf(format string, v ...interface{}) {
	o.send(OutputLineMsg{Line: fmt.Sprintf(format, v...)})
}

// Event implements provisioning.Observer.
func (o *Observer) Event(event provisioning.Event) {
	switch event.Type {
	case provisioning.EventPhaseStarted:
		o.send(PhaseMsg{Phase: event.Phase})
	case provisioning.EventPhaseCompleted:
		o.send(PhaseMsg{Phase: event.Phase, Done: true})
	case provisioning.EventPhaseFailed:
		// The pipeline surfaces the error itself; the view only needs
		// the phase marked.
		o.send(OutputLineMsg{Line: event.Message})
	default:
		o.send(OutputLineMsg{Line: event.Message})
	}
}

// Progress implements provisioning.Observer.
func (o *Observer) Progress(phase string, current, total int) {
	o.send(OutputLineMsg{Line: fmt.Sprintf("[%s] %d/%d", phase, current, total)})
}

// WithFields implements provisioning.Observer.
func (o *Observer) WithFields(fields map[string]string) provisioning.Observer {
	merged := make(map[string]string, len(o.fields)+len(fields))
	for k, v := range o.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Observer{send: o.send, fields: merged}
}

// LineWriter is an io.Writer that splits tool output into lines and
// forwards each as an OutputLineMsg. packer and terraform write their
// streams here when the TUI owns the terminal.
type LineWriter struct {
	send func(tea.Msg)

	mu  sync.Mutex
	buf bytes.Buffer
}

// NewLineWriter creates a line-splitting writer around send.
func NewLineWriter(send func(tea.Msg)) *LineWriter {
	return &LineWriter{send: send}
}

// Write implements io.Writer.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Partial line, keep it buffered.
			w.buf.WriteString(line)
			break
		}
		if trimmed := strings.TrimRight(line, "\r\n"); trimmed != "" {
			w.send(OutputLineMsg{Line: trimmed})
		}
	}
	return len(p), nil
}

// Flush forwards any buffered partial line.
func (w *LineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.send(OutputLineMsg{Line: w.buf.String()})
		w.buf.Reset()
	}
}
