package provisioning

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
)

// MockObserver is a test implementation of Observer that records events.
type MockObserver struct {
	events   []Event
	messages []string
	fields   map[string]string
}

func NewMockObserver() *MockObserver {
	return &MockObserver{
		events:   make([]Event, 0),
		messages: make([]string, 0),
		fields:   make(map[string]string),
	}
}

func (m *MockObserver) Printf(format string, v ...interface{}) {
	m.messages = append(m.messages, fmt.Sprintf(format, v...))
}

func (m *MockObserver) Event(event Event) {
	m.events = append(m.events, event)
}

func (m *MockObserver) Progress(phase string, current, total int) {
	m.Event(Event{
		Type:    EventProgress,
		Phase:   phase,
		Message: "progress",
		Fields: map[string]string{
			"current": strconv.Itoa(current),
			"total":   strconv.Itoa(total),
		},
	})
}

func (m *MockObserver) WithFields(fields map[string]string) Observer {
	newObserver := NewMockObserver()
	for k, v := range m.fields {
		newObserver.fields[k] = v
	}
	for k, v := range fields {
		newObserver.fields[k] = v
	}
	return newObserver
}

func TestConsoleObserver_Printf(t *testing.T) {
	observer := NewConsoleObserver()

	// Should not panic
	observer.Printf("test message: %s", "value")
}

func TestConsoleObserver_FormatEvent(t *testing.T) {
	observer := NewConsoleObserver()

	event := Event{
		Type:      EventPhaseCompleted,
		Phase:     "image",
		Message:   "completed in 8m0s",
		Timestamp: time.Now(),
	}

	got := observer.formatEvent(event)
	assert.Contains(t, got, "phase.completed")
	assert.Contains(t, got, "[image]")
	assert.Contains(t, got, "completed in 8m0s")
}

func TestConsoleObserver_WithFields(t *testing.T) {
	observer := NewConsoleObserver()
	child := observer.WithFields(map[string]string{"region": "ams3"})

	assert.NotNil(t, child)
	// parent must stay untouched
	assert.Empty(t, observer.contextFields)
}

func TestObserver_ImplementsLogger(t *testing.T) {
	var logger Logger
	var observer Observer = NewConsoleObserver()

	logger = observer
	logger.Printf("works")
}

func TestLogrObserver_Event(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	observer := NewLogrObserver(logger)
	LogPhaseStart(observer, "preflight")

	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "preflight")
	assert.Contains(t, lines[0], "phase.started")
}

func TestLogrObserver_WithFields(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	observer := NewLogrObserver(logger).WithFields(map[string]string{"domain": "example.com"})
	observer.Printf("hello")

	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "example.com")
}

func TestLogPhaseHelpers(t *testing.T) {
	observer := NewMockObserver()

	LogPhaseStart(observer, "image")
	LogPhaseComplete(observer, "image", 2*time.Second)
	LogPhaseFailed(observer, "image", fmt.Errorf("packer exploded"))
	LogPhaseSkipped(observer, "repository", "already present")

	assert.Len(t, observer.events, 4)
	assert.Equal(t, EventPhaseStarted, observer.events[0].Type)
	assert.Equal(t, EventPhaseCompleted, observer.events[1].Type)
	assert.Equal(t, EventPhaseFailed, observer.events[2].Type)
	assert.Contains(t, observer.events[2].Message, "packer exploded")
	assert.Equal(t, EventPhaseSkipped, observer.events[3].Type)
}
