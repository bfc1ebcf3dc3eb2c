package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/supado/internal/provisioning"
	"github.com/imamik/supado/internal/ui/benchmarks"
)

// outputTailLines is the number of tool output lines kept on screen.
const outputTailLines = 8

// PhaseStep represents one provisioning phase for display.
type PhaseStep struct {
	Name   string
	Key    string
	Done   bool
	Active bool
	Err    error
}

// Model is the Bubble Tea model for the provisioning dashboard.
type Model struct {
	// Deployment info
	Domain string
	Region string

	// Provisioning phases
	Phases     []PhaseStep
	PhaseStart time.Time

	// Observed durations of completed phases, by phase key. Feeds the
	// ETA scale with real timings instead of benchmark assumptions.
	PhaseDurations map[string]time.Duration

	// Rolling tail of external tool output
	OutputTail []string

	// ETA
	EstimatedRemaining time.Duration
	PerformanceScale   float64
	StartTime          time.Time

	// Animation
	SpinnerFrame int

	// UI state
	Width  int
	Height int
	Err    error
	Done   bool
}

// NewUpModel creates a model for the up command TUI. The phase list
// mirrors the pipeline so message keys line up.
func NewUpModel(domain, region string) Model {
	pipeline := provisioning.DefaultPhases()
	steps := make([]PhaseStep, 0, len(pipeline))
	for _, p := range pipeline {
		steps = append(steps, PhaseStep{Name: p.Name(), Key: p.Key()})
	}
	return Model{
		Domain:           domain,
		Region:           region,
		StartTime:        time.Now(),
		PerformanceScale: 1.0,
		Phases:           steps,
		PhaseDurations:   make(map[string]time.Duration),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case PhaseMsg:
		m.updatePhase(msg)
		if msg.Err != nil {
			m.Err = msg.Err
			return m, tea.Quit
		}

	case OutputLineMsg:
		m.appendOutput(msg.Line)

	case TickMsg:
		m.SpinnerFrame++
		m.updateETA()
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) updatePhase(msg PhaseMsg) {
	idx := -1
	for i, phase := range m.Phases {
		if phase.Key == msg.Phase {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	// Mark previous phases as done
	for i := 0; i < idx; i++ {
		m.Phases[i].Done = true
		m.Phases[i].Active = false
	}

	if msg.Done {
		if m.Phases[idx].Active && !m.PhaseStart.IsZero() {
			m.PhaseDurations[m.Phases[idx].Key] = time.Since(m.PhaseStart)
		}
		m.Phases[idx].Done = true
		m.Phases[idx].Active = false
	} else {
		m.Phases[idx].Active = true
		m.PhaseStart = time.Now()
	}

	if msg.Err != nil {
		m.Phases[idx].Err = msg.Err
	}
}

func (m *Model) appendOutput(line string) {
	m.OutputTail = append(m.OutputTail, line)
	if len(m.OutputTail) > outputTailLines {
		m.OutputTail = m.OutputTail[len(m.OutputTail)-outputTailLines:]
	}
}

func (m *Model) updateETA() {
	current := m.activePhase()
	if current == "" {
		m.EstimatedRemaining = 0
		return
	}

	var phaseElapsed time.Duration
	if !m.PhaseStart.IsZero() {
		phaseElapsed = time.Since(m.PhaseStart)
	}

	history := m.history()
	m.PerformanceScale = benchmarks.PerformanceScale(current, phaseElapsed, history)
	m.EstimatedRemaining = benchmarks.EstimateRemainingWithScale(current, phaseElapsed, history, m.PerformanceScale)
}

// activePhase returns the key of the currently running phase, if any.
func (m Model) activePhase() string {
	for _, p := range m.Phases {
		if p.Active && !p.Done {
			return p.Key
		}
	}
	return ""
}

// history synthesizes phase records from display state. Completed
// phases use their observed duration; phases whose completion was
// only inferred from a later start message fall back to the benchmark
// duration.
func (m Model) history() []provisioning.PhaseRecord {
	records := make([]provisioning.PhaseRecord, 0, len(m.Phases))
	for _, p := range m.Phases {
		if !p.Done {
			continue
		}
		dur, ok := m.PhaseDurations[p.Key]
		if !ok {
			dur = time.Duration(benchmarks.DefaultTimings[p.Key]) * time.Second
		}
		started := time.Now().Add(-dur)
		ended := started.Add(dur)
		records = append(records, provisioning.PhaseRecord{Phase: p.Key, StartedAt: started, EndedAt: &ended})
	}
	return records
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
