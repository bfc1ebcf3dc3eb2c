package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/supado/internal/provisioning"
	"github.com/imamik/supado/internal/ui/benchmarks"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m30s"},
		{3600 * time.Second, "1h0m"},
		{3661 * time.Second, "1h1m"},
	}
	for _, tt := range tests {
		got := formatDuration(tt.d)
		if got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestNewUpModel_PhasesMatchPipeline(t *testing.T) {
	m := NewUpModel("example.com", "ams3")

	pipeline := provisioning.DefaultPhases()
	if len(m.Phases) != len(pipeline) {
		t.Fatalf("expected %d phases, got %d", len(pipeline), len(m.Phases))
	}
	for i, p := range pipeline {
		if m.Phases[i].Key != p.Key() {
			t.Errorf("phase %d: key %q, want %q", i, m.Phases[i].Key, p.Key())
		}
	}
}

func TestCalculateProgress_Done(t *testing.T) {
	m := Model{Done: true}
	if p := calculateProgress(m); p != 1.0 {
		t.Errorf("expected 1.0, got %v", p)
	}
}

func TestCalculateProgress_WeightsByBenchmark(t *testing.T) {
	m := NewUpModel("example.com", "ams3")
	// repository (15s), varfiles (1s), preflight (5s) done out of 806s total
	m.Phases[0].Done = true
	m.Phases[1].Done = true
	m.Phases[2].Done = true

	p := calculateProgress(m)
	expected := 21.0 / 806.0
	if p < expected-0.01 || p > expected+0.01 {
		t.Errorf("expected ~%v, got %v", expected, p)
	}
}

func TestModelUpdatePhase(t *testing.T) {
	m := NewUpModel("example.com", "ams3")

	// Start repository phase
	m.updatePhase(PhaseMsg{Phase: "repository"})
	if !m.Phases[0].Active {
		t.Error("expected repository phase to be active")
	}

	// Complete it
	m.updatePhase(PhaseMsg{Phase: "repository", Done: true})
	if !m.Phases[0].Done {
		t.Error("expected repository phase to be done")
	}
	if m.Phases[0].Active {
		t.Error("expected repository phase to not be active after done")
	}

	// Starting a later phase marks everything before it done
	m.updatePhase(PhaseMsg{Phase: "image"})
	for i := 0; i < 3; i++ {
		if !m.Phases[i].Done {
			t.Errorf("expected phase %d to be done after image started", i)
		}
	}
	if !m.Phases[3].Active {
		t.Error("expected image phase to be active")
	}
}

func TestModelUpdatePhase_UnknownKeyIgnored(t *testing.T) {
	m := NewUpModel("example.com", "ams3")
	m.updatePhase(PhaseMsg{Phase: "teardown"})

	for i, p := range m.Phases {
		if p.Active || p.Done {
			t.Errorf("phase %d should be untouched", i)
		}
	}
}

func TestModelUpdate_ErrQuits(t *testing.T) {
	m := NewUpModel("example.com", "ams3")

	updated, cmd := m.Update(ErrMsg{Err: fmt.Errorf("boom")})
	fm := updated.(Model)

	if fm.Err == nil {
		t.Error("expected error to be recorded")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestModelUpdate_DoneQuits(t *testing.T) {
	m := NewUpModel("example.com", "ams3")

	updated, cmd := m.Update(DoneMsg{})
	fm := updated.(Model)

	if !fm.Done {
		t.Error("expected done to be recorded")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestModelUpdate_QuitKeyMidRunIsAbort(t *testing.T) {
	m := NewUpModel("example.com", "ams3")

	updated, _ := m.Update(PhaseMsg{Phase: "repository"})
	updated, cmd := updated.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	fm := updated.(Model)

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if fm.Err != nil || fm.Done {
		t.Fatalf("expected neither Err nor Done after quit key, got Err=%v Done=%v", fm.Err, fm.Done)
	}
	if !errors.Is(finishErr(fm), ErrAborted) {
		t.Error("quitting mid-run should be reported as an abort")
	}
}

func TestFinishErr(t *testing.T) {
	boom := fmt.Errorf("boom")

	if err := finishErr(Model{Done: true}); err != nil {
		t.Errorf("finished run should report no error, got %v", err)
	}
	if err := finishErr(Model{Err: boom}); !errors.Is(err, boom) {
		t.Errorf("failed run should report the pipeline error, got %v", err)
	}
	if err := finishErr(Model{}); !errors.Is(err, ErrAborted) {
		t.Errorf("run that quit without finishing should report an abort, got %v", err)
	}
}

func TestHistoryUsesObservedDurations(t *testing.T) {
	m := NewUpModel("example.com", "ams3")

	m.updatePhase(PhaseMsg{Phase: "repository"})
	m.PhaseStart = time.Now().Add(-30 * time.Second)
	m.updatePhase(PhaseMsg{Phase: "repository", Done: true})

	recs := m.history()
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	got := recs[0].EndedAt.Sub(recs[0].StartedAt)
	if got < 29*time.Second || got > 31*time.Second {
		t.Errorf("expected ~30s observed duration, got %v", got)
	}
}

func TestHistoryFallsBackToBenchmarkDuration(t *testing.T) {
	m := NewUpModel("example.com", "ams3")

	// Starting image marks the first three phases done without any
	// completion message, so no duration was observed for them.
	m.updatePhase(PhaseMsg{Phase: "image"})

	recs := m.history()
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	for _, rec := range recs {
		want := time.Duration(benchmarks.DefaultTimings[rec.Phase]) * time.Second
		got := rec.EndedAt.Sub(rec.StartedAt)
		if got != want {
			t.Errorf("phase %s: expected benchmark duration %v, got %v", rec.Phase, want, got)
		}
	}
}

func TestAppendOutput_KeepsTail(t *testing.T) {
	m := NewUpModel("example.com", "ams3")
	for i := 0; i < outputTailLines+5; i++ {
		m.appendOutput(fmt.Sprintf("line %d", i))
	}

	if len(m.OutputTail) != outputTailLines {
		t.Fatalf("expected %d lines, got %d", outputTailLines, len(m.OutputTail))
	}
	if m.OutputTail[0] != "line 5" {
		t.Errorf("expected oldest kept line to be %q, got %q", "line 5", m.OutputTail[0])
	}
}

func TestView_ShowsDomainAndPhases(t *testing.T) {
	m := NewUpModel("example.com", "ams3")
	m.Phases[0].Done = true
	m.Phases[3].Active = true

	out := m.View()

	if !strings.Contains(out, "example.com") {
		t.Error("view should contain the domain")
	}
	if !strings.Contains(out, "ams3") {
		t.Error("view should contain the region")
	}
	if !strings.Contains(out, "Image Build") {
		t.Error("view should list the image phase")
	}
}

func TestObserver_TranslatesEvents(t *testing.T) {
	var msgs []tea.Msg
	o := NewObserver(func(msg tea.Msg) { msgs = append(msgs, msg) })

	provisioning.LogPhaseStart(o, "image")
	provisioning.LogPhaseComplete(o, "image", time.Second)

	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	start, ok := msgs[0].(PhaseMsg)
	if !ok || start.Phase != "image" || start.Done {
		t.Errorf("unexpected start message: %#v", msgs[0])
	}
	complete, ok := msgs[1].(PhaseMsg)
	if !ok || complete.Phase != "image" || !complete.Done {
		t.Errorf("unexpected complete message: %#v", msgs[1])
	}
}

func TestLineWriter_SplitsLines(t *testing.T) {
	var lines []string
	w := NewLineWriter(func(msg tea.Msg) {
		if m, ok := msg.(OutputLineMsg); ok {
			lines = append(lines, m.Line)
		}
	})

	if _, err := w.Write([]byte("digitalocean.supabase: output will be in this color.\npartial")); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(" line\n")); err != nil {
		t.Fatal(err)
	}
	w.Flush()

	want := []string{
		"digitalocean.supabase: output will be in this color.",
		"partial line",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTruncateLine(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := truncateLine(long, 40)
	if len([]rune(got)) != 32 {
		t.Errorf("expected 32 runes, got %d", len([]rune(got)))
	}
	if truncateLine("short", 80) != "short" {
		t.Error("short lines should pass through untouched")
	}
}
