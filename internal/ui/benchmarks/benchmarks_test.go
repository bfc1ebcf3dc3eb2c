package benchmarks

import (
	"testing"
	"time"

	"github.com/imamik/supado/internal/provisioning"
)

func record(phase string, took time.Duration) provisioning.PhaseRecord {
	started := time.Now().Add(-took)
	ended := started.Add(took)
	return provisioning.PhaseRecord{Phase: phase, StartedAt: started, EndedAt: &ended}
}

func TestEstimateRemaining_NoHistory(t *testing.T) {
	// At repository phase, 5s elapsed, no history
	remaining := EstimateRemaining("repository", 5*time.Second, nil)

	// Should be: (15-5) + 1 + 5 + 480 + 240 + 60 + 5 = 801s
	expected := 801 * time.Second
	if remaining != expected {
		t.Errorf("expected %v, got %v", expected, remaining)
	}
}

func TestEstimateRemaining_MidwayPhase(t *testing.T) {
	// At the image phase with earlier phases done at exactly 2x their estimates
	history := []provisioning.PhaseRecord{
		record("repository", 30*time.Second),
		record("varfiles", 2*time.Second),
		record("preflight", 10*time.Second),
	}

	remaining := EstimateRemaining("image", 60*time.Second, history)

	// scale = 42/21 = 2.0
	// (480*2 - 60) + (240 + 60 + 5) * 2 = 900 + 610 = 1510s
	expected := 1510 * time.Second
	if remaining != expected {
		t.Errorf("expected %v, got %v", expected, remaining)
	}
}

func TestEstimateRemaining_ElapsedExceedsExpected(t *testing.T) {
	// At repository phase, but already spent 30s (over the 15s estimate)
	remaining := EstimateRemaining("repository", 30*time.Second, nil)

	// Overrun scales future predictions: 30s/15s = 2x
	// Should be: max(0, 15*2-30)=0 + (1 + 5 + 480 + 240 + 60 + 5) * 2 = 1582s
	expected := 1582 * time.Second
	if remaining != expected {
		t.Errorf("expected %v, got %v", expected, remaining)
	}
}

func TestEstimateRemaining_UnknownPhase(t *testing.T) {
	if got := EstimateRemaining("teardown", time.Second, nil); got != 0 {
		t.Errorf("unknown phase should estimate 0, got %v", got)
	}
}

func TestEstimateRemaining_SkipsCompletedFuturePhases(t *testing.T) {
	// infrastructure-2 already recorded as done (retry scenario)
	history := []provisioning.PhaseRecord{
		record("infrastructure-2", 60*time.Second),
	}

	remaining := EstimateRemainingWithScale("infrastructure-1", 0, history, 1.0)

	// 240 + 5 (outputs), infrastructure-2 skipped
	expected := 245 * time.Second
	if remaining != expected {
		t.Errorf("expected %v, got %v", expected, remaining)
	}
}

func TestPerformanceScale_NoHistory(t *testing.T) {
	if got := PerformanceScale("image", 0, nil); got != 1.0 {
		t.Errorf("expected neutral scale, got %v", got)
	}
}

func TestPerformanceScale_ClampsHigh(t *testing.T) {
	history := []provisioning.PhaseRecord{
		record("repository", 10*time.Minute), // expected 15s
	}
	if got := PerformanceScale("image", 0, history); got != 3.0 {
		t.Errorf("expected clamp at 3.0, got %v", got)
	}
}

func TestPerformanceScale_ClampsLow(t *testing.T) {
	history := []provisioning.PhaseRecord{
		record("image", time.Second), // expected 480s
	}
	if got := PerformanceScale("outputs", 0, history); got != 0.6 {
		t.Errorf("expected clamp at 0.6, got %v", got)
	}
}

func TestPerformanceScale_IgnoresUnfinishedPhases(t *testing.T) {
	started := time.Now()
	history := []provisioning.PhaseRecord{
		{Phase: "image", StartedAt: started}, // still running
	}
	if got := PerformanceScale("image", 0, history); got != 1.0 {
		t.Errorf("expected neutral scale, got %v", got)
	}
}

func TestTotalEstimate(t *testing.T) {
	expected := 806 * time.Second
	if got := TotalEstimate(); got != expected {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestPhaseOrderMatchesPipeline(t *testing.T) {
	phases := provisioning.DefaultPhases()
	if len(phases) != len(PhaseOrder) {
		t.Fatalf("phase count mismatch: pipeline has %d, benchmarks has %d", len(phases), len(PhaseOrder))
	}
	for i, p := range phases {
		if p.Key() != PhaseOrder[i] {
			t.Errorf("phase %d: pipeline key %q, benchmarks key %q", i, p.Key(), PhaseOrder[i])
		}
	}
}
