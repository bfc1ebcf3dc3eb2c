package provisioning

import (
	"fmt"
	"time"
)

// Phase defines the interface for a provisioning phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Key returns the stable identifier used for timing and progress.
	Key() string

	// Provision executes the provisioning logic for this phase.
	Provision(ctx *Context) error
}

// RunPhases executes all provisioning phases sequentially. The first
// failing phase aborts the run; later phases are never attempted.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d phases...", len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		ctx.Observer.Printf("[%s (%d/%d)] starting", phase.Name(), i+1, len(phases))

		LogPhaseStart(ctx.Observer, phase.Key())
		record := PhaseRecord{Phase: phase.Key(), StartedAt: phaseStart}
		ctx.State.History = append(ctx.State.History, record)

		if err := phase.Provision(ctx); err != nil {
			LogPhaseFailed(ctx.Observer, phase.Key(), err)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ended := time.Now()
		ctx.State.History[len(ctx.State.History)-1].EndedAt = &ended
		LogPhaseComplete(ctx.Observer, phase.Key(), ended.Sub(phaseStart))
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

// DefaultPhases returns the full provisioning sequence in execution order.
func DefaultPhases() []Phase {
	return []Phase{
		&RepositoryPhase{},
		&VarFilesPhase{},
		&PreflightPhase{},
		&ImagePhase{},
		&InfrastructurePhase{Pass: 1},
		&InfrastructurePhase{Pass: 2},
		&OutputsPhase{},
	}
}
