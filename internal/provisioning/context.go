package provisioning

import (
	"context"
	"time"

	"github.com/imamik/supado/internal/config"
)

// RepoEnsurer clones the deployment repository when absent.
type RepoEnsurer interface {
	Ensure(ctx context.Context) (bool, error)
}

// ImageBuilder drives the image-builder tool (packer).
type ImageBuilder interface {
	Init(ctx context.Context) error
	Build(ctx context.Context) error
}

// InfraRunner drives the infrastructure tool (terraform).
type InfraRunner interface {
	Init(ctx context.Context) error
	Apply(ctx context.Context) error
	Output(ctx context.Context, name string) (string, error)
}

// CredentialVerifier validates remote credentials before provisioning.
type CredentialVerifier interface {
	Verify(ctx context.Context) error
}

// PhaseRecord captures the timing of one executed phase.
type PhaseRecord struct {
	Phase     string
	StartedAt time.Time
	EndedAt   *time.Time
}

// State holds the shared results of provisioning phases. It is
// progressively populated as each phase completes.
type State struct {
	// RepoCloned is true when the repository phase performed a fresh clone.
	RepoCloned bool

	// VarFilesWritten is true once both variable files are on disk.
	VarFilesWritten bool

	// Outputs holds the named terraform outputs (populated last).
	Outputs map[string]string

	// History records phase timings for progress estimation.
	History []PhaseRecord
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{
		Outputs: make(map[string]string),
	}
}

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Repo     RepoEnsurer
	Image    ImageBuilder
	Infra    InfraRunner
	Spaces   CredentialVerifier
	Observer Observer

	// SkipPreflight disables the Spaces credential check.
	SkipPreflight bool
}

// NewContext creates a new provisioning context with a console observer.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	repo RepoEnsurer,
	image ImageBuilder,
	infra InfraRunner,
	spaces CredentialVerifier,
) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Repo:     repo,
		Image:    image,
		Infra:    infra,
		Spaces:   spaces,
		Observer: NewConsoleObserver(),
	}
}
