package provisioning

// RepositoryPhase makes sure the deployment repository is present on
// disk. An existing directory is reused as-is so local edits to the
// packer template or terraform plan survive repeated runs.
type RepositoryPhase struct{}

// Name returns the human-readable name of this phase.
func (p *RepositoryPhase) Name() string { return "Repository" }

// Key returns the stable identifier used for timing and progress.
func (p *RepositoryPhase) Key() string { return "repository" }

// Provision clones the repository when it is not already on disk.
func (p *RepositoryPhase) Provision(ctx *Context) error {
	cloned, err := ctx.Repo.Ensure(ctx)
	if err != nil {
		return err
	}
	ctx.State.RepoCloned = cloned
	if !cloned {
		LogPhaseSkipped(ctx.Observer, p.Key(), "repository already present, reusing")
	}
	return nil
}
