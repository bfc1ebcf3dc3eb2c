package provisioning

// ImagePhase builds the droplet snapshot with packer. This is the
// longest phase of a run: packer boots a builder droplet, installs
// the stack onto it and snapshots the result.
type ImagePhase struct{}

// Name returns the human-readable name of this phase.
func (p *ImagePhase) Name() string { return "Image Build" }

// Key returns the stable identifier used for timing and progress.
func (p *ImagePhase) Key() string { return "image" }

// Provision runs packer init followed by packer build.
func (p *ImagePhase) Provision(ctx *Context) error {
	if err := ctx.Image.Init(ctx); err != nil {
		return err
	}
	return ctx.Image.Build(ctx)
}
