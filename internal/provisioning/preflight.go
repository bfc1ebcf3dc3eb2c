package provisioning

// PreflightPhase validates the Spaces key pair before any paid
// resource is created. The image build alone takes several minutes,
// so a bad key pair should fail here and not deep inside apply.
type PreflightPhase struct{}

// Name returns the human-readable name of this phase.
func (p *PreflightPhase) Name() string { return "Spaces Preflight" }

// Key returns the stable identifier used for timing and progress.
func (p *PreflightPhase) Key() string { return "preflight" }

// Provision verifies the Spaces credentials unless skipped.
func (p *PreflightPhase) Provision(ctx *Context) error {
	if ctx.SkipPreflight {
		ctx.Observer.Event(Event{
			Type:    EventValidationWarning,
			Phase:   p.Key(),
			Message: "spaces preflight skipped, credential errors will surface during apply",
		})
		return nil
	}
	return ctx.Spaces.Verify(ctx)
}
