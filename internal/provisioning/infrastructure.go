package provisioning

import "fmt"

// InfrastructurePhase drives terraform. The plan needs exactly two
// applies: the first creates the droplet, DNS records and Spaces
// bucket, the second converges resources that depend on outputs of
// the first (certificate issuance against the now-resolvable domain).
// Pass 1 also runs terraform init.
type InfrastructurePhase struct {
	// Pass is 1 or 2.
	Pass int
}

// Name returns the human-readable name of this phase.
func (p *InfrastructurePhase) Name() string {
	return fmt.Sprintf("Infrastructure (pass %d)", p.Pass)
}

// Key returns the stable identifier used for timing and progress.
func (p *InfrastructurePhase) Key() string {
	return fmt.Sprintf("infrastructure-%d", p.Pass)
}

// Provision runs terraform init (first pass only) and apply.
func (p *InfrastructurePhase) Provision(ctx *Context) error {
	if p.Pass == 1 {
		if err := ctx.Infra.Init(ctx); err != nil {
			return err
		}
	}
	return ctx.Infra.Apply(ctx)
}
