package provisioning

import (
	"context"
	"time"

	"github.com/imamik/supado/internal/util/retry"
)

// OutputNames lists the terraform outputs retrieved after the second
// apply, in the order they are fetched and reported.
var OutputNames = []string{
	"htpasswd",
	"psql_pass",
	"jwt",
	"jwt_anon",
	"jwt_service_role",
}

// OutputsPhase retrieves the generated credentials from terraform
// state. Values are stored in the provisioning state and never logged.
type OutputsPhase struct{}

// Name returns the human-readable name of this phase.
func (p *OutputsPhase) Name() string { return "Outputs" }

// Key returns the stable identifier used for timing and progress.
func (p *OutputsPhase) Key() string { return "outputs" }

// Provision fetches each named output with terraform output -raw.
func (p *OutputsPhase) Provision(ctx *Context) error {
	for i, name := range OutputNames {
		value, err := ReadOutput(ctx, ctx.Infra, name)
		if err != nil {
			return err
		}
		ctx.State.Outputs[name] = value
		ctx.Observer.Progress(p.Key(), i+1, len(OutputNames))
	}
	return nil
}

// ReadOutput fetches a single terraform output. Reads are retried
// briefly; right after an apply the state backend can still hold a
// lock. The secrets command reuses this so both read paths behave the
// same.
func ReadOutput(ctx context.Context, infra InfraRunner, name string) (string, error) {
	var value string
	err := retry.WithExponentialBackoff(ctx, func() error {
		var err error
		value, err = infra.Output(ctx, name)
		return err
	}, retry.WithMaxRetries(2), retry.WithInitialDelay(500*time.Millisecond))
	return value, err
}
