package provisioning

import (
	"github.com/imamik/supado/internal/config/varfiles"
)

// VarFilesPhase renders the packer and terraform variable files into
// the deployment repository. Existing files are overwritten so the
// run always reflects the current configuration.
type VarFilesPhase struct{}

// Name returns the human-readable name of this phase.
func (p *VarFilesPhase) Name() string { return "Variable Files" }

// Key returns the stable identifier used for timing and progress.
func (p *VarFilesPhase) Key() string { return "varfiles" }

// Provision writes both variable files.
func (p *VarFilesPhase) Provision(ctx *Context) error {
	if err := varfiles.Write(ctx.Config.RepoDirOrDefault(), ctx.Config); err != nil {
		return err
	}
	ctx.State.VarFilesWritten = true
	ctx.Observer.Printf("wrote %s and %s", varfiles.PackerVarsRelPath, varfiles.TerraformVarsRelPath)
	return nil
}
