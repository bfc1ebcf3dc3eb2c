package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/imamik/supado/internal/provisioning"
)

// Image builds only the droplet snapshot.
//
// This runs the front of the provisioning flow: clone the deployment
// repository if needed, render the variable files and drive packer
// init and build. The terraform-managed infrastructure is untouched;
// run 'supado apply' afterwards to create it.
func Image(ctx context.Context, configPath string) error {
	if err := checkPrerequisites(); err != nil {
		return err
	}

	cfg, err := resolveConfig(ctx, configPath)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Printf("Building snapshot for %s in %s...", cfg.Domain, cfg.Region)

	phases := []provisioning.Phase{
		&provisioning.RepositoryPhase{},
		&provisioning.VarFilesPhase{},
		&provisioning.ImagePhase{},
	}

	if _, err := runProvisioning(ctx, cfg, phases, UpOptions{Plain: true}); err != nil {
		return err
	}

	fmt.Println("\nSnapshot built. Run 'supado apply' to provision the infrastructure.")
	return nil
}
