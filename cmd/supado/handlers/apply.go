package handlers

import (
	"context"
	"log"
	"os"

	"github.com/imamik/supado/internal/provisioning"
)

// Apply runs only the terraform part of the flow against an existing
// snapshot: the double apply followed by output retrieval and the
// credentials report.
func Apply(ctx context.Context, configPath string, skipPreflight, jsonOutput bool) error {
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

	log.Printf("Applying infrastructure for %s...", cfg.Domain)

	phases := []provisioning.Phase{
		&provisioning.RepositoryPhase{},
		&provisioning.VarFilesPhase{},
		&provisioning.PreflightPhase{},
		&provisioning.InfrastructurePhase{Pass: 1},
		&provisioning.InfrastructurePhase{Pass: 2},
		&provisioning.OutputsPhase{},
	}

	pctx, err := runProvisioning(ctx, cfg, phases, UpOptions{Plain: true, SkipPreflight: skipPreflight})
	if err != nil {
		return err
	}

	return printReport(os.Stdout, cfg, pctx.State.Outputs, jsonOutput)
}
