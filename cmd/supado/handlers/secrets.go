package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/imamik/supado/internal/platform/terraform"
	"github.com/imamik/supado/internal/provisioning"
)

// Secrets reads the credentials back from terraform state and prints
// the same report 'supado up' shows at the end of a run. No
// infrastructure is touched.
func Secrets(ctx context.Context, configPath string, jsonOutput bool) error {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cfg.Domain == "" {
		return fmt.Errorf("no domain configured. Run 'supado init' or pass --config")
	}

	repoDir := cfg.RepoDirOrDefault()
	if _, err := os.Stat(filepath.Join(repoDir, terraform.PlanDir)); os.IsNotExist(err) {
		return fmt.Errorf("deployment repository not found at %s. Run 'supado up' first", repoDir)
	}

	// terraform output is quiet; discard the streams.
	infra := newInfraRunner(repoDir, io.Discard, io.Discard)

	outputs := make(map[string]string, len(provisioning.OutputNames))
	for _, name := range provisioning.OutputNames {
		value, err := provisioning.ReadOutput(ctx, infra, name)
		if err != nil {
			return fmt.Errorf("failed to read output %s: %w", name, err)
		}
		outputs[name] = value
	}

	return printReport(os.Stdout, cfg, outputs, jsonOutput)
}
