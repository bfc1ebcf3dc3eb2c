package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/supado/internal/config"
	"github.com/imamik/supado/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// confirmOverwrite asks the user before replacing an existing file.
	confirmOverwrite = func(path string) bool {
		fmt.Printf("%s already exists. Overwrite? [y/N]: ", path)
		var answer string
		_, _ = fmt.Scanln(&answer)
		return wizard.ParseAffirmative(answer)
	}
)

// Init runs the configuration wizard and writes the result to a file.
// Secrets collected by the wizard are deliberately not saved; only the
// deployment parameters land on disk.
func Init(ctx context.Context, outputPath string, force bool) error {
	if fileExists(outputPath) && !force {
		if !confirmOverwrite(outputPath) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	printWelcome()

	prefill := config.Default()
	prefill.ApplySecretsFromEnv()

	result, err := runWizard(ctx, prefill)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := wizard.BuildConfig(result)

	if err := saveConfigFile(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("supado - Supabase on DigitalOcean")
	fmt.Println("=================================")
	fmt.Println()
	fmt.Println("This wizard collects the deployment settings for your stack.")
	fmt.Println("Secrets stay in memory; the file on disk holds only the")
	fmt.Println("non-sensitive parameters.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Deployment Summary")
	fmt.Println("------------------")
	fmt.Printf("  Domain:       %s\n", cfg.Domain)
	fmt.Printf("  Studio URL:   %s\n", cfg.StudioURL())
	fmt.Printf("  Region:       %s\n", cfg.Region)
	fmt.Printf("  Base image:   %s\n", cfg.DropletImage)
	fmt.Printf("  Droplet size: %s\n", cfg.DropletSize)
	fmt.Printf("  SSH user:     %s\n", cfg.SSHUser)
	if cfg.TerraformCloud {
		fmt.Println("  State:        Terraform Cloud")
	} else {
		fmt.Println("  State:        local")
	}
	fmt.Println()

	// Next steps
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Export your credentials so later runs skip the prompts:")
	fmt.Printf("     export %s=<your-token>\n", config.EnvDOToken)
	fmt.Printf("     export %s=<spaces-key>\n", config.EnvSpacesAccessKey)
	fmt.Printf("     export %s=<spaces-secret>\n", config.EnvSpacesSecretKey)
	fmt.Printf("     export %s=<sendgrid-key>\n", config.EnvSendGridKey)
	fmt.Println()
	fmt.Printf("  2. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  3. Provision the stack:")
	fmt.Println("     supado up")
	fmt.Println()
}
