// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr/funcr"
	"github.com/mattn/go-isatty"

	"github.com/imamik/supado/internal/config"
	"github.com/imamik/supado/internal/config/wizard"
	"github.com/imamik/supado/internal/platform/packer"
	"github.com/imamik/supado/internal/platform/repo"
	"github.com/imamik/supado/internal/platform/spaces"
	"github.com/imamik/supado/internal/platform/terraform"
	"github.com/imamik/supado/internal/provisioning"
	"github.com/imamik/supado/internal/ui/tui"
	"github.com/imamik/supado/internal/util/prerequisites"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// checkDefaultPrereqs runs prerequisite checks.
	checkDefaultPrereqs = prerequisites.CheckDefault

	// runWizard runs the interactive configuration wizard.
	runWizard = wizard.Run

	// findConfigFile finds the default config file.
	findConfigFile = config.FindConfigFile

	// loadConfigFile loads config from a file.
	loadConfigFile = config.Load

	// saveConfigFile writes the non-secret config to a file.
	saveConfigFile = config.Save

	// newRepoCloner creates the repository cloner.
	newRepoCloner = func(dir string, stdout, stderr io.Writer) provisioning.RepoEnsurer {
		c := repo.NewCloner(dir)
		c.Stdout = stdout
		c.Stderr = stderr
		return c
	}

	// newImageBuilder creates the packer driver.
	newImageBuilder = func(repoDir string, stdout, stderr io.Writer) provisioning.ImageBuilder {
		cli := packer.New(repoDir)
		cli.Stdout = stdout
		cli.Stderr = stderr
		return cli
	}

	// newInfraRunner creates the terraform driver.
	newInfraRunner = func(repoDir string, stdout, stderr io.Writer) provisioning.InfraRunner {
		cli := terraform.New(repoDir)
		cli.Stdout = stdout
		cli.Stderr = stderr
		return cli
	}

	// newSpacesVerifier creates the Spaces preflight client.
	newSpacesVerifier = func(ctx context.Context, region, accessKey, secretKey string) (provisioning.CredentialVerifier, error) {
		return spaces.NewVerifier(ctx, region, accessKey, secretKey)
	}

	// runPipeline executes the provisioning phases.
	runPipeline = provisioning.RunPhases

	// runUpTUI wraps a provisioning run with the Bubble Tea TUI.
	runUpTUI = tui.RunUpTUI

	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// UpOptions controls how the up flow runs.
type UpOptions struct {
	// Plain disables the TUI and streams tool output directly.
	Plain bool

	// SkipPreflight skips the Spaces credential check.
	SkipPreflight bool

	// Verbose switches console messages for structured event logs.
	Verbose bool
}

// Up provisions the full Supabase stack on DigitalOcean.
//
// This function orchestrates the complete provisioning workflow:
//  1. Loads configuration (auto-detects supado.yaml) and environment credentials
//  2. Verifies external tools are installed (doctl, packer, terraform, git)
//  3. Prompts interactively for any missing settings or secrets
//  4. Runs the phase pipeline: clone, variable files, Spaces preflight,
//     packer build, terraform init and double apply, output retrieval
//  5. Prints the credentials report with the Studio URL
//
// Prerequisites are checked before the wizard so a missing tool fails
// fast instead of after minutes of interactive input.
func Up(ctx context.Context, configPath string, opts UpOptions) error {
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

	pctx, err := runProvisioning(ctx, cfg, provisioning.DefaultPhases(), opts)
	if err != nil {
		return err
	}

	return printReport(os.Stdout, cfg, pctx.State.Outputs, false)
}

// runProvisioning executes the given phases with either the TUI or
// plain console output, returning the pipeline context for its state.
func runProvisioning(ctx context.Context, cfg *config.Config, phases []provisioning.Phase, opts UpOptions) (*provisioning.Context, error) {
	if opts.Plain || opts.Verbose || !isTerminal() {
		pctx, err := buildPipelineContext(ctx, cfg, os.Stdout, os.Stderr, opts.SkipPreflight)
		if err != nil {
			return nil, err
		}
		if opts.Verbose {
			logger := funcr.New(func(prefix, args string) {
				log.Println(args)
			}, funcr.Options{})
			pctx.Observer = provisioning.NewLogrObserver(logger)
		}
		if err := runPipeline(pctx, phases); err != nil {
			return nil, err
		}
		return pctx, nil
	}

	var pctx *provisioning.Context
	err := runUpTUI(ctx, func(runCtx context.Context, send func(tea.Msg)) error {
		w := tui.NewLineWriter(send)
		defer w.Flush()

		inner, err := buildPipelineContext(runCtx, cfg, w, w, opts.SkipPreflight)
		if err != nil {
			return err
		}
		inner.Observer = tui.NewObserver(send)
		pctx = inner
		return runPipeline(inner, phases)
	}, cfg.Domain, cfg.Region)
	if err != nil {
		return nil, err
	}
	if pctx == nil {
		return nil, fmt.Errorf("provisioning did not start")
	}
	return pctx, nil
}

// buildPipelineContext wires the external tool drivers into a pipeline context.
func buildPipelineContext(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer, skipPreflight bool) (*provisioning.Context, error) {
	repoDir := cfg.RepoDirOrDefault()

	verifier, err := newSpacesVerifier(ctx, cfg.Region, cfg.SpacesAccessKey, cfg.SpacesSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create spaces client: %w", err)
	}

	pctx := provisioning.NewContext(
		ctx,
		cfg,
		newRepoCloner(repoDir, stdout, stderr),
		newImageBuilder(repoDir, stdout, stderr),
		newInfraRunner(repoDir, stdout, stderr),
		verifier,
	)
	pctx.SkipPreflight = skipPreflight
	return pctx, nil
}

// resolveConfig loads the configuration file, merges environment
// credentials and falls back to the wizard for anything still missing.
func resolveConfig(ctx context.Context, configPath string) (*config.Config, error) {
	cfg, path, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	cfg.ApplySecretsFromEnv()

	if cfg.HasAllSecrets() && cfg.Domain != "" {
		return cfg, nil
	}

	if !isTerminal() {
		return nil, fmt.Errorf("missing credentials and no terminal to prompt on; set %s, %s, %s and %s or run 'supado init'",
			config.EnvDOToken, config.EnvSpacesAccessKey, config.EnvSpacesSecretKey, config.EnvSendGridKey)
	}

	result, err := runWizard(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	merged := wizard.BuildConfig(result)
	merged.RepoDir = cfg.RepoDir

	// Persist the non-secret answers so the next run skips the questions.
	if path == "" {
		path = config.DefaultConfigFile
	}
	if err := saveConfigFile(merged, path); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return merged, nil
}

// loadConfig loads the deployment configuration. If configPath is
// empty it looks for supado.yaml in the current directory; a missing
// default file is not an error, the wizard fills the gap.
func loadConfig(configPath string) (*config.Config, string, error) {
	if configPath == "" {
		path, found := findConfigFile()
		if !found {
			return config.Default(), "", nil
		}
		configPath = path
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	log.Printf("Using config: %s", configPath)
	return cfg, configPath, nil
}

// checkPrerequisites verifies required client tools are available.
func checkPrerequisites() error {
	log.Println("Checking prerequisites...")
	results := checkDefaultPrereqs()

	for _, r := range results.Results {
		if r.Found {
			version := r.Version
			if version == "" {
				version = "unknown version"
			}
			log.Printf("  Found %s (%s)", r.Tool.Name, version)
		}
	}

	if err := results.Error(); err != nil {
		return fmt.Errorf("prerequisites check failed: %w", err)
	}

	return nil
}
