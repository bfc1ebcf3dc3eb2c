package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/supado/cmd/supado/handlers"
)

// Up returns the command for provisioning the full Supabase stack.
//
// This command runs the complete flow: prerequisite checks, credential
// collection, repository clone, variable file rendering, packer image
// build, the terraform double apply and the final credentials report.
//
// Optional flags:
//
//	--config, -c: Path to deployment configuration YAML file (default: auto-detect supado.yaml)
//	--plain: Disable the TUI and stream tool output directly
//	--skip-preflight: Skip the Spaces credential check
//	--verbose: Structured event logging instead of console messages
//
// Environment variables:
//
//	DIGITALOCEAN_TOKEN, SPACES_ACCESS_KEY_ID, SPACES_SECRET_ACCESS_KEY,
//	SENDGRID_API_KEY: credentials (prompted for when unset)
func Up() *cobra.Command {
	var (
		configPath    string
		plain         bool
		skipPreflight bool
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Provision the full Supabase stack",
		Long: `Provision a self-hosted Supabase stack on DigitalOcean.

This command clones the supabase-on-do deployment repository, builds a
droplet snapshot with packer and applies the terraform plan twice (the
second pass converges resources that depend on the first). When it
finishes it prints the generated credentials and the Studio URL.

If no config file is specified, it looks for supado.yaml in the current
directory. Use 'supado init' to create one. Missing credentials are
prompted for interactively.

Examples:
  # Provision using supado.yaml in current directory
  supado up

  # Provision using a specific config file
  supado up -c production.yaml

  # Re-run after a failure; completed work is reused
  supado up`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Up(cmd.Context(), configPath, handlers.UpOptions{
				Plain:         plain,
				SkipPreflight: skipPreflight,
				Verbose:       verbose,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: supado.yaml)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable the TUI and stream tool output directly")
	cmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "Skip the Spaces credential check")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Structured event logging")

	return cmd
}
