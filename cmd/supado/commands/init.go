package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/supado/cmd/supado/handlers"
)

// Init returns the command for interactively creating a deployment configuration.
//
// This command guides users through the deployment settings with an
// interactive wizard. Secrets are collected but never written to disk;
// only non-sensitive settings land in the output file.
//
// Flags:
//
//	--output, -o: Path to output file (default "supado.yaml")
//	--force, -f: Overwrite an existing file without asking
func Init() *cobra.Command {
	var (
		outputPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a deployment configuration",
		Long: `Interactively create a deployment configuration file.

This command guides you through configuring your Supabase deployment
step by step. It will ask about:

  - DigitalOcean API token and Spaces key pair
  - SendGrid API key (for auth emails)
  - Domain the stack will be served under
  - Region, base image and droplet size
  - SSH user for the droplet
  - Terraform Cloud (optional, for remote state)

Secrets are kept in memory for the current run only. Export them as
environment variables (DIGITALOCEAN_TOKEN, SPACES_ACCESS_KEY_ID,
SPACES_SECRET_ACCESS_KEY, SENDGRID_API_KEY) to skip the prompts on
later runs.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, force)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "supado.yaml", "Output file path")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file without asking")

	return cmd
}
