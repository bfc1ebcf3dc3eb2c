package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/supado/cmd/supado/handlers"
)

// Image returns the command for building only the droplet snapshot.
//
// This command runs the packer part of the flow: clone the deployment
// repository if needed, render the variable files and run packer init
// and build. Useful for rebuilding the snapshot without touching the
// terraform-managed infrastructure.
//
// Optional flags:
//
//	--config, -c: Path to deployment configuration YAML file (default: auto-detect supado.yaml)
func Image() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Build the droplet snapshot with packer",
		Long: `Build the Supabase droplet snapshot with packer.

This runs only the image part of the provisioning flow. The resulting
snapshot is picked up by 'supado apply' or 'supado up'.

Examples:
  # Rebuild the snapshot
  supado image`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Image(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: supado.yaml)")

	return cmd
}
