package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/supado/cmd/supado/handlers"
)

// Secrets returns the command for re-printing the deployment credentials.
//
// The credentials live in terraform state inside the deployment
// repository; this command reads them back without touching any
// infrastructure.
//
// Optional flags:
//
//	--config, -c: Path to deployment configuration YAML file (default: auto-detect supado.yaml)
//	--json: Output in JSON format
func Secrets() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "secrets",
		Short: "Print the deployment credentials",
		Long: `Print the credentials generated during provisioning.

Reads the terraform outputs from the deployment repository and prints
the same report 'supado up' shows at the end of a run.

Examples:
  # Show credentials
  supado secrets

  # Credentials as JSON (for scripting)
  supado secrets --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Secrets(cmd.Context(), configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: supado.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
