package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/supado/cmd/supado/handlers"
)

// Doctor returns the command for diagnosing the local environment.
//
// This command checks the external tools supado drives (doctl, packer,
// terraform, git), the credential environment variables and the
// configuration file, and reports what is missing.
//
// Optional flags:
//
//	--json: Output in JSON format
func Doctor() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the local environment",
		Long: `Diagnose the local environment for a supado run.

Checks performed:
  - External tools on PATH (doctl, packer, terraform, git)
  - Credential environment variables
  - Configuration file presence

Examples:
  # Diagnose environment
  supado doctor

  # Get status in JSON format
  supado doctor --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
