package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/supado/cmd/supado/handlers"
)

// Apply returns the command for running only the terraform part of the flow.
//
// This command expects a droplet snapshot to exist already (built by
// 'supado image' or an earlier 'supado up'). It applies the terraform
// plan twice, retrieves the outputs and prints the credentials report.
//
// Optional flags:
//
//	--config, -c: Path to deployment configuration YAML file (default: auto-detect supado.yaml)
//	--skip-preflight: Skip the Spaces credential check
//	--json: Print the credentials report in JSON format
func Apply() *cobra.Command {
	var (
		configPath    string
		skipPreflight bool
		jsonOutput    bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the terraform plan and report credentials",
		Long: `Apply the terraform plan for an already-built snapshot.

The plan is applied twice: the first pass creates the droplet, DNS
records and Spaces bucket, the second converges resources that depend
on the first. Afterwards the generated credentials are printed.

Examples:
  # Apply infrastructure after 'supado image'
  supado apply

  # Re-apply after plan changes
  supado apply`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), configPath, skipPreflight, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: supado.yaml)")
	cmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "Skip the Spaces credential check")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output credentials in JSON format")

	return cmd
}
