// Package prerequisites provides utilities for checking required client tools.
package prerequisites

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Tool represents a client tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string

	// InstallHints maps a GOOS value to a one-line install command.
	InstallHints map[string]string
}

// InstallHint returns the install command for the current host OS,
// falling back to the install URL when no hint matches.
func (t Tool) InstallHint() string {
	if hint, ok := t.InstallHints[runtime.GOOS]; ok {
		return hint
	}
	return "see " + t.InstallURL
}

// DefaultTools returns the tools every supado run depends on.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:        "doctl",
			Required:    true,
			Description: "DigitalOcean CLI, used by packer and for account authentication",
			InstallURL:  "https://docs.digitalocean.com/reference/doctl/how-to/install/",
			InstallHints: map[string]string{
				"darwin":  "brew install doctl",
				"linux":   "snap install doctl",
				"windows": "choco install doctl",
			},
		},
		{
			Name:        "packer",
			Required:    true,
			Description: "Builds the Supabase droplet snapshot",
			InstallURL:  "https://developer.hashicorp.com/packer/install",
			InstallHints: map[string]string{
				"darwin":  "brew tap hashicorp/tap && brew install hashicorp/tap/packer",
				"linux":   "apt-get install packer (hashicorp apt repository)",
				"windows": "choco install packer",
			},
		},
		{
			Name:        "terraform",
			Required:    true,
			Description: "Provisions the droplet, DNS, Spaces bucket and generated secrets",
			InstallURL:  "https://developer.hashicorp.com/terraform/install",
			InstallHints: map[string]string{
				"darwin":  "brew tap hashicorp/tap && brew install hashicorp/tap/terraform",
				"linux":   "apt-get install terraform (hashicorp apt repository)",
				"windows": "choco install terraform",
			},
		},
		{
			Name:        "git",
			Required:    true,
			Description: "Clones the supabase-on-do deployment repository",
			InstallURL:  "https://git-scm.com/downloads",
			InstallHints: map[string]string{
				"darwin":  "brew install git",
				"linux":   "apt-get install git",
				"windows": "choco install git",
			},
		},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing. The
// message carries the per-OS install hint for each missing tool.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (install: %s)", tool.Name, tool.InstallHint()))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the specified tools are available.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := exec.LookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
			// Try to get version (best effort)
			result.Version = getToolVersion(tool.Name)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// CheckDefault checks the default required tools.
func CheckDefault() *CheckResults {
	return Check(DefaultTools())
}

// getToolVersion attempts to get the version of a tool.
// Returns empty string if version cannot be determined.
func getToolVersion(name string) string {
	// Common version flags to try
	versionFlags := []string{"--version", "version", "-v"}

	for _, flag := range versionFlags {
		// #nosec G204 - name comes from trusted Tool definitions, not user input
		cmd := exec.Command(name, flag)
		output, err := cmd.Output()
		if err == nil {
			// Return first line of output, trimmed
			lines := strings.Split(string(output), "\n")
			if len(lines) > 0 {
				return strings.TrimSpace(lines[0])
			}
		}
	}

	return ""
}
