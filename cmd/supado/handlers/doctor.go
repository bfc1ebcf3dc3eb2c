package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/supado/internal/config"
)

// lookupEnv reads an environment variable - replaceable in tests.
var lookupEnv = os.LookupEnv

// doctorReport is the JSON shape of the doctor output.
type doctorReport struct {
	Tools      []doctorTool  `json:"tools"`
	Env        []doctorEnv   `json:"env"`
	ConfigFile *doctorConfig `json:"config_file"`
	Healthy    bool          `json:"healthy"`
}

type doctorTool struct {
	Name        string `json:"name"`
	Found       bool   `json:"found"`
	Version     string `json:"version,omitempty"`
	InstallHint string `json:"install_hint,omitempty"`
}

type doctorEnv struct {
	Name string `json:"name"`
	Set  bool   `json:"set"`
}

type doctorConfig struct {
	Path  string `json:"path,omitempty"`
	Found bool   `json:"found"`
}

// Doctor checks the local environment: external tools, credential
// environment variables and the configuration file.
func Doctor(_ context.Context, jsonOutput bool) error {
	rep := collectDoctorReport()

	if jsonOutput {
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(b))
	} else {
		printDoctorStyled(rep)
	}

	if !rep.Healthy {
		return fmt.Errorf("environment is not ready, see report above")
	}
	return nil
}

func collectDoctorReport() doctorReport {
	rep := doctorReport{Healthy: true}

	results := checkDefaultPrereqs()
	for _, r := range results.Results {
		tool := doctorTool{
			Name:    r.Tool.Name,
			Found:   r.Found,
			Version: r.Version,
		}
		if !r.Found {
			tool.InstallHint = r.Tool.InstallHint()
			if r.Tool.Required {
				rep.Healthy = false
			}
		}
		rep.Tools = append(rep.Tools, tool)
	}

	// Env vars are informational: missing ones fall back to the wizard.
	for _, name := range []string{
		config.EnvDOToken,
		config.EnvSpacesAccessKey,
		config.EnvSpacesSecretKey,
		config.EnvSendGridKey,
		config.EnvTFCToken,
	} {
		_, set := lookupEnv(name)
		rep.Env = append(rep.Env, doctorEnv{Name: name, Set: set})
	}

	path, found := findConfigFile()
	rep.ConfigFile = &doctorConfig{Path: path, Found: found}

	return rep
}

func printDoctorStyled(rep doctorReport) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9fafb"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	badStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))

	fmt.Println()
	fmt.Println(titleStyle.Render("  supado doctor"))
	fmt.Println(dimStyle.Render("  " + strings.Repeat("=", 30)))

	fmt.Println()
	fmt.Println(sectionStyle.Render("  Tools"))
	for _, tool := range rep.Tools {
		if tool.Found {
			version := tool.Version
			if version == "" {
				version = "unknown version"
			}
			fmt.Printf("    %s %-12s %s\n", okStyle.Render("[OK]"), tool.Name, dimStyle.Render(version))
		} else {
			fmt.Printf("    %s %-12s %s\n", badStyle.Render("[!!]"), tool.Name, dimStyle.Render("install: "+tool.InstallHint))
		}
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("  Environment"))
	for _, env := range rep.Env {
		if env.Set {
			fmt.Printf("    %s %s\n", okStyle.Render("[OK]"), env.Name)
		} else {
			fmt.Printf("    %s %-26s %s\n", warnStyle.Render("[??]"), env.Name, dimStyle.Render("unset, wizard will prompt"))
		}
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("  Configuration"))
	if rep.ConfigFile.Found {
		fmt.Printf("    %s %s\n", okStyle.Render("[OK]"), rep.ConfigFile.Path)
	} else {
		fmt.Printf("    %s %s\n", warnStyle.Render("[??]"), dimStyle.Render("no supado.yaml, run 'supado init'"))
	}
	fmt.Println()
}
