package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/supado/internal/config"
	"github.com/imamik/supado/internal/provisioning"
)

// dropletUser is the account created on the droplet by the snapshot.
const dropletUser = "supabase"

// secretEntry represents a single secret for display.
type secretEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// report is the JSON shape of the credentials report.
type report struct {
	Domain    string        `json:"domain"`
	StudioURL string        `json:"studio_url"`
	User      string        `json:"user"`
	Secrets   []secretEntry `json:"secrets"`
}

// reportEntries orders the terraform outputs for display.
func reportEntries(outputs map[string]string) []secretEntry {
	entries := make([]secretEntry, 0, len(provisioning.OutputNames))
	for _, name := range provisioning.OutputNames {
		entries = append(entries, secretEntry{Name: name, Value: outputs[name]})
	}
	return entries
}

// printReport writes the end-of-run credentials report. The htpasswd
// pair guards Studio behind basic auth; the JWT values are the service
// keys clients authenticate with.
func printReport(w io.Writer, cfg *config.Config, outputs map[string]string, jsonOutput bool) error {
	entries := reportEntries(outputs)

	if jsonOutput {
		b, err := json.MarshalIndent(report{
			Domain:    cfg.Domain,
			StudioURL: cfg.StudioURL(),
			User:      dropletUser,
			Secrets:   entries,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Fprintln(w, string(b))
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9fafb"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("  supado: %s", cfg.Domain)))
	fmt.Fprintln(w, dimStyle.Render("  "+strings.Repeat("=", 30)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("  Credentials"))
	fmt.Fprintln(w, dimStyle.Render("  "+strings.Repeat("-", 35)))
	for _, entry := range entries {
		fmt.Fprintf(w, "  %s  %s\n", nameStyle.Render(fmt.Sprintf("%-18s", entry.Name)), valueStyle.Render(entry.Value))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("  Access"))
	fmt.Fprintln(w, dimStyle.Render("  "+strings.Repeat("-", 35)))
	fmt.Fprintf(w, "  %s  %s\n", nameStyle.Render(fmt.Sprintf("%-18s", "studio")), valueStyle.Render(cfg.StudioURL()))
	fmt.Fprintf(w, "  %s  %s\n", nameStyle.Render(fmt.Sprintf("%-18s", "droplet user")), valueStyle.Render(dropletUser))
	fmt.Fprintln(w)

	fmt.Fprintln(w, dimStyle.Render("  The droplet needs a few minutes after first boot to pull and"))
	fmt.Fprintln(w, dimStyle.Render("  start all services. If Studio does not respond yet, wait and"))
	fmt.Fprintln(w, dimStyle.Render("  reload."))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", dimStyle.Render(fmt.Sprintf("  To tear everything down: cd %s/terraform && terraform destroy", cfg.RepoDirOrDefault())))
	fmt.Fprintln(w)

	return nil
}
