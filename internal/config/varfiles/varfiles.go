// Package varfiles renders the variable files consumed by packer and
// terraform inside the cloned deployment repository.
//
// Each file is a flat list of `key = "value"` lines in a fixed order.
// Values are interpolated verbatim; a secret containing a double quote
// produces a malformed file, matching the upstream shell installer.
package varfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/imamik/supado/internal/config"
)

// Paths of the generated files, relative to the repository directory.
const (
	PackerVarsRelPath    = "packer/supabase.auto.pkrvars.hcl"
	TerraformVarsRelPath = "terraform/terraform.tfvars"
)

// PackerVars renders the packer variable file content.
func PackerVars(cfg *config.Config) string {
	var b strings.Builder
	writeVar(&b, "do_token", cfg.DOToken)
	writeVar(&b, "droplet_image", cfg.DropletImage)
	writeVar(&b, "region", cfg.Region)
	return b.String()
}

// TerraformVars renders the terraform variable file content. The
// tfc_token line is appended only when a Terraform Cloud token was
// collected.
func TerraformVars(cfg *config.Config) string {
	var b strings.Builder
	writeVar(&b, "do_token", cfg.DOToken)
	writeVar(&b, "spaces_access_key_id", cfg.SpacesAccessKey)
	writeVar(&b, "spaces_secret_access_key", cfg.SpacesSecretKey)
	writeVar(&b, "sendgrid_api", cfg.SendGridToken)
	writeVar(&b, "domain", cfg.Domain)
	writeVar(&b, "region", cfg.Region)
	writeVar(&b, "droplet_size", cfg.DropletSize)
	writeVar(&b, "ssh_user", cfg.SSHUser)
	if cfg.TFCToken != "" {
		writeVar(&b, "tfc_token", cfg.TFCToken)
	}
	return b.String()
}

// Write renders both variable files and writes them under repoDir.
// Each file is rendered completely in memory and written in a single
// call, so a tool never observes a partially written file. Existing
// files are overwritten without confirmation.
func Write(repoDir string, cfg *config.Config) error {
	files := []struct {
		relPath string
		content string
	}{
		{PackerVarsRelPath, PackerVars(cfg)},
		{TerraformVarsRelPath, TerraformVars(cfg)},
	}

	for _, f := range files {
		path := filepath.Join(repoDir, filepath.FromSlash(f.relPath))
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", f.relPath, err)
		}
		if err := os.WriteFile(path, []byte(f.content), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.relPath, err)
		}
	}
	return nil
}

func writeVar(b *strings.Builder, key, value string) {
	// Verbatim interpolation: a quote inside the value breaks the file,
	// exactly like the shell installer this replaces.
	fmt.Fprintf(b, "%s = \"%s\"\n", key, value)
}
