package varfiles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/imamik/supado/internal/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.DOToken = "dop_v1_token"
	cfg.SpacesAccessKey = "ACCESSKEY"
	cfg.SpacesSecretKey = "secret/key+value"
	cfg.SendGridToken = "SG.sendgrid"
	cfg.Domain = "example.com"
	cfg.Region = "fra1"
	cfg.DropletImage = "ubuntu-22-04-x64"
	cfg.DropletSize = "s-4vcpu-8gb"
	cfg.SSHUser = "deploy"
	return cfg
}

func TestPackerVarsFieldOrder(t *testing.T) {
	got := PackerVars(testConfig())

	want := `do_token = "dop_v1_token"
droplet_image = "ubuntu-22-04-x64"
region = "fra1"
`
	if got != want {
		t.Errorf("PackerVars() =\n%s\nwant:\n%s", got, want)
	}
}

func TestTerraformVarsFieldOrder(t *testing.T) {
	got := TerraformVars(testConfig())

	want := `do_token = "dop_v1_token"
spaces_access_key_id = "ACCESSKEY"
spaces_secret_access_key = "secret/key+value"
sendgrid_api = "SG.sendgrid"
domain = "example.com"
region = "fra1"
droplet_size = "s-4vcpu-8gb"
ssh_user = "deploy"
`
	if got != want {
		t.Errorf("TerraformVars() =\n%s\nwant:\n%s", got, want)
	}
}

func TestTerraformVarsWithTFCToken(t *testing.T) {
	cfg := testConfig()
	cfg.TerraformCloud = true
	cfg.TFCToken = "tfc-token-value"

	got := TerraformVars(cfg)

	if !strings.HasSuffix(got, "tfc_token = \"tfc-token-value\"\n") {
		t.Errorf("tfc_token should be the last line, got:\n%s", got)
	}
}

func TestTerraformVarsOmitsEmptyTFCToken(t *testing.T) {
	got := TerraformVars(testConfig())

	if strings.Contains(got, "tfc_token") {
		t.Errorf("tfc_token line present without a token:\n%s", got)
	}
}

func TestValuesAreVerbatim(t *testing.T) {
	cfg := testConfig()
	cfg.DOToken = `token"with"quotes`

	got := PackerVars(cfg)

	// No escaping takes place; the value appears exactly as entered.
	if !strings.Contains(got, `do_token = "token"with"quotes"`) {
		t.Errorf("expected verbatim interpolation, got:\n%s", got)
	}
}

func TestWrite(t *testing.T) {
	repoDir := t.TempDir()

	if err := Write(repoDir, testConfig()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	packerPath := filepath.Join(repoDir, "packer", "supabase.auto.pkrvars.hcl")
	tfPath := filepath.Join(repoDir, "terraform", "terraform.tfvars")

	packerData, err := os.ReadFile(packerPath)
	if err != nil {
		t.Fatalf("packer vars not written: %v", err)
	}
	if string(packerData) != PackerVars(testConfig()) {
		t.Error("packer vars file content mismatch")
	}

	tfData, err := os.ReadFile(tfPath)
	if err != nil {
		t.Fatalf("terraform vars not written: %v", err)
	}
	if string(tfData) != TerraformVars(testConfig()) {
		t.Error("terraform vars file content mismatch")
	}
}

func TestWriteOverwritesExisting(t *testing.T) {
	repoDir := t.TempDir()

	if err := os.MkdirAll(filepath.Join(repoDir, "packer"), 0750); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(repoDir, "packer", "supabase.auto.pkrvars.hcl")
	if err := os.WriteFile(stale, []byte("stale content"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := Write(repoDir, testConfig()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("existing variable file was not overwritten")
	}
}
