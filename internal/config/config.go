// Package config defines the supado configuration model.
//
// A Config carries everything the provisioning pipeline needs: the
// operator's cloud credentials (never persisted) and the deployment
// parameters that end up in the packer and terraform variable files.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// Environment variables consulted for secret-bearing fields. When set,
// the wizard skips the corresponding prompt.
const (
	EnvDOToken         = "DIGITALOCEAN_TOKEN"
	EnvSpacesAccessKey = "SPACES_ACCESS_KEY_ID"
	EnvSpacesSecretKey = "SPACES_SECRET_ACCESS_KEY"
	EnvSendGridKey     = "SENDGRID_API_KEY"
	EnvTFCToken        = "TFC_TOKEN"
)

// DefaultRepoDir is the directory the deployment repository is cloned into.
const DefaultRepoDir = "supabase-on-do"

// domainRegex validates a bare DNS domain such as "example.com".
var domainRegex = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`)

// Config holds all session parameters for one provisioning run.
//
// Secret fields carry `yaml:"-"` so that Save never writes them to
// disk; they live only in process memory and in the generated tool
// variable files.
type Config struct {
	// Credentials (memory only)
	DOToken         string `yaml:"-"`
	SpacesAccessKey string `yaml:"-"`
	SpacesSecretKey string `yaml:"-"`
	SendGridToken   string `yaml:"-"`
	TFCToken        string `yaml:"-"`

	// Deployment parameters
	Domain       string `yaml:"domain"`
	Region       string `yaml:"region"`
	DropletImage string `yaml:"droplet_image"`
	DropletSize  string `yaml:"droplet_size"`
	SSHUser      string `yaml:"ssh_user"`

	// TerraformCloud records whether the terraform state lives in
	// Terraform Cloud. The token itself is never persisted.
	TerraformCloud bool `yaml:"terraform_cloud,omitempty"`

	// RepoDir overrides the clone directory of the deployment repository.
	RepoDir string `yaml:"repo_dir,omitempty"`
}

// Default returns a Config with the recommended deployment defaults.
func Default() *Config {
	return &Config{
		Region:       "ams3",
		DropletImage: "ubuntu-22-04-x64",
		DropletSize:  "s-2vcpu-4gb",
		SSHUser:      "supabase",
		RepoDir:      DefaultRepoDir,
	}
}

// Validation errors.
var (
	ErrDOTokenRequired   = errors.New("DigitalOcean API token is required")
	ErrSpacesKeyRequired = errors.New("Spaces access key and secret key are required")
	ErrSendGridRequired  = errors.New("SendGrid API token is required")
	ErrTFCTokenRequired  = errors.New("Terraform Cloud token is required when terraform_cloud is enabled")
	ErrDomainInvalid     = errors.New("domain must be a bare DNS name such as example.com")
)

// Validate checks that every field the pipeline depends on is usable.
func (c *Config) Validate() error {
	if c.DOToken == "" {
		return ErrDOTokenRequired
	}
	if c.SpacesAccessKey == "" || c.SpacesSecretKey == "" {
		return ErrSpacesKeyRequired
	}
	if c.SendGridToken == "" {
		return ErrSendGridRequired
	}
	if c.TerraformCloud && c.TFCToken == "" {
		return ErrTFCTokenRequired
	}
	if !domainRegex.MatchString(c.Domain) {
		return fmt.Errorf("%w: %q", ErrDomainInvalid, c.Domain)
	}
	for _, f := range []struct{ name, value string }{
		{"region", c.Region},
		{"droplet_image", c.DropletImage},
		{"droplet_size", c.DropletSize},
		{"ssh_user", c.SSHUser},
	} {
		if f.value == "" {
			return fmt.Errorf("%s must not be empty", f.name)
		}
	}
	return nil
}

// ApplySecretsFromEnv fills empty secret fields from the environment.
// Explicitly collected values always win over environment values.
func (c *Config) ApplySecretsFromEnv() {
	if c.DOToken == "" {
		c.DOToken = os.Getenv(EnvDOToken)
	}
	if c.SpacesAccessKey == "" {
		c.SpacesAccessKey = os.Getenv(EnvSpacesAccessKey)
	}
	if c.SpacesSecretKey == "" {
		c.SpacesSecretKey = os.Getenv(EnvSpacesSecretKey)
	}
	if c.SendGridToken == "" {
		c.SendGridToken = os.Getenv(EnvSendGridKey)
	}
	if c.TFCToken == "" {
		c.TFCToken = os.Getenv(EnvTFCToken)
	}
}

// HasAllSecrets reports whether every required secret is present.
func (c *Config) HasAllSecrets() bool {
	if c.DOToken == "" || c.SpacesAccessKey == "" || c.SpacesSecretKey == "" || c.SendGridToken == "" {
		return false
	}
	if c.TerraformCloud && c.TFCToken == "" {
		return false
	}
	return true
}

// RepoDirOrDefault returns the configured clone directory, falling back
// to DefaultRepoDir.
func (c *Config) RepoDirOrDefault() string {
	if c.RepoDir != "" {
		return c.RepoDir
	}
	return DefaultRepoDir
}

// StudioHost returns the hostname the Supabase studio is served on.
func (c *Config) StudioHost() string {
	return "supabase." + c.Domain
}

// StudioURL returns the full studio URL for the configured domain.
func (c *Config) StudioURL() string {
	return "https://" + c.StudioHost()
}

// ValidateDomain checks a single domain value. Exposed for the wizard.
func ValidateDomain(s string) error {
	if s == "" {
		return errors.New("domain is required")
	}
	if !domainRegex.MatchString(s) {
		return ErrDomainInvalid
	}
	return nil
}
