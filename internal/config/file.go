package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file name supado looks for in the working directory.
const DefaultConfigFile = "supado.yaml"

// Load reads a configuration file. Secret fields are never stored in
// the file, so the caller must fill them from the wizard or environment
// afterwards.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the non-secret parameters to a YAML file with a
// descriptive header. Secrets are excluded by the struct tags.
func Save(cfg *Config, path string) error {
	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	out := fileHeader(path) + "\n" + string(yamlBytes)
	if err := os.WriteFile(path, []byte(out), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// FindConfigFile returns the default config file path if it exists.
func FindConfigFile() (string, bool) {
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile, true
	}
	return "", false
}

// fileHeader creates the YAML file header comment.
func fileHeader(path string) string {
	return fmt.Sprintf(`# supado deployment configuration
# Generated by: supado init
# Generated at: %s
#
# Secrets are never stored here. Provide them interactively or via:
#   %s, %s,
#   %s, %s
#
# Usage:
#   supado up -c %s
`, time.Now().Format(time.RFC3339), EnvDOToken, EnvSpacesAccessKey, EnvSpacesSecretKey, EnvSendGridKey, path)
}
