package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/imamik/supado/internal/config"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Credentials
	DOToken         string
	SpacesAccessKey string
	SpacesSecretKey string
	SendGridToken   string

	// Deployment
	Domain       string
	Region       string
	DropletImage string
	DropletSize  string
	SSHUser      string

	// Terraform Cloud (optional)
	UseTerraformCloud bool
	TFCToken          string
}

// Run executes the interactive wizard. Fields already present in
// prefill (from supado.yaml or the environment) are used as defaults;
// secrets with a prefilled value are not prompted again.
// The context is used for cancellation support (e.g. Ctrl+C).
func Run(ctx context.Context, prefill *config.Config) (*Result, error) {
	if prefill == nil {
		prefill = config.Default()
	}

	result := &Result{
		DOToken:           prefill.DOToken,
		SpacesAccessKey:   prefill.SpacesAccessKey,
		SpacesSecretKey:   prefill.SpacesSecretKey,
		SendGridToken:     prefill.SendGridToken,
		Domain:            prefill.Domain,
		Region:            prefill.Region,
		DropletImage:      prefill.DropletImage,
		DropletSize:       prefill.DropletSize,
		SSHUser:           prefill.SSHUser,
		UseTerraformCloud: prefill.TerraformCloud,
		TFCToken:          prefill.TFCToken,
	}

	if err := runCredentialsGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("credentials: %w", err)
	}

	if err := runDeploymentGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("deployment: %w", err)
	}

	if err := runTerraformCloudGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("terraform cloud: %w", err)
	}

	return result, nil
}

// BuildConfig converts wizard answers into a Config.
func BuildConfig(result *Result) *config.Config {
	cfg := config.Default()

	cfg.DOToken = result.DOToken
	cfg.SpacesAccessKey = result.SpacesAccessKey
	cfg.SpacesSecretKey = result.SpacesSecretKey
	cfg.SendGridToken = result.SendGridToken

	cfg.Domain = result.Domain
	cfg.Region = result.Region
	cfg.DropletImage = result.DropletImage
	cfg.DropletSize = result.DropletSize
	cfg.SSHUser = result.SSHUser

	cfg.TerraformCloud = result.UseTerraformCloud
	if result.UseTerraformCloud {
		cfg.TFCToken = result.TFCToken
	} else {
		// Negative or unmatched answer leaves the token empty.
		cfg.TFCToken = ""
	}

	return cfg
}

// affirmatives are the accepted spellings for a positive answer.
var affirmatives = []string{"y", "yes"}

// ParseAffirmative reports whether a free-text answer counts as "yes".
// Matching is case-insensitive; anything outside the accepted
// spellings is treated as "no".
func ParseAffirmative(answer string) bool {
	normalized := strings.ToLower(strings.TrimSpace(answer))
	for _, a := range affirmatives {
		if normalized == a {
			return true
		}
	}
	return false
}
