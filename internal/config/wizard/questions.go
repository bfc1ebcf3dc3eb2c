package wizard

import (
	"context"
	"regexp"

	"github.com/charmbracelet/huh"

	"github.com/imamik/supado/internal/config"
)

// sshUserRegex validates a POSIX-ish username: lowercase, starts with a letter.
var sshUserRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,31}$`)

// runCredentialsGroup prompts for the secret-bearing fields. Every
// input here uses password echo mode so secrets never appear on the
// terminal. Fields that already carry a value (environment or earlier
// answers) are skipped.
func runCredentialsGroup(ctx context.Context, result *Result) error {
	var fields []huh.Field

	if result.DOToken == "" {
		fields = append(fields, huh.NewInput().
			Title("DigitalOcean API Token").
			Description("Personal access token with write scope (cloud.digitalocean.com/account/api)").
			EchoMode(huh.EchoModePassword).
			Value(&result.DOToken).
			Validate(validateDOToken))
	}
	if result.SpacesAccessKey == "" {
		fields = append(fields, huh.NewInput().
			Title("Spaces Access Key").
			Description("Spaces key pair is used for storage and the terraform state bucket").
			EchoMode(huh.EchoModePassword).
			Value(&result.SpacesAccessKey).
			Validate(validateSpacesKey))
	}
	if result.SpacesSecretKey == "" {
		fields = append(fields, huh.NewInput().
			Title("Spaces Secret Key").
			EchoMode(huh.EchoModePassword).
			Value(&result.SpacesSecretKey).
			Validate(validateSpacesSecret))
	}
	if result.SendGridToken == "" {
		fields = append(fields, huh.NewInput().
			Title("SendGrid API Token").
			Description("Used for auth emails (invites, magic links, password resets)").
			EchoMode(huh.EchoModePassword).
			Value(&result.SendGridToken).
			Validate(validateSendGridToken))
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(fields...).Title("Credentials"),
	).RunWithContext(ctx)
}

// runDeploymentGroup prompts for domain, region, image, size and SSH user.
func runDeploymentGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Domain").
				Description("Supabase will be served on supabase.<domain>; DNS must be managed by DigitalOcean").
				Placeholder("example.com").
				Value(&result.Domain).
				Validate(config.ValidateDomain),
			huh.NewSelect[string]().
				Title("Region").
				Description("DigitalOcean datacenter (must offer Spaces)").
				Options(RegionsToOptions()...).
				Value(&result.Region),
			huh.NewSelect[string]().
				Title("Droplet Image").
				Description("Base image for the packer-built snapshot").
				Options(ImagesToOptions()...).
				Value(&result.DropletImage),
			huh.NewSelect[string]().
				Title("Droplet Size").
				Description("Size of the droplet running the stack").
				Options(SizesToOptions()...).
				Value(&result.DropletSize),
			huh.NewInput().
				Title("SSH Username").
				Description("Non-root user created on the droplet").
				Placeholder("supabase").
				Value(&result.SSHUser).
				Validate(validateSSHUser),
		).Title("Deployment"),
	).RunWithContext(ctx)
}

// runTerraformCloudGroup asks about Terraform Cloud usage and, on an
// affirmative answer, prompts for the token (masked).
func runTerraformCloudGroup(ctx context.Context, result *Result) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use Terraform Cloud?").
				Description("Store terraform state in a Terraform Cloud workspace instead of locally").
				Value(&result.UseTerraformCloud),
		).Title("State Backend"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	if !result.UseTerraformCloud {
		result.TFCToken = ""
		return nil
	}

	if result.TFCToken != "" {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Terraform Cloud Token").
				Description("User API token (app.terraform.io/app/settings/tokens)").
				EchoMode(huh.EchoModePassword).
				Value(&result.TFCToken).
				Validate(validateTFCToken),
		).Title("Terraform Cloud"),
	).RunWithContext(ctx)
}

func validateDOToken(s string) error {
	if s == "" {
		return errDOTokenRequired
	}
	return nil
}

func validateSpacesKey(s string) error {
	if s == "" {
		return errSpacesKeyRequired
	}
	return nil
}

func validateSpacesSecret(s string) error {
	if s == "" {
		return errSpacesSecretRequired
	}
	return nil
}

func validateSendGridToken(s string) error {
	if s == "" {
		return errSendGridRequired
	}
	return nil
}

func validateTFCToken(s string) error {
	if s == "" {
		return errTFCTokenRequired
	}
	return nil
}

func validateSSHUser(s string) error {
	if !sshUserRegex.MatchString(s) {
		return errSSHUserInvalid
	}
	return nil
}
