package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errDOTokenRequired      = errors.New("DigitalOcean API token is required")
	errSpacesKeyRequired    = errors.New("Spaces access key is required")
	errSpacesSecretRequired = errors.New("Spaces secret key is required")
	errSendGridRequired     = errors.New("SendGrid API token is required")
	errTFCTokenRequired     = errors.New("Terraform Cloud token is required")
	errSSHUserInvalid       = errors.New("SSH username must be lowercase alphanumeric, starting with a letter")
)
