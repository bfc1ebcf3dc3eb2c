// Package spaces provides a client for DigitalOcean Spaces (S3-compatible).
package spaces

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// Endpoint returns the Spaces endpoint for a DigitalOcean region.
func Endpoint(region string) string {
	return fmt.Sprintf("https://%s.digitaloceanspaces.com", region)
}

// Verifier checks that a Spaces key pair is valid before any paid
// resource is created. The stack stores database backups and the
// storage objects in Spaces; a bad key pair would otherwise only
// surface deep into terraform apply.
type Verifier struct {
	s3     *s3.Client
	region string
}

// NewVerifier creates a Spaces client for the given region and key pair.
func NewVerifier(ctx context.Context, region, accessKey, secretKey string) (*Verifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		// Spaces ignores the AWS region but the SDK requires one.
		awsconfig.WithRegion("us-east-1"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(Endpoint(region))
		o.UsePathStyle = false // Spaces uses virtual-hosted style
	})

	return &Verifier{s3: client, region: region}, nil
}

// Verify lists the account's buckets as a cheap credential check.
// An access-denied style error means the key pair is wrong.
func (v *Verifier) Verify(ctx context.Context) error {
	_, err := v.s3.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		if isAccessDenied(err) {
			return fmt.Errorf("spaces key pair rejected by %s: %w", Endpoint(v.region), err)
		}
		return fmt.Errorf("spaces preflight against %s failed: %w", Endpoint(v.region), err)
	}
	return nil
}

// isAccessDenied checks if the error indicates invalid credentials.
func isAccessDenied(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "AccessDenied" || code == "InvalidAccessKeyId" || code == "SignatureDoesNotMatch"
	}
	return false
}
