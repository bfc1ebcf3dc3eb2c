package spaces

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/smithy-go"
)

func TestEndpoint(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{"ams3", "https://ams3.digitaloceanspaces.com"},
		{"fra1", "https://fra1.digitaloceanspaces.com"},
		{"nyc3", "https://nyc3.digitaloceanspaces.com"},
	}

	for _, tt := range tests {
		if got := Endpoint(tt.region); got != tt.want {
			t.Errorf("Endpoint(%q) = %q, want %q", tt.region, got, tt.want)
		}
	}
}

func TestNewVerifier(t *testing.T) {
	v, err := NewVerifier(context.Background(), "ams3", "key", "secret")
	if err != nil {
		t.Fatalf("NewVerifier failed: %v", err)
	}
	if v.region != "ams3" {
		t.Errorf("region = %q, want %q", v.region, "ams3")
	}
}

// fakeAPIError implements smithy.APIError for code matching tests.
type fakeAPIError struct {
	code string
}

func (e *fakeAPIError) Error() string                 { return e.code }
func (e *fakeAPIError) ErrorCode() string             { return e.code }
func (e *fakeAPIError) ErrorMessage() string          { return e.code }
func (e *fakeAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func TestIsAccessDenied(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{&fakeAPIError{code: "AccessDenied"}, true},
		{&fakeAPIError{code: "InvalidAccessKeyId"}, true},
		{&fakeAPIError{code: "SignatureDoesNotMatch"}, true},
		{&fakeAPIError{code: "NoSuchBucket"}, false},
		{errors.New("plain error"), false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := isAccessDenied(tt.err); got != tt.want {
			t.Errorf("isAccessDenied(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
