// Package terraform drives the terraform CLI for infrastructure
// provisioning and output retrieval.
package terraform

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// PlanDir is the terraform plan directory inside the deployment
// repository.
const PlanDir = "terraform"

// CLI invokes the terraform binary against the plan directory of a
// cloned deployment repository. Calls block until the underlying
// command exits; no timeout is imposed here.
type CLI struct {
	// Bin is the terraform binary name or path. Defaults to "terraform".
	Bin string

	// RepoDir is the root of the cloned deployment repository.
	RepoDir string

	// Stdout and Stderr receive the tool output. Defaults to the
	// process streams when nil.
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a terraform CLI rooted at the given repository directory.
func New(repoDir string) *CLI {
	return &CLI{Bin: "terraform", RepoDir: repoDir}
}

// Init initializes providers and backend (terraform init).
func (c *CLI) Init(ctx context.Context) error {
	return c.run(ctx, nil, "init")
}

// Apply provisions the infrastructure without a confirmation prompt
// (terraform apply -auto-approve).
func (c *CLI) Apply(ctx context.Context) error {
	return c.run(ctx, nil, "apply", "-auto-approve")
}

// Output retrieves a single raw output value from the state
// (terraform output -raw <name>).
func (c *CLI) Output(ctx context.Context, name string) (string, error) {
	var buf bytes.Buffer
	if err := c.run(ctx, &buf, "output", "-raw", name); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// run executes terraform with the given arguments. When capture is
// non-nil, stdout goes there instead of the configured writer.
func (c *CLI) run(ctx context.Context, capture io.Writer, args ...string) error {
	bin := c.Bin
	if bin == "" {
		bin = "terraform"
	}

	// #nosec G204 - args are fixed subcommands and output names, not user input
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = filepath.Join(c.RepoDir, PlanDir)
	if capture != nil {
		cmd.Stdout = capture
	} else {
		cmd.Stdout = c.stdout()
	}
	cmd.Stderr = c.stderr()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("terraform %s failed: %w", args[0], err)
	}
	return nil
}

func (c *CLI) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

func (c *CLI) stderr() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return os.Stderr
}
