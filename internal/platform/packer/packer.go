// Package packer drives the packer CLI for snapshot builds.
package packer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// TemplateDir is the packer template directory inside the deployment
// repository.
const TemplateDir = "packer"

// CLI invokes the packer binary against the template directory of a
// cloned deployment repository. Calls block until the underlying
// command exits; no timeout is imposed here.
type CLI struct {
	// Bin is the packer binary name or path. Defaults to "packer".
	Bin string

	// RepoDir is the root of the cloned deployment repository.
	RepoDir string

	// Stdout and Stderr receive the tool output. Defaults to the
	// process streams when nil.
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a packer CLI rooted at the given repository directory.
func New(repoDir string) *CLI {
	return &CLI{Bin: "packer", RepoDir: repoDir}
}

// Init downloads the plugins the template requires (packer init).
func (c *CLI) Init(ctx context.Context) error {
	return c.run(ctx, "init", ".")
}

// Build bakes the Supabase droplet snapshot (packer build).
func (c *CLI) Build(ctx context.Context) error {
	return c.run(ctx, "build", ".")
}

func (c *CLI) run(ctx context.Context, args ...string) error {
	bin := c.Bin
	if bin == "" {
		bin = "packer"
	}

	// #nosec G204 - args are fixed subcommands, not user input
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = filepath.Join(c.RepoDir, TemplateDir)
	cmd.Stdout = c.stdout()
	cmd.Stderr = c.stderr()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("packer %s failed: %w", args[0], err)
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
