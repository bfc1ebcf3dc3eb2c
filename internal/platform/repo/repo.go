// Package repo manages the local clone of the deployment repository.
package repo

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// DefaultURL is the upstream deployment repository.
const DefaultURL = "https://github.com/supabase-community/supabase-on-do.git"

// Cloner clones the deployment repository if it is not already present.
type Cloner struct {
	// URL is the git remote to clone from.
	URL string

	// Dir is the target directory, relative to the working directory.
	Dir string

	// Stdout and Stderr receive the git output. Defaults to the
	// process streams when nil.
	Stdout io.Writer
	Stderr io.Writer
}

// NewCloner creates a Cloner for the given target directory using the
// default upstream URL.
func NewCloner(dir string) *Cloner {
	return &Cloner{URL: DefaultURL, Dir: dir}
}

// Ensure clones the repository unless the target directory already
// exists. It returns true when a fresh clone was performed. An existing
// directory is trusted as-is; no fetch or reset is attempted.
func (c *Cloner) Ensure(ctx context.Context) (bool, error) {
	if _, err := os.Stat(c.Dir); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to inspect %s: %w", c.Dir, err)
	}

	// #nosec G204 - URL and Dir come from configuration, not remote input
	cmd := exec.CommandContext(ctx, "git", "clone", c.URL, c.Dir)
	cmd.Stdout = c.stdout()
	cmd.Stderr = c.stderr()

	if err := cmd.Run(); err != nil {
		return false, fmt.Errorf("git clone %s failed: %w", c.URL, err)
	}
	return true, nil
}

func (c *Cloner) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

func (c *Cloner) stderr() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return os.Stderr
}
