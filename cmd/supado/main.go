// Package main is the entry point for the supado CLI.
//
// supado is a command-line tool for provisioning a self-hosted
// Supabase stack on DigitalOcean. It drives doctl, packer and
// terraform through the supabase-on-do deployment repository: it
// builds a droplet snapshot, applies the infrastructure plan twice
// and reports the generated credentials.
//
// Commands: init, up, doctor, image, apply, secrets.
//
// For detailed usage information, run:
//
//	supado --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/supado/cmd/supado/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
