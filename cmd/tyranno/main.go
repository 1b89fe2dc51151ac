// Package main is the entry point for the tyranno CLI.
//
// The binary scaffolds new project skeletons, synchronizes project
// metadata across configured files, and removes unwanted build
// artifacts. All functionality lives in the internal/cli package,
// which defines the cobra commands.
//
// Build-time variables (version, commit, date) are injected via
// ldflags during the release process and default to "dev", "none",
// and "unknown" in development builds.
package main

import (
	"github.com/dmyersturnbull/tyranno/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time identity into the CLI package, keeping the
	// build system decoupled from the command framework.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
