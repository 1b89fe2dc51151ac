// Package cli implements the cobra commands for tyranno.
//
// Each subcommand (new, sync, clean) lives in its own file and is
// registered on the root command by a constructor function. All three
// share the option bundle declared here as persistent flags: --dry-run
// plus the repeatable -v/--verbose and -q/--quiet counts that select
// the log threshold for the invocation.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmyersturnbull/tyranno/internal/config"
	"github.com/dmyersturnbull/tyranno/internal/logging"
	"github.com/dmyersturnbull/tyranno/internal/model"
)

// appName is the project identity shown in the banner and help text.
const appName = "tyranno"

// docsURL points users at the guide after scaffolding.
const docsURL = "https://dmyersturnbull.github.io/tyranno/guide.html"

// Version, Commit, and Date are injected from the main package, which
// receives them from ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// messenger is the shared console formatter. Tests swap it for one
// writing to a buffer.
var messenger = NewMessenger(os.Stdout)

// contextFactory builds the run context for a command. A package
// variable so tests can observe whether construction happens at all
// (the `new` early exit must never reach it).
var contextFactory model.ContextFactory = model.NewContext

// globalFlags is the option bundle shared by every subcommand.
type globalFlags struct {
	// dryRun reports intended changes without writing.
	dryRun bool

	// verbose and quiet are occurrence counts; each -v lowers the log
	// threshold one step, each -q raises it.
	verbose int
	quiet   int
}

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Project scaffolding and metadata maintenance",
		Long: `tyranno creates new project skeletons, keeps project metadata in sync
across configured files, and removes unwanted build artifacts.

Metadata lives in .tyranno.yaml (or .tyranno.json); lines tagged with a
:tyranno: marker comment are rewritten by "tyranno sync" from that single
source of truth.`,

		// Errors are formatted by Execute, not by cobra.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flags.dryRun, "dry-run", false, "Don't write; just output")
	pf.CountVarP(&flags.verbose, "verbose", "v", "Show INFO logging (repeat for DEBUG, then TRACE)")
	pf.CountVarP(&flags.quiet, "quiet", "q", "Hide SUCCESS logging (repeat for WARNING, then ERROR)")

	rootCmd.AddCommand(NewNewCommand(flags))
	rootCmd.AddCommand(NewSyncCommand(flags))
	rootCmd.AddCommand(NewCleanCommand(flags))

	return rootCmd
}

// Execute runs the root command and translates errors into process
// exit codes. CLIErrors carry their own code; anything else exits 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			os.Exit(int(cliErr.Code))
		}
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError writes a red "Error: ..." line to stderr.
func printError(err error) {
	prefix := color.New(color.FgRed, color.Bold).Sprint("Error:")
	fmt.Fprintf(os.Stderr, "%s %v\n", prefix, err)
}

// newRunContext performs the shared per-command protocol: resolve the
// log threshold from the flag counts, install the sink, load the
// settings, and build the run context from the working directory.
func newRunContext(flags *globalFlags) (*model.Context, error) {
	level := logging.Resolve(flags.verbose, flags.quiet)
	log := logging.New(level, os.Stderr)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "failed to get working directory", err)
	}

	settings, err := config.Load(cwd)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError, "failed to load settings", err)
	}
	if settings.Source != "" {
		log.Debug("loaded settings", "source", settings.Source)
	} else {
		log.Debug("no settings file found, using defaults")
	}

	return contextFactory(cwd, flags.dryRun, settings, log)
}
