package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmyersturnbull/tyranno/internal/config"
	"github.com/dmyersturnbull/tyranno/internal/logging"
)

// Context bundles the per-invocation execution parameters. It is
// built once at the start of a command and passed to the domain
// operation; dry-run mode and the settings are fixed for its lifetime.
type Context struct {
	// Cwd is the absolute working directory the command operates on.
	Cwd string

	// DryRun reports intended changes without writing when true.
	DryRun bool

	// Settings is the read-only global variable set for this
	// invocation.
	Settings *config.Settings

	// Log is the sink handle resolved from the -v/-q counts.
	Log *logging.Logger
}

// ContextFactory builds a Context from raw invocation inputs. The CLI
// uses NewContext; tests substitute their own factory to observe
// whether construction happens at all.
type ContextFactory func(cwd string, dryRun bool, settings *config.Settings, log *logging.Logger) (*Context, error)

// NewContext is the default ContextFactory. It normalizes cwd to an
// absolute path and verifies it names a directory.
func NewContext(cwd string, dryRun bool, settings *config.Settings, log *logging.Logger) (*Context, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return nil, WrapCLIError(ExitGeneralError, "failed to resolve working directory", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, WrapCLIError(ExitGeneralError, fmt.Sprintf("working directory %s is not accessible", abs), err)
	}
	if !info.IsDir() {
		return nil, NewCLIError(ExitGeneralError, fmt.Sprintf("working directory %s is not a directory", abs))
	}

	return &Context{Cwd: abs, DryRun: dryRun, Settings: settings, Log: log}, nil
}

// Root returns the directory relative patterns resolve against: the
// settings file's directory when one was loaded, else the working
// directory.
func (c *Context) Root() string {
	return c.Settings.Root(c.Cwd)
}
