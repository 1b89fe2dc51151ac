package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

// wait runs f behind a spinner with a tick/cross final state. When
// enabled is false (dry-run, or stdout is not a terminal) it just
// runs f.
func wait(message string, enabled bool, f func() error) error {
	if !enabled {
		return f()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stdout
	s.Prefix = message + ": "
	s.Start()

	err := f()
	if err == nil {
		s.FinalMSG = fmt.Sprintf("%s: %s\n", message, green("✓"))
	} else {
		s.FinalMSG = fmt.Sprintf("%s: %s\n", message, red("✗"))
	}
	s.Stop()
	return err
}

// stdoutIsTerminal reports whether stdout is an interactive terminal.
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
