package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Messenger formats user-facing result lines. It is pure
// presentation: every method writes exactly one line to its writer
// and nothing anywhere else. Log records go through the run context's
// logger instead.
type Messenger struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
}

// NewMessenger builds a Messenger writing to out. The CLI uses
// stdout; tests pass a buffer.
func NewMessenger(out io.Writer) *Messenger {
	return &Messenger{
		out:     out,
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
	}
}

// Success writes msg in bold green.
func (m *Messenger) Success(msg string) {
	m.success.Fprintln(m.out, msg)
}

// Info writes msg unstyled.
func (m *Messenger) Info(msg string) {
	fmt.Fprintln(m.out, msg)
}

// Failure writes msg in bold red.
func (m *Messenger) Failure(msg string) {
	m.failure.Fprintln(m.out, msg)
}

// ShowProjectInfo writes the identity banner, "tyranno v<version>".
func (m *Messenger) ShowProjectInfo() {
	m.Info(fmt.Sprintf("%s v%s", appName, Version))
}
