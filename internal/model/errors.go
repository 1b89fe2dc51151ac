package model

import "fmt"

// ExitCode defines the process exit codes used by the CLI. Scripts
// and CI systems can branch on these instead of parsing stderr.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates the settings file could not be read
	// or parsed.
	ExitConfigError ExitCode = 2

	// ExitScaffoldError indicates project scaffolding failed, for
	// example because the target directory is not empty.
	ExitScaffoldError ExitCode = 3

	// ExitSyncError indicates the metadata sync engine failed on a
	// target file.
	ExitSyncError ExitCode = 4

	// ExitCleanError indicates the cleaner could not walk or remove a
	// path.
	ExitCleanError ExitCode = 5

	// ExitGitError indicates initializing the scaffolded repository
	// failed.
	ExitGitError ExitCode = 6
)

// CLIError is an error that carries an exit code. The CLI layer
// translates domain errors into process exit codes through it.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface, including the underlying error
// when present.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is / errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
