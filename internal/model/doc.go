// Package model defines the types shared across the tyranno CLI: the
// per-invocation run context and the error type that carries process
// exit codes.
//
// A Context is built fresh for each command from the working
// directory, the --dry-run flag, the loaded settings, and the logger
// handle resolved from -v/-q. Nothing in it is mutated after
// construction.
package model
