// Package logging implements the severity scale and log sink for the
// tyranno CLI.
//
// The scale has seven steps, ordered from most to least chatty:
//
//	TRACE, DEBUG, INFO, SUCCESS, WARNING, ERROR, FATAL
//
// The threshold for an invocation is resolved from the repeatable
// --verbose and --quiet flags: starting from SUCCESS (index 3), each
// -v moves one step toward TRACE and each -q one step toward FATAL,
// clamped at the ends of the scale.
//
// A Logger is an explicit handle constructed at the start of each
// command invocation and carried in the run context. Constructing a
// new handle is the sink-replacement operation: exactly one handle is
// reachable at a time, and the previous one is simply dropped. There
// is no package-level logger and no ambient global state.
package logging
