// Package sync implements the metadata synchronization engine.
//
// Files listed in the settings (sync.targets) are scanned for marker
// comments of the form
//
//	# :tyranno: version = "${project.version}"
//
// Any comment style works (#, //, ;, --, <!-- -->); the marker is the
// ":tyranno:" token. The line immediately below a marker is rewritten
// as the marker's template, rendered with ${dotted.path} substitutions
// from the settings (project.* identity fields and user data.*
// variables), keeping that line's indentation. The marker line itself
// is never modified, so a sync is idempotent.
//
// Files are written back only when their content changed and the run
// is not a dry run.
package sync
