// Package clean removes unwanted files and directories from a project
// tree.
//
// What counts as trash is declared in the settings (clean.trash) as
// gitignore-syntax patterns, matched with go-git's gitignore matcher.
// Matching directories are removed whole without descending into them,
// and .git is never entered. Under --dry-run the cleaner reports the
// same paths it would otherwise remove, without touching the
// filesystem.
package clean
