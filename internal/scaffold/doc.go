// Package scaffold creates new project skeletons.
//
// A scaffolded project gets a README.md (pre-seeded with a sync
// marker so `tyranno sync` manages its title line), a LICENSE for the
// chosen SPDX id, a .gitignore derived from the default trash
// patterns, a .tyranno.yaml settings file, and an initialized git
// repository with an initial commit (via go-git, no git binary
// required).
//
// Scaffolding refuses a target directory that already exists and is
// non-empty. Under --dry-run the planned file list is returned without
// touching the filesystem.
package scaffold
