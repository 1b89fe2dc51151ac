package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmyersturnbull/tyranno/internal/config"
	"github.com/dmyersturnbull/tyranno/internal/logging"
	"github.com/dmyersturnbull/tyranno/internal/model"
)

// chdir changes into dir and restores the original working directory
// when the test ends, mirroring testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

// swapMessenger redirects the package messenger into a buffer for the
// duration of a test.
func swapMessenger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := messenger
	messenger = NewMessenger(&buf)
	t.Cleanup(func() { messenger = orig })
	return &buf
}

// swapContextFactory installs a counting wrapper around the context
// factory and returns a pointer to the call count.
func swapContextFactory(t *testing.T) *int {
	t.Helper()
	calls := 0
	orig := contextFactory
	contextFactory = func(cwd string, dryRun bool, settings *config.Settings, log *logging.Logger) (*model.Context, error) {
		calls++
		return model.NewContext(cwd, dryRun, settings, log)
	}
	t.Cleanup(func() { contextFactory = orig })
	return &calls
}

// TestResolveProject verifies the PATH/--name resolution rules.
func TestResolveProject(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		flagName string
		nameSet  bool
		wantRoot string
		wantName string
	}{
		{
			name:     "name only",
			args:     nil,
			flagName: "widget",
			nameSet:  true,
			wantRoot: filepath.Join("/work", "widget"),
			wantName: "widget",
		},
		{
			name:     "relative path names the project",
			args:     []string{"tools/widget"},
			flagName: "my-project",
			nameSet:  false,
			wantRoot: filepath.Join("/work", "tools", "widget"),
			wantName: "widget",
		},
		{
			name:     "absolute path kept as root",
			args:     []string{"/elsewhere/widget"},
			flagName: "my-project",
			nameSet:  false,
			wantRoot: "/elsewhere/widget",
			wantName: "widget",
		},
		{
			name:     "explicit name wins over path basename",
			args:     []string{"checkout"},
			flagName: "genomics-pipeline",
			nameSet:  true,
			wantRoot: filepath.Join("/work", "checkout"),
			wantName: "genomics-pipeline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, name := resolveProject("/work", tt.args, tt.flagName, tt.nameSet)
			assert.Equal(t, tt.wantRoot, root)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

// TestNewEarlyExit verifies that `tyranno new` with no PATH and no
// explicit --name exits successfully without building a run context
// or emitting any message.
func TestNewEarlyExit(t *testing.T) {
	buf := swapMessenger(t)
	calls := swapContextFactory(t)

	root := NewRootCommand()
	root.SetArgs([]string{"new"})
	require.NoError(t, root.Execute())

	assert.Zero(t, *calls, "context factory must not run on the early-exit path")
	assert.Zero(t, buf.Len(), "no messages on the early-exit path")
}

// TestNewScaffoldsProject runs the full command in a temp working
// directory and checks the factory call, the created skeleton, and
// the reported messages.
func TestNewScaffoldsProject(t *testing.T) {
	buf := swapMessenger(t)
	calls := swapContextFactory(t)
	chdir(t, t.TempDir())

	root := NewRootCommand()
	root.SetArgs([]string{"new", "widget", "--license", "MIT", "-q", "-q", "-q"})
	require.NoError(t, root.Execute())

	assert.Equal(t, 1, *calls)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(cwd, "widget", "README.md"))
	assert.FileExists(t, filepath.Join(cwd, "widget", "LICENSE"))
	assert.DirExists(t, filepath.Join(cwd, "widget", ".git"))

	out := buf.String()
	assert.Contains(t, out, "Done! Created a new repository under widget")
	assert.Contains(t, out, docsURL)
}

// TestNewDryRun verifies that --dry-run reports success without
// creating anything.
func TestNewDryRun(t *testing.T) {
	buf := swapMessenger(t)
	chdir(t, t.TempDir())

	root := NewRootCommand()
	root.SetArgs([]string{"new", "--name", "widget", "--dry-run", "-q", "-q", "-q"})
	require.NoError(t, root.Execute())

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(cwd, "widget"))
	assert.Contains(t, buf.String(), "Done! Created a new repository under widget")
}
