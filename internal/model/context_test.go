package model

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmyersturnbull/tyranno/internal/config"
	"github.com/dmyersturnbull/tyranno/internal/logging"
)

// TestNewContext verifies normalization and validation of the working
// directory.
func TestNewContext(t *testing.T) {
	dir := t.TempDir()
	log := logging.New(logging.SuccessLevel, &bytes.Buffer{})

	ctx, err := NewContext(dir, true, config.Defaults(), log)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(ctx.Cwd))
	assert.True(t, ctx.DryRun)
	assert.Same(t, log, ctx.Log)
	assert.Equal(t, ctx.Cwd, ctx.Root(), "default settings resolve against cwd")
}

// TestNewContextMissingDir verifies the error path for a nonexistent
// working directory.
func TestNewContextMissingDir(t *testing.T) {
	log := logging.New(logging.SuccessLevel, &bytes.Buffer{})

	_, err := NewContext(filepath.Join(t.TempDir(), "nope"), false, config.Defaults(), log)
	require.Error(t, err)

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, ExitGeneralError, cliErr.Code)
}

// TestCLIError verifies message formatting and unwrapping.
func TestCLIError(t *testing.T) {
	underlying := errors.New("disk full")
	err := WrapCLIError(ExitCleanError, "failed to remove path", underlying)

	assert.Equal(t, "failed to remove path: disk full", err.Error())
	assert.Equal(t, underlying, errors.Unwrap(err))
	assert.Equal(t, ExitCleanError, err.Code)

	bare := NewCLIError(ExitConfigError, "settings file unreadable")
	assert.Equal(t, "settings file unreadable", bare.Error())
	assert.Nil(t, errors.Unwrap(bare))
}
