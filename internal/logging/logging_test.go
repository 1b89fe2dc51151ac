package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve verifies the severity index formula 3 + quiet - verbose
// and the clamp at both ends of the scale.
//
// The expression inherited from the previous implementation was
// max(6, min(0, idx)), which has the bounds inverted: for any idx
// outside [0, 0] it returns 6, so every invocation logged at FATAL and
// the -v/-q flags were no-ops. The cases below lock in the corrected
// behavior; the "legacy" column records what the inverted expression
// would have produced.
func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		verbose int
		quiet   int
		want    Level
		legacy  Level // what max(6, min(0, idx)) would have yielded
	}{
		{
			name:    "no flags rests at SUCCESS",
			verbose: 0,
			quiet:   0,
			want:    SuccessLevel,
			legacy:  FatalLevel,
		},
		{
			name:    "one -v lowers to INFO",
			verbose: 1,
			quiet:   0,
			want:    InfoLevel,
			legacy:  FatalLevel,
		},
		{
			name:    "two -v lowers to DEBUG",
			verbose: 2,
			quiet:   0,
			want:    DebugLevel,
			legacy:  FatalLevel,
		},
		{
			name:    "three -v lowers to TRACE",
			verbose: 3,
			quiet:   0,
			want:    TraceLevel,
			legacy:  FatalLevel,
		},
		{
			name:    "excess -v clamps at TRACE (raw index negative)",
			verbose: 5,
			quiet:   0,
			want:    TraceLevel,
			legacy:  FatalLevel,
		},
		{
			name:    "one -q raises to WARNING",
			verbose: 0,
			quiet:   1,
			want:    WarnLevel,
			legacy:  FatalLevel,
		},
		{
			name:    "three -q raises to FATAL",
			verbose: 0,
			quiet:   3,
			want:    FatalLevel,
			legacy:  FatalLevel,
		},
		{
			name:    "excess -q clamps at FATAL",
			verbose: 0,
			quiet:   10,
			want:    FatalLevel,
			legacy:  FatalLevel,
		},
		{
			name:    "flags cancel out",
			verbose: 2,
			quiet:   2,
			want:    SuccessLevel,
			legacy:  FatalLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.verbose, tt.quiet)
			assert.Equal(t, tt.want, got)

			// Document the inverted expression alongside the fix.
			assert.Equal(t, tt.legacy, legacyResolve(tt.verbose, tt.quiet))
		})
	}
}

// legacyResolve reproduces the inverted clamp max(6, min(0, idx)) for
// documentation purposes only.
func legacyResolve(verbose, quiet int) Level {
	idx := 3 + quiet - verbose
	inner := idx
	if inner > 0 {
		inner = 0
	}
	outer := inner
	if outer < 6 {
		outer = 6
	}
	return scale[outer]
}

// TestLevelString verifies the scale names used by the level encoder.
func TestLevelString(t *testing.T) {
	assert.Equal(t, "TRACE", TraceLevel.String())
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "SUCCESS", SuccessLevel.String())
	assert.Equal(t, "WARNING", WarnLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "FATAL", FatalLevel.String())
	assert.Equal(t, "LEVEL(7)", Level(7).String())
}

// TestLoggerThreshold verifies that records below the threshold are
// dropped and records at or above it are written with the scale name.
func TestLoggerThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := New(WarnLevel, &buf)

	log.Info("below threshold")
	log.Success("still below")
	require.Equal(t, 0, buf.Len(), "records below the threshold must be dropped")

	log.Warn("at threshold")
	log.Error("above threshold", "path", "a/b")
	require.NoError(t, log.Close())

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WARNING")
	assert.Contains(t, lines[0], "at threshold")
	assert.Contains(t, lines[1], "ERROR")
	assert.Contains(t, lines[1], "above threshold")
	assert.Contains(t, lines[1], "a/b")
}

// TestLoggerReplacement verifies the one-active-sink invariant: after a
// second handle is constructed, writes go to the new handle's sink only
// and the old sink receives nothing further.
func TestLoggerReplacement(t *testing.T) {
	var first, second bytes.Buffer

	old := New(SuccessLevel, &first)
	old.Success("before replacement")

	replacement := New(SuccessLevel, &second)
	replacement.Success("after replacement")

	assert.Contains(t, first.String(), "before replacement")
	assert.NotContains(t, first.String(), "after replacement")
	assert.Contains(t, second.String(), "after replacement")
	assert.Equal(t, 1, strings.Count(second.String(), "\n"))
}

// TestEnabled verifies the threshold comparison helper.
func TestEnabled(t *testing.T) {
	log := New(InfoLevel, &bytes.Buffer{})
	assert.False(t, log.Enabled(DebugLevel))
	assert.True(t, log.Enabled(InfoLevel))
	assert.True(t, log.Enabled(FatalLevel))
	assert.Equal(t, InfoLevel, log.Level())
}
