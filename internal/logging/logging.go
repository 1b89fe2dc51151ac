package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a step on the tyranno severity scale. The numeric values are
// chosen so that Level casts directly to zapcore.Level: SUCCESS sits at
// zero where zap puts INFO, and the rest of the scale spreads around it.
type Level int8

const (
	// TraceLevel is the chattiest step, for per-file and per-line detail.
	TraceLevel Level = iota - 3

	// DebugLevel reports intermediate decisions (pattern matches,
	// resolved paths, substitution values).
	DebugLevel

	// InfoLevel reports the major steps of a command.
	InfoLevel

	// SuccessLevel is the default threshold: completed operations only.
	SuccessLevel

	// WarnLevel reports recoverable oddities (skipped targets,
	// unparseable settings keys).
	WarnLevel

	// ErrorLevel reports failures of a single operation.
	ErrorLevel

	// FatalLevel reports failures that end the invocation. Logging at
	// this level does not itself exit; the CLI layer owns exit codes.
	FatalLevel
)

// scale lists the levels from most to least verbose. Index 3 (SUCCESS)
// is the resting point when neither --verbose nor --quiet is given.
var scale = [...]Level{
	TraceLevel,
	DebugLevel,
	InfoLevel,
	SuccessLevel,
	WarnLevel,
	ErrorLevel,
	FatalLevel,
}

// String returns the scale name for the level.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case SuccessLevel:
		return "SUCCESS"
	case WarnLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int8(l))
	}
}

// Resolve maps the occurrence counts of --verbose and --quiet to a
// threshold. The raw index is 3 + quiet - verbose, then clamped into
// the scale.
//
// The clamp is the intended min(6, max(0, idx)); the expression this
// replaces had the bounds inverted and pinned every invocation to
// FATAL. See the resolve tests for the side-by-side table.
func Resolve(verbose, quiet int) Level {
	idx := 3 + quiet - verbose
	if idx < 0 {
		idx = 0
	}
	if idx > len(scale)-1 {
		idx = len(scale) - 1
	}
	return scale[idx]
}

// Logger is a leveled sink handle. It wraps a zap logger whose single
// core writes to the writer given at construction, filtered at the
// handle's threshold.
type Logger struct {
	impl  *zap.SugaredLogger
	level Level
}

// New builds a Logger writing to w at the given threshold. The CLI
// passes os.Stderr; tests pass a buffer.
func New(level Level, w io.Writer) *Logger {
	encoder := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "",
		TimeKey:        "",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoder),
		zapcore.AddSync(w),
		zapcore.Level(level),
	)
	return &Logger{impl: zap.New(core).Sugar(), level: level}
}

// encodeLevel prints the tyranno scale names instead of zap's.
func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}

// Level returns the handle's threshold.
func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether records at lvl pass the threshold.
func (l *Logger) Enabled(lvl Level) bool {
	return lvl >= l.level
}

// Trace logs at TRACE with loosely typed key-value pairs.
func (l *Logger) Trace(msg string, keysAndValues ...interface{}) {
	l.impl.Logw(zapcore.Level(TraceLevel), msg, keysAndValues...)
}

// Debug logs at DEBUG.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.impl.Logw(zapcore.Level(DebugLevel), msg, keysAndValues...)
}

// Info logs at INFO.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.impl.Logw(zapcore.Level(InfoLevel), msg, keysAndValues...)
}

// Success logs at SUCCESS.
func (l *Logger) Success(msg string, keysAndValues ...interface{}) {
	l.impl.Logw(zapcore.Level(SuccessLevel), msg, keysAndValues...)
}

// Warn logs at WARNING.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.impl.Logw(zapcore.Level(WarnLevel), msg, keysAndValues...)
}

// Error logs at ERROR.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.impl.Logw(zapcore.Level(ErrorLevel), msg, keysAndValues...)
}

// Fatal logs at FATAL. It does not exit the process.
func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.impl.Logw(zapcore.Level(FatalLevel), msg, keysAndValues...)
}

// Close flushes the underlying sink.
func (l *Logger) Close() error {
	return l.impl.Sync()
}
