// Package logging builds the zap logger used for --debug diagnostics.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger bundles the zap logger with the level that controls it, so the
// command line can switch to debug output after flags are parsed.
type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

// New creates a console logger writing to w. It starts at warn level.
func New(w io.Writer) *Logger {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return &Logger{Logger: zap.New(core), level: level}
}

// EnableDebug lowers the level so debug lines are written.
func (l *Logger) EnableDebug() {
	l.level.SetLevel(zapcore.DebugLevel)
}

// DebugEnabled reports whether debug lines are currently written.
func (l *Logger) DebugEnabled() bool {
	return l.level.Enabled(zapcore.DebugLevel)
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      bracketLevelEncoder,
		ConsoleSeparator: " ",
	}
}

// bracketLevelEncoder renders levels as "[DEBUG]:".
func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]:")
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
