package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

// Options controls how the global logger is built
type Options struct {
	Level  string
	Format string
}

// Init initializes the global logger. Verbose forces the debug level.
func Init(verbose bool, opts Options) {
	level := zapcore.WarnLevel
	if err := level.Set(strings.ToLower(opts.Level)); err != nil || opts.Level == "" {
		level = zapcore.WarnLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if opts.Format == "console" {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}

	zap.ReplaceGlobals(l)
	sugar = l.Sugar()
}

// Close flushes buffered log entries
func Close() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	if sugar != nil {
		sugar.Debugw(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	if sugar != nil {
		sugar.Infow(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	if sugar != nil {
		sugar.Warnw(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...any) {
	if sugar != nil {
		sugar.Errorw(msg, args...)
	}
}
