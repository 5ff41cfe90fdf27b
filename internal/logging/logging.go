// Package logging provides the structured logger used by the CLI layer.
// The core pipeline packages stay logger-free and pure.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the configuration for creating a new logger.
type Config struct {
	// Debug enables debug-level output.
	Debug bool
	// Output specifies where logs are written. Defaults to os.Stderr.
	Output io.Writer
}

// NewLogger creates a sugared zap logger writing console-encoded lines to
// the configured output.
func NewLogger(config Config) *zap.SugaredLogger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	level := zapcore.InfoLevel
	if config.Debug {
		level = zapcore.DebugLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(config.Output),
		level,
	)

	return zap.New(core).Sugar()
}
