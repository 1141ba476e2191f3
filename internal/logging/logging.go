package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eugenenazirov/agent-config/internal/envvar"
)

var levelVar = envvar.WithDefault("LOG_LEVEL", "info")

// New creates a production-ready structured logger configured for JSON
// output. The minimum level is taken from LOG_LEVEL, defaulting to info.
func New() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(levelVar.Resolve().Or("info"))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.DisableStacktrace = false

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
