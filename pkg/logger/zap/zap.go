// Package zap builds the concrete zap.Logger from a validated
// config.Configuration. Kept as its own package so callers depend on
// config's plain types without pulling in zapcore everywhere config
// is referenced.
package zap

import (
	"time"

	"github.com/lintang-b-s/edgesep/pkg/logger/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a production-style console logger: ISO8601-ish
// timestamps per cfg.TimeFormat, level-colored in development but
// plain here since the edge-separator core runs headless.
func New(cfg config.Configuration) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(cfg.TimeFormat))
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.Level(cfg.Level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapCfg.Build()
}
