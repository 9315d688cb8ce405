package logutils

import (
	"go.uber.org/zap"
)

// NewLogger builds the logger for a launch environment: "prod" logs JSON at
// info level, "quiet" logs warnings only, "none" discards everything and any
// other value is development mode.
func NewLogger(env string) (*zap.Logger, error) {
	switch env {
	case "prod":
		return zap.NewProduction()
	case "quiet":
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		return cfg.Build()
	case "none":
		return zap.NewNop(), nil
	default:
		return zap.NewDevelopment()
	}
}
