// Package logging builds the zap logger shared by the server and its services.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger or a colored development logger.
// The returned func flushes buffered entries and should be deferred by the caller.
func New(isProd bool) (*zap.Logger, func() error) {
	var logger *zap.Logger

	if isProd {
		logger = zap.Must(zap.NewProduction())
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger = zap.Must(cfg.Build())
	}

	return logger, logger.Sync
}
