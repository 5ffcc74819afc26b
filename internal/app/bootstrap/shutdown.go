// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops the frame loop and the stream limiter. Open counter streams see no further frames
// and end when their request context is cancelled.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Frames != nil {
		logger.Info("stopping frame loop", zap.Int("pending", deps.Frames.Pending()))
		deps.Frames.Stop()
	}
	if deps.StreamLimiter != nil {
		deps.StreamLimiter.Stop()
	}
	return nil
}
