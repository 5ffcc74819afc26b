// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/earthpulse/internal/app/store/catalog"
	"github.com/dalemusser/earthpulse/internal/app/system/counter"
	"github.com/dalemusser/earthpulse/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the backends. The frame loop is created stopped; Startup
// starts it. Shutdown stops the stream limiter's cleanup goroutine.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	loop := counter.NewFrameLoop(appCfg.CounterFrameInterval, logger.Named("frameloop"))
	logger.Info("frame loop created", zap.Duration("interval", loop.Interval()))
	return DBDeps{
		Frames:        loop,
		Clock:         counter.SystemClock{},
		StreamLimiter: ratelimit.New(appCfg.StreamRateLimit, time.Minute),
	}, nil
}

// EnsureSchema checks the built-in counter catalog.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := catalog.Validate(); err != nil {
		logger.Error("counter catalog invalid", zap.Error(err))
		return fmt.Errorf("validate catalog: %w", err)
	}
	logger.Info("counter catalog ok", zap.Strings("sets", catalog.CounterSetNames()))
	return nil
}
