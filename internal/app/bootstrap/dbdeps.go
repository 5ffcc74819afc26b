// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/earthpulse/internal/app/system/counter"
	"github.com/dalemusser/earthpulse/internal/app/system/ratelimit"
)

// DBDeps holds the back-end dependencies for the app. There is no database;
// the shared frame loop that drives every counter is the main backend.
type DBDeps struct {
	Frames        *counter.FrameLoop
	Clock         counter.Clock
	StreamLimiter *ratelimit.Limiter // per-client stream opens
}
