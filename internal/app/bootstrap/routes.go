// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/dalemusser/earthpulse/internal/app/features/about"
	countersfeature "github.com/dalemusser/earthpulse/internal/app/features/counters"
	dashboardfeature "github.com/dalemusser/earthpulse/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/earthpulse/internal/app/features/errors"
	forestfeature "github.com/dalemusser/earthpulse/internal/app/features/forest"
	healthfeature "github.com/dalemusser/earthpulse/internal/app/features/health"
	homefeature "github.com/dalemusser/earthpulse/internal/app/features/home"
	marinefeature "github.com/dalemusser/earthpulse/internal/app/features/marine"
	researchfeature "github.com/dalemusser/earthpulse/internal/app/features/research"
	wildlifefeature "github.com/dalemusser/earthpulse/internal/app/features/wildlife"
	"github.com/dalemusser/earthpulse/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup, schema checks, and
// the Startup hook have completed. It mounts the health check, static
// assets, every page feature and the counter endpoints.
//
// Pages run under the short request deadline. Counter streams do not; each
// stream sets its own deadline from its animation length.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Set before mounting so subrouters inherit them.
	errorsHandler := errorsfeature.NewHandler(logger)
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Frames, appCfg.BaseURL, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Counter sets and their frame streams
	countersHandler := countersfeature.NewHandler(deps.Frames, deps.Clock, appCfg.CounterDuration, logger)
	var streamMW []func(http.Handler) http.Handler
	if deps.StreamLimiter != nil {
		streamMW = append(streamMW, deps.StreamLimiter.Middleware(logger))
	}
	r.Mount("/counters", countersfeature.Routes(countersHandler, streamMW...))

	r.Group(func(pages chi.Router) {
		pages.Use(middleware.Timeout(timeouts.Short()))

		homeHandler := homefeature.NewHandler(logger)
		pages.Mount("/", homefeature.Routes(homeHandler))

		wildlifeHandler := wildlifefeature.NewHandler(logger)
		pages.Mount("/wildlife", wildlifefeature.Routes(wildlifeHandler))

		marineHandler := marinefeature.NewHandler(logger)
		pages.Mount("/marine", marinefeature.Routes(marineHandler))

		forestHandler := forestfeature.NewHandler(logger)
		pages.Mount("/forest", forestfeature.Routes(forestHandler))

		researchHandler := researchfeature.NewHandler(logger)
		pages.Mount("/research", researchfeature.Routes(researchHandler))

		dashboardHandler := dashboardfeature.NewHandler(logger)
		pages.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

		aboutHandler := aboutfeature.NewHandler(logger)
		pages.Mount("/about", aboutfeature.Routes(aboutHandler))
	})

	return r, nil
}
