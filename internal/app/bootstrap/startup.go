// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/earthpulse/internal/app/system/numfmt"
	"github.com/dalemusser/earthpulse/internal/app/system/timeouts"
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Startup runs one-time application initialization after backends are built
// and before the HTTP handler is. It applies config to the shared packages
// and starts the frame loop.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Frames == nil {
		return errors.New("startup: frame loop not built")
	}

	timeouts.Configure(timeouts.Config{
		Short:       appCfg.PageTimeout,
		StreamGrace: appCfg.StreamGrace,
	})

	if tag, err := language.Parse(appCfg.DefaultLang); err == nil {
		numfmt.Configure(tag)
	}

	viewdata.Init(models.SiteSettings{
		SiteName:   appCfg.SiteName,
		ShortName:  appCfg.ShortName,
		BaseURL:    appCfg.BaseURL,
		BannerHTML: appCfg.BannerHTML,
	})
	if viewdata.Settings().HasBanner() {
		logger.Info("announcement banner enabled")
	}

	deps.Frames.Start()
	logger.Info("startup complete",
		zap.Duration("counter_duration", appCfg.CounterDuration),
		zap.String("default_lang", numfmt.Default().String()),
		zap.Duration("stream_grace", timeouts.StreamGrace()))
	return nil
}
