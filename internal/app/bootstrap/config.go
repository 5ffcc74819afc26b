// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/earthpulse/internal/app/system/counter"
	"github.com/dalemusser/earthpulse/internal/app/system/numfmt"
	"github.com/dalemusser/earthpulse/internal/app/system/timeouts"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// appConfigKeys defines the configuration keys for EarthPulse.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: site_name, counter_duration, etc.
//   - Environment variables: EARTHPULSE_SITE_NAME, EARTHPULSE_COUNTER_DURATION, etc.
//   - Command-line flags: --site_name, --counter_duration, etc.
var appConfigKeys = []config.AppKey{
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name shown in the navbar and page titles"},
	{Name: "short_name", Default: models.DefaultShortName, Desc: "Compact site name for narrow screens"},
	{Name: "base_url", Default: "http://localhost:8080", Desc: "Canonical site origin for og:url"},
	{Name: "banner_html", Default: "", Desc: "Announcement banner HTML (sanitized; blank hides the banner)"},

	// Counter animation
	{Name: "counter_duration", Default: "1200ms", Desc: "Default counter animation length (e.g., 1200ms, 2s)"},
	{Name: "counter_frame_interval", Default: "16ms", Desc: "Frame loop tick interval (16ms is about 60 frames per second)"},

	// Request deadlines
	{Name: "page_timeout", Default: "5s", Desc: "Deadline for page renders and JSON reads"},
	{Name: "stream_grace", Default: "5s", Desc: "Extra time a counter stream may run past its animation length"},
	{Name: "stream_rate_limit", Default: 30, Desc: "Counter streams a client may open per minute (0 disables)"},

	// Locale
	{Name: "default_lang", Default: "en", Desc: "Fallback language for number formatting (en, de, fr, es)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, EARTHPULSE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "EARTHPULSE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SiteName:   appValues.String("site_name"),
		ShortName:  appValues.String("short_name"),
		BaseURL:    appValues.String("base_url"),
		BannerHTML: appValues.String("banner_html"),

		CounterDuration:      appValues.Duration("counter_duration", counter.DefaultDuration),
		CounterFrameInterval: appValues.Duration("counter_frame_interval", counter.DefaultFrameInterval),

		PageTimeout: appValues.Duration("page_timeout", timeouts.DefaultShort),
		StreamGrace: appValues.Duration("stream_grace", timeouts.DefaultStreamGrace),

		StreamRateLimit: appValues.Int("stream_rate_limit"),

		DefaultLang: appValues.String("default_lang"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.CounterDuration <= 0 {
		return fmt.Errorf("counter_duration must be positive, got %v", appCfg.CounterDuration)
	}
	if appCfg.CounterFrameInterval <= 0 {
		return fmt.Errorf("counter_frame_interval must be positive, got %v", appCfg.CounterFrameInterval)
	}
	if appCfg.CounterFrameInterval > time.Second {
		logger.Warn("counter frame interval is over a second; animations will look choppy",
			zap.Duration("counter_frame_interval", appCfg.CounterFrameInterval))
	}
	if appCfg.PageTimeout < 0 || appCfg.StreamGrace < 0 {
		return fmt.Errorf("page_timeout and stream_grace must not be negative")
	}
	if appCfg.StreamRateLimit < 0 {
		return fmt.Errorf("stream_rate_limit must not be negative, got %d", appCfg.StreamRateLimit)
	}

	tag, err := language.Parse(appCfg.DefaultLang)
	if err != nil {
		logger.Error("invalid default language", zap.String("default_lang", appCfg.DefaultLang), zap.Error(err))
		return fmt.Errorf("invalid default_lang %q: %w", appCfg.DefaultLang, err)
	}
	if _, ok := numfmt.Match(tag); !ok {
		return fmt.Errorf("default_lang %q is not a supported language", appCfg.DefaultLang)
	}
	return nil
}
