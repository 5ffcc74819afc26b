// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings: ports, TLS, logging level and format.
type AppConfig struct {
	// Site identity
	SiteName   string // Name shown in the navbar and page titles
	ShortName  string // Navbar label on narrow screens
	BaseURL    string // Canonical origin used in og:url, e.g. "https://earthpulse.example"
	BannerHTML string // Optional announcement banner; sanitized before display

	// Counter animation
	CounterDuration      time.Duration // Default run length for a counter set
	CounterFrameInterval time.Duration // Frame loop tick interval

	// Request deadlines
	PageTimeout time.Duration // Deadline for page renders and JSON reads
	StreamGrace time.Duration // Added to a stream's animation length before it is cut off

	// Stream admission
	StreamRateLimit int // Stream opens allowed per client per minute; 0 disables the limit

	// Locale
	DefaultLang string // BCP 47 tag used when the request names no supported language
}
