// internal/domain/models/sitesettings.go
package models

// SiteSettings holds the site-wide display configuration loaded at startup.
type SiteSettings struct {
	SiteName   string // Name shown in the navbar and page titles
	ShortName  string // Name shown on narrow screens
	BaseURL    string // Canonical origin for og: tags
	BannerHTML string // Optional announcement banner, sanitized before display
}

// HasBanner returns true if an announcement banner is configured.
func (s SiteSettings) HasBanner() bool {
	return s.BannerHTML != ""
}

const (
	// DefaultSiteName is the default site name used when none is configured.
	DefaultSiteName = "Digital Nervous System"
	// DefaultShortName is the compact navbar label.
	DefaultShortName = "DNS"
)
