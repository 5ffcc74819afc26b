// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"sync"

	"github.com/dalemusser/earthpulse/internal/app/system/htmlsanitize"
	"github.com/dalemusser/earthpulse/internal/app/system/navigation"
	"github.com/dalemusser/earthpulse/internal/app/system/numfmt"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"golang.org/x/text/language"
)

// NavLinkVM is a menu entry with its highlight state for the current page.
type NavLinkVM struct {
	Label  string
	Href   string
	Active bool
}

// BaseVM contains common fields for all pages.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	data := wildlifeData{
//	    BaseVM: viewdata.NewBaseVM(r, "Wildlife AI"),
//	}
type BaseVM struct {
	// Site settings (from config)
	SiteName    string
	ShortName   string
	BaseURL     string
	BannerHTML  string // already sanitized
	Description string

	// Page context
	Title       string
	Path        string // r.URL.Path, used for nav state
	CurrentPath string // path plus query, for links back to this page
	NavStyle    string
	Nav         []NavLinkVM

	// Locale for number formatting
	Lang language.Tag
}

var (
	mu       sync.RWMutex
	settings = models.SiteSettings{
		SiteName:  models.DefaultSiteName,
		ShortName: models.DefaultShortName,
	}
)

// DefaultDescription is the meta description used when a page sets none.
const DefaultDescription = "Real-time AI-powered conservation intelligence system monitoring Earth's ecosystems, wildlife populations, and environmental changes."

// Init stores the site settings every page is rendered with. The banner is
// sanitized here once. Call this once at startup from bootstrap.
func Init(s models.SiteSettings) {
	if s.SiteName == "" {
		s.SiteName = models.DefaultSiteName
	}
	if s.ShortName == "" {
		s.ShortName = models.DefaultShortName
	}
	s.BannerHTML = htmlsanitize.Sanitize(s.BannerHTML)

	mu.Lock()
	settings = s
	mu.Unlock()
}

// Settings returns the active site settings.
func Settings() models.SiteSettings {
	mu.RLock()
	defer mu.RUnlock()
	return settings
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	s := Settings()
	path := r.URL.Path

	vm := BaseVM{
		SiteName:    s.SiteName,
		ShortName:   s.ShortName,
		BaseURL:     s.BaseURL,
		BannerHTML:  s.BannerHTML,
		Description: DefaultDescription,
		Title:       title,
		Path:        path,
		CurrentPath: httpnav.CurrentPath(r),
		NavStyle:    navigation.Style(path),
		Lang:        numfmt.ResolveTag(r),
	}

	for _, it := range navigation.Items() {
		vm.Nav = append(vm.Nav, NavLinkVM{
			Label:  it.Label,
			Href:   it.Href,
			Active: navigation.IsActive(it.Href, path),
		})
	}
	return vm
}

// PageTitle is the document title: "Title | Site", or just the site name.
func (vm BaseVM) PageTitle() string {
	if vm.Title == "" {
		return vm.SiteName
	}
	return vm.Title + " | " + vm.SiteName
}
