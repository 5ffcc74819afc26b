// Package navigation describes the site's top-level menu and how the navbar
// changes appearance on each section.
package navigation

// Item is one entry of the main menu.
type Item struct {
	Label string
	Href  string
}

var items = []Item{
	{Label: "Home", Href: "/"},
	{Label: "Wildlife AI", Href: "/wildlife"},
	{Label: "Marine AI", Href: "/marine"},
	{Label: "Forest AI", Href: "/forest"},
	{Label: "Research", Href: "/research"},
	{Label: "Dashboard", Href: "/dashboard"},
	{Label: "About", Href: "/about"},
}

// Items returns the menu in display order.
func Items() []Item {
	return append([]Item(nil), items...)
}

// DefaultStyle is the navbar class set used outside the themed sections.
const DefaultStyle = "glass-nav"

// Style returns the navbar background classes for path.
func Style(path string) string {
	switch path {
	case "/wildlife":
		return "bg-wildlife/20 border-wildlife/30"
	case "/marine":
		return "bg-marine/20 border-marine/30"
	case "/forest":
		return "bg-forest/20 border-forest/30"
	case "/research", "/dashboard":
		return "bg-primary/10 border-primary/20"
	default:
		return DefaultStyle
	}
}

// IsActive reports whether the menu entry href should be highlighted on path.
func IsActive(href, path string) bool {
	if path == "" {
		path = "/"
	}
	return href == path
}
