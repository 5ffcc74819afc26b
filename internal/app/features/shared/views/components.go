// internal/app/features/shared/views/components.go
package shared

import (
	"strings"

	"github.com/dalemusser/earthpulse/internal/domain/models"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon renders a lucide icon through iconify. extra holds size and color
// classes.
func Icon(name, extra string) g.Node {
	cls := "iconify inline-block"
	if extra != "" {
		cls += " " + extra
	}
	return Span(
		Class(cls),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

// IconBadge is an icon inside a tinted rounded square.
func IconBadge(name string, tone models.Tone) g.Node {
	t := string(tone)
	return Div(
		Class("inline-flex items-center justify-center shrink-0 size-12 rounded-lg bg-"+t+"/10 border border-"+t+"/20"),
		Icon(name, "size-6 text-"+t),
	)
}

var badgeClasses = map[models.BadgeVariant]string{
	models.BadgeDefault:     "bg-primary text-primary-foreground border-transparent",
	models.BadgeSecondary:   "bg-secondary text-secondary-foreground border-transparent",
	models.BadgeDestructive: "bg-destructive text-destructive-foreground border-transparent",
	models.BadgeOutline:     "text-foreground border-border",
}

// Badge is a small pill label.
func Badge(variant models.BadgeVariant, text string) g.Node {
	cls, ok := badgeClasses[variant]
	if !ok {
		cls = badgeClasses[models.BadgeDefault]
	}
	return Span(
		Class("inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold "+cls),
		g.Attr("data-variant", string(variant)),
		g.Text(text),
	)
}

// ToneBadge is a pill tinted with a theme tone rather than a variant.
func ToneBadge(tone models.Tone, children ...g.Node) g.Node {
	t := string(tone)
	return Span(
		Class("inline-flex items-center gap-1 rounded-full border px-3 py-1 text-sm bg-"+t+"/10 text-"+t+" border-"+t+"/20"),
		g.Group(children),
	)
}

// Card is the bordered glass panel most sections are built from.
func Card(extra string, children ...g.Node) g.Node {
	cls := "glass-card rounded-xl border border-border/50 p-6"
	if extra != "" {
		cls += " " + extra
	}
	return Div(Class(cls), g.Group(children))
}

// SectionHeader is a centered section title with an optional lead paragraph.
func SectionHeader(title, lead string) g.Node {
	return Div(
		Class("text-center mb-12"),
		H2(Class("text-3xl md:text-4xl font-bold mb-4"), g.Text(title)),
		g.If(lead != "", P(Class("text-lg text-muted-foreground max-w-2xl mx-auto"), g.Text(lead))),
	)
}

// Hero describes the banner at the top of a section page.
type Hero struct {
	Icon     string
	Tone     models.Tone
	Title    string
	Subtitle string
	Lead     string
	Actions  []CTA
}

// CTA is a call-to-action button.
type CTA struct {
	Label   string
	Href    string
	Icon    string
	Primary bool
}

// PageHero renders h.
func PageHero(h Hero, extra ...g.Node) g.Node {
	t := string(h.Tone)
	return Section(
		Class("relative py-20 overflow-hidden"),
		Div(Class("absolute inset-0 -z-10 bg-gradient-to-b from-"+t+"/10 to-transparent")),
		Div(
			Class("container mx-auto px-6 text-center"),
			g.If(h.Icon != "", Div(Class("flex justify-center mb-6"), IconBadge(h.Icon, h.Tone))),
			H1(
				Class("text-4xl md:text-6xl font-bold mb-4"),
				g.Text(h.Title),
				g.If(h.Subtitle != "", g.Group([]g.Node{
					Br(),
					Span(Class("text-"+t), g.Text(h.Subtitle)),
				})),
			),
			g.If(h.Lead != "", P(Class("text-lg md:text-xl text-muted-foreground max-w-3xl mx-auto mb-8"), g.Text(h.Lead))),
			g.If(len(h.Actions) > 0, Actions(h.Actions...)),
			g.Group(extra),
		),
	)
}

// Actions renders a row of buttons.
func Actions(actions ...CTA) g.Node {
	return Div(
		Class("flex flex-wrap justify-center gap-4"),
		g.Map(actions, func(a CTA) g.Node {
			cls := "btn inline-flex items-center gap-2 rounded-lg px-6 py-3 font-medium"
			if a.Primary {
				cls += " btn-primary bg-primary text-primary-foreground"
			} else {
				cls += " btn-outline border border-border"
			}
			href := a.Href
			if href == "" {
				href = "#"
			}
			return A(
				Href(href),
				Class(cls),
				g.If(a.Icon != "", Icon(a.Icon, "size-4")),
				g.Text(a.Label),
			)
		}),
	)
}

// StatusCard is a "system status" panel: a list of label/value rows and a
// footer line.
func StatusCard(title string, lines []models.StatusLine, footer string) g.Node {
	return Card("",
		H3(Class("text-lg font-semibold mb-4 flex items-center gap-2"), Icon("activity", "size-5 text-primary"), g.Text(title)),
		Div(
			Class("space-y-3"),
			g.Map(lines, func(l models.StatusLine) g.Node {
				return Div(
					Class("flex items-center justify-between"),
					Span(Class("text-sm text-muted-foreground"), g.Text(l.Label)),
					Span(Class("text-sm font-medium text-success"), g.Text(l.Value)),
				)
			}),
		),
		g.If(footer != "", Div(
			Class("flex items-center gap-2 mt-4 pt-4 border-t border-border/50"),
			Span(Class("size-2 rounded-full bg-success animate-pulse")),
			Span(Class("text-xs text-muted-foreground"), g.Text(footer)),
		)),
	)
}

// DotList renders "• a • b • c" feature tags.
func DotList(items []string, tone models.Tone) g.Node {
	return Ul(
		Class("space-y-2"),
		g.Map(items, func(s string) g.Node {
			return Li(
				Class("flex items-center gap-2 text-sm text-muted-foreground"),
				Span(Class("size-1.5 rounded-full bg-"+string(tone))),
				g.Text(s),
			)
		}),
	)
}

// TrendIcon is the arrow for a trend.
func TrendIcon(t models.Trend) g.Node {
	name := "minus"
	switch t {
	case models.TrendUp:
		name = "trending-up"
	case models.TrendDown:
		name = "trending-down"
	}
	return Icon(name, "size-4 text-"+string(t.Tone()))
}

// Slug turns a label into an anchor-safe id.
func Slug(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}
