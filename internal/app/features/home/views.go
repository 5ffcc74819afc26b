package home

import (
	"strconv"

	shared "github.com/dalemusser/earthpulse/internal/app/features/shared/views"
	"github.com/dalemusser/earthpulse/internal/app/store/catalog"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func page(d pageData) g.Node {
	return shared.Layout(d.BaseVM,
		hero(d),
		modules(),
		dashboardPreview(d),
		investors(),
	)
}

func hero(d pageData) g.Node {
	return Section(
		Class("relative min-h-[90vh] flex items-center justify-center overflow-hidden"),
		ID("hero"),
		Div(Class("absolute inset-0 -z-10 bg-gradient-hero opacity-60")),
		Div(
			Class("container mx-auto px-6 text-center"),
			H1(
				Class("text-5xl md:text-7xl font-bold mb-6 leading-tight"),
				Span(Class("text-gradient-primary"), g.Text("Digital Nervous System")),
				Br(),
				Span(Class("text-foreground"), g.Text("of the Planet")),
			),
			P(
				Class("text-xl md:text-2xl text-muted-foreground max-w-4xl mx-auto mb-8"),
				g.Text("Real-time AI-powered conservation intelligence system monitoring Earth's ecosystems, wildlife populations, and environmental changes with unprecedented precision."),
			),
			shared.CounterStream(d.Hero, d.Lang,
				Div(
					Class("flex flex-wrap justify-center gap-4 mb-10"),
					g.Map(catalog.HeroStats(), func(s models.HeroStat) g.Node {
						value := g.Node(g.Text(s.Static))
						if s.CounterID != "" {
							value = shared.SetCounter(d.Hero, s.CounterID, d.Lang, "font-bold")
						}
						return shared.ToneBadge(s.Tone, value, Span(g.Text(" "+s.Label)))
					}),
				),
			),
			shared.Actions(
				shared.CTA{Label: "Explore Live Data", Href: "/dashboard", Icon: "globe", Primary: true},
				shared.CTA{Label: "Watch Demo (2:30)", Href: "#demo", Icon: "play"},
			),
		),
	)
}

func modules() g.Node {
	return Section(
		Class("py-20"),
		ID("modules"),
		Div(
			Class("container mx-auto px-6"),
			shared.SectionHeader("AI-Powered Conservation Modules",
				"Specialized artificial intelligence systems working together to monitor, analyze, and protect our planet's ecosystems in real-time."),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Map(catalog.Modules(), moduleCard),
			),
			Div(
				Class("text-center mt-12"),
				shared.Actions(shared.CTA{Label: "View Live Dashboard", Href: "/dashboard", Icon: "arrow-right", Primary: true}),
			),
		),
	)
}

func moduleCard(m models.Module) g.Node {
	return A(
		Href(m.Href),
		Class("block group"),
		g.Attr("data-module", m.ID),
		shared.Card("h-full transition-transform group-hover:-translate-y-1",
			Div(Class("mb-4"), shared.IconBadge(m.Icon, m.Tone)),
			H3(Class("text-xl font-semibold mb-2"), g.Text(m.Title)),
			P(Class("text-muted-foreground mb-4"), g.Text(m.Description)),
			shared.DotList(m.Features, m.Tone),
		),
	)
}

func dashboardPreview(d pageData) g.Node {
	return Section(
		Class("py-20 bg-muted/20"),
		ID("dashboard-preview"),
		Div(
			Class("container mx-auto px-6"),
			shared.SectionHeader("Live Global Dashboard",
				"Real-time insights from our planetary monitoring network, providing actionable intelligence for conservation efforts worldwide."),
			shared.CounterStream(d.Preview, d.Lang,
				Div(
					Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6 mb-8"),
					g.Map(catalog.PreviewStats(), func(s models.PreviewStat) g.Node {
						return previewStat(d, s)
					}),
				),
			),
			Div(
				Class("grid lg:grid-cols-3 gap-6"),
				Div(
					Class("lg:col-span-2"),
					shared.Card("h-full",
						H3(Class("text-lg font-semibold mb-4"), g.Text("Global Conservation Impact")),
						Div(
							Class("h-64 rounded-lg bg-gradient-to-br from-primary/10 to-marine/10 flex items-center justify-center"),
							shared.Icon("globe", "size-16 text-primary/40"),
						),
					),
				),
				Div(
					Class("space-y-6"),
					shared.Card("",
						H3(Class("text-lg font-semibold mb-4"), g.Text("Recent Alerts")),
						Div(Class("space-y-4"), g.Map(catalog.RecentAlerts(), alertRow)),
					),
					shared.StatusCard("System Status", catalog.PreviewStatus(), "All systems operational"),
				),
			),
		),
	)
}

func previewStat(d pageData, s models.PreviewStat) g.Node {
	value := g.Node(g.Text(s.Value))
	if s.CounterID != "" {
		value = shared.SetCounter(d.Preview, s.CounterID, d.Lang, "")
	}
	return shared.Card("",
		P(Class("text-sm text-muted-foreground mb-2"), g.Text(s.Label)),
		Div(Class("text-3xl font-bold mb-2 text-"+string(s.Tone)), value),
		Div(
			Class("flex items-center gap-1 text-sm"),
			shared.TrendIcon(s.Trend),
			Span(Class("text-"+string(s.Trend.Tone())), g.Text(s.Change)),
		),
	)
}

func alertRow(a models.Alert) g.Node {
	t := string(a.Type.Tone())
	return Div(
		Class("flex items-start gap-3"),
		g.Attr("data-alert", string(a.Type)),
		shared.Icon(a.Icon, "size-5 mt-0.5 text-"+t),
		Div(
			P(Class("font-medium text-sm"), g.Text(a.Title)),
			P(Class("text-xs text-muted-foreground"), g.Text(a.Location+" · "+a.Time)),
		),
	)
}

func investors() g.Node {
	return Section(
		Class("py-20"),
		ID("investors"),
		Div(
			Class("container mx-auto px-6"),
			shared.SectionHeader("Investment in Planetary Intelligence",
				"Join us in building the world's most comprehensive conservation intelligence platform. Together, we can create unprecedented impact for our planet's future."),
			H3(Class("text-2xl font-semibold mb-6 text-center"), g.Text("Market Opportunity & Impact")),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6 mb-16"),
				g.Map(catalog.InvestorMetrics(), func(m models.InvestorMetric) g.Node {
					return shared.Card("text-center",
						Div(Class("flex justify-center mb-4"), shared.IconBadge(m.Icon, models.TonePrimary)),
						Div(Class("text-3xl font-bold text-primary mb-1"), g.Text(m.Value)),
						P(Class("font-medium"), g.Text(m.Label)),
						P(Class("text-sm text-muted-foreground"), g.Text(m.Description)),
					)
				}),
			),
			Div(
				Class("grid lg:grid-cols-2 gap-8 mb-16"),
				shared.Card("",
					H3(Class("text-xl font-semibold mb-4"), g.Text("UN SDG Alignment")),
					Div(
						Class("grid grid-cols-2 gap-3"),
						g.Map(catalog.SDGGoals(), sdgGoal),
					),
				),
				shared.Card("",
					H3(Class("text-xl font-semibold mb-4"), g.Text("Industry Recognition")),
					Div(Class("space-y-6"), g.Map(catalog.Testimonials(), testimonial)),
				),
			),
			shared.Card("text-center bg-gradient-to-r from-primary/10 to-accent/10",
				H3(Class("text-2xl font-bold mb-4"), g.Text("Ready to Transform Conservation?")),
				P(Class("text-muted-foreground max-w-2xl mx-auto mb-6"),
					g.Text("Download our comprehensive investor deck and technical documentation to learn more about this groundbreaking opportunity.")),
				shared.Actions(
					shared.CTA{Label: "Download Investor Deck", Icon: "download", Primary: true},
					shared.CTA{Label: "Schedule Presentation", Icon: "calendar"},
				),
			),
		),
	)
}

func sdgGoal(goal models.SDGGoal) g.Node {
	cls := "flex items-center gap-3 rounded-lg border p-3"
	if goal.Primary {
		cls += " border-primary/40 bg-primary/10"
	} else {
		cls += " border-border/50"
	}
	return Div(
		Class(cls),
		Span(Class("size-8 rounded-full bg-primary/20 text-primary font-bold flex items-center justify-center text-sm"),
			g.Text(strconv.Itoa(goal.Number))),
		Span(Class("text-sm"), g.Text(goal.Title)),
	)
}

func testimonial(t models.Testimonial) g.Node {
	return Figure(
		BlockQuote(Class("italic text-muted-foreground mb-2"), g.Text("\""+t.Quote+"\"")),
		FigCaption(
			Class("text-sm"),
			Span(Class("font-semibold"), g.Text(t.Author)),
			g.Text(", "+t.Role+", "+t.Organization),
		),
	)
}
