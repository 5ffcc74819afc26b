package wildlife

import (
	shared "github.com/dalemusser/earthpulse/internal/app/features/shared/views"
	"github.com/dalemusser/earthpulse/internal/app/store/catalog"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func page(d pageData) g.Node {
	return shared.Layout(d.BaseVM,
		shared.PageHero(shared.Hero{
			Icon:     "bird",
			Tone:     models.ToneWildlife,
			Title:    "Wildlife AI",
			Subtitle: "Conservation Intelligence",
			Lead:     "Advanced AI monitoring system tracking endangered species, migration patterns, and population dynamics across global wildlife reserves and natural habitats.",
			Actions: []shared.CTA{
				{Label: "Live Wildlife Cams", Icon: "camera", Primary: true},
				{Label: "Tracking Map", Icon: "map-pin"},
			},
		}),
		Section(
			Class("py-16"),
			Div(
				Class("container mx-auto px-6"),
				shared.SectionHeader("Real-time Species Monitoring", "AI-powered tracking of endangered species populations worldwide"),
				shared.CounterStream(d.Counters, d.Lang,
					Div(
						Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6"),
						g.Map(d.Species, func(s models.Species) g.Node { return speciesCard(d, s) }),
					),
				),
			),
		),
		Section(
			Class("py-16 bg-muted/20"),
			Div(
				Class("container mx-auto px-6 grid lg:grid-cols-3 gap-8"),
				Div(
					Class("lg:col-span-2"),
					H2(Class("text-2xl font-bold mb-6"), g.Text("AI-Powered Features")),
					Div(Class("grid md:grid-cols-3 gap-4"), g.Map(catalog.WildlifeCapabilities(), capability)),
				),
				Div(
					Class("space-y-6"),
					shared.Card("",
						H3(Class("text-lg font-semibold mb-4 flex items-center gap-2"),
							shared.Icon("triangle-alert", "size-5 text-warning"), g.Text("Threat Detection")),
						Div(Class("space-y-3"), g.Map(catalog.WildlifeThreats(), threat)),
					),
					shared.StatusCard("System Status", catalog.WildlifeStatus(), "All monitoring systems active"),
				),
			),
		),
	)
}

func speciesCard(d pageData, s models.Species) g.Node {
	return shared.Card("",
		g.Attr("data-species", shared.Slug(s.Name)),
		Div(
			Class("flex items-center justify-between mb-4"),
			H3(Class("font-semibold"), g.Text(s.Name)),
			shared.Badge(s.Status.Variant(), string(s.Status)),
		),
		Div(Class("text-3xl font-bold text-wildlife mb-1"),
			shared.SetCounter(d.Counters, s.CounterID, d.Lang, "")),
		P(Class("text-sm text-muted-foreground mb-2"), g.Text("Population")),
		Div(
			Class("flex items-center gap-1 text-sm text-success"),
			shared.Icon("trending-up", "size-4"),
			g.Text(s.Change+" this month"),
		),
	)
}

func capability(c models.Capability) g.Node {
	return shared.Card("text-center",
		Div(Class("flex justify-center mb-3"), shared.IconBadge(c.Icon, c.Tone)),
		H4(Class("font-semibold mb-1"), g.Text(c.Title)),
		P(Class("text-sm text-muted-foreground"), g.Text(c.Detail)),
	)
}

func threat(t models.Threat) g.Node {
	return Div(
		Class("flex items-center justify-between"),
		Div(
			P(Class("text-sm font-medium"), g.Text(t.Type)),
			P(Class("text-xs text-muted-foreground"), g.Text(t.Location)),
		),
		shared.Badge(t.Level.LevelVariant(), string(t.Level)),
	)
}
