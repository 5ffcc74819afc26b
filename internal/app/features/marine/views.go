package marine

import (
	shared "github.com/dalemusser/earthpulse/internal/app/features/shared/views"
	"github.com/dalemusser/earthpulse/internal/app/store/catalog"
	"github.com/dalemusser/earthpulse/internal/app/system/numfmt"
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func page(vm viewdata.BaseVM) g.Node {
	return shared.Layout(vm,
		shared.PageHero(shared.Hero{
			Icon:     "fish",
			Tone:     models.ToneMarine,
			Title:    "Marine AI",
			Subtitle: "Ocean Intelligence",
			Lead:     "Advanced underwater monitoring system tracking ocean health, marine biodiversity, and climate change impacts across global marine ecosystems.",
			Actions: []shared.CTA{
				{Label: "Ocean Dashboard", Icon: "waves", Primary: true},
				{Label: "Live Underwater Feeds", Icon: "eye"},
			},
		}),
		Section(
			Class("py-16"),
			Div(
				Class("container mx-auto px-6"),
				shared.SectionHeader("Ocean Health Monitoring", "Real-time analysis of marine ecosystem health and biodiversity"),
				Div(Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6"), g.Map(catalog.OceanMetrics(), metricCard)),
			),
		),
		Section(
			Class("py-16 bg-muted/20"),
			Div(
				Class("container mx-auto px-6 grid lg:grid-cols-3 gap-8"),
				Div(
					Class("lg:col-span-2 space-y-8"),
					shared.Card("",
						H2(Class("text-xl font-bold mb-6"), g.Text("Marine Species Tracking")),
						Div(Class("grid md:grid-cols-2 gap-4"), g.Map(catalog.MarineSpecies(), func(s models.MarineSpecies) g.Node {
							return speciesRow(vm, s)
						})),
					),
					Div(
						H2(Class("text-xl font-bold mb-6"), g.Text("AI Monitoring Systems")),
						Div(Class("grid md:grid-cols-3 gap-4"), g.Map(catalog.MarineCapabilities(), capability)),
					),
				),
				shared.Card("",
					H3(Class("text-lg font-semibold mb-4 flex items-center gap-2"),
						shared.Icon("triangle-alert", "size-5 text-warning"), g.Text("Marine Threats")),
					Div(Class("space-y-3"), g.Map(catalog.MarineThreats(), threat)),
				),
			),
		),
	)
}

func metricCard(m models.Metric) g.Node {
	trend := "trending-down"
	if m.Status.OceanImproving() {
		trend = "trending-up"
	}
	return shared.Card("",
		g.Attr("data-metric", shared.Slug(m.Name)),
		Div(
			Class("flex items-center justify-between mb-3"),
			P(Class("text-sm text-muted-foreground"), g.Text(m.Name)),
			Span(Class("size-2 rounded-full bg-"+string(m.Status.OceanTone()))),
		),
		Div(Class("text-3xl font-bold text-marine mb-1"), g.Text(m.Value)),
		Div(
			Class("flex items-center gap-1 text-sm text-muted-foreground"),
			shared.Icon(trend, "size-4"),
			g.Text(m.Change),
		),
	)
}

func speciesRow(vm viewdata.BaseVM, s models.MarineSpecies) g.Node {
	return Div(
		Class("flex items-center justify-between rounded-lg border border-border/50 p-4"),
		g.Attr("data-species", shared.Slug(s.Name)),
		Div(
			P(Class("font-medium"), g.Text(s.Name)),
			P(Class("text-sm text-muted-foreground tabular-nums"), g.Text(numfmt.Integer(vm.Lang, s.Count))),
		),
		shared.Badge(s.Trend.Variant(), string(s.Trend)),
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
		shared.Badge(t.Level.Variant(), string(t.Level)),
	)
}
