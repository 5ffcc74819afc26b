package forest

import (
	shared "github.com/dalemusser/earthpulse/internal/app/features/shared/views"
	"github.com/dalemusser/earthpulse/internal/app/store/catalog"
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func page(vm viewdata.BaseVM) g.Node {
	return shared.Layout(vm,
		shared.PageHero(shared.Hero{
			Icon:     "tree-pine",
			Tone:     models.ToneForest,
			Title:    "Forest AI",
			Subtitle: "Carbon & Biodiversity",
			Lead:     "Satellite-powered AI monitoring deforestation, tracking carbon sequestration, and measuring biodiversity across the world's forest ecosystems.",
			Actions: []shared.CTA{
				{Label: "Satellite View", Icon: "satellite", Primary: true},
				{Label: "Carbon Calculator", Icon: "calculator"},
			},
		}),
		Section(
			Class("py-16"),
			Div(
				Class("container mx-auto px-6"),
				shared.SectionHeader("Global Forest Intelligence", "Real-time monitoring of deforestation, carbon storage, and forest health"),
				Div(Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6"), g.Map(catalog.ForestMetrics(), metricCard)),
			),
		),
		Section(
			Class("py-16 bg-muted/20"),
			Div(
				Class("container mx-auto px-6 grid lg:grid-cols-3 gap-8"),
				Div(
					Class("lg:col-span-2 space-y-8"),
					shared.Card("",
						H2(Class("text-xl font-bold mb-6"), g.Text("Major Carbon Sinks")),
						Div(Class("space-y-4"), g.Map(catalog.CarbonSinks(), carbonSink)),
					),
					Div(
						H2(Class("text-xl font-bold mb-6"), g.Text("AI Forest Monitoring")),
						Div(Class("grid md:grid-cols-3 gap-4"), g.Map(catalog.ForestCapabilities(), capability)),
					),
				),
				shared.Card("",
					H3(Class("text-lg font-semibold mb-4 flex items-center gap-2"),
						shared.Icon("triangle-alert", "size-5 text-destructive"), g.Text("Deforestation Alerts")),
					Div(Class("space-y-4"), g.Map(catalog.DeforestationAlerts(), alert)),
				),
			),
		),
	)
}

func metricCard(m models.Metric) g.Node {
	trend := "trending-down"
	if m.Status.ForestImproving() {
		trend = "trending-up"
	}
	return shared.Card("",
		g.Attr("data-metric", shared.Slug(m.Name)),
		Div(
			Class("flex items-center justify-between mb-3"),
			P(Class("text-sm text-muted-foreground"), g.Text(m.Name)),
			Span(Class("size-2 rounded-full bg-"+string(m.Status.ForestTone()))),
		),
		Div(Class("text-3xl font-bold text-forest mb-1"), g.Text(m.Value)),
		Div(
			Class("flex items-center gap-1 text-sm text-muted-foreground"),
			shared.Icon(trend, "size-4"),
			g.Text(m.Change),
		),
	)
}

func carbonSink(c models.CarbonSink) g.Node {
	return Div(
		Class("flex items-center justify-between"),
		g.Attr("data-sink", shared.Slug(c.Forest)),
		Div(
			P(Class("font-medium"), g.Text(c.Forest)),
			P(Class("text-sm text-muted-foreground"), g.Text(c.Carbon+" stored")),
		),
		Div(
			Class("text-right"),
			P(Class("font-semibold text-forest"), g.Text(c.Efficiency)),
			P(Class("text-xs text-muted-foreground"), g.Text("efficiency")),
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

func alert(a models.DeforestationAlert) g.Node {
	return Div(
		Class("rounded-lg border border-border/50 p-3"),
		Div(
			Class("flex items-center justify-between mb-1"),
			P(Class("text-sm font-medium"), g.Text(a.Location)),
			shared.Badge(a.Severity.Variant(), string(a.Severity)),
		),
		P(Class("text-xs text-muted-foreground"), g.Text(a.Area+" · "+a.Time)),
	)
}
