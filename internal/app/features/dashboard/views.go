package dashboard

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
			Icon:     "layout-dashboard",
			Tone:     models.TonePrimary,
			Title:    "Dashboard",
			Subtitle: "Conservation Insights",
			Lead:     "Visualize real-time conservation data, monitor project progress, and collaborate with global teams, all in one unified dashboard.",
			Actions: []shared.CTA{
				{Label: "Explore Data", Icon: "chart-column", Primary: true},
				{Label: "Team Portal", Icon: "users"},
			},
		}),
		Section(
			Class("py-16"),
			Div(
				Class("container mx-auto px-6"),
				shared.CounterStream(d.Counters, d.Lang,
					Div(
						Class("grid md:grid-cols-3 gap-6"),
						g.Map(catalog.DashboardMetrics(), func(m models.DashboardMetric) g.Node {
							return metricCard(d, m)
						}),
					),
				),
			),
		),
	)
}

func metricCard(d pageData, m models.DashboardMetric) g.Node {
	spec, ok := d.Counters.Find(m.CounterID)
	if !ok {
		return nil
	}
	return shared.Card("text-center",
		Div(Class("flex justify-center mb-4"), shared.IconBadge(m.Icon, spec.Tone)),
		Div(Class("text-4xl font-bold text-primary mb-1"), shared.Counter(spec, d.Lang, "")),
		H3(Class("text-lg font-semibold mb-2"), g.Text(spec.Label)),
		P(Class("text-sm text-muted-foreground"), g.Text(m.Description)),
	)
}
