package research

import (
	"net/http"

	shared "github.com/dalemusser/earthpulse/internal/app/features/shared/views"
	"github.com/dalemusser/earthpulse/internal/app/store/catalog"
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Handler serves the research portal page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeResearch handles GET /research.
func (h *Handler) ServeResearch(w http.ResponseWriter, r *http.Request) {
	vm := viewdata.NewBaseVM(r, "Research Portal")
	shared.Render(w, http.StatusOK, page(vm), h.Log)
}

func page(vm viewdata.BaseVM) g.Node {
	return shared.Layout(vm,
		shared.PageHero(shared.Hero{
			Icon:     "microscope",
			Tone:     models.TonePrimary,
			Title:    "Research Portal",
			Subtitle: "Advanced Conservation Analytics",
			Lead:     "Access cutting-edge analytics, predictive models, and collaborative tools designed for conservation scientists and researchers. Drive impactful discoveries and foster global collaboration for a sustainable future.",
			Actions: []shared.CTA{
				{Label: "Launch Analytics", Icon: "chart-column", Primary: true},
				{Label: "Collaborate", Icon: "users"},
			},
		}),
		Section(
			Class("py-16"),
			Div(
				Class("container mx-auto px-6 grid md:grid-cols-3 gap-6"),
				g.Map(catalog.ResearchFeatures(), func(c models.Capability) g.Node {
					return shared.Card("",
						g.Attr("data-feature", shared.Slug(c.Title)),
						Div(Class("mb-4"), shared.IconBadge(c.Icon, c.Tone)),
						H3(Class("text-xl font-semibold mb-2"), g.Text(c.Title)),
						P(Class("text-muted-foreground"), g.Text(c.Detail)),
					)
				}),
			),
		),
	)
}
