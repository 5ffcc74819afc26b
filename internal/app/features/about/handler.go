// internal/app/features/about/handler.go
package about

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

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	vm := viewdata.NewBaseVM(r, "About")
	shared.Render(w, http.StatusOK, page(vm), h.Log)
}

func page(vm viewdata.BaseVM) g.Node {
	return shared.Layout(vm,
		shared.PageHero(shared.Hero{
			Icon:     "globe",
			Tone:     models.TonePrimary,
			Title:    "About " + vm.SiteName,
			Subtitle: "Planetary Intelligence",
			Lead:     "A network of AI systems watching Earth's wildlife, oceans and forests, turning satellite, sensor and field data into conservation action.",
		}),
		Section(
			Class("py-16"),
			Div(
				Class("container mx-auto px-6 max-w-4xl"),
				shared.SectionHeader("What we monitor", ""),
				Ul(
					Class("grid md:grid-cols-2 gap-4"),
					g.Map(catalog.Modules(), func(m models.Module) g.Node {
						return Li(
							A(
								Href(m.Href),
								Class("flex items-start gap-4 rounded-lg border border-border/50 p-4 hover:border-"+string(m.Tone)+"/40"),
								shared.IconBadge(m.Icon, m.Tone),
								Div(
									P(Class("font-semibold"), g.Text(m.Title)),
									P(Class("text-sm text-muted-foreground"), g.Text(m.Description)),
								),
							),
						)
					}),
				),
			),
		),
	)
}
