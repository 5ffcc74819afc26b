package home

import (
	"net/http"

	shared "github.com/dalemusser/earthpulse/internal/app/features/shared/views"
	"github.com/dalemusser/earthpulse/internal/app/store/catalog"
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type pageData struct {
	viewdata.BaseVM
	Hero    models.CounterSet
	Preview models.CounterSet
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	hero, _ := catalog.CounterSet(catalog.SetHero)
	preview, _ := catalog.CounterSet(catalog.SetPreview)

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, ""),
		Hero:    hero,
		Preview: preview,
	}
	shared.Render(w, http.StatusOK, page(data), h.Log)
}
