package wildlife

import (
	"net/http"

	shared "github.com/dalemusser/earthpulse/internal/app/features/shared/views"
	"github.com/dalemusser/earthpulse/internal/app/store/catalog"
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the wildlife monitoring page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type pageData struct {
	viewdata.BaseVM
	Counters models.CounterSet
	Species  []models.Species
}

// ServeWildlife handles GET /wildlife.
func (h *Handler) ServeWildlife(w http.ResponseWriter, r *http.Request) {
	set, _ := catalog.CounterSet(catalog.SetWildlife)
	data := pageData{
		BaseVM:   viewdata.NewBaseVM(r, "Wildlife AI"),
		Counters: set,
		Species:  catalog.Species(),
	}
	shared.Render(w, http.StatusOK, page(data), h.Log)
}
