package dashboard

import (
	"net/http"

	shared "github.com/dalemusser/earthpulse/internal/app/features/shared/views"
	"github.com/dalemusser/earthpulse/internal/app/store/catalog"
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the conservation dashboard.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type pageData struct {
	viewdata.BaseVM
	Counters models.CounterSet
}

// ServeDashboard handles GET /dashboard.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	set, _ := catalog.CounterSet(catalog.SetDashboard)
	data := pageData{
		BaseVM:   viewdata.NewBaseVM(r, "Dashboard"),
		Counters: set,
	}
	shared.Render(w, http.StatusOK, page(data), h.Log)
}
