package marine

import (
	"net/http"

	shared "github.com/dalemusser/earthpulse/internal/app/features/shared/views"
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler serves the marine monitoring page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeMarine handles GET /marine.
func (h *Handler) ServeMarine(w http.ResponseWriter, r *http.Request) {
	vm := viewdata.NewBaseVM(r, "Marine AI")
	shared.Render(w, http.StatusOK, page(vm), h.Log)
}
