package forest

import (
	"net/http"

	shared "github.com/dalemusser/earthpulse/internal/app/features/shared/views"
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler serves the forest monitoring page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeForest handles GET /forest.
func (h *Handler) ServeForest(w http.ResponseWriter, r *http.Request) {
	vm := viewdata.NewBaseVM(r, "Forest AI")
	shared.Render(w, http.StatusOK, page(vm), h.Log)
}
