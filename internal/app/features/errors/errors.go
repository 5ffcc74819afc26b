// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// Handler is the errors feature handler.
// No state needed; it just renders pages.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// NotFound renders the 404 page. Mount it as the router's NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Log.Debug("page not found", zap.String("path", r.URL.Path))
	RenderNotFound(w, r, h.Log)
}

// MethodNotAllowed renders a 405 page.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusMethodNotAllowed, pageData{
		Title:   "Method not allowed",
		Message: "This page can't be requested that way.",
		BackURL: "/",
	}, h.Log)
}
