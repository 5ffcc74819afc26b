package counters

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter mounted under /counters. streamMW wraps only the
// stream endpoint.
func Routes(h *Handler, streamMW ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{set}", h.ServeSet)
	r.With(streamMW...).Get("/{set}/stream", h.ServeStream)
	return r
}
