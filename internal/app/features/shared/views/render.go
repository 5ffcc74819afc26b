// internal/app/features/shared/views/render.go
package shared

import (
	"net/http"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"
)

// Render writes node as an HTML response with the given status.
func Render(w http.ResponseWriter, status int, node g.Node, log *zap.Logger) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil && log != nil {
		log.Warn("render page", zap.Error(err))
	}
}
