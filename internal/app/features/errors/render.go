// internal/app/features/errors/render.go
package errors

import (
	"net/http"
	"strconv"

	shared "github.com/dalemusser/earthpulse/internal/app/features/shared/views"
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title   string
	Message string
	BackURL string
}

// RenderNotFound shows a friendly "page not found" page with a 404 status.
func RenderNotFound(w http.ResponseWriter, r *http.Request, log *zap.Logger) {
	render(w, r, http.StatusNotFound, pageData{
		Title:   "Page not found",
		Message: "The page you're looking for doesn't exist or has moved.",
		BackURL: "/",
	}, log)
}

// RenderServerError shows a generic failure page with a 500 status.
func RenderServerError(w http.ResponseWriter, r *http.Request, log *zap.Logger) {
	render(w, r, http.StatusInternalServerError, pageData{
		Title:   "Something went wrong",
		Message: "We couldn't load this page. Please try again in a moment.",
		BackURL: "/",
	}, log)
}

func render(w http.ResponseWriter, r *http.Request, status int, data pageData, log *zap.Logger) {
	vm := viewdata.NewBaseVM(r, data.Title)
	shared.Render(w, status, shared.Layout(vm,
		Section(
			Class("min-h-[60vh] flex items-center justify-center"),
			Div(
				Class("text-center"),
				P(Class("text-7xl font-bold text-gradient-primary mb-4"), g.Text(strconv.Itoa(status))),
				H1(Class("text-2xl font-semibold mb-2"), g.Text(data.Title)),
				P(Class("text-muted-foreground mb-8"), g.Text(data.Message)),
				shared.Actions(shared.CTA{Label: "Return Home", Href: data.BackURL, Icon: "house", Primary: true}),
			),
		),
	), log)
}
