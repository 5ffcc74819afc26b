// internal/app/features/shared/views/layout.go
package shared

import (
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Layout wraps page content in the document shell: head, banner, navbar and
// footer.
func Layout(vm viewdata.BaseVM, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(vm.Lang.String()),
			Class("dark"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(vm.PageTitle())),
				Meta(Name("description"), Content(vm.Description)),

				Meta(g.Attr("property", "og:title"), Content(vm.PageTitle())),
				Meta(g.Attr("property", "og:description"), Content(vm.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(vm.BaseURL != "",
					Meta(g.Attr("property", "og:url"), Content(vm.BaseURL+vm.Path)),
				),

				Link(Rel("icon"), Href("/static/favicon.svg")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				Script(Src("https://code.iconify.design/3/3.1.1/iconify.min.js")),
			),
			Body(
				Class("min-h-screen bg-background text-foreground"),
				Banner(vm),
				Navbar(vm),
				Main(Class("pt-16"), g.Group(content)),
				SiteFooter(vm),
				Script(Src("/static/js/counter.js"), Defer()),
			),
		),
	})
}

// Banner shows the configured announcement, if any.
func Banner(vm viewdata.BaseVM) g.Node {
	if vm.BannerHTML == "" {
		return nil
	}
	return Div(
		Class("site-banner fixed top-0 inset-x-0 z-[60] bg-primary/90 text-primary-foreground text-center text-sm py-1"),
		g.Attr("role", "status"),
		g.Raw(vm.BannerHTML),
	)
}
