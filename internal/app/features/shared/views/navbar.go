// internal/app/features/shared/views/navbar.go
package shared

import (
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Navbar is the fixed top bar. Its background follows the current section.
func Navbar(vm viewdata.BaseVM) g.Node {
	return Nav(
		Class("fixed top-0 left-0 right-0 z-50 border-b backdrop-blur-md transition-colors "+vm.NavStyle),
		Div(
			Class("container mx-auto px-6"),
			Div(
				Class("flex items-center justify-between h-16"),
				A(
					Href("/"),
					Class("flex items-center space-x-2"),
					Div(
						Class("w-8 h-8 rounded-full bg-gradient-primary flex items-center justify-center"),
						Icon("globe", "size-4 text-white"),
					),
					Span(Class("font-bold text-lg hidden sm:inline"), g.Text(vm.SiteName)),
					Span(Class("font-bold text-lg sm:hidden"), g.Text(vm.ShortName)),
				),
				Div(
					Class("hidden md:flex items-center space-x-6"),
					g.Map(vm.Nav, navLink),
				),
				Details(
					Class("md:hidden relative"),
					Summary(
						Class("list-none cursor-pointer p-2"),
						g.Attr("aria-label", "Menu"),
						Icon("menu", "size-5"),
					),
					Div(
						Class("absolute right-0 mt-2 w-48 rounded-lg border bg-card p-2 flex flex-col"),
						g.Map(vm.Nav, navLink),
					),
				),
			),
		),
	)
}

func navLink(n viewdata.NavLinkVM) g.Node {
	cls := "text-sm font-medium transition-colors hover:text-primary"
	if n.Active {
		cls += " text-primary"
	} else {
		cls += " text-muted-foreground"
	}
	return A(
		Href(n.Href),
		Class(cls),
		g.If(n.Active, g.Attr("aria-current", "page")),
		g.Text(n.Label),
	)
}
