// internal/app/features/shared/views/footer.go
package shared

import (
	"github.com/dalemusser/earthpulse/internal/app/system/viewdata"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SiteFooter is the page footer with the main menu repeated.
func SiteFooter(vm viewdata.BaseVM) g.Node {
	return Footer(
		Class("border-t border-border/50 py-10 mt-20"),
		Div(
			Class("container mx-auto px-6 flex flex-col md:flex-row items-center justify-between gap-4"),
			Div(
				Class("flex items-center space-x-2"),
				Icon("globe", "size-4 text-primary"),
				Span(Class("font-semibold"), g.Text(vm.SiteName)),
			),
			Nav(
				Class("flex flex-wrap gap-4 text-sm text-muted-foreground"),
				g.Map(vm.Nav, func(n viewdata.NavLinkVM) g.Node {
					return A(Href(n.Href), Class("hover:text-primary"), g.Text(n.Label))
				}),
			),
			P(Class("text-xs text-muted-foreground"), g.Text("Conservation intelligence for a living planet.")),
		),
	)
}
