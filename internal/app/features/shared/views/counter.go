// internal/app/features/shared/views/counter.go
package shared

import (
	"strconv"

	"github.com/dalemusser/earthpulse/internal/app/system/numfmt"
	"github.com/dalemusser/earthpulse/internal/domain/models"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CounterStream marks a region whose counters animate together. The browser
// opens the set's stream when the region scrolls into view and updates every
// Counter inside it.
func CounterStream(set models.CounterSet, lang language.Tag, children ...g.Node) g.Node {
	return Div(
		g.Attr("data-counter-stream", set.StreamPath()+"?lang="+lang.String()),
		g.Attr("data-counter-set", set.Name),
		g.Group(children),
	)
}

// Counter renders an animated number. The server renders the final value so
// pages read correctly without scripts; counter.js swaps in data-start (0 in
// the counter's display format) when the stream opens.
func Counter(spec models.CounterSpec, lang language.Tag, extra string) g.Node {
	cls := "tabular-nums"
	if extra != "" {
		cls += " " + extra
	}
	final := numfmt.Display(lang, spec, spec.Target)
	return Span(
		Class(cls),
		g.Attr("data-counter", spec.ID),
		g.Attr("data-target", strconv.Itoa(spec.Target)),
		g.Attr("aria-label", final),
		g.Attr("data-start", numfmt.Display(lang, spec, 0)),
		g.Text(final),
	)
}

// SetCounter looks id up in set and renders it, or renders nothing when the
// set has no such counter.
func SetCounter(set models.CounterSet, id string, lang language.Tag, extra string) g.Node {
	spec, ok := set.Find(id)
	if !ok {
		return nil
	}
	return Counter(spec, lang, extra)
}
