package counters

import (
	"net/http"

	"github.com/dalemusser/earthpulse/internal/app/system/numfmt"
	"github.com/go-chi/render"
)

type counterJSON struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Target  int    `json:"target"`
	Display string `json:"display"`
	Suffix  string `json:"suffix,omitempty"`
	Compact bool   `json:"compact,omitempty"`
	Tone    string `json:"tone,omitempty"`
}

type setJSON struct {
	Name       string        `json:"name"`
	DurationMS int64         `json:"duration_ms"`
	Stream     string        `json:"stream"`
	Counters   []counterJSON `json:"counters"`
}

// ServeSet handles GET /counters/{set}.
//
//	{ "name":"hero", "duration_ms":1200, "stream":"/counters/hero/stream",
//	  "counters":[{"id":"countries","label":"Countries","target":150,"display":"150+", ...}] }
func (h *Handler) ServeSet(w http.ResponseWriter, r *http.Request) {
	set, ok := h.lookup(w, r)
	if !ok {
		return
	}
	tag := numfmt.ResolveTag(r)

	resp := setJSON{
		Name:       set.Name,
		DurationMS: set.Duration.Milliseconds(),
		Stream:     set.StreamPath(),
		Counters:   make([]counterJSON, 0, len(set.Counters)),
	}
	for _, c := range set.Counters {
		resp.Counters = append(resp.Counters, counterJSON{
			ID:      c.ID,
			Label:   c.Label,
			Target:  c.Target,
			Display: numfmt.Display(tag, c, c.Target),
			Suffix:  c.Suffix,
			Compact: c.Compact,
			Tone:    string(c.Tone),
		})
	}
	render.JSON(w, r, resp)
}
