// internal/domain/models/counters.go
package models

import "time"

// CounterSpec describes one animated number on a page.
type CounterSpec struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Target  int    `json:"target"`
	Suffix  string `json:"suffix,omitempty"`  // appended to the formatted value, e.g. "+"
	Compact bool   `json:"compact,omitempty"` // show 2500000 as 2.5M
	Tone    Tone   `json:"tone,omitempty"`
}

// CounterSet groups the counters that animate together on one page section.
type CounterSet struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"-"`
	Counters []CounterSpec `json:"counters"`
}

// Find returns the counter with the given ID.
func (s CounterSet) Find(id string) (CounterSpec, bool) {
	for _, c := range s.Counters {
		if c.ID == id {
			return c, true
		}
	}
	return CounterSpec{}, false
}

// StreamPath is the SSE endpoint that animates this set.
func (s CounterSet) StreamPath() string {
	return "/counters/" + s.Name + "/stream"
}
