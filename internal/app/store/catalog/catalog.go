// Package catalog holds the site's built-in content: stats, alerts, species
// lists and the counter sets the pages animate. Everything here is fixed at
// compile time. Accessors return fresh copies so callers cannot mutate the
// shared tables.
package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/dalemusser/earthpulse/internal/domain/models"
)

// Counter set names.
const (
	SetHero      = "hero"
	SetPreview   = "preview"
	SetDashboard = "dashboard"
	SetWildlife  = "wildlife"
)

var counterSets = map[string]models.CounterSet{
	SetHero: {
		Name: SetHero,
		Counters: []models.CounterSpec{
			{ID: "species-tracked", Label: "Species Tracked", Target: 2500000, Suffix: "+", Compact: true, Tone: models.TonePrimary},
			{ID: "countries", Label: "Countries", Target: 150, Suffix: "+", Tone: models.ToneAccent},
		},
	},
	SetPreview: {
		Name: SetPreview,
		Counters: []models.CounterSpec{
			{ID: "monitoring-stations", Label: "Active Monitoring Stations", Target: 12847, Tone: models.TonePrimary},
			{ID: "protected-species", Label: "Species Under Protection", Target: 2847, Tone: models.ToneAccent},
			{ID: "deforestation-alerts", Label: "Deforestation Alerts", Target: 47, Tone: models.ToneWarning},
		},
	},
	SetDashboard: {
		Name: SetDashboard,
		Counters: []models.CounterSpec{
			{ID: "active-projects", Label: "Active Projects", Target: 24, Tone: models.TonePrimary},
			{ID: "data-streams", Label: "Data Streams", Target: 128, Tone: models.TonePrimary},
			{ID: "collaborators", Label: "Collaborators", Target: 56, Tone: models.TonePrimary},
		},
	},
	SetWildlife: {
		Name: SetWildlife,
		Counters: []models.CounterSpec{
			{ID: "siberian-tiger", Label: "Siberian Tiger", Target: 432, Tone: models.ToneWildlife},
			{ID: "snow-leopard", Label: "Snow Leopard", Target: 4080, Tone: models.ToneWildlife},
			{ID: "giant-panda", Label: "Giant Panda", Target: 1864, Tone: models.ToneWildlife},
			{ID: "black-rhino", Label: "Black Rhino", Target: 5500, Tone: models.ToneWildlife},
		},
	},
}

// CounterSet returns the named set with a copy of its counters. A zero
// Duration means the configured default applies.
func CounterSet(name string) (models.CounterSet, bool) {
	set, ok := counterSets[name]
	if !ok {
		return models.CounterSet{}, false
	}
	set.Counters = append([]models.CounterSpec(nil), set.Counters...)
	return set, true
}

// CounterSetNames returns every set name in sorted order.
func CounterSetNames() []string {
	names := make([]string, 0, len(counterSets))
	for name := range counterSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithDuration returns set with its Duration filled in when unset.
func WithDuration(set models.CounterSet, fallback time.Duration) models.CounterSet {
	if set.Duration <= 0 {
		set.Duration = fallback
	}
	return set
}

// Validate checks that every counter target is non-negative and that counter
// IDs are unique within each set.
func Validate() error {
	for _, name := range CounterSetNames() {
		set := counterSets[name]
		if set.Name != name {
			return fmt.Errorf("counter set %q is registered under %q", set.Name, name)
		}
		if len(set.Counters) == 0 {
			return fmt.Errorf("counter set %q has no counters", name)
		}
		seen := make(map[string]bool, len(set.Counters))
		for _, c := range set.Counters {
			if c.ID == "" {
				return fmt.Errorf("counter set %q has a counter with no id", name)
			}
			if seen[c.ID] {
				return fmt.Errorf("counter set %q: duplicate counter id %q", name, c.ID)
			}
			seen[c.ID] = true
			if c.Target < 0 {
				return fmt.Errorf("counter set %q: counter %q has negative target %d", name, c.ID, c.Target)
			}
		}
	}
	for _, sp := range species {
		if _, ok := counterSets[SetWildlife].Find(sp.CounterID); !ok {
			return fmt.Errorf("species %q refers to unknown counter %q", sp.Name, sp.CounterID)
		}
	}
	return nil
}
