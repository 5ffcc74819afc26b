// internal/domain/models/content.go
package models

// Content types for the static page sections. Icon fields hold lucide icon
// names rendered through iconify (e.g. "bird", "trending-up").

// HeroStat is a stat badge under the landing headline. CounterID links it to
// an animated counter; Static is shown verbatim when CounterID is empty.
type HeroStat struct {
	Label     string
	Tone      Tone
	CounterID string
	Static    string
}

// Module is a card in the AI modules grid.
type Module struct {
	ID          string
	Icon        string
	Title       string
	Description string
	Features    []string
	Tone        Tone
	Href        string
}

// PreviewStat is a key metric in the dashboard preview.
type PreviewStat struct {
	Label     string
	CounterID string // animated when set
	Value     string // shown verbatim when CounterID is empty
	Change    string
	Trend     Trend
	Tone      Tone
}

// Alert is an entry in a recent-alerts panel.
type Alert struct {
	Type     AlertType
	Icon     string
	Title    string
	Location string
	Time     string
}

// StatusLine is one row of a system-status card.
type StatusLine struct {
	Label string
	Value string
}

// InvestorMetric is a tile in the investor section.
type InvestorMetric struct {
	Icon        string
	Label       string
	Value       string
	Description string
}

// SDGGoal is a UN Sustainable Development Goal the platform aligns with.
type SDGGoal struct {
	Number  int
	Title   string
	Primary bool
}

// Testimonial is a quote in the recognition column.
type Testimonial struct {
	Quote        string
	Author       string
	Role         string
	Organization string
}

// Species is a tracked wildlife population.
type Species struct {
	Name      string
	CounterID string
	Count     int
	Status    SpeciesStatus
	Change    string
}

// Threat is a detected pressure on an ecosystem.
type Threat struct {
	Type     string
	Level    Severity
	Location string
}

// Capability is a small icon tile describing a monitoring capability or a
// research feature.
type Capability struct {
	Icon   string
	Title  string
	Detail string
	Tone   Tone
}

// Metric is an environmental indicator with its recent change.
type Metric struct {
	Name   string
	Value  string
	Change string
	Status MetricStatus
}

// MarineSpecies is a tracked marine population.
type MarineSpecies struct {
	Name  string
	Count int
	Trend Trend
}

// DeforestationAlert is a detected clearing event.
type DeforestationAlert struct {
	Location string
	Area     string
	Severity Severity
	Time     string
}

// CarbonSink is a forest region and its stored carbon.
type CarbonSink struct {
	Forest     string
	Carbon     string
	Efficiency string
}

// DashboardMetric is a headline card on the dashboard page.
type DashboardMetric struct {
	Icon        string
	CounterID   string
	Description string
}
