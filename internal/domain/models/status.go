// internal/domain/models/status.go
package models

// SpeciesStatus is an IUCN-style conservation status label.
type SpeciesStatus string

const (
	StatusCritical   SpeciesStatus = "Critical"
	StatusVulnerable SpeciesStatus = "Vulnerable"
)

// Variant returns the badge style for the status.
func (s SpeciesStatus) Variant() BadgeVariant {
	if s == StatusCritical {
		return BadgeDestructive
	}
	return BadgeSecondary
}

// Severity grades a threat or incident.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
)

// LevelVariant is the badge style for wildlife threat levels, where High is
// the top of the scale.
func (s Severity) LevelVariant() BadgeVariant {
	switch s {
	case SeverityHigh:
		return BadgeDestructive
	case SeverityMedium:
		return BadgeSecondary
	default:
		return BadgeOutline
	}
}

// Variant is the badge style for marine and forest incidents, where Critical
// is the top of the scale.
func (s Severity) Variant() BadgeVariant {
	switch s {
	case SeverityCritical:
		return BadgeDestructive
	case SeverityHigh:
		return BadgeSecondary
	default:
		return BadgeOutline
	}
}

// AlertType classifies a dashboard alert.
type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertSuccess  AlertType = "success"
)

// Tone returns the icon and badge color for the alert.
func (a AlertType) Tone() Tone {
	switch a {
	case AlertCritical:
		return ToneDestructive
	case AlertWarning:
		return ToneWarning
	default:
		return ToneSuccess
	}
}

// MetricStatus describes the health of an environmental metric.
type MetricStatus string

const (
	MetricCritical  MetricStatus = "critical"
	MetricWarning   MetricStatus = "warning"
	MetricGood      MetricStatus = "good"
	MetricImproving MetricStatus = "improving"
)

// OceanTone is the status dot color on the marine page.
func (s MetricStatus) OceanTone() Tone {
	switch s {
	case MetricCritical:
		return ToneDestructive
	case MetricWarning:
		return ToneWarning
	default:
		return ToneSuccess
	}
}

// OceanImproving reports whether the marine page shows an upward trend.
func (s MetricStatus) OceanImproving() bool {
	return s == MetricGood
}

// ForestTone is the status dot color on the forest page.
func (s MetricStatus) ForestTone() Tone {
	switch s {
	case MetricWarning:
		return ToneWarning
	case MetricGood:
		return ToneSuccess
	default:
		return ToneAccent
	}
}

// ForestImproving reports whether the forest page shows an upward trend.
func (s MetricStatus) ForestImproving() bool {
	return s != MetricWarning
}

// Trend is the direction a population or stat is moving.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Tone returns the text color for the trend.
func (t Trend) Tone() Tone {
	switch t {
	case TrendUp:
		return ToneSuccess
	case TrendDown:
		return ToneDestructive
	default:
		return ToneWarning
	}
}

// Variant returns the badge style for the trend.
func (t Trend) Variant() BadgeVariant {
	switch t {
	case TrendUp:
		return BadgeOutline
	case TrendDown:
		return BadgeDestructive
	default:
		return BadgeSecondary
	}
}
