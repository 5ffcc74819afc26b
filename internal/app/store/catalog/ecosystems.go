package catalog

import "github.com/dalemusser/earthpulse/internal/domain/models"

var species = []models.Species{
	{Name: "Siberian Tiger", CounterID: "siberian-tiger", Count: 432, Status: models.StatusCritical, Change: "+12"},
	{Name: "Snow Leopard", CounterID: "snow-leopard", Count: 4080, Status: models.StatusVulnerable, Change: "+89"},
	{Name: "Giant Panda", CounterID: "giant-panda", Count: 1864, Status: models.StatusVulnerable, Change: "+156"},
	{Name: "Black Rhino", CounterID: "black-rhino", Count: 5500, Status: models.StatusCritical, Change: "+45"},
}

// Species are the tracked wildlife populations.
func Species() []models.Species {
	return append([]models.Species(nil), species...)
}

// WildlifeThreats is the wildlife threat-detection panel.
func WildlifeThreats() []models.Threat {
	return []models.Threat{
		{Type: "Poaching Activity", Level: models.SeverityHigh, Location: "Kenya, Tsavo"},
		{Type: "Habitat Loss", Level: models.SeverityMedium, Location: "Indonesia, Sumatra"},
		{Type: "Human Conflict", Level: models.SeverityLow, Location: "India, Assam"},
	}
}

// WildlifeCapabilities are the AI feature tiles on the wildlife page.
func WildlifeCapabilities() []models.Capability {
	return []models.Capability{
		{Icon: "camera", Title: "Camera Traps", Detail: "12,847 active", Tone: models.ToneWildlife},
		{Icon: "activity", Title: "Behavior Analysis", Detail: "Real-time AI", Tone: models.ToneAccent},
		{Icon: "shield", Title: "Anti-Poaching", Detail: "24/7 alerts", Tone: models.TonePrimary},
	}
}

// WildlifeStatus is the wildlife system-status card.
func WildlifeStatus() []models.StatusLine {
	return []models.StatusLine{
		{Label: "Satellites", Value: "Online"},
		{Label: "AI Models", Value: "Active"},
		{Label: "Field Sensors", Value: "Connected"},
	}
}

// OceanMetrics are the marine health indicators.
func OceanMetrics() []models.Metric {
	return []models.Metric{
		{Name: "Ocean Temperature", Value: "22.4°C", Change: "+0.8°C", Status: models.MetricWarning},
		{Name: "pH Level", Value: "8.1", Change: "-0.1", Status: models.MetricCritical},
		{Name: "Coral Coverage", Value: "68%", Change: "-12%", Status: models.MetricWarning},
		{Name: "Fish Populations", Value: "2.3M", Change: "+156K", Status: models.MetricGood},
	}
}

// MarineThreats is the marine threats panel.
func MarineThreats() []models.Threat {
	return []models.Threat{
		{Type: "Coral Bleaching", Level: models.SeverityHigh, Location: "Great Barrier Reef"},
		{Type: "Plastic Pollution", Level: models.SeverityMedium, Location: "Pacific Gyre"},
		{Type: "Overfishing", Level: models.SeverityHigh, Location: "Atlantic Coast"},
		{Type: "Ocean Acidification", Level: models.SeverityCritical, Location: "Arctic Ocean"},
	}
}

// MarineSpecies are the tracked marine populations.
func MarineSpecies() []models.MarineSpecies {
	return []models.MarineSpecies{
		{Name: "Blue Whale", Count: 847, Trend: models.TrendUp},
		{Name: "Sea Turtle", Count: 23456, Trend: models.TrendUp},
		{Name: "Hammerhead Shark", Count: 1203, Trend: models.TrendDown},
		{Name: "Dolphin Pods", Count: 892, Trend: models.TrendStable},
	}
}

// MarineCapabilities are the monitoring system tiles on the marine page.
func MarineCapabilities() []models.Capability {
	return []models.Capability{
		{Icon: "thermometer", Title: "Temperature Sensors", Detail: "3,847 active buoys", Tone: models.TonePrimary},
		{Icon: "eye", Title: "Underwater Cameras", Detail: "Real-time feeds", Tone: models.ToneMarine},
		{Icon: "waves", Title: "Acoustic Monitoring", Detail: "Marine life sounds", Tone: models.ToneAccent},
	}
}

// ForestMetrics are the forest health indicators.
func ForestMetrics() []models.Metric {
	return []models.Metric{
		{Name: "Forest Coverage", Value: "68.2%", Change: "-2.1%", Status: models.MetricWarning},
		{Name: "Carbon Sequestration", Value: "847 Mt", Change: "+12 Mt", Status: models.MetricGood},
		{Name: "Biodiversity Index", Value: "7.8/10", Change: "+0.3", Status: models.MetricGood},
		{Name: "Deforestation Rate", Value: "0.5%", Change: "-0.8%", Status: models.MetricImproving},
	}
}

// DeforestationAlerts is the forest alert panel.
func DeforestationAlerts() []models.DeforestationAlert {
	return []models.DeforestationAlert{
		{Location: "Amazon Basin, Brazil", Area: "2,847 hectares", Severity: models.SeverityCritical, Time: "2 hours ago"},
		{Location: "Congo Basin, DRC", Area: "1,203 hectares", Severity: models.SeverityHigh, Time: "6 hours ago"},
		{Location: "Sumatra, Indonesia", Area: "876 hectares", Severity: models.SeverityMedium, Time: "1 day ago"},
	}
}

// CarbonSinks are the major forest carbon stores.
func CarbonSinks() []models.CarbonSink {
	return []models.CarbonSink{
		{Forest: "Amazon Rainforest", Carbon: "150 Gt", Efficiency: "92%"},
		{Forest: "Congo Basin", Carbon: "60 Gt", Efficiency: "88%"},
		{Forest: "Boreal Forest", Carbon: "88 Gt", Efficiency: "85%"},
		{Forest: "Temperate Forests", Carbon: "45 Gt", Efficiency: "78%"},
	}
}

// ForestCapabilities are the monitoring tiles on the forest page.
func ForestCapabilities() []models.Capability {
	return []models.Capability{
		{Icon: "satellite", Title: "Satellite Analysis", Detail: "Daily imagery", Tone: models.TonePrimary},
		{Icon: "activity", Title: "Change Detection", Detail: "Real-time alerts", Tone: models.ToneForest},
		{Icon: "leaf", Title: "Species Analysis", Detail: "Biodiversity tracking", Tone: models.ToneAccent},
	}
}

// ResearchFeatures are the research portal feature cards.
func ResearchFeatures() []models.Capability {
	return []models.Capability{
		{Icon: "chart-column", Title: "Data Analysis", Detail: "Powerful tools for analyzing conservation data and extracting actionable insights.", Tone: models.TonePrimary},
		{Icon: "zap", Title: "Predictive Models", Detail: "Leverage AI-driven models to forecast trends and outcomes in environmental research.", Tone: models.TonePrimary},
		{Icon: "users", Title: "Collaboration", Detail: "Work together with scientists and organizations globally on conservation projects.", Tone: models.TonePrimary},
	}
}

// DashboardMetrics are the headline cards on the dashboard page.
func DashboardMetrics() []models.DashboardMetric {
	return []models.DashboardMetric{
		{Icon: "activity", CounterID: "active-projects", Description: "Ongoing conservation initiatives worldwide."},
		{Icon: "trending-up", CounterID: "data-streams", Description: "Live data feeds from sensors and satellites."},
		{Icon: "users", CounterID: "collaborators", Description: "Scientists and organizations connected."},
	}
}
