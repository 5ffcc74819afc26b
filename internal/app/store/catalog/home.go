package catalog

import "github.com/dalemusser/earthpulse/internal/domain/models"

// HeroStats are the badges under the landing headline.
func HeroStats() []models.HeroStat {
	return []models.HeroStat{
		{Label: "Species Tracked", Tone: models.TonePrimary, CounterID: "species-tracked"},
		{Label: "Countries", Tone: models.ToneAccent, CounterID: "countries"},
		{Label: "Real-time", Tone: models.ToneMarine, Static: "24/7"},
	}
}

// Modules is the AI modules grid.
func Modules() []models.Module {
	return []models.Module{
		{
			ID: "wildlife", Icon: "bird", Title: "Wildlife AI",
			Description: "Track endangered species, migration patterns, and population dynamics in real-time.",
			Features:    []string{"Population Monitoring", "Behavior Analysis", "Threat Detection"},
			Tone:        models.ToneWildlife, Href: "/wildlife",
		},
		{
			ID: "marine", Icon: "fish", Title: "Marine AI",
			Description: "Monitor ocean health, marine life, and underwater ecosystem changes.",
			Features:    []string{"Ocean Health", "Species Tracking", "Coral Monitoring"},
			Tone:        models.ToneMarine, Href: "/marine",
		},
		{
			ID: "forest", Icon: "tree-pine", Title: "Forest AI",
			Description: "Detect deforestation, track forest health, and monitor carbon sequestration.",
			Features:    []string{"Deforestation Alert", "Carbon Tracking", "Biodiversity Index"},
			Tone:        models.ToneForest, Href: "/forest",
		},
		{
			ID: "research", Icon: "microscope", Title: "Research Portal",
			Description: "Advanced analytics and research tools for conservation scientists.",
			Features:    []string{"Data Analysis", "Predictive Models", "Research Collaboration"},
			Tone:        models.TonePrimary, Href: "/research",
		},
		{
			ID: "education", Icon: "graduation-cap", Title: "Education Hub",
			Description: "Educational resources and interactive learning about conservation.",
			Features:    []string{"Interactive Maps", "Learning Modules", "Virtual Tours"},
			Tone:        models.ToneAccent, Href: "/education",
		},
		{
			ID: "citizen", Icon: "users", Title: "Citizen Science",
			Description: "Contribute to global conservation through community data collection.",
			Features:    []string{"Data Collection", "Community Reports", "Impact Tracking"},
			Tone:        models.ToneSecondary, Href: "/citizen",
		},
	}
}

// PreviewStats are the key metrics in the live dashboard preview.
func PreviewStats() []models.PreviewStat {
	return []models.PreviewStat{
		{Label: "Active Monitoring Stations", CounterID: "monitoring-stations", Change: "+156 today", Trend: models.TrendUp, Tone: models.TonePrimary},
		{Label: "Species Under Protection", CounterID: "protected-species", Change: "+23 this week", Trend: models.TrendUp, Tone: models.ToneAccent},
		{Label: "Deforestation Alerts", CounterID: "deforestation-alerts", Change: "-12% from last month", Trend: models.TrendDown, Tone: models.ToneWarning},
		{Label: "Ocean Health Score", Value: "73.2%", Change: "+2.1% improvement", Trend: models.TrendUp, Tone: models.ToneMarine},
	}
}

// RecentAlerts is the dashboard preview's alert panel.
func RecentAlerts() []models.Alert {
	return []models.Alert{
		{Type: models.AlertCritical, Icon: "triangle-alert", Title: "Amazon Deforestation Spike", Location: "Brazil, Acre State", Time: "2 hours ago"},
		{Type: models.AlertWarning, Icon: "activity", Title: "Coral Bleaching Detected", Location: "Great Barrier Reef", Time: "4 hours ago"},
		{Type: models.AlertSuccess, Icon: "circle-check", Title: "Tiger Population Increase", Location: "India, Madhya Pradesh", Time: "1 day ago"},
	}
}

// PreviewStatus is the dashboard preview's system-status card.
func PreviewStatus() []models.StatusLine {
	return []models.StatusLine{
		{Label: "Satellites Connected", Value: "847/847"},
		{Label: "AI Models Active", Value: "12/12"},
		{Label: "Data Streams", Value: "Live"},
	}
}

// InvestorMetrics are the market and impact tiles.
func InvestorMetrics() []models.InvestorMetric {
	return []models.InvestorMetric{
		{Icon: "target", Label: "SDG Goals Aligned", Value: "12/17", Description: "UN Sustainable Development Goals"},
		{Icon: "trending-up", Label: "Market Size", Value: "$47.8B", Description: "Conservation Technology Market"},
		{Icon: "users", Label: "Potential Users", Value: "2.3M+", Description: "Conservation Professionals Worldwide"},
		{Icon: "globe", Label: "Global Reach", Value: "195", Description: "Countries & Territories"},
	}
}

// SDGGoals are the UN goals shown in the alignment table.
func SDGGoals() []models.SDGGoal {
	return []models.SDGGoal{
		{Number: 13, Title: "Climate Action", Primary: true},
		{Number: 14, Title: "Life Below Water", Primary: true},
		{Number: 15, Title: "Life on Land", Primary: true},
		{Number: 6, Title: "Clean Water"},
		{Number: 7, Title: "Clean Energy"},
		{Number: 11, Title: "Sustainable Cities"},
	}
}

// Testimonials are the industry recognition quotes.
func Testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Quote:        "Revolutionary approach to conservation monitoring. The AI-driven insights are unprecedented.",
			Author:       "Dr. Sarah Chen",
			Role:         "Director, WWF Conservation Technology",
			Organization: "World Wildlife Fund",
		},
		{
			Quote:        "This platform represents the future of environmental intelligence and conservation strategy.",
			Author:       "Prof. Michael Rodriguez",
			Role:         "Climate Change Research Lead",
			Organization: "MIT Environmental Solutions",
		},
	}
}
