// internal/domain/models/tone.go
package models

// Tone is a theme color token. Views turn it into text-/bg-/border- classes.
type Tone string

const (
	TonePrimary     Tone = "primary"
	ToneAccent      Tone = "accent"
	ToneSecondary   Tone = "secondary"
	ToneMarine      Tone = "marine"
	ToneWildlife    Tone = "wildlife"
	ToneForest      Tone = "forest"
	ToneWarning     Tone = "warning"
	ToneSuccess     Tone = "success"
	ToneDestructive Tone = "destructive"
)

// BadgeVariant selects a badge style.
type BadgeVariant string

const (
	BadgeDefault     BadgeVariant = "default"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeDestructive BadgeVariant = "destructive"
	BadgeOutline     BadgeVariant = "outline"
)
