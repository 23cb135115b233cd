package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLanguage = "🌐"
)

// Layout sizing
const (
	PreferencesWidth  float32 = 460
	PreferencesHeight float32 = 320
)
