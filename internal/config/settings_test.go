package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDefaultProvider(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if index := settings.GetDefaultProvider(); index != DefaultProviderIndex {
		t.Errorf("Expected default provider %d, got %d", DefaultProviderIndex, index)
	}

	// Round trip for every valid index
	for i := 0; i < 6; i++ {
		settings.SetDefaultProvider(i)
		if got := settings.GetDefaultProvider(); got != i {
			t.Errorf("Expected provider index %d, got %d", i, got)
		}
	}

	// Negative values are clamped
	settings.SetDefaultProvider(-3)
	if got := settings.GetDefaultProvider(); got != DefaultProviderIndex {
		t.Errorf("Negative index should be stored as %d, got %d", DefaultProviderIndex, got)
	}
}

func TestDefaultProvider_SurvivesNewSettings(t *testing.T) {
	app := test.NewApp()
	NewSettings(app).SetDefaultProvider(4)

	if got := NewSettings(app).GetDefaultProvider(); got != 4 {
		t.Errorf("Expected stored provider 4, got %d", got)
	}
	if got := app.Preferences().Int(KeyDefaultProvider); got != 4 {
		t.Errorf("Expected raw preference 4 under %q, got %d", KeyDefaultProvider, got)
	}
}

func TestDarkTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetDarkTheme() != DefaultUseDarkTheme {
		t.Errorf("Expected default dark theme %v", DefaultUseDarkTheme)
	}

	settings.SetDarkTheme(true)
	if !settings.GetDarkTheme() {
		t.Error("Dark theme should be enabled")
	}
}

func TestToggleDarkTheme_Involution(t *testing.T) {
	for _, initial := range []bool{false, true} {
		app := test.NewApp()
		settings := NewSettings(app)
		settings.SetDarkTheme(initial)

		first := settings.ToggleDarkTheme()
		if first == initial {
			t.Errorf("First toggle from %v should flip the value", initial)
		}

		second := settings.ToggleDarkTheme()
		if second != initial || settings.GetDarkTheme() != initial {
			t.Errorf("Two toggles should restore %v, got %v", initial, settings.GetDarkTheme())
		}
	}
}

func TestUseHTTPS(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetUseHTTPS() {
		t.Error("HTTPS fallback should be off by default")
	}

	settings.SetUseHTTPS(true)
	if !settings.GetUseHTTPS() {
		t.Error("HTTPS fallback should be on")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
