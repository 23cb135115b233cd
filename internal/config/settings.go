package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyDefaultProvider = "default-provider"
	KeyUseDarkTheme    = "use-dark-theme"
	KeyUseHTTPS        = "use-https"
	KeyLanguage        = "app-language"
)

// Default values
const (
	DefaultProviderIndex = 0
	DefaultUseDarkTheme  = false
	DefaultUseHTTPS      = false
	DefaultLanguage      = "system"
)

// Settings manages the persisted user preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDefaultProvider returns the index of the provider last used successfully
func (s *Settings) GetDefaultProvider() int {
	index := s.app.Preferences().IntWithFallback(KeyDefaultProvider, DefaultProviderIndex)
	if index < 0 {
		return DefaultProviderIndex
	}
	return index
}

// SetDefaultProvider stores the provider index
func (s *Settings) SetDefaultProvider(index int) {
	if index < 0 {
		index = DefaultProviderIndex
	}
	s.app.Preferences().SetInt(KeyDefaultProvider, index)
}

// GetDarkTheme returns whether the dark theme is active
func (s *Settings) GetDarkTheme() bool {
	return s.app.Preferences().BoolWithFallback(KeyUseDarkTheme, DefaultUseDarkTheme)
}

// SetDarkTheme sets whether the dark theme is active
func (s *Settings) SetDarkTheme(dark bool) {
	s.app.Preferences().SetBool(KeyUseDarkTheme, dark)
}

// ToggleDarkTheme flips the theme preference and returns the new value
func (s *Settings) ToggleDarkTheme() bool {
	dark := !s.GetDarkTheme()
	s.SetDarkTheme(dark)
	return dark
}

// GetUseHTTPS returns whether scheme-less input gets https:// instead of http://
func (s *Settings) GetUseHTTPS() bool {
	return s.app.Preferences().BoolWithFallback(KeyUseHTTPS, DefaultUseHTTPS)
}

// SetUseHTTPS sets the fallback scheme preference
func (s *Settings) SetUseHTTPS(useHTTPS bool) {
	s.app.Preferences().SetBool(KeyUseHTTPS, useHTTPS)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
