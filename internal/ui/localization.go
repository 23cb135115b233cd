package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFullURL           = "full_url"
	KeyProvider          = "provider"
	KeyShorten           = "shorten"
	KeyCopy              = "copy"
	KeyDarkTheme         = "dark_theme"
	KeyPreferences       = "preferences"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDefaultProvider   = "default_provider"
	KeyUseHTTPS          = "use_https"
	KeyAppearance        = "appearance"
	KeyShortening        = "shortening"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyEnterURL          = "enter_url"
	KeyChooseProvider    = "choose_provider"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyShortURLCopied    = "short_url_copied"
	KeySettingsSaved     = "settings_saved"
	KeyNothingToCopy     = "nothing_to_copy"
	KeyCopiedToClipboard = "copied_to_clipboard"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Srtnr",
		KeyFullURL:           "Full Url:",
		KeyProvider:          "Provider:",
		KeyShorten:           "Shorten URL!",
		KeyCopy:              "Copy",
		KeyDarkTheme:         "Dark theme",
		KeyPreferences:       "Preferences",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDefaultProvider:   "Default provider",
		KeyUseHTTPS:          "Use https:// for addresses without a scheme",
		KeyAppearance:        "Appearance",
		KeyShortening:        "Shortening",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyEnterURL:          "example.com or https://example.com/page",
		KeyChooseProvider:    "Please choose a provider",
		KeyPleaseEnterURL:    "Please enter a URL",
		KeyShortURLCopied:    "Short Url Copied into clipboard.",
		KeySettingsSaved:     "Preferences saved",
		KeyNothingToCopy:     "Nothing to copy yet",
		KeyCopiedToClipboard: "Copied to clipboard",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Srtnr",
		KeyFullURL:           "Полный URL:",
		KeyProvider:          "Сервис:",
		KeyShorten:           "Сократить!",
		KeyCopy:              "Копировать",
		KeyDarkTheme:         "Тёмная тема",
		KeyPreferences:       "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDefaultProvider:   "Сервис по умолчанию",
		KeyUseHTTPS:          "Добавлять https:// к адресам без схемы",
		KeyAppearance:        "Внешний вид",
		KeyShortening:        "Сокращение",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyEnterURL:          "example.com или https://example.com/page",
		KeyChooseProvider:    "Пожалуйста, выберите сервис",
		KeyPleaseEnterURL:    "Пожалуйста, введите URL",
		KeyShortURLCopied:    "Короткая ссылка скопирована в буфер обмена.",
		KeySettingsSaved:     "Настройки сохранены",
		KeyNothingToCopy:     "Пока нечего копировать",
		KeyCopiedToClipboard: "Скопировано в буфер обмена",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Srtnr",
		KeyFullURL:           "URL completa:",
		KeyProvider:          "Serviço:",
		KeyShorten:           "Encurtar URL!",
		KeyCopy:              "Copiar",
		KeyDarkTheme:         "Tema escuro",
		KeyPreferences:       "Preferências",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyDefaultProvider:   "Serviço padrão",
		KeyUseHTTPS:          "Usar https:// para endereços sem esquema",
		KeyAppearance:        "Aparência",
		KeyShortening:        "Encurtamento",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyEnterURL:          "example.com ou https://example.com/pagina",
		KeyChooseProvider:    "Por favor, escolha um serviço",
		KeyPleaseEnterURL:    "Por favor, digite uma URL",
		KeyShortURLCopied:    "URL curta copiada para a área de transferência.",
		KeySettingsSaved:     "Preferências salvas",
		KeyNothingToCopy:     "Nada para copiar ainda",
		KeyCopiedToClipboard: "Copiado para a área de transferência",
	}
}
