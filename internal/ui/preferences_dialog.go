package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/arshubham/srtnr/internal/config"
	"github.com/arshubham/srtnr/internal/provider"
)

// PreferencesDialog edits the stored preferences
type PreferencesDialog struct {
	settings     *config.Settings
	registry     *provider.Registry
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	providerSelect *widget.Select
	darkThemeCheck *widget.Check
	useHTTPSCheck  *widget.Check
	languageSelect *widget.Select
}

// NewPreferencesDialog creates a new preferences dialog. onSaved runs after
// the values have been stored.
func NewPreferencesDialog(settings *config.Settings, registry *provider.Registry, localization *Localization, window fyne.Window, onSaved func()) *PreferencesDialog {
	pd := &PreferencesDialog{
		settings:     settings,
		registry:     registry,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	pd.createUI()
	return pd
}

// Show displays the preferences dialog
func (pd *PreferencesDialog) Show() {
	pd.loadCurrentSettings()
	pd.dialog.Show()
}

// createUI creates the preferences dialog UI
func (pd *PreferencesDialog) createUI() {
	pd.providerSelect = widget.NewSelect(pd.registry.Names(), nil)
	pd.darkThemeCheck = widget.NewCheck(pd.localization.GetText(KeyDarkTheme), nil)
	pd.useHTTPSCheck = widget.NewCheck(pd.localization.GetText(KeyUseHTTPS), nil)

	languageOptions := []string{}
	for code := range pd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	pd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(pd.localization.GetText(KeyShortening)),
		widget.NewSeparator(),

		widget.NewLabel(pd.localization.GetText(KeyDefaultProvider)+":"),
		pd.providerSelect,
		pd.useHTTPSCheck,

		widget.NewSeparator(),
		widget.NewLabel(pd.localization.GetText(KeyAppearance)),
		widget.NewSeparator(),

		pd.darkThemeCheck,
		widget.NewLabel(IconLanguage+" "+pd.localization.GetText(KeyLanguage)+":"),
		pd.languageSelect,
	)

	pd.dialog = dialog.NewCustomConfirm(
		pd.localization.GetText(KeyPreferences),
		pd.localization.GetText(KeySave),
		pd.localization.GetText(KeyCancel),
		form,
		pd.onSave,
		pd.window,
	)

	pd.dialog.Resize(fyne.NewSize(PreferencesWidth, PreferencesHeight))
}

// loadCurrentSettings loads current settings into the UI
func (pd *PreferencesDialog) loadCurrentSettings() {
	index := pd.settings.GetDefaultProvider()
	if _, ok := pd.registry.ByIndex(index); !ok {
		index = config.DefaultProviderIndex
	}
	pd.providerSelect.SetSelectedIndex(index)
	pd.darkThemeCheck.SetChecked(pd.settings.GetDarkTheme())
	pd.useHTTPSCheck.SetChecked(pd.settings.GetUseHTTPS())
	pd.languageSelect.SetSelected(pd.settings.GetLanguage())
}

// onSave handles saving the preferences
func (pd *PreferencesDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if index := pd.providerSelect.SelectedIndex(); index >= 0 {
		pd.settings.SetDefaultProvider(index)
	}
	pd.settings.SetDarkTheme(pd.darkThemeCheck.Checked)
	pd.settings.SetUseHTTPS(pd.useHTTPSCheck.Checked)
	if pd.languageSelect.Selected != "" {
		pd.settings.SetLanguage(pd.languageSelect.Selected)
	}

	if pd.onSaved != nil {
		pd.onSaved()
	}

	dialog.ShowInformation(pd.localization.GetText(KeyPreferences), pd.localization.GetText(KeySettingsSaved), pd.window)
}
