package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/arshubham/srtnr/internal/config"
	"github.com/arshubham/srtnr/internal/model"
	"github.com/arshubham/srtnr/internal/provider"
	"github.com/arshubham/srtnr/internal/shortener"
	"github.com/arshubham/srtnr/internal/urlinput"
)

// RootUI represents the main window and all of its state
type RootUI struct {
	window fyne.Window
	app    fyne.App

	urlLabel       *widget.Label
	urlEntry       *widget.Entry
	providerLabel  *widget.Label
	providerSelect *widget.Select
	shortenBtn     *widget.Button
	resultLabel    *widget.Label
	copyBtn        *widget.Button
	darkThemeCheck *widget.Check

	registry     *provider.Registry
	shortener    shortener.Shortener
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	state model.ShellState
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, registry *provider.Registry, sh shortener.Shortener, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		registry:     registry,
		shortener:    sh,
		settings:     settings,
		localization: localization,
		logger:       logger,
		state:        model.ShellStateIdle,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.applyTheme(settings.GetDarkTheme())

	ui.setupUI()
	ui.prefillFromClipboard()

	logger.Debug("main window ready",
		zap.Int("providers", registry.Len()),
		zap.Int("default_provider", ui.providerSelect.SelectedIndex()),
		zap.Bool("dark_theme", settings.GetDarkTheme()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabel(ui.localization.GetText(KeyFullURL))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	// Enter in the URL field acts as the default button
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onShortenClick()
	}

	ui.providerLabel = widget.NewLabel(ui.localization.GetText(KeyProvider))
	ui.providerSelect = widget.NewSelect(ui.registry.Names(), nil)
	ui.selectProvider(ui.settings.GetDefaultProvider())

	ui.shortenBtn = widget.NewButton(ui.localization.GetText(KeyShorten), ui.onShortenClick)
	ui.shortenBtn.Importance = widget.HighImportance

	ui.resultLabel = widget.NewLabel("")
	ui.resultLabel.Alignment = fyne.TextAlignCenter
	ui.resultLabel.Wrapping = fyne.TextWrapWord
	ui.resultLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.copyBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyCopy), theme.ContentCopyIcon(), ui.onCopyClick)

	// Set Checked before OnChanged so the stored value is not written back
	ui.darkThemeCheck = widget.NewCheck(ui.localization.GetText(KeyDarkTheme), nil)
	ui.darkThemeCheck.Checked = ui.settings.GetDarkTheme()
	ui.darkThemeCheck.OnChanged = ui.onDarkThemeToggled

	settingsBtn := widget.NewButton(IconSettings, ui.onShowPreferences)
	settingsBtn.Importance = widget.LowImportance

	var header *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, container.NewHBox(ui.darkThemeCheck, settingsBtn))
	} else {
		header = container.NewBorder(nil, nil, nil, container.NewHBox(ui.darkThemeCheck, settingsBtn))
	}

	form := container.New(layout.NewFormLayout(),
		ui.urlLabel, ui.urlEntry,
		ui.providerLabel, ui.providerSelect,
	)

	resultRow := container.NewBorder(nil, nil, nil, ui.copyBtn, ui.resultLabel)

	content := container.NewVBox(
		header,
		widget.NewSeparator(),
		form,
		container.NewCenter(ui.shortenBtn),
		layout.NewSpacer(),
		resultRow,
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	preferencesItem := fyne.NewMenuItem(ui.localization.GetText(KeyPreferences), ui.onShowPreferences)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), preferencesItem),
		languageMenu,
	))
}

// prefillFromClipboard copies a URL found on the clipboard into the entry.
// It runs once, when the window is built.
func (ui *RootUI) prefillFromClipboard() {
	clipboard := ui.app.Clipboard()
	if clipboard == nil {
		return
	}
	if seed := urlinput.ClipboardSeed(clipboard.Content()); seed != "" {
		ui.urlEntry.SetText(seed)
		ui.logger.Debug("prefilled URL from clipboard", zap.String("url", seed))
	}
}

// selectProvider selects index, falling back to the first provider when the
// stored index no longer names one
func (ui *RootUI) selectProvider(index int) {
	if _, ok := ui.registry.ByIndex(index); !ok {
		index = config.DefaultProviderIndex
	}
	ui.providerSelect.SetSelectedIndex(index)
}

// onShortenClick handles the shorten button click. The gateway call blocks
// the event loop until the provider answers.
func (ui *RootUI) onShortenClick() {
	ui.state = model.ShellStateShortening
	defer func() { ui.state = model.ShellStateIdle }()

	index := ui.providerSelect.SelectedIndex()
	p, ok := ui.registry.ByIndex(index)
	if !ok {
		ui.logger.Info("shorten requested without provider", zap.Int("index", index), zap.Error(provider.ErrNoProviderSelected))
		ui.resultLabel.SetText(ui.localization.GetText(KeyChooseProvider))
		return
	}

	normalizer := urlinput.NewNormalizer(ui.settings.GetUseHTTPS())
	fullURL, err := normalizer.Normalize(strings.TrimSpace(ui.urlEntry.Text))
	if err != nil {
		ui.resultLabel.SetText(ui.localization.GetText(KeyPleaseEnterURL))
		return
	}

	req := model.NewShortenRequest(fullURL, p)
	result := shortener.Execute(context.Background(), ui.shortener, req, ui.logger)
	ui.applyResult(index, result)
}

// applyResult writes a gateway outcome into the window
func (ui *RootUI) applyResult(index int, result model.ShortenResult) {
	ui.resultLabel.SetText(result.Text())
	if !result.OK() {
		return
	}

	ui.app.Clipboard().SetContent(result.ShortURL())
	ui.settings.SetDefaultProvider(index)

	ui.app.SendNotification(fyne.NewNotification(
		ui.localization.GetText(KeyShortURLCopied),
		result.ShortURL(),
	))
}

// onCopyClick copies whatever the result label shows
func (ui *RootUI) onCopyClick() {
	text := ui.resultLabel.Text
	ui.app.Clipboard().SetContent(text)

	message := ui.localization.GetText(KeyCopiedToClipboard)
	if text == "" {
		message = ui.localization.GetText(KeyNothingToCopy)
	}
	widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
}

// onDarkThemeToggled persists and applies the theme switch
func (ui *RootUI) onDarkThemeToggled(dark bool) {
	ui.settings.SetDarkTheme(dark)
	ui.applyTheme(dark)
}

// ToggleDarkTheme flips the dark theme switch
func (ui *RootUI) ToggleDarkTheme() {
	ui.darkThemeCheck.SetChecked(!ui.darkThemeCheck.Checked)
}

// applyTheme asks Fyne to render the matching variant
func (ui *RootUI) applyTheme(dark bool) {
	ui.app.Settings().SetTheme(NewAppTheme(dark))
}

// onShowPreferences shows the preferences dialog
func (ui *RootUI) onShowPreferences() {
	NewPreferencesDialog(ui.settings, ui.registry, ui.localization, ui.window, ui.onPreferencesSaved).Show()
}

// onPreferencesSaved brings the window in line with stored preferences
func (ui *RootUI) onPreferencesSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	ui.selectProvider(ui.settings.GetDefaultProvider())

	dark := ui.settings.GetDarkTheme()
	if ui.darkThemeCheck.Checked != dark {
		ui.darkThemeCheck.SetChecked(dark)
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.urlLabel.SetText(ui.localization.GetText(KeyFullURL))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.providerLabel.SetText(ui.localization.GetText(KeyProvider))
	ui.shortenBtn.SetText(ui.localization.GetText(KeyShorten))
	ui.copyBtn.SetText(ui.localization.GetText(KeyCopy))
	ui.darkThemeCheck.Text = ui.localization.GetText(KeyDarkTheme)
	ui.darkThemeCheck.Refresh()
}
