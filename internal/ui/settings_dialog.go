package ui

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/topbar/internal/config"
	"github.com/ytget/topbar/internal/derive"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	batteryEntry   *widget.Entry
	dischargeEntry *widget.Entry
	cpuEntry       *widget.Entry
	signalEntry    *widget.Entry
	feedbackEntry  *widget.Entry
	rateEntry      *widget.Entry
	layoutSelect   *widget.Select
	dateEntry      *widget.Entry
	compactCheck   *widget.Check
	iconDirEntry   *widget.Entry
	catalogEntry   *widget.Entry
	scriptsEntry   *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.batteryEntry = widget.NewEntry()
	sd.batteryEntry.SetPlaceHolder(formatThresholds(derive.DefaultBatteryThresholds))
	sd.batteryEntry.Validator = validateThresholdsText
	sd.dischargeEntry = widget.NewEntry()
	sd.dischargeEntry.SetPlaceHolder(formatThresholds(derive.DefaultDischargeThresholds))
	sd.dischargeEntry.Validator = validateThresholdsText
	sd.cpuEntry = widget.NewEntry()
	sd.cpuEntry.SetPlaceHolder(formatThresholds(derive.DefaultCPUThresholds))
	sd.cpuEntry.Validator = validateThresholdsText
	sd.signalEntry = widget.NewEntry()
	sd.signalEntry.SetPlaceHolder(formatThresholds(derive.DefaultSignalThresholds))
	sd.signalEntry.Validator = validateThresholdsText

	sd.feedbackEntry = widget.NewEntry()
	sd.feedbackEntry.SetPlaceHolder(fmt.Sprintf("%d-%d",
		config.MinFeedbackTimeout.Milliseconds(), config.MaxFeedbackTimeout.Milliseconds()))
	sd.rateEntry = widget.NewEntry()
	sd.rateEntry.SetPlaceHolder(fmt.Sprintf("%g-%g", config.MinCommandRateLimit, config.MaxCommandRateLimit))

	layoutOptions := []string{}
	for _, c := range sd.settings.GetLayoutCaseOptions() {
		layoutOptions = append(layoutOptions, string(c))
	}
	sd.layoutSelect = widget.NewSelect(layoutOptions, nil)

	sd.dateEntry = widget.NewEntry()
	sd.dateEntry.SetPlaceHolder(config.DefaultDateFormat)
	sd.compactCheck = widget.NewCheck(text(KeyCompactClock), nil)

	sd.iconDirEntry = widget.NewEntry()
	iconDirRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(text(KeyBrowse), func() { sd.browseDirectory(sd.iconDirEntry) }), sd.iconDirEntry)
	sd.catalogEntry = widget.NewEntry()
	sd.scriptsEntry = widget.NewEntry()
	scriptsRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(text(KeyBrowse), func() { sd.browseDirectory(sd.scriptsEntry) }), sd.scriptsEntry)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	thresholds := widget.NewForm(
		widget.NewFormItem(text(KeyBatteryThresholds), sd.batteryEntry),
		widget.NewFormItem(text(KeyDischargeThresholds), sd.dischargeEntry),
		widget.NewFormItem(text(KeyCPUThresholds), sd.cpuEntry),
		widget.NewFormItem(text(KeySignalThresholds), sd.signalEntry),
	)
	behaviour := widget.NewForm(
		widget.NewFormItem(text(KeyFeedbackTimeout), sd.feedbackEntry),
		widget.NewFormItem(text(KeyCommandRateLimit), sd.rateEntry),
		widget.NewFormItem(text(KeyLayoutCase), sd.layoutSelect),
		widget.NewFormItem(text(KeyDateFormat), sd.dateEntry),
		widget.NewFormItem("", sd.compactCheck),
		widget.NewFormItem(text(KeyLanguage), sd.languageSelect),
	)
	paths := widget.NewForm(
		widget.NewFormItem(text(KeyIconDirectory), iconDirRow),
		widget.NewFormItem(text(KeyCatalogPath), sd.catalogEntry),
		widget.NewFormItem(text(KeyScriptsDirectory), scriptsRow),
	)

	tabs := container.NewAppTabs(
		container.NewTabItem(text(KeyThresholds), thresholds),
		container.NewTabItem(text(KeyBehaviour), behaviour),
		container.NewTabItem(text(KeyPaths), paths),
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		tabs,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.batteryEntry.SetText(formatThresholds(sd.settings.GetBatteryThresholds()))
	sd.dischargeEntry.SetText(formatThresholds(sd.settings.GetDischargeThresholds()))
	sd.cpuEntry.SetText(formatThresholds(sd.settings.GetCPUThresholds()))
	sd.signalEntry.SetText(formatThresholds(sd.settings.GetSignalThresholds()))
	sd.feedbackEntry.SetText(strconv.FormatInt(sd.settings.GetFeedbackTimeout().Milliseconds(), 10))
	sd.rateEntry.SetText(strconv.FormatFloat(sd.settings.GetCommandRateLimit(), 'g', -1, 64))
	sd.layoutSelect.SetSelected(string(sd.settings.GetLayoutCase()))
	sd.dateEntry.SetText(sd.settings.GetDateFormat())
	sd.compactCheck.SetChecked(sd.settings.GetCompactClock())
	sd.iconDirEntry.SetText(sd.settings.GetIconDirectory())
	sd.catalogEntry.SetText(sd.settings.GetCatalogPath())
	sd.scriptsEntry.SetText(sd.settings.GetScriptsDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// browseDirectory fills entry with a directory picked by the user
func (sd *SettingsDialog) browseDirectory(entry *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		entry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.apply(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply validates the form and stores it. Nothing is stored when a
// threshold list is invalid.
func (sd *SettingsDialog) apply() error {
	lists := []struct {
		entry *widget.Entry
		set   func([]float64)
	}{
		{sd.batteryEntry, sd.settings.SetBatteryThresholds},
		{sd.dischargeEntry, sd.settings.SetDischargeThresholds},
		{sd.cpuEntry, sd.settings.SetCPUThresholds},
		{sd.signalEntry, sd.settings.SetSignalThresholds},
	}
	parsed := make([][]float64, len(lists))
	for i, l := range lists {
		cuts, err := parseThresholds(l.entry.Text)
		if err != nil {
			return fmt.Errorf("%s: %w", sd.localization.GetText(KeyInvalidThresholds), err)
		}
		parsed[i] = cuts
	}
	for i, l := range lists {
		l.set(parsed[i])
	}

	if ms, err := strconv.Atoi(strings.TrimSpace(sd.feedbackEntry.Text)); err == nil {
		sd.settings.SetFeedbackTimeout(time.Duration(ms) * time.Millisecond)
	}
	if rate, err := strconv.ParseFloat(strings.TrimSpace(sd.rateEntry.Text), 64); err == nil {
		sd.settings.SetCommandRateLimit(rate)
	}
	if sd.layoutSelect.Selected != "" {
		sd.settings.SetLayoutCase(derive.LabelCase(sd.layoutSelect.Selected))
	}
	sd.settings.SetDateFormat(strings.TrimSpace(sd.dateEntry.Text))
	sd.settings.SetCompactClock(sd.compactCheck.Checked)

	if dir := strings.TrimSpace(sd.iconDirEntry.Text); dir != "" {
		sd.settings.SetIconDirectory(dir)
	}
	if path := strings.TrimSpace(sd.catalogEntry.Text); path != "" {
		sd.settings.SetCatalogPath(path)
	}
	if dir := strings.TrimSpace(sd.scriptsEntry.Text); dir != "" {
		sd.settings.SetScriptsDirectory(dir)
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	return nil
}

// formatThresholds renders cut points as "70, 40, 15"
func formatThresholds(cuts []float64) string {
	parts := make([]string, 0, len(cuts))
	for _, c := range cuts {
		parts = append(parts, strconv.FormatFloat(c, 'g', -1, 64))
	}
	return strings.Join(parts, ", ")
}

// parseThresholds reads a comma or space separated list of percentages
func parseThresholds(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errors.New("empty list")
	}

	cuts := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", f)
		}
		if math.IsNaN(v) || v < config.MinPercent || v > config.MaxPercent {
			return nil, fmt.Errorf("%g is out of range", v)
		}
		cuts = append(cuts, v)
	}
	return cuts, nil
}

func validateThresholdsText(text string) error {
	_, err := parseThresholds(text)
	return err
}
