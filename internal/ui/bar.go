package ui

import (
	"context"
	"errors"
	"log"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/topbar/internal/catalog"
	"github.com/ytget/topbar/internal/command"
	"github.com/ytget/topbar/internal/config"
	"github.com/ytget/topbar/internal/derive"
	"github.com/ytget/topbar/internal/feedback"
	"github.com/ytget/topbar/internal/model"
	"github.com/ytget/topbar/internal/provider"
	"github.com/ytget/topbar/internal/reactive"
)

// Store keys owned by the bar. Telemetry is stored under its provider kind.
const (
	keyPolicy  reactive.Key = "policy"
	keyCatalog reactive.Key = "catalog"
	keyFocus   reactive.Key = "focus"
)

func telemetryKey(kind provider.Kind) reactive.Key {
	return reactive.Key(kind)
}

// Bar is the status bar window. Telemetry flows into a reactive store; each
// segment shows a memoized view derived from it.
type Bar struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	store        *reactive.Store
	icons        *IconCache
	dispatcher   command.Dispatcher
	builder      command.Builder

	feedbackOptions []feedback.Option
	feedbacks       []*feedback.Feedback

	// Segments
	start    *Segment
	title    *Segment
	cpu      *Segment
	battery  *Segment
	network  *Segment
	keyboard *Segment
	clock    *Segment
	apps     *AppsGroup

	// Derived views
	batteryView  *reactive.Memo[derive.View]
	networkView  *reactive.Memo[derive.View]
	cpuView      *reactive.Memo[derive.View]
	keyboardView *reactive.Memo[derive.View]
	clockView    *reactive.Memo[derive.View]
	titleView    *reactive.Memo[derive.View]
	appsView     *reactive.Memo[[]AppEntry]

	onSettingsApplied func()
	onCatalogChanged  func(*catalog.Catalog)
}

// NewBar creates the bar and fills the window with it
func NewBar(window fyne.Window, settings *config.Settings, cat *catalog.Catalog, dispatcher command.Dispatcher) *Bar {
	return newBar(window, settings, cat, dispatcher)
}

func newBar(window fyne.Window, settings *config.Settings, cat *catalog.Catalog, dispatcher command.Dispatcher, opts ...feedback.Option) *Bar {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	b := &Bar{
		window:          window,
		settings:        settings,
		localization:    localization,
		store:           reactive.NewStore(),
		icons:           NewIconCache(settings.GetIconDirectory()),
		dispatcher:      dispatcher,
		builder:         command.NewBuilder(settings.GetScriptsDirectory()),
		feedbackOptions: opts,
	}

	b.store.Set(keyPolicy, settings.GetPolicy())
	b.store.Set(keyCatalog, cat)

	window.SetTitle(localization.GetText(KeyAppTitle))

	b.createMemos()
	b.setupUI()
	b.store.Flush()

	log.Printf("Bar initialized with %d icons in catalog", cat.Len())
	return b
}

// createMemos declares the derived views and their source keys
func (b *Bar) createMemos() {
	b.batteryView = reactive.NewMemo(b.store, func(s reactive.Snapshot) derive.View {
		battery, _ := reactive.Lookup[*model.Battery](s, telemetryKey(provider.KindBattery))
		return derive.BatteryView(battery, policyOf(s))
	}, telemetryKey(provider.KindBattery), keyPolicy)

	b.networkView = reactive.NewMemo(b.store, func(s reactive.Snapshot) derive.View {
		network, _ := reactive.Lookup[*model.Network](s, telemetryKey(provider.KindNetwork))
		return derive.NetworkView(network, policyOf(s))
	}, telemetryKey(provider.KindNetwork), keyPolicy)

	b.cpuView = reactive.NewMemo(b.store, func(s reactive.Snapshot) derive.View {
		cpu, _ := reactive.Lookup[*model.CPU](s, telemetryKey(provider.KindCPU))
		return derive.CPUView(cpu, policyOf(s))
	}, telemetryKey(provider.KindCPU), keyPolicy)

	b.keyboardView = reactive.NewMemo(b.store, func(s reactive.Snapshot) derive.View {
		keyboard, _ := reactive.Lookup[*model.Keyboard](s, telemetryKey(provider.KindKeyboard))
		return derive.KeyboardView(keyboard, policyOf(s))
	}, telemetryKey(provider.KindKeyboard), keyPolicy)

	b.clockView = reactive.NewMemo(b.store, func(s reactive.Snapshot) derive.View {
		date, _ := reactive.Lookup[*model.Date](s, telemetryKey(provider.KindClock))
		return derive.ClockView(date, policyOf(s))
	}, telemetryKey(provider.KindClock), keyPolicy)

	b.titleView = reactive.NewMemo(b.store, func(s reactive.Snapshot) derive.View {
		return derive.TitleView(focusedWorkspace(s))
	}, telemetryKey(provider.KindWorkspace), keyFocus)

	b.appsView = reactive.NewMemo(b.store, func(s reactive.Snapshot) []AppEntry {
		icons, _ := reactive.Lookup[*catalog.Catalog](s, keyCatalog)
		return appEntries(focusedWorkspace(s), icons)
	}, telemetryKey(provider.KindWorkspace), keyFocus, keyCatalog)
}

// policyOf returns the stored policy, the built-in one when unset
func policyOf(s reactive.Snapshot) derive.Policy {
	if p, ok := reactive.Lookup[derive.Policy](s, keyPolicy); ok {
		return p
	}
	return derive.DefaultPolicy()
}

// focusedWorkspace applies the window last clicked in the bar on top of the
// reported workspace
func focusedWorkspace(s reactive.Snapshot) *model.Workspace {
	ws, _ := reactive.Lookup[*model.Workspace](s, telemetryKey(provider.KindWorkspace))
	if focus, ok := reactive.Lookup[string](s, keyFocus); ok && focus != "" {
		return ws.WithFocus(focus)
	}
	return ws
}

// appEntries builds the application strip in window order
func appEntries(ws *model.Workspace, icons derive.IconLookup) []AppEntry {
	entries := make([]AppEntry, 0, ws.Len())
	if ws == nil {
		return entries
	}
	for _, w := range ws.Windows {
		if w == nil {
			continue
		}
		entries = append(entries, AppEntry{Handle: w.Handle, View: derive.AppView(w, icons), Focused: w.HasFocus})
	}
	return entries
}

// setupUI creates and arranges all UI components
func (b *Bar) setupUI() {
	b.start = NewSegment("start", b.icons, b.newFeedback())
	b.start.SetView(derive.View{Icon: derive.IconRef{Name: derive.IconStartMenu}})
	b.start.SetOnTapped(func() { b.run(b.builder.OpenStartMenu()) })

	b.apps = NewAppsGroup(b.icons, b.newFeedback)
	b.apps.SetOnFocus(b.focusWindow)

	b.title = NewSegment("title", b.icons, nil)

	b.cpu = b.bindSegment("cpu", b.cpuView, func() string { return b.builder.OpenTaskManager() })
	b.battery = b.bindSegment("battery", b.batteryView, func() string { return b.builder.OpenActionCenter() })
	b.network = b.bindSegment("network", b.networkView, func() string { return b.builder.OpenActionCenter() })
	b.keyboard = b.bindSegment("keyboard", b.keyboardView, func() string { return b.builder.OpenInputSwitcher() })
	b.clock = b.bindSegment("clock", b.clockView, func() string { return b.builder.OpenNotificationCenter() })

	b.titleView.OnChange(b.title.SetView)
	b.title.SetView(b.titleView.Get())
	b.appsView.OnChange(b.apps.SetApps)
	b.apps.SetApps(b.appsView.Get())

	var settingsBtn *widget.Button
	settingsBtn = widget.NewButton(IconSettings, func() { b.showMenu(settingsBtn) })
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(b.start, b.apps.Container())
	right := container.NewHBox(b.cpu, b.battery, b.network, b.keyboard, b.clock, settingsBtn)
	center := container.NewHBox(layout.NewSpacer(), b.title, layout.NewSpacer())

	content := container.NewBorder(nil, nil, left, right, center)
	b.window.SetContent(content)
	b.window.Resize(fyne.NewSize(BarMinWidth, BarHeight))

	log.Printf("Bar setup completed successfully")
}

// bindSegment creates a status segment fed by a memoized view. Clicking it
// dispatches the command built by cmd.
func (b *Bar) bindSegment(name string, view *reactive.Memo[derive.View], cmd func() string) *Segment {
	seg := NewSegment(name, b.icons, b.newFeedback())
	seg.SetOnTapped(func() { b.run(cmd()) })
	view.OnChange(seg.SetView)
	seg.SetView(view.Get())
	return seg
}

// newFeedback creates a click state machine whose transitions run on the
// UI goroutine
func (b *Bar) newFeedback() *feedback.Feedback {
	opts := append([]feedback.Option{
		feedback.WithTimeout(b.settings.GetFeedbackTimeout()),
		feedback.WithDispatch(fyne.Do),
	}, b.feedbackOptions...)
	fb := feedback.New(opts...)
	b.feedbacks = append(b.feedbacks, fb)
	return fb
}

// OnTelemetry receives a reading from a polling goroutine and applies it on
// the UI goroutine
func (b *Bar) OnTelemetry(kind provider.Kind, value any) {
	fyne.Do(func() {
		b.Apply(kind, value)
	})
}

// Apply stores a reading and refreshes the affected segments. Must be
// called on the UI goroutine.
func (b *Bar) Apply(kind provider.Kind, value any) {
	b.store.Update(telemetryKey(kind), value)
}

// OnRunUpdate logs failed commands reported by the executor
func (b *Bar) OnRunUpdate(run *command.Run) {
	if run.Status == command.RunStatusError {
		log.Printf("Warning: command %s failed: %s", run.ID, run.LastError)
	}
}

// SetCatalog swaps the icon catalog; application icons follow immediately
func (b *Bar) SetCatalog(cat *catalog.Catalog) {
	b.store.Update(keyCatalog, cat)
	if b.onCatalogChanged != nil {
		b.onCatalogChanged(cat)
	}
}

// SetOnCatalogChanged sets a callback run after the icon catalog was swapped
func (b *Bar) SetOnCatalogChanged(fn func(*catalog.Catalog)) {
	b.onCatalogChanged = fn
}

// SetOnSettingsApplied sets a callback run after saved settings were applied
func (b *Bar) SetOnSettingsApplied(fn func()) {
	b.onSettingsApplied = fn
}

// focusWindow marks a window focused and asks the window manager to focus it
func (b *Bar) focusWindow(handle string) {
	b.store.Update(keyFocus, handle)
	b.run(b.builder.FocusWindow(handle))
}

// run dispatches a command, reporting failures other than rate limiting
func (b *Bar) run(cmd string) {
	ctx, cancel := context.WithTimeout(context.Background(), DispatchTimeout)
	defer cancel()

	err := b.dispatcher.Dispatch(ctx, cmd)
	switch {
	case err == nil:
	case errors.Is(err, command.ErrRateLimited):
		log.Printf("Command dropped: %s", cmd)
	default:
		log.Printf("Warning: failed to dispatch %q: %v", cmd, err)
		widget.ShowPopUp(widget.NewLabel(b.localization.GetText(KeyCommandFailed)+": "+err.Error()), b.window.Canvas())
	}
}

// ApplySettings re-reads the settings into the bar
func (b *Bar) ApplySettings() {
	b.localization.SetLanguage(b.settings.GetLanguage())
	b.window.SetTitle(b.localization.GetText(KeyAppTitle))

	b.builder = command.NewBuilder(b.settings.GetScriptsDirectory())

	timeout := b.settings.GetFeedbackTimeout()
	for _, fb := range b.feedbacks {
		fb.SetTimeout(timeout)
	}

	if dir := b.settings.GetIconDirectory(); dir != b.icons.Dir() {
		b.icons.SetDir(dir)
		b.refreshIcons()
	}

	b.store.Update(keyPolicy, b.settings.GetPolicy())

	if b.onSettingsApplied != nil {
		b.onSettingsApplied()
	}
}

// ReloadCatalog reads the icon catalog again from the configured path
func (b *Bar) ReloadCatalog() {
	b.SetCatalog(catalog.LoadOrDefault(b.settings.GetCatalogPath()))
	dialog.ShowInformation(b.localization.GetText(KeySettings), b.localization.GetText(KeyCatalogReloaded), b.window)
}

// refreshIcons redraws every segment after the icon directory changed
func (b *Bar) refreshIcons() {
	for _, seg := range []*Segment{b.start, b.title, b.cpu, b.battery, b.network, b.keyboard, b.clock} {
		seg.SetView(seg.View())
	}
	b.apps.SetApps(b.apps.Entries())
}

// createMenu creates the bar menu: settings, catalog reload and language
func (b *Bar) createMenu() *fyne.Menu {
	settingsItem := fyne.NewMenuItem(b.localization.GetText(KeySettings), b.onShowSettings)
	reloadItem := fyne.NewMenuItem(b.localization.GetText(KeyReloadCatalog), b.ReloadCatalog)

	languageItem := fyne.NewMenuItem(b.localization.GetText(KeyLanguage), nil)
	languageMenu := fyne.NewMenu(b.localization.GetText(KeyLanguage))
	codes := make([]string, 0)
	for code := range b.localization.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(b.localization.GetAvailableLanguages()[code], func() {
			b.onLanguageChange(langCode)
		})
		langItem.Checked = b.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}
	languageItem.ChildMenu = languageMenu

	return fyne.NewMenu(b.localization.GetText(KeyAppTitle), settingsItem, reloadItem, fyne.NewMenuItemSeparator(), languageItem)
}

// showMenu opens the bar menu below the given object
func (b *Bar) showMenu(anchor fyne.CanvasObject) {
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(anchor)
	pos = pos.AddXY(0, anchor.Size().Height)
	widget.ShowPopUpMenuAtPosition(b.createMenu(), b.window.Canvas(), pos)
}

// onLanguageChange handles language change
func (b *Bar) onLanguageChange(langCode string) {
	b.settings.SetLanguage(langCode)
	b.ApplySettings()
}

// onShowSettings handles settings dialog
func (b *Bar) onShowSettings() {
	NewSettingsDialog(b.settings, b.localization, b.window, b.ApplySettings).Show()
}

// Store returns the reactive store backing the bar
func (b *Bar) Store() *reactive.Store {
	return b.store
}
