package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/topbar/internal/derive"
	"github.com/ytget/topbar/internal/platform"
	"github.com/ytget/topbar/internal/provider"
)

// Settings keys for Fyne preferences
const (
	KeyBatteryThresholds   = "battery_thresholds"
	KeyDischargeThresholds = "discharge_thresholds"
	KeyCPUThresholds       = "cpu_thresholds"
	KeySignalThresholds    = "signal_thresholds"
	KeyFeedbackTimeout     = "feedback_timeout_ms"
	KeyIconDir             = "icon_directory"
	KeyCatalogPath         = "icon_catalog_path"
	KeyScriptsDir          = "scripts_directory"
	KeyLayoutCase          = "layout_label_case"
	KeyDateFormat          = "date_format"
	KeyCompactClock        = "compact_clock"
	KeyCommandRateLimit    = "command_rate_limit"
	KeyLanguage            = "app_language"
	keyIntervalPrefix      = "interval_sec_"
)

// Default values
const (
	DefaultFeedbackTimeout  = 300 * time.Millisecond
	DefaultLayoutCase       = derive.LabelCaseUpper
	DefaultDateFormat       = provider.DefaultDateFormat
	DefaultCompactClock     = true
	DefaultCommandRateLimit = 4.0
	DefaultLanguage         = "system"
)

// Limits
const (
	MinFeedbackTimeout  = 50 * time.Millisecond
	MaxFeedbackTimeout  = 5 * time.Second
	MinIntervalSec      = 1
	MaxIntervalSec      = 3600
	MinCommandRateLimit = 0.1
	MaxCommandRateLimit = 50.0
	MinPercent          = 0.0
	MaxPercent          = 100.0
)

// DefaultIntervals are the polling intervals per telemetry source
var DefaultIntervals = map[provider.Kind]time.Duration{
	provider.KindBattery:   10 * time.Second,
	provider.KindNetwork:   5 * time.Second,
	provider.KindCPU:       5 * time.Second,
	provider.KindKeyboard:  2 * time.Second,
	provider.KindWorkspace: 2 * time.Second,
	provider.KindClock:     time.Second,
}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBatteryThresholds returns the battery severity cut points
func (s *Settings) GetBatteryThresholds() []float64 {
	return s.getThresholds(KeyBatteryThresholds, derive.DefaultBatteryThresholds)
}

// SetBatteryThresholds sets the battery severity cut points
func (s *Settings) SetBatteryThresholds(cuts []float64) {
	s.setThresholds(KeyBatteryThresholds, cuts, derive.DefaultBatteryThresholds)
}

// GetDischargeThresholds returns the discharge icon cut points
func (s *Settings) GetDischargeThresholds() []float64 {
	return s.getThresholds(KeyDischargeThresholds, derive.DefaultDischargeThresholds)
}

// SetDischargeThresholds sets the discharge icon cut points
func (s *Settings) SetDischargeThresholds(cuts []float64) {
	s.setThresholds(KeyDischargeThresholds, cuts, derive.DefaultDischargeThresholds)
}

// GetCPUThresholds returns the cpu severity cut points
func (s *Settings) GetCPUThresholds() []float64 {
	return s.getThresholds(KeyCPUThresholds, derive.DefaultCPUThresholds)
}

// SetCPUThresholds sets the cpu severity cut points
func (s *Settings) SetCPUThresholds(cuts []float64) {
	s.setThresholds(KeyCPUThresholds, cuts, derive.DefaultCPUThresholds)
}

// GetSignalThresholds returns the wifi signal cut points
func (s *Settings) GetSignalThresholds() []float64 {
	return s.getThresholds(KeySignalThresholds, derive.DefaultSignalThresholds)
}

// SetSignalThresholds sets the wifi signal cut points
func (s *Settings) SetSignalThresholds(cuts []float64) {
	s.setThresholds(KeySignalThresholds, cuts, derive.DefaultSignalThresholds)
}

// getThresholds reads a cut point list, falling back to the default when
// the stored list is empty or out of range
func (s *Settings) getThresholds(key string, fallback []float64) []float64 {
	cuts := s.app.Preferences().FloatListWithFallback(key, fallback)
	if !validThresholds(cuts) {
		return append([]float64(nil), fallback...)
	}
	return cuts
}

func (s *Settings) setThresholds(key string, cuts, fallback []float64) {
	if !validThresholds(cuts) {
		cuts = fallback
	}
	s.app.Preferences().SetFloatList(key, cuts)
}

func validThresholds(cuts []float64) bool {
	if len(cuts) == 0 {
		return false
	}
	for _, c := range cuts {
		// NaN fails both comparisons
		if !(c >= MinPercent && c <= MaxPercent) {
			return false
		}
	}
	return true
}

// GetPolicy returns the derivation policy built from the stored settings
func (s *Settings) GetPolicy() derive.Policy {
	return derive.Policy{
		Battery:      derive.NewThresholds(s.GetBatteryThresholds()...),
		Discharge:    derive.NewThresholds(s.GetDischargeThresholds()...),
		CPU:          derive.NewThresholds(s.GetCPUThresholds()...),
		Signal:       derive.NewThresholds(s.GetSignalThresholds()...),
		LayoutCase:   s.GetLayoutCase(),
		CompactClock: s.GetCompactClock(),
	}
}

// GetFeedbackTimeout returns how long a clicked element stays highlighted
func (s *Settings) GetFeedbackTimeout() time.Duration {
	ms := s.app.Preferences().Int(KeyFeedbackTimeout)
	if ms <= 0 {
		return DefaultFeedbackTimeout
	}
	return time.Duration(ms) * time.Millisecond
}

// SetFeedbackTimeout sets the highlight duration
func (s *Settings) SetFeedbackTimeout(d time.Duration) {
	if d < MinFeedbackTimeout {
		d = MinFeedbackTimeout
	}
	if d > MaxFeedbackTimeout {
		d = MaxFeedbackTimeout
	}
	s.app.Preferences().SetInt(KeyFeedbackTimeout, int(d/time.Millisecond))
}

// GetInterval returns the polling interval of a telemetry source
func (s *Settings) GetInterval(kind provider.Kind) time.Duration {
	sec := s.app.Preferences().Int(keyIntervalPrefix + string(kind))
	if sec <= 0 {
		if d, ok := DefaultIntervals[kind]; ok {
			return d
		}
		return time.Duration(MinIntervalSec) * time.Second
	}
	return time.Duration(sec) * time.Second
}

// SetInterval sets the polling interval of a telemetry source
func (s *Settings) SetInterval(kind provider.Kind, d time.Duration) {
	sec := int(d / time.Second)
	if sec < MinIntervalSec {
		sec = MinIntervalSec
	}
	if sec > MaxIntervalSec {
		sec = MaxIntervalSec
	}
	s.app.Preferences().SetInt(keyIntervalPrefix+string(kind), sec)
}

// GetIconDirectory returns the directory icon files are loaded from
func (s *Settings) GetIconDirectory() string {
	return s.stringWithDefault(KeyIconDir, platform.DefaultIconDir())
}

// SetIconDirectory sets the icon directory
func (s *Settings) SetIconDirectory(dir string) {
	s.app.Preferences().SetString(KeyIconDir, dir)
}

// GetCatalogPath returns the icon catalog file
func (s *Settings) GetCatalogPath() string {
	return s.stringWithDefault(KeyCatalogPath, platform.DefaultCatalogPath())
}

// SetCatalogPath sets the icon catalog file
func (s *Settings) SetCatalogPath(path string) {
	s.app.Preferences().SetString(KeyCatalogPath, path)
}

// GetScriptsDirectory returns the helper scripts directory
func (s *Settings) GetScriptsDirectory() string {
	return s.stringWithDefault(KeyScriptsDir, platform.DefaultScriptsDir())
}

// SetScriptsDirectory sets the helper scripts directory
func (s *Settings) SetScriptsDirectory(dir string) {
	s.app.Preferences().SetString(KeyScriptsDir, dir)
}

// GetLayoutCase returns how known keyboard layouts are labelled
func (s *Settings) GetLayoutCase() derive.LabelCase {
	switch c := derive.LabelCase(s.app.Preferences().String(KeyLayoutCase)); c {
	case derive.LabelCaseUpper, derive.LabelCaseLower:
		return c
	default:
		return DefaultLayoutCase
	}
}

// SetLayoutCase sets the layout label casing
func (s *Settings) SetLayoutCase(c derive.LabelCase) {
	if c != derive.LabelCaseLower {
		c = derive.LabelCaseUpper
	}
	s.app.Preferences().SetString(KeyLayoutCase, string(c))
}

// GetLayoutCaseOptions returns available layout casing options
func (s *Settings) GetLayoutCaseOptions() []derive.LabelCase {
	return []derive.LabelCase{derive.LabelCaseUpper, derive.LabelCaseLower}
}

// GetDateFormat returns the clock layout
func (s *Settings) GetDateFormat() string {
	return s.stringWithDefault(KeyDateFormat, DefaultDateFormat)
}

// SetDateFormat sets the clock layout
func (s *Settings) SetDateFormat(layout string) {
	if layout == "" {
		layout = DefaultDateFormat
	}
	s.app.Preferences().SetString(KeyDateFormat, layout)
}

// GetCompactClock returns whether the clock shows only HH:MM
func (s *Settings) GetCompactClock() bool {
	return s.app.Preferences().BoolWithFallback(KeyCompactClock, DefaultCompactClock)
}

// SetCompactClock sets the compact clock mode
func (s *Settings) SetCompactClock(compact bool) {
	s.app.Preferences().SetBool(KeyCompactClock, compact)
}

// GetCommandRateLimit returns how many commands per second may be dispatched
func (s *Settings) GetCommandRateLimit() float64 {
	return s.app.Preferences().FloatWithFallback(KeyCommandRateLimit, DefaultCommandRateLimit)
}

// SetCommandRateLimit sets the command rate limit
func (s *Settings) SetCommandRateLimit(perSecond float64) {
	if !(perSecond >= MinCommandRateLimit) {
		perSecond = MinCommandRateLimit
	}
	if perSecond > MaxCommandRateLimit {
		perSecond = MaxCommandRateLimit
	}
	s.app.Preferences().SetFloat(KeyCommandRateLimit, perSecond)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.stringWithDefault(KeyLanguage, DefaultLanguage)
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
		"zh":     "中文",
	}
}

func (s *Settings) stringWithDefault(key, fallback string) string {
	if v := s.app.Preferences().String(key); v != "" {
		return v
	}
	return fallback
}
