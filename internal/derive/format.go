package derive

import (
	"fmt"
	"math"
	"strings"

	"github.com/ytget/topbar/internal/model"
)

// Duration constants
const (
	MillisPerHour   = 3_600_000
	MillisPerMinute = 60_000
)

// Fixed labels
const (
	IdleLabel          = "idle"
	LayoutPlaceholder  = "LANG"
	InputMethodTooltip = "Input Method"
	MaxTitleLength     = 90
	TitleEllipsis      = "..."
	CompactClockLength = 5
)

// Rate formatting constants
const (
	RateUnit  = 1000
	RateUnits = "kMGTPE"
)

// layoutLabels maps a lowercase two-letter language prefix to its label
var layoutLabels = map[string]string{
	"zh": "zh",
	"en": "EN",
	"ja": "JA",
	"ko": "KO",
	"ru": "RU",
	"fr": "FR",
	"de": "DE",
	"es": "ES",
}

// FormatDuration renders the remaining time for a charging or discharging
// battery. Hours and minutes are whole, truncated values. Any other state
// renders as "idle".
func FormatDuration(state model.BatteryState, millis *int64) string {
	var verb string
	switch state {
	case model.BatteryStateCharging:
		verb = "Charging"
	case model.BatteryStateDischarging:
		verb = "Discharging"
	default:
		return IdleLabel
	}

	var ms int64
	if millis != nil && *millis > 0 {
		ms = *millis
	}
	hours := ms / MillisPerHour
	minutes := (ms % MillisPerHour) / MillisPerMinute

	if hours > 0 {
		return fmt.Sprintf("%s: %dh %dmin left", verb, hours, minutes)
	}
	return fmt.Sprintf("%s: %dmin left", verb, minutes)
}

// BatteryTooltip picks the remaining time matching the battery state
func BatteryTooltip(b *model.Battery) string {
	if b == nil {
		return IdleLabel
	}
	if b.State == model.BatteryStateCharging {
		return FormatDuration(b.State, b.TimeTillFull)
	}
	return FormatDuration(b.State, b.TimeTillEmpty)
}

// LayoutLabel maps a keyboard layout tag such as "en-US" to a short label
func LayoutLabel(tag *string, casing LabelCase) string {
	if tag == nil {
		return LayoutPlaceholder
	}
	trimmed := strings.TrimSpace(*tag)
	if trimmed == "" {
		return LayoutPlaceholder
	}

	prefix := strings.ToLower(trimmed)
	if runes := []rune(prefix); len(runes) > 2 {
		prefix = string(runes[:2])
	}

	if label, ok := layoutLabels[prefix]; ok {
		if casing == LabelCaseLower {
			return strings.ToLower(label)
		}
		return label
	}
	return strings.ToUpper(prefix)
}

// LayoutTooltip returns the raw layout tag, or a generic caption when absent
func LayoutTooltip(tag *string) string {
	if tag == nil || strings.TrimSpace(*tag) == "" {
		return InputMethodTooltip
	}
	return *tag
}

// PercentLabel renders a percentage reading rounded to a whole number
func PercentLabel(v *float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(MetricValue(v))))
}

// ClockLabel renders the formatted clock, keeping only HH:MM in compact mode
func ClockLabel(d *model.Date, compact bool) string {
	if d == nil {
		return ""
	}
	if !compact {
		return d.Formatted
	}
	runes := []rune(d.Formatted)
	if len(runes) > CompactClockLength {
		return string(runes[:CompactClockLength])
	}
	return d.Formatted
}

// WindowTitle returns the window title truncated for the title segment
func WindowTitle(w *model.Window) string {
	if w == nil {
		return ""
	}
	title := strings.TrimSpace(w.Title)
	runes := []rune(title)
	if len(runes) > MaxTitleLength {
		return string(runes[:MaxTitleLength]) + TitleEllipsis
	}
	return title
}

// FormatRate formats a transfer rate in bytes per second with SI units
func FormatRate(bytesPerSec uint64) string {
	if bytesPerSec < RateUnit {
		return fmt.Sprintf("%d B/s", bytesPerSec)
	}
	div, exp := uint64(RateUnit), 0
	for n := bytesPerSec / RateUnit; n >= RateUnit && exp < len(RateUnits)-1; n /= RateUnit {
		div *= RateUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB/s", float64(bytesPerSec)/float64(div), RateUnits[exp])
}
