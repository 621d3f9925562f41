package derive

import (
	"strings"
	"testing"

	"github.com/ytget/topbar/internal/model"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		state    model.BatteryState
		millis   *int64
		expected string
	}{
		{model.BatteryStateCharging, model.Int64(5_400_000), "Charging: 1h 30min left"},
		{model.BatteryStateCharging, model.Int64(120_000), "Charging: 2min left"},
		{model.BatteryStateCharging, model.Int64(3_600_000), "Charging: 1h 0min left"},
		{model.BatteryStateCharging, model.Int64(59_999), "Charging: 0min left"},
		{model.BatteryStateCharging, nil, "Charging: 0min left"},
		{model.BatteryStateCharging, model.Int64(-60_000), "Charging: 0min left"},
		{model.BatteryStateDischarging, model.Int64(9_000_000), "Discharging: 2h 30min left"},
		{model.BatteryStateDischarging, model.Int64(1_800_000), "Discharging: 30min left"},
		{model.BatteryStateFull, model.Int64(1_800_000), "idle"},
		{model.BatteryStateUnknown, nil, "idle"},
		{model.BatteryState("weird"), model.Int64(60_000), "idle"},
	}

	for _, test := range tests {
		result := FormatDuration(test.state, test.millis)
		if result != test.expected {
			t.Errorf("FormatDuration(%q, %v) = %q, expected %q", test.state, test.millis, result, test.expected)
		}
	}
}

func TestBatteryTooltip(t *testing.T) {
	tests := []struct {
		battery  *model.Battery
		expected string
	}{
		{nil, "idle"},
		{&model.Battery{}, "idle"},
		{&model.Battery{State: model.BatteryStateCharging, TimeTillFull: model.Int64(600_000), TimeTillEmpty: model.Int64(7_200_000)}, "Charging: 10min left"},
		{&model.Battery{State: model.BatteryStateDischarging, TimeTillFull: model.Int64(600_000), TimeTillEmpty: model.Int64(7_200_000)}, "Discharging: 2h 0min left"},
		{&model.Battery{State: model.BatteryStateFull}, "idle"},
	}

	for _, test := range tests {
		result := BatteryTooltip(test.battery)
		if result != test.expected {
			t.Errorf("BatteryTooltip(%+v) = %q, expected %q", test.battery, result, test.expected)
		}
	}
}

func TestLayoutLabel(t *testing.T) {
	tests := []struct {
		tag      *string
		casing   LabelCase
		expected string
	}{
		{model.String("en-US"), LabelCaseUpper, "EN"},
		{model.String("EN-gb"), LabelCaseUpper, "EN"},
		{model.String("zh-CN"), LabelCaseUpper, "zh"},
		{model.String("ja-JP"), LabelCaseUpper, "JA"},
		{model.String("ko"), LabelCaseUpper, "KO"},
		{model.String("ru-RU"), LabelCaseUpper, "RU"},
		{model.String("fr-FR"), LabelCaseUpper, "FR"},
		{model.String("de-DE"), LabelCaseUpper, "DE"},
		{model.String("es-ES"), LabelCaseUpper, "ES"},
		{model.String("xx-YY"), LabelCaseUpper, "XX"},
		{model.String("pt-BR"), LabelCaseUpper, "PT"},
		{model.String("en-US"), LabelCaseLower, "en"},
		{model.String("pt-BR"), LabelCaseLower, "PT"},
		{model.String("q"), LabelCaseUpper, "Q"},
		{model.String(""), LabelCaseUpper, "LANG"},
		{model.String("   "), LabelCaseUpper, "LANG"},
		{nil, LabelCaseUpper, "LANG"},
	}

	for _, test := range tests {
		result := LayoutLabel(test.tag, test.casing)
		if result != test.expected {
			t.Errorf("LayoutLabel(%v, %s) = %q, expected %q", test.tag, test.casing, result, test.expected)
		}
	}
}

func TestLayoutTooltip(t *testing.T) {
	if got := LayoutTooltip(nil); got != InputMethodTooltip {
		t.Errorf("LayoutTooltip(nil) = %q", got)
	}
	if got := LayoutTooltip(model.String("de-CH")); got != "de-CH" {
		t.Errorf("LayoutTooltip(de-CH) = %q", got)
	}
}

func TestPercentLabel(t *testing.T) {
	tests := []struct {
		value    *float64
		expected string
	}{
		{model.Float(42.4), "42%"},
		{model.Float(42.5), "43%"},
		{model.Float(100), "100%"},
		{model.Float(-3), "0%"},
		{nil, "0%"},
	}

	for _, test := range tests {
		result := PercentLabel(test.value)
		if result != test.expected {
			t.Errorf("PercentLabel(%v) = %q, expected %q", describe(test.value), result, test.expected)
		}
	}
}

func TestClockLabel(t *testing.T) {
	d := &model.Date{Formatted: "14:05 Mon 3 March 2025"}

	if got := ClockLabel(d, true); got != "14:05" {
		t.Errorf("ClockLabel(compact) = %q, expected 14:05", got)
	}
	if got := ClockLabel(d, false); got != d.Formatted {
		t.Errorf("ClockLabel(full) = %q", got)
	}
	if got := ClockLabel(&model.Date{Formatted: "9:05"}, true); got != "9:05" {
		t.Errorf("ClockLabel(short) = %q", got)
	}
	if got := ClockLabel(nil, true); got != "" {
		t.Errorf("ClockLabel(nil) = %q", got)
	}
}

func TestWindowTitle(t *testing.T) {
	long := strings.Repeat("ж", 100)

	tests := []struct {
		window   *model.Window
		expected string
	}{
		{nil, ""},
		{&model.Window{Title: ""}, ""},
		{&model.Window{Title: "  main.go - topbar  "}, "main.go - topbar"},
		{&model.Window{Title: long}, strings.Repeat("ж", 90) + "..."},
		{&model.Window{Title: strings.Repeat("a", 90)}, strings.Repeat("a", 90)},
	}

	for _, test := range tests {
		result := WindowTitle(test.window)
		if result != test.expected {
			t.Errorf("WindowTitle() = %q, expected %q", result, test.expected)
		}
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		rate     uint64
		expected string
	}{
		{0, "0 B/s"},
		{999, "999 B/s"},
		{1000, "1.0 kB/s"},
		{1500, "1.5 kB/s"},
		{2_500_000, "2.5 MB/s"},
		{3_000_000_000, "3.0 GB/s"},
	}

	for _, test := range tests {
		result := FormatRate(test.rate)
		if result != test.expected {
			t.Errorf("FormatRate(%d) = %q, expected %q", test.rate, result, test.expected)
		}
	}
}
