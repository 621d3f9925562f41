package derive

import (
	"testing"

	"github.com/ytget/topbar/internal/model"
)

func TestBatteryView(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name     string
		battery  *model.Battery
		expected View
	}{
		{
			name:    "absent",
			battery: nil,
			expected: View{
				Icon:     IconRef{Name: IconBatteryLevelNone},
				Severity: model.SeverityExtreme,
				Label:    "0%",
				Tooltip:  IdleLabel,
			},
		},
		{
			name: "discharging 55",
			battery: &model.Battery{
				ChargePercent: model.Float(55),
				State:         model.BatteryStateDischarging,
				TimeTillEmpty: model.Int64(5_400_000),
			},
			expected: View{
				Icon:     IconRef{Name: IconBatteryLevel2},
				Severity: model.SeverityMedium,
				Label:    "55%",
				Tooltip:  "Discharging: 1h 30min left",
			},
		},
		{
			name: "charging 10",
			battery: &model.Battery{
				ChargePercent: model.Float(10),
				State:         model.BatteryStateCharging,
				TimeTillFull:  model.Int64(120_000),
			},
			expected: View{
				Icon:     IconRef{Name: IconBatteryCharging},
				Severity: model.SeverityExtreme,
				Label:    "10%",
				Tooltip:  "Charging: 2min left",
			},
		},
		{
			name:    "full",
			battery: &model.Battery{ChargePercent: model.Float(100), State: model.BatteryStateFull},
			expected: View{
				Icon:     IconRef{Name: IconBatteryFull},
				Severity: model.SeverityLow,
				Label:    "100%",
				Tooltip:  IdleLabel,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := BatteryView(test.battery, p)
			if result != test.expected {
				t.Errorf("BatteryView() = %+v, expected %+v", result, test.expected)
			}
		})
	}
}

func TestNetworkView(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name     string
		network  *model.Network
		icon     IconRef
		severity model.Severity
		tooltip  string
	}{
		{"absent", nil, IconRef{Name: IconNoNetwork}, model.SeverityExtreme, "No network"},
		{
			"ethernet",
			&model.Network{Interface: &model.NetInterface{Name: "eth0", Type: model.InterfaceTypeEthernet}},
			IconRef{Name: IconEthernet}, model.SeverityLow, "Ethernet (eth0)",
		},
		{
			"ethernet unnamed",
			&model.Network{Interface: &model.NetInterface{Type: model.InterfaceTypeEthernet}},
			IconRef{Name: IconEthernet}, model.SeverityLow, "Ethernet",
		},
		{
			"wifi strong",
			&model.Network{
				Interface: &model.NetInterface{Name: "wlan0", Type: model.InterfaceTypeWifi},
				Gateway:   &model.Gateway{SSID: "home", SignalStrength: model.Float(80)},
			},
			IconRef{Name: IconWifi3, Bars: 3}, model.SeverityLow, "Wi-Fi home 80%",
		},
		{
			"wifi weak without ssid",
			&model.Network{
				Interface: &model.NetInterface{Name: "wlan0", Type: model.InterfaceTypeWifi},
				Gateway:   &model.Gateway{SignalStrength: model.Float(10)},
			},
			IconRef{Name: IconWifi1, Bars: 1}, model.SeverityHigh, "Wi-Fi 10%",
		},
		{
			"wifi disconnected",
			&model.Network{Interface: &model.NetInterface{Name: "wlan0", Type: model.InterfaceTypeWifi}},
			IconRef{Name: IconWifiOff, Dimmed: true}, model.SeverityExtreme, "Wi-Fi disconnected",
		},
		{
			"other",
			&model.Network{Interface: &model.NetInterface{Name: "tun0", Type: model.InterfaceTypeOther}},
			IconRef{Name: IconNoNetwork}, model.SeverityExtreme, "No network",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := NetworkView(test.network, p)
			if result.Icon != test.icon {
				t.Errorf("NetworkView().Icon = %+v, expected %+v", result.Icon, test.icon)
			}
			if result.Severity != test.severity {
				t.Errorf("NetworkView().Severity = %v, expected %v", result.Severity, test.severity)
			}
			if result.Tooltip != test.tooltip {
				t.Errorf("NetworkView().Tooltip = %q, expected %q", result.Tooltip, test.tooltip)
			}
		})
	}
}

func TestTrafficLabel(t *testing.T) {
	if got := TrafficLabel(nil); got != "" {
		t.Errorf("TrafficLabel(nil) = %q, expected empty", got)
	}
	n := &model.Network{Traffic: &model.Traffic{Received: 1500, Transmitted: 20}}
	if got := TrafficLabel(n); got != "↓ 1.5 kB/s ↑ 20 B/s" {
		t.Errorf("TrafficLabel() = %q", got)
	}
}

func TestCPUView(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		usage    *float64
		severity model.Severity
		label    string
	}{
		{nil, model.SeverityLow, "0%"},
		{model.Float(12), model.SeverityLow, "12%"},
		{model.Float(29.4), model.SeverityLow, "29%"},
		// rounds to 30 and must agree with the label
		{model.Float(29.5), model.SeverityMedium, "30%"},
		{model.Float(65), model.SeverityHigh, "65%"},
		{model.Float(89.6), model.SeverityExtreme, "90%"},
		{model.Float(140), model.SeverityExtreme, "140%"},
	}

	for _, test := range tests {
		result := CPUView(&model.CPU{Usage: test.usage}, p)
		if result.Severity != test.severity {
			t.Errorf("CPUView(%s).Severity = %v, expected %v", describe(test.usage), result.Severity, test.severity)
		}
		if result.Label != test.label {
			t.Errorf("CPUView(%s).Label = %q, expected %q", describe(test.usage), result.Label, test.label)
		}
		if result.Icon.Name != IconCPU {
			t.Errorf("CPUView().Icon = %+v", result.Icon)
		}
	}
}

func TestKeyboardView(t *testing.T) {
	p := DefaultPolicy()

	v := KeyboardView(&model.Keyboard{Layout: model.String("ru-RU")}, p)
	if v.Label != "RU" || v.Tooltip != "ru-RU" {
		t.Errorf("KeyboardView(ru-RU) = %+v", v)
	}

	v = KeyboardView(nil, p)
	if v.Label != LayoutPlaceholder || v.Tooltip != InputMethodTooltip {
		t.Errorf("KeyboardView(nil) = %+v", v)
	}

	p.LayoutCase = LabelCaseLower
	v = KeyboardView(&model.Keyboard{Layout: model.String("en-US")}, p)
	if v.Label != "en" {
		t.Errorf("KeyboardView(en-US, lower).Label = %q, expected en", v.Label)
	}
}

func TestClockView(t *testing.T) {
	p := DefaultPolicy()
	d := &model.Date{Formatted: "09:41 Tue"}

	v := ClockView(d, p)
	if v.Label != "09:41" || v.Tooltip != "09:41 Tue" {
		t.Errorf("ClockView(compact) = %+v", v)
	}

	p.CompactClock = false
	if v = ClockView(d, p); v.Label != "09:41 Tue" {
		t.Errorf("ClockView(full).Label = %q", v.Label)
	}

	if v = ClockView(nil, p); v.Label != "" || v.Tooltip != "" {
		t.Errorf("ClockView(nil) = %+v", v)
	}
}

func TestAppViews(t *testing.T) {
	icons := mapLookup{
		icons: map[string]IconRef{"firefox": {Name: "Firefox-32.png"}},
		def:   IconRef{Name: "Application-32.png"},
	}
	ws := model.NewWorkspace("1",
		&model.Window{Handle: "1", ProcessName: "firefox.exe", Title: "Mozilla Firefox", HasFocus: true},
		&model.Window{Handle: "2", ProcessName: "unknown-tool"},
	)

	views := AppViews(ws, icons)
	if len(views) != 2 {
		t.Fatalf("AppViews() returned %d views, expected 2", len(views))
	}
	if views[0].Icon.Name != "Firefox-32.png" || views[0].Tooltip != "Mozilla Firefox" {
		t.Errorf("AppViews()[0] = %+v", views[0])
	}
	if views[1].Icon.Name != "Application-32.png" || views[1].Tooltip != "unknown-tool" {
		t.Errorf("AppViews()[1] = %+v", views[1])
	}

	if got := AppViews(nil, icons); len(got) != 0 {
		t.Errorf("AppViews(nil) = %v, expected empty", got)
	}
}

func TestTitleView(t *testing.T) {
	ws := model.NewWorkspace("1",
		&model.Window{Handle: "1", Title: "background"},
		&model.Window{Handle: "2", Title: "editor", HasFocus: true},
	)
	if v := TitleView(ws); v.Label != "editor" {
		t.Errorf("TitleView().Label = %q, expected editor", v.Label)
	}
	if v := TitleView(nil); v.Label != "" {
		t.Errorf("TitleView(nil).Label = %q, expected empty", v.Label)
	}
}

func TestViews_NilWindowEntries(t *testing.T) {
	ws := &model.Workspace{Windows: []*model.Window{
		nil,
		{Handle: "1", ProcessName: "code", Title: "main.go", HasFocus: true},
	}}

	if v := TitleView(ws); v.Label != "main.go" {
		t.Errorf("TitleView().Label = %q, expected main.go", v.Label)
	}
	if views := AppViews(ws, nil); len(views) != 1 || views[0].Tooltip != "main.go" {
		t.Errorf("AppViews() = %+v, expected the single non-nil window", views)
	}
	if v := TitleView(&model.Workspace{Windows: []*model.Window{nil}}); v.Label != "" {
		t.Errorf("TitleView(only nil).Label = %q, expected empty", v.Label)
	}
}
