package derive

import (
	"fmt"
	"math"
	"strings"

	"github.com/ytget/topbar/internal/model"
)

// View is everything the presentation layer needs to draw one segment.
// It is recomputed from telemetry, never mutated.
type View struct {
	Icon     IconRef
	Severity model.Severity
	Label    string
	Tooltip  string
}

// BatteryView derives the battery segment
func BatteryView(b *model.Battery, p Policy) View {
	var charge *float64
	if b != nil {
		charge = b.ChargePercent
	}
	return View{
		Icon:     BatteryIcon(b, p.Discharge),
		Severity: BatterySeverity(charge, p.Battery),
		Label:    PercentLabel(charge),
		Tooltip:  BatteryTooltip(b),
	}
}

// NetworkView derives the network segment. Wired links are always low
// severity; a missing link is extreme.
func NetworkView(n *model.Network, p Policy) View {
	view := View{
		Icon:     NetworkIcon(n, p.Signal),
		Severity: model.SeverityExtreme,
		Label:    TrafficLabel(n),
		Tooltip:  "No network",
	}

	switch n.InterfaceType() {
	case model.InterfaceTypeEthernet:
		view.Severity = model.SeverityLow
		view.Tooltip = "Ethernet"
		if n.Interface.Name != "" {
			view.Tooltip = "Ethernet (" + n.Interface.Name + ")"
		}
	case model.InterfaceTypeWifi:
		if !n.HasGateway() {
			view.Tooltip = "Wi-Fi disconnected"
			break
		}
		view.Severity = SignalSeverity(n.SignalStrength(), p.Signal)
		view.Tooltip = fmt.Sprintf("Wi-Fi %s %s", n.Gateway.SSID, PercentLabel(n.SignalStrength()))
		view.Tooltip = strings.Join(strings.Fields(view.Tooltip), " ")
	}
	return view
}

// TrafficLabel renders received and transmitted rates, empty when unknown
func TrafficLabel(n *model.Network) string {
	if n == nil || n.Traffic == nil {
		return ""
	}
	return fmt.Sprintf("↓ %s ↑ %s", FormatRate(n.Traffic.Received), FormatRate(n.Traffic.Transmitted))
}

// CPUView derives the cpu segment. Usage is rounded before classification
// so the colour always agrees with the printed percentage.
func CPUView(c *model.CPU, p Policy) View {
	var usage *float64
	if c != nil && c.Usage != nil {
		rounded := math.Round(MetricValue(c.Usage))
		usage = &rounded
	}
	return View{
		Icon:     IconRef{Name: IconCPU},
		Severity: CPUSeverity(usage, p.CPU),
		Label:    PercentLabel(usage),
		Tooltip:  "CPU " + PercentLabel(usage),
	}
}

// KeyboardView derives the input method segment
func KeyboardView(k *model.Keyboard, p Policy) View {
	var layout *string
	if k != nil {
		layout = k.Layout
	}
	return View{
		Icon:     IconRef{Name: IconKeyboard},
		Severity: model.SeverityLow,
		Label:    LayoutLabel(layout, p.LayoutCase),
		Tooltip:  LayoutTooltip(layout),
	}
}

// ClockView derives the clock segment
func ClockView(d *model.Date, p Policy) View {
	view := View{
		Icon:     IconRef{Name: IconClock},
		Severity: model.SeverityLow,
		Label:    ClockLabel(d, p.CompactClock),
	}
	if d != nil {
		view.Tooltip = d.Formatted
	}
	return view
}

// AppView derives the button of one running application
func AppView(w *model.Window, icons IconLookup) View {
	if w == nil {
		return View{Icon: AppIcon("", icons), Severity: model.SeverityLow}
	}
	return View{
		Icon:     AppIcon(w.ProcessName, icons),
		Severity: model.SeverityLow,
		Tooltip:  w.DisplayTitle(),
	}
}

// AppViews derives the application strip for a workspace, in window order.
// Nil windows are skipped.
func AppViews(ws *model.Workspace, icons IconLookup) []View {
	views := make([]View, 0, ws.Len())
	if ws == nil {
		return views
	}
	for _, w := range ws.Windows {
		if w == nil {
			continue
		}
		views = append(views, AppView(w, icons))
	}
	return views
}

// TitleView derives the focused window title segment
func TitleView(ws *model.Workspace) View {
	title := WindowTitle(ws.FocusedWindow())
	return View{
		Severity: model.SeverityLow,
		Label:    title,
		Tooltip:  title,
	}
}
