package derive

import (
	"path/filepath"

	"github.com/ytget/topbar/internal/model"
)

// Battery icon files
const (
	IconBatteryFull      = "battery-max-charged-32.png"
	IconBatteryCharging  = "battery-charging-32.png"
	IconBatteryLevel4    = "battery-4-32.png"
	IconBatteryLevel3    = "battery-3-32.png"
	IconBatteryLevel2    = "battery-2-32.png"
	IconBatteryLevel1    = "battery-1-32.png"
	IconBatteryLevelNone = "battery-32.png"
)

// Network icon files
const (
	IconEthernet  = "wired-network-32.png"
	IconWifi3     = "wifi-3-32.png"
	IconWifi2     = "wifi-2-32.png"
	IconWifi1     = "wifi-1-32.png"
	IconWifi0     = "wifi-0-32.png"
	IconWifiOff   = "wifi-off-32.png"
	IconNoNetwork = "no-network-32.png"
)

// Other segment icons
const (
	IconCPU        = "cpu-32.png"
	IconClock      = "time-32.png"
	IconKeyboard   = "keyboard-32.png"
	IconStartMenu  = "start-32.png"
	DefaultAppIcon = "Application-32.png"
)

// Max number of wifi bars
const MaxWifiBars = 3

// dischargeIcons is indexed by discharge rung, fullest first
var dischargeIcons = []string{
	IconBatteryLevel4,
	IconBatteryLevel3,
	IconBatteryLevel2,
	IconBatteryLevel1,
	IconBatteryLevelNone,
}

// wifiIcons is indexed by signal rung, strongest first
var wifiIcons = []IconRef{
	{Name: IconWifi3, Bars: 3},
	{Name: IconWifi2, Bars: 2},
	{Name: IconWifi1, Bars: 1},
	{Name: IconWifi0},
}

// IconRef identifies an icon from the asset catalog. It is a comparable
// value: two references are the same icon iff they are ==.
type IconRef struct {
	Name   string // asset file name
	Bars   int    // lit wifi bars, 0 for non-wifi icons
	Dimmed bool   // disconnected rendering
}

// IsZero returns true for the empty reference
func (r IconRef) IsZero() bool {
	return r == IconRef{}
}

// Path returns the asset path below the given icon directory
func (r IconRef) Path(iconDir string) string {
	if r.Name == "" {
		return ""
	}
	return filepath.Join(iconDir, r.Name)
}

// IconLookup is the read side of an icon catalog
type IconLookup interface {
	Lookup(key string) (IconRef, bool)
	Default() IconRef
}

// BatteryIcon resolves the battery icon for a reading
func BatteryIcon(b *model.Battery, discharge Thresholds) IconRef {
	if b == nil {
		return IconRef{Name: IconBatteryLevelNone}
	}
	switch b.State {
	case model.BatteryStateFull:
		return IconRef{Name: IconBatteryFull}
	case model.BatteryStateCharging:
		return IconRef{Name: IconBatteryCharging}
	case model.BatteryStateDischarging:
		return IconRef{Name: Classify(b.ChargePercent, discharge, dischargeIcons)}
	default:
		return IconRef{Name: IconBatteryLevelNone}
	}
}

// NetworkIcon resolves the network icon for a reading
func NetworkIcon(n *model.Network, signal Thresholds) IconRef {
	switch n.InterfaceType() {
	case model.InterfaceTypeEthernet:
		return IconRef{Name: IconEthernet}
	case model.InterfaceTypeWifi:
		if !n.HasGateway() {
			return IconRef{Name: IconWifiOff, Dimmed: true}
		}
		return Classify(n.SignalStrength(), signal, wifiIcons)
	default:
		return IconRef{Name: IconNoNetwork}
	}
}

// AppIcon resolves the icon of a running application from its raw process
// name. Lookup is exact on the normalized key; misses fall back to the
// catalog default.
func AppIcon(processName string, icons IconLookup) IconRef {
	if icons == nil {
		return IconRef{Name: DefaultAppIcon}
	}
	if key := Normalize(processName); key != "" {
		if ref, ok := icons.Lookup(key); ok && !ref.IsZero() {
			return ref
		}
	}
	if def := icons.Default(); !def.IsZero() {
		return def
	}
	return IconRef{Name: DefaultAppIcon}
}
