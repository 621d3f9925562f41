package model

// BatteryState represents the charging state reported by the battery provider
type BatteryState string

const (
	// BatteryStateUnknown means the provider did not report a state
	BatteryStateUnknown BatteryState = ""

	// BatteryStateFull means the battery is fully charged on AC power
	BatteryStateFull BatteryState = "full"

	// BatteryStateCharging means the battery is charging
	BatteryStateCharging BatteryState = "charging"

	// BatteryStateDischarging means the system runs on battery
	BatteryStateDischarging BatteryState = "discharging"
)

// String returns the string representation of BatteryState
func (bs BatteryState) String() string {
	return string(bs)
}

// IsKnown returns true if the state is one of the recognised values
func (bs BatteryState) IsKnown() bool {
	return bs == BatteryStateFull || bs == BatteryStateCharging || bs == BatteryStateDischarging
}

// IsDraining returns true when remaining time counts towards empty
func (bs BatteryState) IsDraining() bool {
	return bs == BatteryStateDischarging
}

// InterfaceType represents the kind of the default network interface
type InterfaceType string

const (
	InterfaceTypeUnknown  InterfaceType = ""
	InterfaceTypeEthernet InterfaceType = "ethernet"
	InterfaceTypeWifi     InterfaceType = "wifi"
	InterfaceTypeOther    InterfaceType = "other"
)

// String returns the string representation of InterfaceType
func (it InterfaceType) String() string {
	return string(it)
}

// IsWireless returns true for wifi interfaces
func (it InterfaceType) IsWireless() bool {
	return it == InterfaceTypeWifi
}

// Severity is the ordinal usage class attached to a segment.
// Ordering: low < medium < high < extreme.
type Severity string

const (
	SeverityLow     Severity = "low"
	SeverityMedium  Severity = "medium"
	SeverityHigh    Severity = "high"
	SeverityExtreme Severity = "extreme"
)

// String returns the string representation of Severity
func (s Severity) String() string {
	return string(s)
}

// Rank returns the position of the severity in its ordering, -1 if unknown
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityExtreme:
		return 3
	default:
		return -1
	}
}

// ClassName returns the style class used by the presentation layer (e.g. "high-usage")
func (s Severity) ClassName() string {
	if s.Rank() < 0 {
		return ""
	}
	return string(s) + "-usage"
}

// IsAlarming returns true if the severity should draw attention
func (s Severity) IsAlarming() bool {
	return s == SeverityHigh || s == SeverityExtreme
}
