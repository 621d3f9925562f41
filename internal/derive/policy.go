package derive

// LabelCase selects how known keyboard layouts are labelled
type LabelCase string

const (
	LabelCaseUpper LabelCase = "upper"
	LabelCaseLower LabelCase = "lower"
)

// Policy bundles the per-segment thresholds and label options used when
// deriving views. Segments never share a Thresholds value.
type Policy struct {
	Battery   Thresholds
	Discharge Thresholds
	CPU       Thresholds
	Signal    Thresholds

	LayoutCase   LabelCase
	CompactClock bool
}

// DefaultPolicy returns the built-in thresholds and label options
func DefaultPolicy() Policy {
	return Policy{
		Battery:      NewThresholds(DefaultBatteryThresholds...),
		Discharge:    NewThresholds(DefaultDischargeThresholds...),
		CPU:          NewThresholds(DefaultCPUThresholds...),
		Signal:       NewThresholds(DefaultSignalThresholds...),
		LayoutCase:   LabelCaseUpper,
		CompactClock: true,
	}
}
