package derive

import (
	"math"
	"sort"

	"github.com/ytget/topbar/internal/model"
)

// AbsentMetric is the value every classifier uses for an absent, negative or
// NaN reading.
const AbsentMetric = 0.0

// Default cut points, highest first. Comparison is inclusive: a reading equal
// to a cut point belongs to the bucket that cut point opens.
var (
	DefaultBatteryThresholds   = []float64{70, 40, 15}
	DefaultDischargeThresholds = []float64{90, 70, 40, 15}
	DefaultCPUThresholds       = []float64{90, 65, 30}
	DefaultSignalThresholds    = []float64{75, 45, 5}
)

// Severity ladders indexed by rung.
var (
	// BatterySeverities grows as the charge drops
	BatterySeverities = []model.Severity{
		model.SeverityLow, model.SeverityMedium, model.SeverityHigh, model.SeverityExtreme,
	}
	// CPUSeverities grows with usage
	CPUSeverities = []model.Severity{
		model.SeverityExtreme, model.SeverityHigh, model.SeverityMedium, model.SeverityLow,
	}
	// SignalSeverities grows as the signal weakens
	SignalSeverities = []model.Severity{
		model.SeverityLow, model.SeverityMedium, model.SeverityHigh, model.SeverityExtreme,
	}
)

// Thresholds is an ordered list of cut points, kept highest first.
type Thresholds struct {
	cuts []float64
}

// NewThresholds builds a ladder from cut points in any order. NaN cut points
// are dropped.
func NewThresholds(cuts ...float64) Thresholds {
	sorted := make([]float64, 0, len(cuts))
	for _, c := range cuts {
		if math.IsNaN(c) {
			continue
		}
		sorted = append(sorted, c)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	return Thresholds{cuts: sorted}
}

// Cuts returns a copy of the cut points, highest first
func (t Thresholds) Cuts() []float64 {
	out := make([]float64, len(t.cuts))
	copy(out, t.cuts)
	return out
}

// Len returns the number of cut points
func (t Thresholds) Len() int {
	return len(t.cuts)
}

// Rung returns the index of the highest cut point the reading reaches, or
// Len() when it reaches none.
func (t Thresholds) Rung(v *float64) int {
	x := MetricValue(v)
	for i, cut := range t.cuts {
		if x >= cut {
			return i
		}
	}
	return len(t.cuts)
}

// MetricValue resolves a reading to a number, applying AbsentMetric.
// Values above 100 are kept as is.
func MetricValue(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || *v < 0 {
		return AbsentMetric
	}
	return *v
}

// Classify maps a reading onto the bucket at its rung. A ladder shorter than
// Len()+1 entries clamps to its last bucket; an empty ladder yields the zero
// value.
func Classify[T any](v *float64, t Thresholds, buckets []T) T {
	var zero T
	if len(buckets) == 0 {
		return zero
	}
	rung := t.Rung(v)
	if rung >= len(buckets) {
		rung = len(buckets) - 1
	}
	return buckets[rung]
}

// BatterySeverity classifies a charge percentage
func BatterySeverity(charge *float64, t Thresholds) model.Severity {
	return Classify(charge, t, BatterySeverities)
}

// CPUSeverity classifies a cpu usage percentage
func CPUSeverity(usage *float64, t Thresholds) model.Severity {
	return Classify(usage, t, CPUSeverities)
}

// SignalSeverity classifies a wifi signal strength
func SignalSeverity(strength *float64, t Thresholds) model.Severity {
	return Classify(strength, t, SignalSeverities)
}
