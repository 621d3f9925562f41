package derive

// Package derive turns raw, possibly partial telemetry into the discrete
// states shown by the bar: severity buckets, icon references, labels and
// tooltips. Every function here is pure and total: absent input yields a
// defined result and nothing returns an error.
