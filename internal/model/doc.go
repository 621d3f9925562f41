package model

// Package model defines the telemetry snapshots consumed by the bar: battery,
// network, cpu, keyboard, clock and window-manager readings. Every field may
// be absent; absence is encoded as a nil pointer or an empty enum value and
// consumers must handle it explicitly.
