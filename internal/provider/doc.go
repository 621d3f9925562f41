package provider

// Package provider samples telemetry for the bar: battery from sysfs, cpu,
// network and running applications through gopsutil, the keyboard locale
// through go-locale, and the wall clock. Each source is polled on its own
// interval and failures are reported as absent readings.
