package ui

// Package ui contains the Fyne-based status bar. Telemetry readings are
// stored in a reactive store on the UI goroutine; every segment renders a
// memoized view derived from it and dispatches a command when clicked.
// All UI strings are localized via Localization.
