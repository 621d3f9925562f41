package reactive

// Package reactive caches values derived from telemetry. Sources are set on a
// Store; a Memo declares which sources it reads and recomputes only when one
// of them changed. A Store and its memos belong to one goroutine, which in
// the bar is the Fyne UI goroutine.
