package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (symbols)
const (
	IconSettings = "⚙"
)

// Layout sizing
const (
	BarHeight      float32 = 32
	BarMinWidth    float32 = 720
	SegmentIconMin float32 = 18
	AppIconMin     float32 = 22
	TitleMinWidth  float32 = 160
)

// Tooltip behavior
const (
	TooltipOffset float32 = 4
)

// Command dispatch
const (
	DispatchTimeout = 2 * time.Second
)
