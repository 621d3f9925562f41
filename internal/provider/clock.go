package provider

import (
	"context"
	"sync"
	"time"

	"github.com/ytget/topbar/internal/model"
)

// DefaultDateFormat renders as "15:04 Mon 2 Jan"; compact mode keeps the
// leading HH:MM
const DefaultDateFormat = "15:04 Mon 2 Jan"

// ClockSource reports the formatted wall clock
type ClockSource struct {
	mu     sync.RWMutex
	layout string
	now    func() time.Time
}

// NewClockSource creates a clock with the given time layout
func NewClockSource(layout string) *ClockSource {
	if layout == "" {
		layout = DefaultDateFormat
	}
	return &ClockSource{layout: layout, now: time.Now}
}

// Kind implements Source
func (c *ClockSource) Kind() Kind {
	return KindClock
}

// SetLayout changes the time layout used from the next sample on
func (c *ClockSource) SetLayout(layout string) {
	if layout == "" {
		layout = DefaultDateFormat
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.layout = layout
}

// Sample implements Source
func (c *ClockSource) Sample(ctx context.Context) (any, error) {
	c.mu.RLock()
	layout := c.layout
	c.mu.RUnlock()

	now := c.now()
	return &model.Date{Now: now, Formatted: now.Format(layout)}, nil
}
