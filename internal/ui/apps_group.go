package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/topbar/internal/derive"
	"github.com/ytget/topbar/internal/feedback"
)

// AppEntry is one button of the application strip
type AppEntry struct {
	Handle  string
	View    derive.View
	Focused bool
}

// AppsGroup is the strip of running applications. Buttons are reused
// across updates so their click feedback survives a refresh.
type AppsGroup struct {
	icons       *IconCache
	newFeedback func() *feedback.Feedback

	entries  []AppEntry
	segments []*Segment

	// UI components
	container *fyne.Container

	// Callbacks
	onFocus func(handle string)
}

// NewAppsGroup creates an empty application strip
func NewAppsGroup(icons *IconCache, newFeedback func() *feedback.Feedback) *AppsGroup {
	return &AppsGroup{
		icons:       icons,
		newFeedback: newFeedback,
		container:   container.NewHBox(),
	}
}

// SetOnFocus sets the callback run when an application button is clicked
func (ag *AppsGroup) SetOnFocus(fn func(handle string)) {
	if fn == nil {
		log.Printf("Warning: AppsGroup focus callback is nil")
	}
	ag.onFocus = fn
}

// Container returns the container holding the buttons
func (ag *AppsGroup) Container() *fyne.Container {
	return ag.container
}

// Segments returns the visible buttons in display order
func (ag *AppsGroup) Segments() []*Segment {
	return ag.segments[:len(ag.entries)]
}

// Entries returns the entries currently displayed
func (ag *AppsGroup) Entries() []AppEntry {
	return ag.entries
}

// SetApps replaces the displayed applications
func (ag *AppsGroup) SetApps(entries []AppEntry) {
	ag.entries = entries

	for len(ag.segments) < len(entries) {
		ag.segments = append(ag.segments, ag.createAppButton(len(ag.segments)))
	}

	objects := make([]fyne.CanvasObject, 0, len(entries))
	for i, entry := range entries {
		seg := ag.segments[i]
		seg.SetView(entry.View)
		seg.SetSelected(entry.Focused)
		objects = append(objects, seg)
	}

	// Buttons beyond the current list stay cached but are not displayed
	for _, seg := range ag.segments[len(entries):] {
		if fb := seg.Feedback(); fb != nil {
			fb.Reset()
		}
	}

	ag.container.Objects = objects
	ag.container.Refresh()
}

// createAppButton creates the button at position index
func (ag *AppsGroup) createAppButton(index int) *Segment {
	var fb *feedback.Feedback
	if ag.newFeedback != nil {
		fb = ag.newFeedback()
	}

	seg := NewSegment("app", ag.icons, fb)
	seg.SetIconMinSize(AppIconMin)
	seg.SetOnTapped(func() {
		if index >= len(ag.entries) {
			return
		}
		handle := ag.entries[index].Handle
		if ag.onFocus != nil {
			ag.onFocus(handle)
		} else {
			log.Printf("Focus requested for window %s", handle)
		}
	})
	return seg
}
