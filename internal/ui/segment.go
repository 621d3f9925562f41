package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/topbar/internal/derive"
	"github.com/ytget/topbar/internal/feedback"
)

// Segment is one clickable element of the bar: an icon, an optional label
// coloured by severity and a tooltip shown on hover. A click activates its
// feedback state machine, which highlights the segment until it expires.
type Segment struct {
	widget.BaseWidget

	name     string
	icons    *IconCache
	feedback *feedback.Feedback
	view     derive.View
	selected bool
	active   bool

	// UI components
	icon       *canvas.Image
	label      *widget.Label
	background *canvas.Rectangle
	tooltip    *widget.PopUp

	onTapped func()
}

var (
	_ fyne.Tappable     = (*Segment)(nil)
	_ desktop.Hoverable = (*Segment)(nil)
)

// NewSegment creates a segment. fb may be nil for segments without click
// feedback.
func NewSegment(name string, icons *IconCache, fb *feedback.Feedback) *Segment {
	s := &Segment{
		name:     name,
		icons:    icons,
		feedback: fb,
	}
	s.ExtendBaseWidget(s)
	s.createUI()

	if fb != nil {
		fb.OnChange(func(state feedback.State) {
			s.setActive(state == feedback.StateActivated)
		})
	}
	return s
}

// createUI creates the UI components
func (s *Segment) createUI() {
	s.icon = canvas.NewImageFromResource(nil)
	s.icon.FillMode = canvas.ImageFillContain
	s.icon.SetMinSize(fyne.NewSize(SegmentIconMin, SegmentIconMin))
	s.icon.Hide()

	s.label = widget.NewLabel("")
	s.label.Truncation = fyne.TextTruncateEllipsis
	s.label.Hide()

	s.background = canvas.NewRectangle(theme.Color(theme.ColorNameHover))
	s.background.CornerRadius = theme.Size(theme.SizeNameSelectionRadius)
	s.background.Hide()
}

// Name returns the segment name
func (s *Segment) Name() string {
	return s.name
}

// View returns the view currently displayed
func (s *Segment) View() derive.View {
	return s.view
}

// Feedback returns the click state machine, nil when the segment has none
func (s *Segment) Feedback() *feedback.Feedback {
	return s.feedback
}

// SetOnTapped sets the click action
func (s *Segment) SetOnTapped(fn func()) {
	s.onTapped = fn
}

// SetIconMinSize changes the rendered icon size
func (s *Segment) SetIconMinSize(size float32) {
	s.icon.SetMinSize(fyne.NewSize(size, size))
}

// SetView updates the segment from a derived view
func (s *Segment) SetView(v derive.View) {
	s.view = v

	if res := s.icons.Resource(v.Icon); res != nil {
		s.icon.Resource = res
		s.icon.Show()
	} else {
		s.icon.Resource = nil
		s.icon.Hide()
	}
	s.icon.Refresh()

	s.label.Importance = SeverityImportance(v.Severity)
	s.label.SetText(v.Label)
	if v.Label == "" {
		s.label.Hide()
	} else {
		s.label.Show()
	}

	if s.tooltip != nil && s.tooltip.Visible() {
		s.showTooltip()
	}
	s.Refresh()
}

// SetSelected marks the segment as selected (the focused application)
func (s *Segment) SetSelected(selected bool) {
	if s.selected == selected {
		return
	}
	s.selected = selected
	s.updateBackground()
}

// IsSelected returns true if the segment is marked selected
func (s *Segment) IsSelected() bool {
	return s.selected
}

// IsHighlighted returns true while the click highlight is visible
func (s *Segment) IsHighlighted() bool {
	return s.active
}

func (s *Segment) setActive(active bool) {
	s.active = active
	s.updateBackground()
}

func (s *Segment) updateBackground() {
	switch {
	case s.active:
		s.background.FillColor = theme.Color(theme.ColorNamePressed)
		s.background.Show()
	case s.selected:
		s.background.FillColor = theme.Color(theme.ColorNameSelection)
		s.background.Show()
	default:
		s.background.Hide()
	}
	s.background.Refresh()
}

// Tapped activates the feedback and runs the click action
func (s *Segment) Tapped(_ *fyne.PointEvent) {
	if s.feedback != nil {
		s.feedback.Click()
	}
	if s.onTapped != nil {
		s.onTapped()
	}
}

// MouseIn shows the tooltip
func (s *Segment) MouseIn(_ *desktop.MouseEvent) {
	s.showTooltip()
}

// MouseMoved is required by desktop.Hoverable
func (s *Segment) MouseMoved(_ *desktop.MouseEvent) {}

// MouseOut hides the tooltip
func (s *Segment) MouseOut() {
	if s.tooltip != nil {
		s.tooltip.Hide()
	}
}

// Tooltip returns the tooltip text of the current view
func (s *Segment) Tooltip() string {
	return s.view.Tooltip
}

func (s *Segment) showTooltip() {
	if s.view.Tooltip == "" {
		if s.tooltip != nil {
			s.tooltip.Hide()
		}
		return
	}

	c := fyne.CurrentApp().Driver().CanvasForObject(s)
	if c == nil {
		return
	}

	text := widget.NewLabel(s.view.Tooltip)
	if s.tooltip != nil {
		s.tooltip.Hide()
	}
	s.tooltip = widget.NewPopUp(text, c)

	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(s)
	pos = pos.AddXY(0, s.Size().Height+TooltipOffset)
	s.tooltip.ShowAtPosition(pos)
}

// CreateRenderer creates the widget renderer
func (s *Segment) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewHBox(s.icon, s.label)
	return widget.NewSimpleRenderer(container.NewStack(s.background, container.NewPadded(content)))
}
