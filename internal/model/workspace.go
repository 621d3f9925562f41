package model

import "strings"

// Window represents a single top-level window reported by the window manager
type Window struct {
	Handle      string
	ProcessName string
	Title       string
	HasFocus    bool
}

// Workspace represents the windows on the focused workspace
type Workspace struct {
	Name    string
	Windows []*Window
}

// NewWorkspace creates a new workspace with the given windows
func NewWorkspace(name string, windows ...*Window) *Workspace {
	ws := &Workspace{
		Name:    name,
		Windows: make([]*Window, 0, len(windows)),
	}
	for _, w := range windows {
		ws.AddWindow(w)
	}
	return ws
}

// AddWindow adds a window to the workspace, ignoring nil entries
func (ws *Workspace) AddWindow(window *Window) {
	if window == nil {
		return
	}
	ws.Windows = append(ws.Windows, window)
}

// FocusedWindow returns the first focused window, or nil. Nil entries are
// skipped here and in every other lookup.
func (ws *Workspace) FocusedWindow() *Window {
	if ws == nil {
		return nil
	}
	for _, window := range ws.Windows {
		if window != nil && window.HasFocus {
			return window
		}
	}
	return nil
}

// WindowByHandle returns the window with the given handle
func (ws *Workspace) WindowByHandle(handle string) (*Window, bool) {
	if ws == nil {
		return nil, false
	}
	for _, window := range ws.Windows {
		if window != nil && window.Handle == handle {
			return window, true
		}
	}
	return nil, false
}

// Len returns the number of windows, zero for a nil workspace
func (ws *Workspace) Len() int {
	if ws == nil {
		return 0
	}
	return len(ws.Windows)
}

// DisplayTitle returns the title, falling back to the process name
func (w *Window) DisplayTitle() string {
	if w == nil {
		return ""
	}
	if title := strings.TrimSpace(w.Title); title != "" {
		return title
	}
	return w.ProcessName
}

// WithFocus returns a copy of the workspace in which only the window with
// the given handle is focused. Nil entries are dropped from the copy. The
// workspace is returned as is when no window has that handle.
func (ws *Workspace) WithFocus(handle string) *Workspace {
	if _, ok := ws.WindowByHandle(handle); !ok {
		return ws
	}
	focused := &Workspace{Name: ws.Name, Windows: make([]*Window, 0, len(ws.Windows))}
	for _, window := range ws.Windows {
		if window == nil {
			continue
		}
		w := *window
		w.HasFocus = w.Handle == handle
		focused.Windows = append(focused.Windows, &w)
	}
	return focused
}
