package feedback

import (
	"sync"
	"time"
)

// State of a clickable element
type State int

const (
	StateIdle State = iota
	StateActivated
)

// DefaultTimeout is how long an element stays activated after a click
const DefaultTimeout = 300 * time.Millisecond

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActivated:
		return "activated"
	default:
		return "unknown"
	}
}

// Timer is the part of *time.Timer the state machine needs
type Timer interface {
	Stop() bool
}

// AfterFunc schedules fn after d, like time.AfterFunc
type AfterFunc func(d time.Duration, fn func()) Timer

// Option configures a Feedback
type Option func(*Feedback)

// WithTimeout sets the activation period. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(f *Feedback) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithAfterFunc replaces the timer source
func WithAfterFunc(after AfterFunc) Option {
	return func(f *Feedback) {
		f.after = after
	}
}

// WithDispatch sets how timer expiry is delivered, for example onto the UI
// goroutine with fyne.Do.
func WithDispatch(dispatch func(func())) Option {
	return func(f *Feedback) {
		f.dispatch = dispatch
	}
}

// Feedback is the click feedback state machine: a click activates the
// element and (re)starts a countdown; expiry returns it to idle. Re-clicking
// restarts the countdown instead of stacking another one.
type Feedback struct {
	mu         sync.Mutex
	state      State
	generation uint64
	timer      Timer
	timeout    time.Duration
	after      AfterFunc
	dispatch   func(func())
	listeners  []func(State)
}

// New creates an idle state machine
func New(opts ...Option) *Feedback {
	f := &Feedback{
		timeout: DefaultTimeout,
		after: func(d time.Duration, fn func()) Timer {
			return time.AfterFunc(d, fn)
		},
		dispatch: func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the current state
func (f *Feedback) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// IsActive returns true while the element is activated
func (f *Feedback) IsActive() bool {
	return f.State() == StateActivated
}

// Timeout returns the activation period
func (f *Feedback) Timeout() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.timeout
}

// SetTimeout changes the activation period for subsequent clicks
func (f *Feedback) SetTimeout(d time.Duration) {
	if d <= 0 {
		return
	}
	f.mu.Lock()
	f.timeout = d
	f.mu.Unlock()
}

// OnChange registers a listener for state transitions
func (f *Feedback) OnChange(fn func(State)) {
	f.mu.Lock()
	f.listeners = append(f.listeners, fn)
	f.mu.Unlock()
}

// Click activates the element synchronously and restarts the countdown.
// The timer is created outside the lock, so an AfterFunc that fires at once
// is safe.
func (f *Feedback) Click() {
	f.mu.Lock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.generation++
	gen := f.generation
	changed := f.state != StateActivated
	f.state = StateActivated
	timeout, after, dispatch := f.timeout, f.after, f.dispatch
	listeners := f.listeners
	f.mu.Unlock()

	if changed {
		notify(listeners, StateActivated)
	}

	timer := after(timeout, func() {
		dispatch(func() { f.expire(gen) })
	})

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation {
		// superseded while the timer was being created
		timer.Stop()
		return
	}
	if f.state == StateActivated {
		f.timer = timer
	}
}

// Reset returns to idle immediately and cancels any pending countdown. It is
// meant for elements that are hidden and later reused, not for user input.
func (f *Feedback) Reset() {
	f.mu.Lock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.generation++
	changed := f.state != StateIdle
	f.state = StateIdle
	listeners := f.listeners
	f.mu.Unlock()

	if changed {
		notify(listeners, StateIdle)
	}
}

// expire handles a fired timer. Timers from superseded clicks are ignored.
func (f *Feedback) expire(gen uint64) {
	f.mu.Lock()
	if gen != f.generation || f.state != StateActivated {
		f.mu.Unlock()
		return
	}
	f.state = StateIdle
	f.timer = nil
	listeners := f.listeners
	f.mu.Unlock()

	notify(listeners, StateIdle)
}

func notify(listeners []func(State), s State) {
	for _, fn := range listeners {
		fn(s)
	}
}
