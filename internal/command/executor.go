package command

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ytget/topbar/internal/platform"
)

// Executor defaults
const (
	DefaultRunTimeout = 10 * time.Second
	DefaultRateLimit  = 4 // commands per second
	DefaultBurst      = 2
	RunIDPrefix       = "run-"
	MaxKeptRuns       = 64
)

// ErrRateLimited is returned when commands arrive faster than the limiter allows
var ErrRateLimited = errors.New("command rate limit exceeded")

// RunStatus of a dispatched command
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusError     RunStatus = "error"
)

// Run records one dispatched command
type Run struct {
	ID         string
	Command    string
	Program    string
	Args       []string
	Status     RunStatus
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Runner starts a program and waits for it
type Runner func(ctx context.Context, name string, args ...string) error

// ExecRunner runs the program with os/exec
func ExecRunner(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

var _ Dispatcher = (*Executor)(nil)

// Executor runs shell-exec commands in the background
type Executor struct {
	limiter   *rate.Limiter
	timeout   time.Duration
	runner    Runner
	goos      string
	runs      map[string]*Run
	order     []string
	runsMutex sync.RWMutex
	onUpdate  func(*Run) // callback for UI updates
}

// NewExecutor creates an executor allowing perSecond commands with the
// given burst. Non-positive values fall back to the defaults.
func NewExecutor(perSecond float64, burst int) *Executor {
	if perSecond <= 0 {
		perSecond = DefaultRateLimit
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &Executor{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		timeout: DefaultRunTimeout,
		runner:  ExecRunner,
		goos:    runtime.GOOS,
		runs:    make(map[string]*Run),
	}
}

// SetRunner replaces how programs are started
func (e *Executor) SetRunner(r Runner) {
	e.runner = r
}

// SetTimeout sets how long a program may run before it is killed
func (e *Executor) SetTimeout(d time.Duration) {
	if d > 0 {
		e.timeout = d
	}
}

// SetRateLimit changes how many commands per second are accepted.
// Non-positive values are ignored.
func (e *Executor) SetRateLimit(perSecond float64) {
	if perSecond > 0 {
		e.limiter.SetLimit(rate.Limit(perSecond))
	}
}

// SetUpdateCallback sets the callback function for run updates
func (e *Executor) SetUpdateCallback(callback func(*Run)) {
	e.onUpdate = callback
}

// Dispatch parses cmd and starts it in the background. It returns once the
// program has been scheduled.
func (e *Executor) Dispatch(ctx context.Context, cmd string) error {
	parsed, err := Parse(cmd)
	if err != nil {
		return err
	}
	if !e.limiter.Allow() {
		return ErrRateLimited
	}

	target := platform.ExpandEnv(parsed.Target)
	args := make([]string, len(parsed.Args))
	for i, a := range parsed.Args {
		args[i] = platform.ExpandEnv(a)
	}
	program, programArgs := platform.LaunchCommand(e.goos, target, args)

	run := &Run{
		ID:        generateRunID(),
		Command:   cmd,
		Program:   program,
		Args:      programArgs,
		Status:    RunStatusRunning,
		StartedAt: time.Now(),
	}
	e.track(run)
	e.notifyUpdate(run)

	go e.execute(context.WithoutCancel(ctx), run)
	return nil
}

// execute runs the program and records the outcome
func (e *Executor) execute(parent context.Context, run *Run) {
	ctx, cancel := context.WithTimeout(parent, e.timeout)
	defer cancel()

	err := e.runner(ctx, run.Program, run.Args...)

	e.runsMutex.Lock()
	if err != nil {
		run.Status = RunStatusError
		run.LastError = err.Error()
	} else {
		run.Status = RunStatusCompleted
	}
	run.FinishedAt = time.Now()
	e.runsMutex.Unlock()

	if err != nil {
		log.Printf("Warning: command %q failed: %v", run.Command, err)
	}
	e.notifyUpdate(run)
}

// GetRun returns a run by ID
func (e *Executor) GetRun(id string) (Run, bool) {
	e.runsMutex.RLock()
	defer e.runsMutex.RUnlock()
	run, exists := e.runs[id]
	if !exists {
		return Run{}, false
	}
	return *run, true
}

// track stores a run, forgetting the oldest beyond MaxKeptRuns
func (e *Executor) track(run *Run) {
	e.runsMutex.Lock()
	defer e.runsMutex.Unlock()
	e.runs[run.ID] = run
	e.order = append(e.order, run.ID)
	for len(e.order) > MaxKeptRuns {
		delete(e.runs, e.order[0])
		e.order = e.order[1:]
	}
}

// notifyUpdate calls the update callback with a copy of the run
func (e *Executor) notifyUpdate(run *Run) {
	if e.onUpdate == nil {
		return
	}
	e.runsMutex.RLock()
	snapshot := *run
	e.runsMutex.RUnlock()
	e.onUpdate(&snapshot)
}

// generateRunID generates a time-ordered run ID using UUID v7
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
