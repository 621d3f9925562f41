package command

import "context"

// Dispatcher defines the interface the bar uses to fire a command string.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd string) error
}
