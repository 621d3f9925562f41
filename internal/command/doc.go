package command

// Package command builds the shell-exec command strings bar elements send on
// click and runs them. Building is pure; running happens in Executor.
