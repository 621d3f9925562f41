package feedback

// Package feedback implements the transient "activated" highlight shown after
// a bar element is clicked.
