package platform

// Package platform contains OS integration glue: environment expansion in
// command strings, per-user directories for assets and scripts, and how a
// launch target is handed to the operating system.
