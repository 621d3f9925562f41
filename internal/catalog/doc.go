package catalog

// Package catalog holds the icon catalog mapping normalized process names to
// icon files. A Catalog is immutable once loaded; reloading builds a new value.
