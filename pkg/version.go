// Package clinsub holds application-wide metadata.
package clinsub

var (
	// Version is set by the build via ldflags.
	Version = "v0.1.0"
	// Build is the build timestamp, set via ldflags.
	Build = "n/a"
)
