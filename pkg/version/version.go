// Package version exposes build metadata injected at link time.
package version

// Version is the gradefang release version, set via ldflags.
var Version = "dev"

// Commit is the Git commit the binary was built from, set via ldflags.
var Commit = "none"

// Date is the build timestamp, set via ldflags.
var Date = "unknown"
