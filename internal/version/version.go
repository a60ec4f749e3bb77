// Package version provides build version information for the client library
// and the ironboxdx CLI.
package version

// Version is the build version string, set by ldflags during release builds.
var Version = "v2.0.0-dev"

// BuildTime is the build timestamp, set by ldflags during release builds.
var BuildTime = "unknown"
