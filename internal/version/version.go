// Package version holds the build version, overridable with
// -ldflags "-X seqgen/internal/version.Version=...".
package version

var Version = "1.0.0"
