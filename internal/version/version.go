// Package version carries build metadata injected with -ldflags.
package version

var (
	// Version is the release version.
	Version = "dev"
	// Commit is the git revision the binary was built from.
	Commit = ""
	// BuildDate is the UTC build timestamp.
	BuildDate = ""
)
