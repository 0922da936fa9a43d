// Package version holds build information stamped in at link time.
package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/npmpath/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/npmpath/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/npmpath/internal/version.Date={{.Date}}
)
