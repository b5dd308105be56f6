// Package buildinfo reports the version of the reckon binary.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/reckon/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/reckon/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/reckon/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Builds without ldflags (go install, go run) fall back to the VCS stamp the
// Go toolchain embeds in the binary.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"sync"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Info is a snapshot of the build variables.
type Info struct {
	Version string
	Commit  string
	Date    string
}

var (
	once   sync.Once
	cached Info
)

// Get returns the build information, filling unset ldflags values from the
// embedded VCS stamp when one exists.
func Get() Info {
	once.Do(func() {
		cached = Info{Version: Version, Commit: Commit, Date: Date}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if cached.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			cached.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && cached.Commit == "none":
				cached.Commit = s.Value
			case s.Key == "vcs.time" && cached.Date == "unknown":
				cached.Date = s.Value
			}
		}
	})
	return cached
}

// String returns the formatted build information.
func String() string {
	i := Get()
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", i.Version, i.Commit, i.Date)
}

// Template returns the version template string for cobra.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", i.Version, i.Commit, i.Date)
}
