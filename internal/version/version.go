// Package version holds the build metadata of gorebar.
package version

import "fmt"

// Set at build time, for example:
//
//	go build -ldflags "-X github.com/alexiusacademia/gorebar/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2026"
)

// String describes the build, e.g. "gorebar v0.1.0 (3f2c1ab, 2026-10-19)".
// Metadata that was not set at build time is left out.
func String() string {
	s := "gorebar v" + Version
	switch {
	case known(GitCommit) && known(BuildTime):
		s += fmt.Sprintf(" (%s, %s)", GitCommit, BuildTime)
	case known(GitCommit):
		s += fmt.Sprintf(" (%s)", GitCommit)
	case known(BuildTime):
		s += fmt.Sprintf(" (built %s)", BuildTime)
	}
	return s
}

func known(v string) bool {
	return v != "" && v != "unknown"
}
