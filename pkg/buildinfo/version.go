// Package buildinfo holds the version stamped into archtower builds.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/archtower/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/archtower/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/archtower/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// Stamped at link time; development builds keep the defaults.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// shortCommit is the length of an abbreviated commit SHA.
const shortCommit = 7

// Short returns the version with an abbreviated commit, e.g. "v0.3.0 (a1b2c3d)".
func Short() string {
	commit := Commit
	if len(commit) > shortCommit {
		commit = commit[:shortCommit]
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}

// Template returns the cobra version template. It prints the command name
// followed by the full build information.
func Template() string {
	return "{{.Name}} " + Short() + "\nbuilt " + Date + "\n"
}
