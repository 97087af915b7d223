// Package version reports the build of the concatlist binary.
package version

import (
	"fmt"
	"runtime"
)

// AppName names the binary in the CLI, in log fields and in the version line.
const AppName = "concatlist"

// Set with -ldflags "-X concatlist/pkg/version.Version=..." at release time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info is a snapshot of the build metadata plus the running toolchain.
type Info struct {
	App       string
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the build metadata of the running binary.
func Get() Info {
	return Info{
		App:       AppName,
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the one-line form printed by "concatlist version".
func (i Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s) built at %s with %s on %s",
		i.App, i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
