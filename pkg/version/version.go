// Package version reports build information for the concatjson CLI tool.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at link time, for example:
// go build -ldflags "-X 'concatjson/pkg/version.Version=1.2.3' -X 'concatjson/pkg/version.Commit=abcdefg' -X 'concatjson/pkg/version.BuildTime=2024-04-27T15:04:05Z'"
// Values left at their defaults are filled from the module build info when available.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get returns the build information, preferring link-time values.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = withBuildInfo(info, bi)
	}
	return info
}

// withBuildInfo fills fields still at their defaults from bi: the module
// version for `go install module@version` builds, and the VCS stamp for
// builds from a checkout.
func withBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "none" && s.Value != "" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" && s.Value != "" {
				info.BuildTime = s.Value
			}
		}
	}
	return info
}

// String formats the information on one line, e.g.
// concatjson version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.22.1 on linux/amd64
func (i Info) String() string {
	return fmt.Sprintf("concatjson version %s (commit: %s) built at %s with %s on %s",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
