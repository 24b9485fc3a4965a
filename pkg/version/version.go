// Package version reports build metadata for repod.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X repod/pkg/version.Version=1.2.3 -X repod/pkg/version.Commit=abc".
// When left at their defaults, module build info is consulted instead.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info contains the resolved version information.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get resolves the version information for the running binary.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info = fillFromBuildInfo(info, buildInfo)
	}
	return info
}

// fillFromBuildInfo replaces unset fields with module and VCS data stamped by the go tool.
func fillFromBuildInfo(info Info, buildInfo *debug.BuildInfo) Info {
	if info.Version == "dev" && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		info.Version = buildInfo.Main.Version
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "none" {
				info.GitCommit = setting.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = setting.Value
			}
		}
	}
	return info
}

// String renders the information on one line.
func (i Info) String() string {
	return fmt.Sprintf("repod %s (commit: %s, built: %s, %s %s)",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
