// Package version reports which build of pass-tutor is running.
package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/conneroisu/pass-tutor/internal/version.GitCommit=$(git rev-parse HEAD)"
var (
	Version   = "0.0.1"
	GitCommit = ""
	BuildTime = ""
)

// BuildInfo is the payload of `pass-tutor version --format json|yaml`.
type BuildInfo struct {
	Version   string `json:"version"              yaml:"version"`
	Commit    string `json:"commit,omitempty"     yaml:"commit,omitempty"`
	BuildTime string `json:"build_time,omitempty" yaml:"build_time,omitempty"`
	GoVersion string `json:"go_version"           yaml:"go_version"`
	Platform  string `json:"platform"             yaml:"platform"`
}

// GetBuildInfo merges the link-time variables with what the Go toolchain
// recorded in the binary. Link-time values win.
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		Commit:    GitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	// Malformed timestamps are dropped rather than printed.
	if built, err := time.Parse(time.RFC3339, BuildTime); err == nil {
		info.BuildTime = built.UTC().Format(time.RFC3339)
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			if info.Commit == "" && s.Key == "vcs.revision" {
				info.Commit = s.Value
			}
		}
	}

	if info.Version == "" {
		info.Version = "dev"
	}

	return info
}

// GetShortVersion is the one-line form used by --version and version --short.
func GetShortVersion() string {
	info := GetBuildInfo()
	if len(info.Commit) >= 7 {
		return info.Version + " (" + info.Commit[:7] + ")"
	}

	return info.Version
}

// GetDetailedVersion renders every known field, one per line.
func GetDetailedVersion() string {
	info := GetBuildInfo()

	lines := []string{"Version: " + info.Version}
	if info.Commit != "" {
		lines = append(lines, "Commit: "+info.Commit)
	}
	if info.BuildTime != "" {
		lines = append(lines, "Built: "+info.BuildTime)
	}
	lines = append(lines,
		"Go: "+info.GoVersion,
		"Platform: "+info.Platform,
	)

	return strings.Join(lines, "\n")
}
