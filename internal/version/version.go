package version

import (
	"runtime"
)

// These variables are set at build time via -ldflags
var (
	Version   = "dev"     // -ldflags "-X .../internal/version.Version=v1.0.0"
	BuildTime = "unknown" // -ldflags "-X .../internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
	GitCommit = "unknown" // -ldflags "-X .../internal/version.GitCommit=$(git rev-parse HEAD)"
)

// BuildInfo contains build information
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetBuildInfo returns complete build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
