// Package version reports the SDK version and the User-Agent sent with every
// request.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// ModulePath is the import path of this SDK.
const ModulePath = "github.com/kbukum/baasic"

// Product is the User-Agent product token.
const Product = "baasic-go"

var (
	// Version can be set at build time using -ldflags. When left at "dev" it is
	// resolved from the module build info of the consuming binary.
	Version   = "dev"
	GitCommit = ""
)

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
}

// buildInfo is swapped in tests.
var buildInfo = debug.ReadBuildInfo

// GetVersionInfo returns the SDK version information.
func GetVersionInfo() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
	}

	if info.Version == "dev" {
		if bi, ok := buildInfo(); ok {
			info.Version = moduleVersion(bi)
		}
	}
	info.IsRelease = info.Version != "dev" && !strings.Contains(info.Version, "devel")
	return info
}

// moduleVersion finds the SDK among the binary's dependencies, or as the main
// module when the SDK itself is being built.
func moduleVersion(bi *debug.BuildInfo) string {
	for _, dep := range bi.Deps {
		if dep.Path == ModulePath && dep.Version != "" {
			return strings.TrimPrefix(dep.Version, "v")
		}
	}
	if bi.Main.Path == ModulePath && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return strings.TrimPrefix(bi.Main.Version, "v")
	}
	return "dev"
}

// GetShortVersion returns a short version string.
func GetShortVersion() string {
	info := GetVersionInfo()
	if info.GitCommit != "" {
		return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
	}
	return info.Version
}

// UserAgent returns the User-Agent header value, e.g.
// "baasic-go/1.2.0 (go1.26.0; linux/amd64)".
func UserAgent() string {
	info := GetVersionInfo()
	return fmt.Sprintf("%s/%s (%s; %s/%s)", Product, info.Version, info.GoVersion, runtime.GOOS, runtime.GOARCH)
}
