package macros

import (
	"path/filepath"
	"runtime"
)

// Build date and time are injected at link time:
//
//	go build -ldflags "\
//	  -X github.com/roach88/demokit/internal/macros.buildDate=$(date +%b' '%d' '%Y) \
//	  -X github.com/roach88/demokit/internal/macros.buildTime=$(date +%H:%M:%S)"
//
// Go has no compile-date intrinsic, so untagged builds report "unknown".
// Keeping the default fixed also keeps transcripts deterministic in tests.
var (
	buildDate = "unknown"
	buildTime = "unknown"
)

// BuildInfo is the read-only metadata the build environment supplies.
type BuildInfo struct {
	Date string
	Time string
}

// CurrentBuildInfo returns the link-time build metadata.
func CurrentBuildInfo() BuildInfo {
	return BuildInfo{Date: buildDate, Time: buildTime}
}

// Source returns the base name of the source file and the line number
// of the statement that called it, the runtime analog of the
// file/line intrinsics this demo reports.
func Source() (file string, line int) {
	_, path, line, ok := runtime.Caller(1)
	if !ok {
		return "unknown", 0
	}
	return filepath.Base(path), line
}
