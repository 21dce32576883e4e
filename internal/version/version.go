package version

import "runtime"

// Build-time variables set via ldflags
var (
	AppVersion = "0.1.0"
	GitCommit  = "unknown"
	BuildDate  = "unknown"
)

// App returns the current version of typespec
func App() string {
	return AppVersion
}

// Platform returns the OS/architecture combination
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// String returns the one-line version banner.
func String() string {
	return "typespec v" + App() + "@" + GitCommit + " " + Platform() + " " + BuildDate
}
