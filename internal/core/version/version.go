// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for the named binary.
// version, commit and date are set at build time:
//
//	-ldflags "-X 'commentsweep/internal/core/version.version=v0.1.0'
//	  -X 'commentsweep/internal/core/version.commit=abcd' -X 'commentsweep/internal/core/version.date=2026-10-01'"
func Info(service string) BuildInfo {
	if service == "" {
		service = "commentsweep-api"
	}
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// UserAgent is sent on outbound platform calls
func UserAgent() string { return "commentsweep/" + version }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
