package handler

import (
	"net/http"
	"os"
	"runtime"
)

// Stamped by the release build with -ldflags "-X".
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// BuildInfo is the body served by /version.
type BuildInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Storage   string `json:"storage"`
}

// HandleVersion reports the running build and the active storage backend
// ("postgres" or "memory").
func HandleVersion(storage string) http.HandlerFunc {
	info := BuildInfo{
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		Storage:   storage,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		body := info
		body.Version = ResolvedVersion()
		respondJSON(w, http.StatusOK, body)
	}
}

// ResolvedVersion prefers the stamped version, then $VERSION, then "dev".
func ResolvedVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}
