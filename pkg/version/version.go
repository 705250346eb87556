// Package version holds build-time metadata injected via -ldflags, the
// same mechanism the teacher uses for its own version string.
package version

// Version is overridden at build time with:
//
//	go build -ldflags "-X github.com/verge-svc/daemon/pkg/version.Version=1.2.3"
var Version = "dev"

// Program is the daemon's canonical name, used in log lines and as the
// basename for default data/config directories.
const Program = "verge-svcd"
