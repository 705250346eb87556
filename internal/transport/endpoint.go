// Package transport binds the platform-local endpoint (a Unix domain
// socket on Linux/macOS, a named pipe on Windows) that the router is
// served over, applying the access-control steps the wire contract
// requires before any connection is accepted.
package transport

import "runtime"

// DefaultEndpoint returns the canonical per-platform endpoint path/name.
// Unix paths are filesystem sockets; the Windows value is a named pipe
// address, not a filesystem path.
func DefaultEndpoint() string {
	switch runtime.GOOS {
	case "darwin":
		return "/private/var/run/verge/clash-verge-service.sock"
	case "windows":
		return `\\.\pipe\clash-verge-service`
	default:
		return "/tmp/verge/clash-verge-service.sock"
	}
}
