//go:build !windows

package lifecycle

import "context"

// SetupShutdownContext wires the shutdown sources for this platform. On
// Unix there is only one path: SIGINT/SIGTERM via SetupSignalContext. The
// name argument exists only so callers have one signature across
// platforms; Unix has no service-name-addressed control plane to pass it
// to.
func SetupShutdownContext(name string) context.Context {
	return SetupSignalContext()
}
