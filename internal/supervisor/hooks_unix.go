//go:build !windows

package supervisor

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// mihomoSock is the control socket the core process creates for its own
// clients, which by default isn't reachable by unprivileged callers.
const mihomoSock = "/tmp/verge/verge-mihomo.sock"

// runPostStartHook loosens the core's own control socket permissions so
// unprivileged clients can reach it, matching the compatibility shim the
// original service performed. Best-effort: a missing socket (the core
// hasn't created it yet, or doesn't use one) is not an error.
func runPostStartHook() {
	time.Sleep(200 * time.Millisecond)
	if err := os.Chmod(mihomoSock, 0o777); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Debug("post-start mihomo socket chmod failed")
	}
}

// runPostStopHook removes the stale control socket so a subsequent start
// doesn't race a new core process against a leftover file.
func runPostStopHook() {
	if err := os.Remove(mihomoSock); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Debug("post-stop mihomo socket cleanup failed")
	}
}
