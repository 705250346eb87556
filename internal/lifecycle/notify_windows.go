//go:build windows

package lifecycle

import "time"

// SCM readiness/stop notification goes through service_windows.go's
// svcHandler status updates instead of an SdNotify-shaped call.
func notifyReady() {}

func notifyStopping() {}

// finishShutdown sleeps briefly so the named pipe fully releases before
// a potential restart, per the shutdown sequence's Windows-only step.
func finishShutdown() {
	time.Sleep(60 * time.Millisecond)
}
