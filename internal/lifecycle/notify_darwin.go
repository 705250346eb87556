//go:build darwin

package lifecycle

// launchd has no SdNotify-equivalent readiness protocol consumed here;
// the plist's own Sockets/KeepAlive stanzas (external collaborator)
// handle supervision instead.
func notifyReady() {}

func notifyStopping() {}

func finishShutdown() {}
