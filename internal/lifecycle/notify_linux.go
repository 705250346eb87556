package lifecycle

import (
	systemd "github.com/coreos/go-systemd/v22/daemon"
	"github.com/sirupsen/logrus"
)

// notifyReady and notifyStopping tell systemd (if this process runs
// under it) that startup finished and teardown began, grounded directly
// on the teacher's systemd.SdNotify(true, "READY=1\n") call in
// pkg/cli/cmds/log_linux.go.
func notifyReady() {
	if sent, err := systemd.SdNotify(false, systemd.SdNotifyReady); err != nil {
		logrus.WithError(err).Debug("systemd notify failed")
	} else if !sent {
		logrus.Debug("not running under systemd notify socket")
	}
}

func notifyStopping() {
	if _, err := systemd.SdNotify(false, systemd.SdNotifyStopping); err != nil {
		logrus.WithError(err).Debug("systemd stopping notify failed")
	}
}

func finishShutdown() {}
