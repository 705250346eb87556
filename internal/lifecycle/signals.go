package lifecycle

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
)

var onlyOneSignalHandler = make(chan struct{})

// SetupSignalContext registers the platform signal sources (shutdownSignals,
// defined per-OS) and returns a context cancelled on the first one. A
// second signal exits the process immediately, matching the teacher's
// pkg/signals.SetupSignalContext double-signal behavior.
func SetupSignalContext() context.Context {
	close(onlyOneSignalHandler) // panics if called twice

	sigCh := make(chan os.Signal, 2)
	ctx, cancel := context.WithCancel(context.Background())
	signal.Notify(sigCh, shutdownSignals...)

	go func() {
		s := <-sigCh
		logrus.Debugf("signal received: %s", s)
		cancel()
		s = <-sigCh
		logrus.Infof("second shutdown signal received: %s, exiting", s)
		os.Exit(1)
	}()

	return ctx
}
