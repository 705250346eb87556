//go:build windows

package lifecycle

import (
	"context"

	"github.com/sirupsen/logrus"
)

// SetupShutdownContext picks between the two Windows shutdown paths the
// spec calls out: SCM control callbacks when the SCM itself launched this
// process as a service, falling back to the console Ctrl+C/Ctrl+Break
// path otherwise. The choice is made once, at startup, based on whether
// the SCM dispatch succeeds.
func SetupShutdownContext(name string) context.Context {
	if !IsWindowsService() {
		return SetupSignalContext()
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := RunUnderServiceControlManager(name, cancel); err != nil {
			logrus.WithError(err).Error("SCM dispatch failed, falling back to console signals")
			<-SetupSignalContext().Done()
			cancel()
		}
	}()
	return ctx
}
