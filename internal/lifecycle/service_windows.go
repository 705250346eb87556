//go:build windows

package lifecycle

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows/svc"
)

// svcHandler adapts the Windows Service Control Manager's Stop/Interrogate
// callbacks onto a cancel func, for the case where this process was
// launched under SCM control rather than as a console application.
// golang.org/x/sys/windows/svc is already part of the vendored
// golang.org/x/sys tree; no new dependency.
type svcHandler struct {
	cancel context.CancelFunc
}

func (h *svcHandler) Execute(args []string, r <-chan svc.ChangeRequest, s chan<- svc.Status) (bool, uint32) {
	s <- svc.Status{State: svc.StartPending}
	s <- svc.Status{State: svc.Running, Accepts: svc.AcceptStop | svc.AcceptShutdown}

	for req := range r {
		switch req.Cmd {
		case svc.Interrogate:
			s <- req.CurrentStatus
		case svc.Stop, svc.Shutdown:
			s <- svc.Status{State: svc.StopPending}
			h.cancel()
			s <- svc.Status{State: svc.Stopped}
			return false, 0
		}
	}
	return false, 0
}

// RunUnderServiceControlManager blocks running as an SCM-controlled
// service, calling cancel on a Stop or Shutdown request.
// Callers should only take this path when svc.IsWindowsService() reports
// true; otherwise signals.go's console-based path applies.
func RunUnderServiceControlManager(name string, cancel context.CancelFunc) error {
	return svc.Run(name, &svcHandler{cancel: cancel})
}

// IsWindowsService reports whether the process was launched by the SCM.
func IsWindowsService() bool {
	is, err := svc.IsWindowsService()
	if err != nil {
		logrus.WithError(err).Debug("failed to determine SCM launch context")
		return false
	}
	return is
}
