// Package lifecycle wires signal sources to the orderly shutdown
// sequence: notify the host service manager that shutdown has begun, stop
// the child, stop serving, close the listener.
package lifecycle

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/verge-svc/daemon/internal/supervisor"
	"github.com/verge-svc/daemon/internal/transport"
)

// Controller runs the serve loop against a listener and drives the
// shutdown sequence when its context is cancelled.
// Grounded on the teacher's pkg/signals (context cancelled by
// SIGINT/SIGTERM, double-signal hard exit).
type Controller struct {
	Listener   *transport.Listener
	Handler    http.Handler
	Supervisor *supervisor.Supervisor

	server *http.Server
}

// shutdownTimeout bounds how long Run waits for in-flight requests to
// drain during graceful shutdown.
const shutdownTimeout = 5 * time.Second

// Run serves on the listener until ctx is cancelled (by the shutdown
// sources installed via SetupShutdownContext), then performs the shutdown
// sequence: stop the child, stop the HTTP server, close the listener.
func (c *Controller) Run(ctx context.Context) error {
	c.server = &http.Server{Handler: c.Handler}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- c.server.Serve(c.Listener)
	}()

	notifyReady()

	select {
	case <-ctx.Done():
		logrus.Info("shutdown signal received, stopping core and draining requests")
	case err := <-serveErr:
		return err
	}

	notifyStopping()

	if err := c.Supervisor.Stop(); err != nil {
		logrus.WithError(err).Warn("error stopping core process during shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := c.server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("graceful HTTP shutdown did not complete in time")
		_ = c.server.Close()
	}

	if err := c.Listener.Close(); err != nil {
		logrus.WithError(err).Warn("error closing listener")
	}

	finishShutdown()

	return nil
}
