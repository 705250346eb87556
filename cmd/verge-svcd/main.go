package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/verge-svc/daemon/internal/lifecycle"
	"github.com/verge-svc/daemon/internal/logio"
	"github.com/verge-svc/daemon/internal/router"
	"github.com/verge-svc/daemon/internal/supervisor"
	"github.com/verge-svc/daemon/internal/transport"
	"github.com/verge-svc/daemon/pkg/ipc"
	"github.com/verge-svc/daemon/pkg/version"
)

var (
	debug    bool
	endpoint string
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = version.Program
	app.Usage = "privileged local supervisor for the network proxy core"
	app.Version = version.Version
	app.Flags = []cli.Flag{
		&cli.BoolFlag{Name: "debug", Usage: "turn on debug logs", Destination: &debug},
		&cli.StringFlag{Name: "endpoint", Usage: "override the local transport endpoint path", Destination: &endpoint},
	}
	return app
}

func main() {
	app := newApp()
	app.Commands = []*cli.Command{
		newRunCommand(),
		newInstallCommand(),
		newUninstallCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newRunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run the daemon in the foreground",
		Action: func(c *cli.Context) error {
			return runDaemon()
		},
	}
}

// newInstallCommand and newUninstallCommand are explicit non-goals: the
// platform-native service-installation logic (launchd plist / systemd
// unit / SCM registration) is an external collaborator this module does
// not implement.
func newInstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "install the platform service (not implemented in this build)",
		Action: func(c *cli.Context) error {
			return errors.New("install is not implemented in this build; platform service installation is an external collaborator")
		},
	}
}

func newUninstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "uninstall",
		Usage: "uninstall the platform service (not implemented in this build)",
		Action: func(c *cli.Context) error {
			return errors.New("uninstall is not implemented in this build; platform service installation is an external collaborator")
		},
	}
}

func runDaemon() error {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	pid := os.Getpid()
	logrus.Infof("current process PID: %d", pid)

	path := endpoint
	if path == "" {
		path = transport.DefaultEndpoint()
	}

	ln, err := transport.Bind(path)
	if err != nil {
		logrus.WithError(err).Error("failed to bind listener")
		os.Exit(1)
	}

	ring := logio.NewRing()
	slot := logio.NewWriterSlot()
	sup := supervisor.New(ring, slot)

	handler := router.New(router.Deps{
		Magic: ipc.AuthExpect,
		Sup:   sup,
		Ring:  ring,
		Slot:  slot,
	})

	ctx := lifecycle.SetupShutdownContext(version.Program)

	controller := &lifecycle.Controller{
		Listener:   ln,
		Handler:    handler,
		Supervisor: sup,
	}

	logrus.Info("IPC server started. Waiting for Ctrl+C or SIGTERM to shut down...")
	return controller.Run(ctx)
}
