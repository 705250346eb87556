//go:build windows

package lifecycle

import "os"

// Ctrl+C and Ctrl+Break arrive through the same os/signal channel as
// os.Interrupt; Go's runtime translates both console-control events into
// it, so no direct windows.SetConsoleCtrlHandler call is needed here.
var shutdownSignals = []os.Signal{os.Interrupt}
