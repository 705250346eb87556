//go:build darwin

package supervisor

import (
	"os"
	"os/exec"
)

// configureSysProcAttr is a no-op on darwin: syscall.SysProcAttr has no
// Pdeathsig field on this OS (that's a Linux prctl feature), so guaranteed
// teardown on daemon crash relies on the lifecycle controller's shutdown
// sequence always reaching Supervisor.Stop.
func configureSysProcAttr(cmd *exec.Cmd) {}

// killProcess sends SIGKILL; the child supervisor always does a hard
// kill rather than a graceful SIGTERM handshake with an arbitrary core
// binary it didn't write.
func killProcess(p *os.Process) error {
	return p.Kill()
}
