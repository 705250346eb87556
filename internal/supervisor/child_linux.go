//go:build linux

package supervisor

import (
	"os"
	"os/exec"
	"syscall"
)

// configureSysProcAttr sets Pdeathsig so the core process is guaranteed to
// die if this daemon is killed outright (crash, SIGKILL) without running
// its own shutdown sequence. Grounded on the teacher's addDeathSig in
// pkg/agent/containerd/command.go. Pdeathsig is a Linux-only prctl
// feature; darwin has no equivalent (see child_darwin.go).
func configureSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Pdeathsig: syscall.SIGKILL,
	}
}

// killProcess sends SIGKILL; the child supervisor always does a hard
// kill rather than a graceful SIGTERM handshake with an arbitrary core
// binary it didn't write.
func killProcess(p *os.Process) error {
	return p.Kill()
}
