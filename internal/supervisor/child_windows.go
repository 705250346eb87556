//go:build windows

package supervisor

import (
	"os"
	"os/exec"
)

// configureSysProcAttr is a no-op on Windows: there is no Pdeathsig
// equivalent available through os/exec, so guaranteed teardown instead
// relies on the lifecycle controller's own shutdown sequence always
// reaching Supervisor.Stop.
func configureSysProcAttr(cmd *exec.Cmd) {}

func killProcess(p *os.Process) error {
	return p.Kill()
}
