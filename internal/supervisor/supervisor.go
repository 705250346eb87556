// Package supervisor owns the single core child process: spawning it,
// draining its output into the log pipeline, and tearing it down, with
// full-replace semantics when a new start arrives while one is running.
package supervisor

import (
	"os/exec"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/verge-svc/daemon/internal/logio"
	"github.com/verge-svc/daemon/pkg/ipc"
)

// State is one of the four points in the child supervisor's lifecycle.
type State int

const (
	Idle State = iota
	Starting
	Running
	Stopping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// child is the RAII-style guard around one spawned process: Close kills
// and reaps it exactly once, from whichever path gets there first (an
// explicit stop, or the supervisor's own shutdown).
type child struct {
	cmd      *exec.Cmd
	pipeline *logio.Pipeline
	once     sync.Once
}

func (c *child) Close() error {
	var err error
	c.once.Do(func() {
		if c.cmd.Process != nil {
			if killErr := killProcess(c.cmd.Process); killErr != nil {
				logrus.WithError(killErr).Warn("failed to signal core process during stop")
			}
		}
		c.pipeline.Wait()
		waitErr := c.cmd.Wait()
		if waitErr != nil {
			logrus.WithError(waitErr).Debug("core process reap reported an error (already exited is expected)")
		}
	})
	return err
}

// Supervisor is the process-wide singleton owning at most one core child.
type Supervisor struct {
	mu    sync.Mutex
	state State
	cur   *child

	ring *logio.Ring
	slot *logio.WriterSlot
}

// New builds a supervisor. ring and slot are shared with the rest of the
// process (the log-reading endpoint reads ring directly).
func New(ring *logio.Ring, slot *logio.WriterSlot) *Supervisor {
	return &Supervisor{state: Idle, ring: ring, slot: slot}
}

// State reports the current lifecycle point, for diagnostics.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start spawns cfg.CoreConfig.CorePath, replacing any currently running
// child first. On any failure the supervisor ends up Idle.
func (s *Supervisor) Start(cfg ipc.ClashConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Running {
		s.stopLocked()
	}
	s.state = Starting

	if _, err := s.slot.EnsureDefault(cfg.LogConfig); err != nil {
		s.state = Idle
		return errors.Wrap(err, "initialize log writer")
	}

	cmd := exec.Command(cfg.CoreConfig.CorePath, "-d", cfg.CoreConfig.ConfigDir, "-f", cfg.CoreConfig.ConfigPath)
	configureSysProcAttr(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		s.state = Idle
		return errors.Wrap(err, "attach stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		s.state = Idle
		return errors.Wrap(err, "attach stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		s.state = Idle
		return errors.Wrap(err, "spawn core process")
	}

	pipeline := logio.NewPipeline(s.slot, s.ring)
	pipeline.Start(stdout, stderr)

	s.cur = &child{cmd: cmd, pipeline: pipeline}
	s.state = Running

	go runPostStartHook()

	return nil
}

// Stop tears down the current child, if any. Idempotent: stopping an
// already-idle supervisor succeeds.
func (s *Supervisor) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	return nil
}

// stopLocked must be called with s.mu held.
func (s *Supervisor) stopLocked() {
	s.state = Stopping

	cur := s.cur
	s.cur = nil
	if cur != nil {
		if err := cur.Close(); err != nil {
			logrus.WithError(err).Warn("error stopping core process")
		}
	}

	// Clear only after the child's drain goroutines are guaranteed to have
	// stopped (cur.Close has returned): otherwise a still-draining pipe
	// backlog can Append lines after the clear, leaving a nonempty ring.
	s.ring.Clear()

	runPostStopHook()
	s.state = Idle
}
