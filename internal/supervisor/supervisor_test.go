//go:build !windows

package supervisor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verge-svc/daemon/internal/logio"
	"github.com/verge-svc/daemon/pkg/ipc"
)

// writeLoopScript drops a shell script under dir that runs until killed,
// printing a line every few milliseconds. It ignores the "-d"/"-f"
// arguments the supervisor always passes, same as a real core binary
// would parse its own flags and ignore unknown ones.
func writeLoopScript(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\ntrap 'exit 0' TERM\nwhile :; do echo tick; sleep 0.01; done\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func newTestConfig(t *testing.T, corePath string) ipc.ClashConfig {
	return ipc.ClashConfig{
		CoreConfig: ipc.CoreConfig{CorePath: corePath, ConfigDir: t.TempDir(), ConfigPath: "config.yaml"},
		LogConfig:  ipc.WriterConfig{Directory: t.TempDir(), MaxLogSize: 10 << 20, MaxLogFiles: 4},
	}
}

func TestStopOnIdleIsIdempotent(t *testing.T) {
	sup := New(logio.NewRing(), logio.NewWriterSlot())
	require.NoError(t, sup.Stop())
	require.NoError(t, sup.Stop())
	assert.Equal(t, Idle, sup.State())
}

func TestStartThenStop(t *testing.T) {
	dir := t.TempDir()
	core := writeLoopScript(t, dir, "core.sh")

	ring := logio.NewRing()
	sup := New(ring, logio.NewWriterSlot())

	require.NoError(t, sup.Start(newTestConfig(t, core)))
	assert.Equal(t, Running, sup.State())

	// give the pipeline a moment to observe at least one line.
	time.Sleep(50 * time.Millisecond)
	assert.Greater(t, ring.Len(), 0)

	require.NoError(t, sup.Stop())
	assert.Equal(t, Idle, sup.State())
	assert.Equal(t, 0, ring.Len())
}

func TestReplaceStopsThePreviousChild(t *testing.T) {
	dir := t.TempDir()
	coreA := writeLoopScript(t, dir, "core-a.sh")
	coreB := writeLoopScript(t, dir, "core-b.sh")

	sup := New(logio.NewRing(), logio.NewWriterSlot())

	require.NoError(t, sup.Start(newTestConfig(t, coreA)))
	firstChild := sup.cur
	require.NotNil(t, firstChild)

	require.NoError(t, sup.Start(newTestConfig(t, coreB)))
	assert.Equal(t, Running, sup.State())
	assert.NotSame(t, firstChild, sup.cur)

	// the replace must already have killed and reaped the first child:
	// ProcessState is only set once cmd.Wait has returned. A second Close
	// is then a no-op.
	require.NotNil(t, firstChild.cmd.ProcessState)
	require.NoError(t, firstChild.Close())

	require.NoError(t, sup.Stop())
}

func TestStartWithMissingBinaryFails(t *testing.T) {
	sup := New(logio.NewRing(), logio.NewWriterSlot())
	err := sup.Start(newTestConfig(t, filepath.Join(t.TempDir(), "does-not-exist")))
	require.Error(t, err)
	assert.Equal(t, Idle, sup.State())
}
