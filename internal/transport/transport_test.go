//go:build linux || darwin

package transport

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindCreatesAndCleansUpSocket(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "svc.sock")

	ln, err := Bind(path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o660), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.ModeSetgid|0o770, dirInfo.Mode()&(os.ModeSetgid|0o777))

	require.NoError(t, ln.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestBindRemovesStaleSocket(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "svc.sock")

	stale, err := net.Listen("unix", path)
	require.NoError(t, err)
	stale.Close() // leaves the socket file behind on some platforms

	// recreate the file to simulate a stale artifact from an unclean exit
	f, err := os.Create(path)
	require.NoError(t, err)
	f.Close()

	ln, err := Bind(path)
	require.NoError(t, err)
	require.NoError(t, ln.Close())
}
