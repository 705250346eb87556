package logio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verge-svc/daemon/pkg/ipc"
)

func TestFileWriterCurrentFileNaming(t *testing.T) {
	dir := t.TempDir()
	fw, err := NewFileWriter(ipc.WriterConfig{Directory: dir, MaxLogSize: 1 << 20, MaxLogFiles: 3})
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, fw.WriteRecord(NewRecord(LevelInfo, "hello")))

	data, err := os.ReadFile(filepath.Join(dir, "service_latest.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")
}

func TestFileWriterRotatesAndRenames(t *testing.T) {
	dir := t.TempDir()
	fw, err := NewFileWriter(ipc.WriterConfig{Directory: dir, MaxLogSize: 10, MaxLogFiles: 5})
	require.NoError(t, err)
	defer fw.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, fw.WriteRecord(NewRecord(LevelInfo, strings.Repeat("x", 20))))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var rotated int
	for _, e := range entries {
		name := e.Name()
		if name == "service_latest.log" {
			continue
		}
		require.True(t, strings.HasPrefix(name, "service_"))
		require.False(t, strings.Contains(name, "latest"))
		rotated++
	}
	require.Greater(t, rotated, 0)
}

func TestFileWriterPrunesOldRotations(t *testing.T) {
	dir := t.TempDir()
	fw, err := NewFileWriter(ipc.WriterConfig{Directory: dir, MaxLogSize: 5, MaxLogFiles: 2})
	require.NoError(t, err)
	defer fw.Close()

	for i := 0; i < 10; i++ {
		require.NoError(t, fw.WriteRecord(NewRecord(LevelInfo, "xxxxxxxxxx")))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var rotated int
	for _, e := range entries {
		if e.Name() != "service_latest.log" {
			rotated++
		}
	}
	require.LessOrEqual(t, rotated, 2)
}
