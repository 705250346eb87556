package logio

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"

	"github.com/verge-svc/daemon/pkg/ipc"
)

const (
	baseName          = "service"
	currentInfix      = "latest"
	logExt            = ".log"
	rotatedTimeFormat = "2006-01-02_15-04-05"
)

// FileWriter is the rotating file sink for captured child output. It wraps
// github.com/natefinch/lumberjack and layers a specific naming scheme on
// top: lumberjack's stock backup naming ("name-timestamp.ext") doesn't
// produce a fixed "latest" infix on the live file with a bare timestamp
// on rotated ones, so FileWriter drives lumberjack.Rotate() itself and
// renames the backup it produces.
type FileWriter struct {
	mu      sync.Mutex
	cfg     ipc.WriterConfig
	lj      *lumberjack.Logger
	written uint64
}

// NewFileWriter opens (or creates) the current log file under cfg.Directory.
func NewFileWriter(cfg ipc.WriterConfig) (*FileWriter, error) {
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}
	fw := &FileWriter{
		cfg: cfg,
		lj: &lumberjack.Logger{
			Filename:   currentPath(cfg.Directory),
			MaxBackups: 0, // retention is pruneLocked's job, not lumberjack's
			MaxAge:     0,
			Compress:   false,
		},
	}
	f, err := os.OpenFile(fw.lj.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, "open current log file")
	}
	_ = f.Close()
	if info, err := os.Stat(fw.lj.Filename); err == nil {
		fw.written = uint64(info.Size())
	}
	return fw, nil
}

func currentPath(dir string) string {
	return filepath.Join(dir, baseName+"_"+currentInfix+logExt)
}

// Directory reports the configured log directory.
func (w *FileWriter) Directory() string {
	return w.cfg.Directory
}

// WriteRecord appends one formatted line, rotating first if the write
// would push the current file past MaxLogSize.
func (w *FileWriter) WriteRecord(rec Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	line := rec.format()
	if w.cfg.MaxLogSize > 0 && w.written > 0 && w.written+uint64(len(line)) > w.cfg.MaxLogSize {
		if err := w.rotateLocked(); err != nil {
			return err
		}
	}
	n, err := w.lj.Write([]byte(line))
	w.written += uint64(n)
	if err != nil {
		return errors.Wrap(err, "write log record")
	}
	return nil
}

// Close flushes and closes the underlying file.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lj.Close()
}

func (w *FileWriter) rotateLocked() error {
	if err := w.lj.Rotate(); err != nil {
		return errors.Wrap(err, "rotate log file")
	}
	w.written = 0
	if err := w.renameBackupLocked(); err != nil {
		return err
	}
	return w.pruneLocked()
}

// renameBackupLocked finds the backup lumberjack just produced (named
// "service_latest-<lumberjack timestamp>.log") and renames it to the wire
// contract's own pattern, "service_<%Y-%m-%d_%H-%M-%S>.log".
func (w *FileWriter) renameBackupLocked() error {
	pattern := filepath.Join(w.cfg.Directory, baseName+"_"+currentInfix+"-*"+logExt)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return errors.Wrap(err, "glob rotated backup")
	}
	if len(matches) == 0 {
		return nil
	}
	sort.Strings(matches)
	latest := matches[len(matches)-1]
	target := filepath.Join(w.cfg.Directory, baseName+"_"+time.Now().Format(rotatedTimeFormat)+logExt)
	if err := os.Rename(latest, target); err != nil {
		return errors.Wrap(err, "rename rotated backup")
	}
	return nil
}

// pruneLocked enforces MaxLogFiles retention over rotated files, oldest
// first. The live "service_latest.log" file is never a candidate.
func (w *FileWriter) pruneLocked() error {
	if w.cfg.MaxLogFiles <= 0 {
		return nil
	}
	pattern := filepath.Join(w.cfg.Directory, baseName+"_*"+logExt)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return errors.Wrap(err, "glob rotated logs")
	}
	rotated := matches[:0]
	for _, m := range matches {
		if filepath.Base(m) == baseName+"_"+currentInfix+logExt {
			continue
		}
		rotated = append(rotated, m)
	}
	sort.Strings(rotated)
	if over := len(rotated) - w.cfg.MaxLogFiles; over > 0 {
		for _, stale := range rotated[:over] {
			if err := os.Remove(stale); err != nil && !os.IsNotExist(err) {
				return errors.Wrap(err, "prune rotated log")
			}
		}
	}
	return nil
}
