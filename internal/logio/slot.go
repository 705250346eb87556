package logio

import (
	"sync"

	"github.com/verge-svc/daemon/pkg/ipc"
)

// WriterSlot holds the process-wide FileWriter. The wire contract's
// UpdateWriter verb replaces it in place; StartClash installs the first
// one. Once set, the slot is never nulled out again for the lifetime of
// the process, matching the "first-init-wins, replace-in-place" invariant.
type WriterSlot struct {
	mu sync.RWMutex
	fw *FileWriter
}

// NewWriterSlot builds an empty slot.
func NewWriterSlot() *WriterSlot {
	return &WriterSlot{}
}

// Get returns the current writer, or nil if none has been installed yet.
func (s *WriterSlot) Get() *FileWriter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fw
}

// Replace swaps in a new writer, closing the previous one if any, and
// returns the writer that is now current.
func (s *WriterSlot) Replace(cfg ipc.WriterConfig) (*FileWriter, error) {
	fw, err := NewFileWriter(cfg)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	prev := s.fw
	s.fw = fw
	s.mu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
	return fw, nil
}

// EnsureDefault installs cfg as the writer only if the slot is still
// empty; otherwise it's a no-op and the existing writer stays in place.
func (s *WriterSlot) EnsureDefault(cfg ipc.WriterConfig) (*FileWriter, error) {
	s.mu.RLock()
	existing := s.fw
	s.mu.RUnlock()
	if existing != nil {
		return existing, nil
	}
	return s.Replace(cfg)
}
