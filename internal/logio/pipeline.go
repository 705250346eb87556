package logio

import (
	"bufio"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Pipeline fans a child process's stdout and stderr into the rotating
// file writer and the in-memory ring, one goroutine per stream so a slow
// consumer on one stream never stalls the other. Ordering is FIFO within
// a stream; stdout and stderr lines may interleave arbitrarily relative
// to each other, same as the wire contract allows.
type Pipeline struct {
	slot *WriterSlot
	ring *Ring

	wg sync.WaitGroup
}

// NewPipeline builds a pipeline writing into slot and ring.
func NewPipeline(slot *WriterSlot, ring *Ring) *Pipeline {
	return &Pipeline{slot: slot, ring: ring}
}

// Start launches the drain goroutines for stdout and stderr. It returns
// immediately; call Wait to block until both streams hit EOF (i.e. the
// child has exited and closed its pipes).
func (p *Pipeline) Start(stdout, stderr io.Reader) {
	p.wg.Add(2)
	go p.drain(stdout, LevelInfo)
	go p.drain(stderr, LevelError)
}

// Wait blocks until both stream drains have finished.
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

func (p *Pipeline) drain(r io.Reader, level Level) {
	defer p.wg.Done()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		// Child output is assumed UTF-8; invalid byte sequences are
		// replaced lossily rather than rejecting the line, per the log
		// pipeline's responsibility.
		line := strings.ToValidUTF8(scanner.Text(), "�")
		p.ring.Append(line)
		if fw := p.slot.Get(); fw != nil {
			rec := NewRecord(level, line)
			if err := fw.WriteRecord(rec); err != nil {
				logrus.WithError(err).Warn("failed to persist captured core output")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		logrus.WithError(err).Debug("core output stream closed with error")
	}
}
