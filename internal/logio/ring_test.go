package logio

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingBound(t *testing.T) {
	r := NewRing()
	for i := 0; i < RingCapacity*3; i++ {
		r.Append(fmt.Sprintf("line %d", i))
	}
	assert.LessOrEqual(t, r.Len(), RingCapacity+ringHeadroom)

	snap := r.Snapshot()
	assert.Equal(t, fmt.Sprintf("line %d", RingCapacity*3-1), snap[len(snap)-1])
}

func TestRingClear(t *testing.T) {
	r := NewRing()
	r.Append("a")
	r.Append("b")
	r.Clear()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Snapshot())
}

func TestRingSnapshotIsClone(t *testing.T) {
	r := NewRing()
	r.Append("a")
	snap := r.Snapshot()
	r.Append("b")
	assert.Equal(t, []string{"a"}, snap)
}
