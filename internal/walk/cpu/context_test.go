package cpu

import (
	"testing"
	"unsafe"
)

// TestNewContextAligned checks the OS alignment requirement across a
// batch of allocations; a single probe could get lucky.
func TestNewContextAligned(t *testing.T) {
	for i := 0; i < 64; i++ {
		c := NewContext()
		if p := uintptr(unsafe.Pointer(c)); p%contextAlign != 0 {
			t.Fatalf("allocation %d: context at %#x not %d-aligned", i, p, contextAlign)
		}
	}
}

// TestNewContextZeroed ensures every walk starts from a fully zeroed
// register snapshot.
func TestNewContextZeroed(t *testing.T) {
	c := NewContext()
	raw := unsafe.Slice((*byte)(unsafe.Pointer(c)), unsafe.Sizeof(Context{}))
	for i, b := range raw {
		if b != 0 {
			t.Fatalf("byte %d of fresh context is %#x, want 0", i, b)
		}
	}
	if c.PC() != 0 || c.SP() != 0 || c.FP() != 0 {
		t.Fatalf("fresh context exposes nonzero registers: pc=%#x sp=%#x fp=%#x", c.PC(), c.SP(), c.FP())
	}
}
