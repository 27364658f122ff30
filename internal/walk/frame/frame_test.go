package frame

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecordLayout pins the native ABI sizes. DbgHelp writes into these
// records at fixed offsets; if a field change shifts anything, this fails
// before a walk can corrupt memory.
func TestRecordLayout(t *testing.T) {
	assert.Equal(t, uintptr(16), unsafe.Sizeof(Address64{}), "ADDRESS64")
	assert.Equal(t, uintptr(112), unsafe.Sizeof(KDHelp64{}), "KDHELP64")
	assert.Equal(t, uintptr(264), unsafe.Sizeof(StackFrame64{}), "STACKFRAME64")
	assert.Equal(t, uintptr(272), unsafe.Sizeof(StackFrameEx{}), "STACKFRAME_EX")

	// Mode must land at offset 12 within ADDRESS64.
	var a Address64
	assert.Equal(t, uintptr(12), unsafe.Offsetof(a.Mode))
}

// TestNewRecordExtended checks the extended variant's self-description:
// DbgHelp recognizes STACKFRAME_EX by its size field.
func TestNewRecordExtended(t *testing.T) {
	r := NewRecord(KindExtended)
	require.Equal(t, KindExtended, r.Kind())
	assert.Equal(t, uint32(unsafe.Sizeof(StackFrameEx{})), r.ex.StackFrameSize)
	assert.Equal(t, unsafe.Pointer(&r.ex), r.Ptr())
}

func TestNewRecordLegacy(t *testing.T) {
	r := NewRecord(KindLegacy)
	require.Equal(t, KindLegacy, r.Kind())
	assert.Equal(t, unsafe.Pointer(&r.old), r.Ptr())
}

// TestInitFlat verifies that seeding a record exposes exactly the given
// addresses through the uniform accessors and pins every addressing mode
// to flat, for both variants.
func TestInitFlat(t *testing.T) {
	const (
		pc = 0x00007ff6_12345678
		sp = 0x000000e4_9ffff000
		fp = 0x000000e4_9ffff040
	)

	for _, kind := range []Kind{KindExtended, KindLegacy} {
		r := NewRecord(kind)
		require.False(t, r.Flat(), "zeroed record must not report flat modes")

		r.InitFlat(pc, sp, fp)

		assert.Equal(t, uint64(pc), r.PC())
		assert.Equal(t, uint64(sp), r.SP())
		assert.Equal(t, uint64(fp), r.FP())
		assert.True(t, r.Flat())
		assert.Equal(t, kind, r.Kind(), "variant must survive initialization")
	}
}

// TestAccessorsTrackMutation simulates what a walk step does: the native
// primitive rewrites the variant's address fields in place, and the
// accessors must see the new values without re-tagging.
func TestAccessorsTrackMutation(t *testing.T) {
	r := NewRecord(KindExtended)
	r.InitFlat(1, 2, 3)

	r.ex.AddrPC.Offset = 0x1000
	r.ex.AddrStack.Offset = 0x2000
	r.ex.AddrFrame.Offset = 0x3000

	assert.Equal(t, uint64(0x1000), r.PC())
	assert.Equal(t, uint64(0x2000), r.SP())
	assert.Equal(t, uint64(0x3000), r.FP())
	assert.Equal(t, KindExtended, r.Kind())
	assert.True(t, r.Flat(), "mutating offsets must not disturb the modes")
}
