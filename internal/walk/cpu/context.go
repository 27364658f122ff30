package cpu

import "unsafe"

// NewContext returns a fresh, zeroed register context aligned the way the
// OS requires (16 bytes on amd64/arm64). Go structs only guarantee
// 8-byte alignment, so the context is placed inside an over-sized byte
// slab and the pointer rounded up. The returned pointer is an interior
// pointer into the slab, which keeps the whole allocation live.
//
// Each walk creates its own context and drops it when the walk returns;
// contexts are never shared between walks.
func NewContext() *Context {
	buf := make([]byte, unsafe.Sizeof(Context{})+contextAlign-1)
	off := (contextAlign - uintptr(unsafe.Pointer(&buf[0]))%contextAlign) % contextAlign
	return (*Context)(unsafe.Pointer(&buf[off]))
}
