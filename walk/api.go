// Package walk provides the public API for the in-process stack walker.
//
// See doc.go for detailed documentation and examples.
package walk

import (
	"github.com/rs/zerolog"

	internal "github.com/kolkov/stackwalk/internal/walk/api"
)

// Frame describes one activation record of the walked stack at the moment
// of capture. It holds raw addresses only, no symbolication, and has no
// ties to live state: a Frame may be freely retained, copied and read
// from other goroutines after the walk completes.
type Frame struct {
	// PC is the program-counter address: the instruction being executed
	// in this frame (for the innermost frame) or the return site (for
	// every caller frame).
	PC uintptr

	// SP is the stack-pointer address of the frame.
	SP uintptr

	// FP is the frame-pointer address of the frame, when the ABI
	// maintains one.
	FP uintptr
}

// SymbolAddress returns the address to hand to a symbolizer for this
// frame. It is the program counter; the method exists so call sites read
// as intent rather than field access.
func (f Frame) SymbolAddress() uintptr {
	return f.PC
}

// Trace walks the current thread's call stack, invoking visitor once per
// frame, innermost first. Return true from the visitor to continue the
// walk, false to stop it early; after a false return the visitor is not
// called again and the walking primitive is not advanced again.
//
// Trace never returns an error. An empty walk means the symbol engine was
// unavailable; a short walk means a frame could not be resolved. Both are
// expected modes for a best-effort diagnostic capture, and callers must
// tolerate an empty or truncated sequence.
//
// Trace is safe for concurrent use; concurrent walks serialize on the
// process-wide symbol engine.
func Trace(visitor func(Frame) bool) {
	internal.Trace(func(pc, sp, fp uintptr) bool {
		return visitor(Frame{PC: pc, SP: sp, FP: fp})
	})
}

// Frames collects up to max frames of the current stack into a slice, a
// convenience over Trace for callers that just want the addresses. A max
// of zero or less means no limit.
func Frames(max int) []Frame {
	var out []Frame
	Trace(func(f Frame) bool {
		out = append(out, f)
		return max <= 0 || len(out) < max
	})
	return out
}

// SetLogger routes the walker's internal debug output (engine bring-up
// failures, primitive selection) to l. The walker is silent by default:
// it runs in diagnostic and crash paths where unsolicited output is
// unacceptable. Configure once at startup, before the first Trace call.
func SetLogger(l zerolog.Logger) {
	internal.SetLogger(l)
}
