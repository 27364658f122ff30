//go:build windows

package api

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/kolkov/stackwalk/internal/walk/cpu"
	"github.com/kolkov/stackwalk/internal/walk/dbghelp"
	"github.com/kolkov/stackwalk/internal/walk/frame"
	"github.com/kolkov/stackwalk/internal/walk/resolve"
)

// Trace walks the calling thread's stack, invoking visitor once per frame
// with the frame's program counter, stack pointer and frame pointer.
// The walk ends when the walking primitive reports no further frames or
// the visitor returns false.
//
// Trace never fails. If the symbol engine cannot be brought up the
// visitor is simply never called.
func Trace(visitor func(pc, sp, fp uintptr) bool) {
	process := windows.CurrentProcess()
	thread := windows.CurrentThread()

	// Fresh context per walk; owned by this call, dropped on return.
	ctx := cpu.NewContext()
	cpu.Capture(ctx)

	eng, err := dbghelp.Acquire(log)
	if err != nil {
		// Best effort: no engine, no frames.
		return
	}
	defer eng.Release()

	// One variant per walk, fixed before the first step.
	kind := frame.KindLegacy
	if eng.HasWalkEx() {
		kind = frame.KindExtended
	}
	rec := frame.NewRecord(kind)
	machine := initRecord(rec, ctx)

	// The primitive requires both callbacks on every step; they are
	// selected once here and reused for the whole walk.
	tableAccess, moduleBase := resolve.Callbacks(eng)

	for {
		var ok bool
		if kind == frame.KindExtended {
			ok = eng.WalkEx(machine, process, thread, rec.Ptr(), unsafe.Pointer(ctx), tableAccess, moduleBase)
		} else {
			ok = eng.Walk64(machine, process, thread, rec.Ptr(), unsafe.Pointer(ctx), tableAccess, moduleBase)
		}
		if !ok {
			// End of stack or an unresolvable frame: both are ordinary
			// termination here.
			break
		}
		if !visitor(uintptr(rec.PC()), uintptr(rec.SP()), uintptr(rec.FP())) {
			break
		}
	}

	// The native calls received raw pointers into ctx and rec.
	runtime.KeepAlive(ctx)
	runtime.KeepAlive(rec)
}
