// Package frame defines the DbgHelp stack-frame records and a uniform
// view over them.
//
// DbgHelp exposes two ABI-incompatible walk-state records: STACKFRAME_EX
// (used by StackWalkEx, carries inline-frame bookkeeping) and the older
// STACKFRAME64 (used by StackWalk64). A single walk commits to one shape
// before the first step and never changes it, so Record is a tagged union
// resolved at construction time. The three fields that matter to callers
// (program counter, stack pointer, frame pointer) are exposed through
// accessors that work identically for both variants.
//
// The record layouts are raw winnt.h/dbghelp.h ABI and are defined without
// build constraints: they are plain data, and keeping them portable lets
// the accessor logic be unit-tested on any host.
package frame

import "unsafe"

// AddrMode is the DbgHelp addressing mode attached to each address field.
type AddrMode uint32

// Addressing modes from dbghelp.h. Everything this package produces is
// AddrModeFlat: linear addresses, no segment translation.
const (
	AddrMode1616 AddrMode = 0
	AddrMode1632 AddrMode = 1
	AddrModeReal AddrMode = 2
	AddrModeFlat AddrMode = 3
)

// Address64 mirrors the ADDRESS64 structure: a 64-bit offset qualified by
// a segment selector and an addressing mode.
type Address64 struct {
	Offset  uint64
	Segment uint16
	_       [2]byte
	Mode    AddrMode
}

// KDHelp64 mirrors KDHELP64. It is kernel-debugger bookkeeping that the
// in-process walk never reads; it exists so the record sizes and the
// offsets of the fields following it match the native layout exactly.
type KDHelp64 struct {
	Thread                         uint64
	ThCallbackStack                uint32
	ThCallbackBStore               uint32
	NextCallback                   uint32
	FramePointer                   uint32
	KiCallUserMode                 uint64
	KeUserCallbackDispatcher       uint64
	SystemRangeStart               uint64
	KiUserExceptionDispatcher      uint64
	StackBase                      uint64
	StackLimit                     uint64
	BuildVersion                   uint32
	RetpolineStubFunctionTableSize uint32
	RetpolineStubFunctionTable     uint64
	RetpolineStubOffset            uint32
	RetpolineStubSize              uint32
	Reserved0                      [2]uint64
}

// StackFrame64 mirrors STACKFRAME64, the legacy walk-state record
// consumed and produced by StackWalk64.
//
// FuncTableEntry is a PVOID in the native record, padded to 8 bytes on
// 32-bit targets by the alignment of the DWORD64 array that follows it.
// Declaring it uint64 reproduces that layout on every width (Go on 386
// only aligns uint64 to 4, so a uintptr plus implicit padding would come
// out 4 bytes short there).
type StackFrame64 struct {
	AddrPC         Address64
	AddrReturn     Address64
	AddrFrame      Address64
	AddrStack      Address64
	AddrBStore     Address64
	FuncTableEntry uint64
	Params         [4]uint64
	Far            uint32
	Virtual        uint32
	Reserved       [3]uint64
	KdHelp         KDHelp64
}

// StackFrameEx mirrors STACKFRAME_EX, the extended record consumed and
// produced by StackWalkEx. The two trailing fields carry the record size
// (which DbgHelp uses to recognize the extended shape) and the inline
// frame context.
type StackFrameEx struct {
	AddrPC             Address64
	AddrReturn         Address64
	AddrFrame          Address64
	AddrStack          Address64
	AddrBStore         Address64
	FuncTableEntry     uint64
	Params             [4]uint64
	Far                uint32
	Virtual            uint32
	Reserved           [3]uint64
	KdHelp             KDHelp64
	StackFrameSize     uint32
	InlineFrameContext uint32
}

// inlineFrameContextInit is the documented initial value for
// StackFrameEx.InlineFrameContext before the first StackWalkEx call.
const inlineFrameContextInit = 0

// Kind selects which native record shape a Record carries.
type Kind uint8

const (
	// KindExtended selects STACKFRAME_EX (StackWalkEx).
	KindExtended Kind = iota
	// KindLegacy selects STACKFRAME64 (StackWalk64).
	KindLegacy
)

// Record is the tagged union over the two native walk-state shapes.
//
// The variant is fixed by NewRecord and never changes afterwards: DbgHelp
// mutates the record in place across walk steps, and re-tagging mid-walk
// would hand the primitive a record it did not populate. Both variants are
// embedded by value so a Record is self-contained and, once a walk has
// finished, can be copied or read from any goroutine: it holds only
// address values, never live pointers.
type Record struct {
	kind Kind
	ex   StackFrameEx
	old  StackFrame64
}

// NewRecord returns a zeroed Record carrying the given variant.
//
// For the extended variant the record size field is populated immediately:
// DbgHelp uses it to distinguish STACKFRAME_EX from STACKFRAME64, and the
// inline frame context is set to its documented initial value.
func NewRecord(kind Kind) *Record {
	r := &Record{kind: kind}
	if kind == KindExtended {
		r.ex.StackFrameSize = uint32(unsafe.Sizeof(StackFrameEx{}))
		r.ex.InlineFrameContext = inlineFrameContextInit
	}
	return r
}

// Kind reports which native shape this record carries.
func (r *Record) Kind() Kind { return r.kind }

// Ptr returns a pointer to the active variant's storage, suitable for
// passing to the matching walking primitive. The caller is responsible
// for pairing KindExtended with StackWalkEx and KindLegacy with
// StackWalk64.
func (r *Record) Ptr() unsafe.Pointer {
	if r.kind == KindExtended {
		return unsafe.Pointer(&r.ex)
	}
	return unsafe.Pointer(&r.old)
}

func (r *Record) addrPC() *Address64 {
	if r.kind == KindExtended {
		return &r.ex.AddrPC
	}
	return &r.old.AddrPC
}

func (r *Record) addrStack() *Address64 {
	if r.kind == KindExtended {
		return &r.ex.AddrStack
	}
	return &r.old.AddrStack
}

func (r *Record) addrFrame() *Address64 {
	if r.kind == KindExtended {
		return &r.ex.AddrFrame
	}
	return &r.old.AddrFrame
}

// PC returns the program-counter address of the frame currently described
// by the record.
func (r *Record) PC() uint64 { return r.addrPC().Offset }

// SP returns the stack-pointer address of the current frame.
func (r *Record) SP() uint64 { return r.addrStack().Offset }

// FP returns the frame-pointer address of the current frame.
func (r *Record) FP() uint64 { return r.addrFrame().Offset }

// InitFlat seeds the record with the starting frame's addresses and pins
// all three addressing modes to flat. It must be called exactly once,
// before the first walk step.
func (r *Record) InitFlat(pc, sp, fp uint64) {
	pcA := r.addrPC()
	pcA.Offset = pc
	pcA.Mode = AddrModeFlat

	spA := r.addrStack()
	spA.Offset = sp
	spA.Mode = AddrModeFlat

	fpA := r.addrFrame()
	fpA.Offset = fp
	fpA.Mode = AddrModeFlat
}

// Flat reports whether all three address fields are in flat addressing
// mode. DbgHelp never changes the modes once seeded, so this holds for
// every frame of a well-formed walk.
func (r *Record) Flat() bool {
	return r.addrPC().Mode == AddrModeFlat &&
		r.addrStack().Mode == AddrModeFlat &&
		r.addrFrame().Mode == AddrModeFlat
}
