// Copyright 2025 The stackwalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// x86-64 register context (winnt.h CONTEXT for AMD64).
//
// Field order and sizes must match the native layout exactly: the record
// is written by RtlCaptureContext and mutated in place by StackWalkEx /
// StackWalk64 on every step. Total size 0x4d0 (1232) bytes, 16-aligned.

package cpu

// M128A is a 128-bit SSE register slot.
type M128A struct {
	Low  uint64
	High int64
}

// Context mirrors the AMD64 CONTEXT record.
type Context struct {
	P1Home uint64
	P2Home uint64
	P3Home uint64
	P4Home uint64
	P5Home uint64
	P6Home uint64

	ContextFlags uint32
	MxCsr        uint32

	SegCs  uint16
	SegDs  uint16
	SegEs  uint16
	SegFs  uint16
	SegGs  uint16
	SegSs  uint16
	EFlags uint32

	Dr0 uint64
	Dr1 uint64
	Dr2 uint64
	Dr3 uint64
	Dr6 uint64
	Dr7 uint64

	Rax uint64
	Rcx uint64
	Rdx uint64
	Rbx uint64
	Rsp uint64
	Rbp uint64
	Rsi uint64
	Rdi uint64
	R8  uint64
	R9  uint64
	R10 uint64
	R11 uint64
	R12 uint64
	R13 uint64
	R14 uint64
	R15 uint64
	Rip uint64

	FltSave        [512]byte // XMM_SAVE_AREA32
	VectorRegister [26]M128A
	VectorControl  uint64

	DebugControl         uint64
	LastBranchToRip      uint64
	LastBranchFromRip    uint64
	LastExceptionToRip   uint64
	LastExceptionFromRip uint64
}

// contextAlign is the alignment the OS requires for this record.
const contextAlign = 16

// NativeMachine is the architecture tag for contexts captured here.
const NativeMachine = MachineAMD64

// PC returns the captured instruction pointer.
func (c *Context) PC() uint64 { return c.Rip }

// SP returns the captured stack pointer.
func (c *Context) SP() uint64 { return c.Rsp }

// FP returns the captured frame pointer (RBP).
func (c *Context) FP() uint64 { return c.Rbp }
