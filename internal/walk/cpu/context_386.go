// Copyright 2025 The stackwalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// x86 register context (winnt.h CONTEXT for i386).
//
// Total size 0x2cc (716) bytes. The field offsets below are load-bearing:
// capture_windows_386.s stores registers at hard-coded offsets into this
// record and must stay in sync.
//
//	Field         Offset
//	-----         ------
//	ContextFlags  0x00
//	Dr0..Dr7      0x04..0x18
//	FloatSave     0x1c (112 bytes)
//	SegGs         0x8c
//	SegFs         0x90
//	SegEs         0x94
//	SegDs         0x98
//	Edi           0x9c
//	Esi           0xa0
//	Ebx           0xa4
//	Edx           0xa8
//	Ecx           0xac
//	Eax           0xb0
//	Ebp           0xb4
//	Eip           0xb8
//	SegCs         0xbc
//	EFlags        0xc0
//	Esp           0xc4
//	SegSs         0xc8

package cpu

// FloatingSaveArea mirrors FLOATING_SAVE_AREA (112 bytes).
type FloatingSaveArea struct {
	ControlWord   uint32
	StatusWord    uint32
	TagWord       uint32
	ErrorOffset   uint32
	ErrorSelector uint32
	DataOffset    uint32
	DataSelector  uint32
	RegisterArea  [80]byte
	Cr0NpxState   uint32
}

// Context mirrors the i386 CONTEXT record.
type Context struct {
	ContextFlags uint32

	Dr0 uint32
	Dr1 uint32
	Dr2 uint32
	Dr3 uint32
	Dr6 uint32
	Dr7 uint32

	FloatSave FloatingSaveArea

	SegGs uint32
	SegFs uint32
	SegEs uint32
	SegDs uint32

	Edi uint32
	Esi uint32
	Ebx uint32
	Edx uint32
	Ecx uint32
	Eax uint32

	Ebp    uint32
	Eip    uint32
	SegCs  uint32
	EFlags uint32
	Esp    uint32
	SegSs  uint32

	ExtendedRegisters [512]byte
}

// contextAlign is the alignment the OS requires for this record.
const contextAlign = 4

// NativeMachine is the architecture tag for contexts captured here.
const NativeMachine = MachineI386

// PC returns the captured instruction pointer.
func (c *Context) PC() uint64 { return uint64(c.Eip) }

// SP returns the captured stack pointer.
func (c *Context) SP() uint64 { return uint64(c.Esp) }

// FP returns the captured frame pointer (EBP).
func (c *Context) FP() uint64 { return uint64(c.Ebp) }
