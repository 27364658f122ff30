// Copyright 2025 The stackwalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 32-bit ARM register context (winnt.h CONTEXT for ARMNT).
//
// Total size 0x1a0 (416) bytes. R11 is the frame-chain register in the
// Windows ARM32 ABI.

package cpu

// Context mirrors the ARMNT CONTEXT record.
type Context struct {
	ContextFlags uint32

	R0  uint32
	R1  uint32
	R2  uint32
	R3  uint32
	R4  uint32
	R5  uint32
	R6  uint32
	R7  uint32
	R8  uint32
	R9  uint32
	R10 uint32
	R11 uint32
	R12 uint32

	Sp   uint32
	Lr   uint32
	Pc   uint32
	Cpsr uint32

	Fpscr   uint32
	Padding uint32
	D       [32]uint64 // NEON registers (Q0..Q15 viewed as doublewords)

	Bvr      [8]uint32
	Bcr      [8]uint32
	Wvr      [1]uint32
	Wcr      [1]uint32
	Padding2 [2]uint32
}

// contextAlign is the alignment the OS requires for this record.
const contextAlign = 8

// NativeMachine is the architecture tag for contexts captured here.
const NativeMachine = MachineARMNT

// PC returns the captured program counter.
func (c *Context) PC() uint64 { return uint64(c.Pc) }

// SP returns the captured stack pointer.
func (c *Context) SP() uint64 { return uint64(c.Sp) }

// FP returns the captured frame pointer (R11).
func (c *Context) FP() uint64 { return uint64(c.R11) }
