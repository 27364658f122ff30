// Copyright 2025 The stackwalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ARM64 register context (winnt.h CONTEXT for ARM64).
//
// Total size 0x390 (912) bytes, 16-aligned. X[29] is the frame pointer
// and X[30] the link register, per the Windows ARM64 ABI.

package cpu

// NeonRegister is a 128-bit SIMD register slot.
type NeonRegister struct {
	Low  uint64
	High int64
}

// Context mirrors the ARM64 CONTEXT record.
type Context struct {
	ContextFlags uint32
	Cpsr         uint32

	X  [31]uint64 // X0..X28, FP (X29), LR (X30)
	Sp uint64
	Pc uint64

	V    [32]NeonRegister
	Fpcr uint32
	Fpsr uint32

	Bcr [8]uint32
	Bvr [8]uint64
	Wcr [2]uint32
	Wvr [2]uint64
}

// contextAlign is the alignment the OS requires for this record.
const contextAlign = 16

// NativeMachine is the architecture tag for contexts captured here.
const NativeMachine = MachineARM64

// PC returns the captured program counter.
func (c *Context) PC() uint64 { return c.Pc }

// SP returns the captured stack pointer.
func (c *Context) SP() uint64 { return c.Sp }

// FP returns the captured frame pointer (X29).
func (c *Context) FP() uint64 { return c.X[29] }
