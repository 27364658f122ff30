// Copyright 2025 The stackwalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !386 && !amd64 && !arm && !arm64

// Placeholder context for architectures the walker does not support.
// Windows never runs on these targets, so the walk driver's stub path is
// always taken; this file only keeps the package compiling everywhere.

package cpu

// Context is an empty stand-in on unsupported architectures.
type Context struct {
	_ [1]byte
}

// contextAlign is the alignment the OS requires for this record.
const contextAlign = 1

// NativeMachine is the architecture tag for contexts captured here.
const NativeMachine = MachineUnknown

// PC returns the captured program counter.
func (c *Context) PC() uint64 { return 0 }

// SP returns the captured stack pointer.
func (c *Context) SP() uint64 { return 0 }

// FP returns the captured frame pointer.
func (c *Context) FP() uint64 { return 0 }
