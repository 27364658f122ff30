// Copyright 2025 The stackwalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows && 386

// Context capture on 386.
//
// RtlCaptureContext reached 32-bit kernel32 with Windows XP; the oldest
// systems this target supports predate it. The export is probed once per
// process and, when missing, capture falls back to a hand-written
// assembly transcription (capture_windows_386.s) behind the same entry
// point, so callers never distinguish which path ran.

package cpu

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modKernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procRtlCaptureContext = modKernel32.NewProc("RtlCaptureContext")

	captureOnce sync.Once
	haveNative  bool
)

// Capture fills c with the calling thread's register state. It cannot
// fail: both paths are pure register-to-memory transcription.
func Capture(c *Context) {
	captureOnce.Do(func() {
		haveNative = procRtlCaptureContext.Find() == nil
	})
	if haveNative {
		_, _, _ = procRtlCaptureContext.Call(uintptr(unsafe.Pointer(c)))
		return
	}
	manualCaptureContext(c)
}

// manualCaptureContext transcribes the caller's register state into c
// without OS support. Implemented in capture_windows_386.s.
//
// The routine records the general-purpose registers and segment selectors
// as they stood at the call site, the flags register, the caller's BP,
// the return address as EIP, and the stack pointer as it will be when the
// call returns. AX is the only register it clobbers; its pre-call value
// is stored in the context before being reused. Not reentrant-safe in the
// sense that it must run on the thread whose state is wanted.
//
//go:noescape
func manualCaptureContext(c *Context)
