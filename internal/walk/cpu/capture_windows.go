// Copyright 2025 The stackwalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows && !386

// Context capture via the OS primitive.
//
// RtlCaptureContext is present in kernel32 on every Windows release that
// supports amd64, arm or arm64, so these targets take the native path
// unconditionally. Only 386 needs the probed fallback in
// capture_windows_386.go.

package cpu

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modKernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procRtlCaptureContext = modKernel32.NewProc("RtlCaptureContext")
)

// Capture fills c with the calling thread's register state. It cannot
// fail: the primitive is pure register-to-memory transcription.
//
// The capture happens inside the syscall trampoline, so the recorded
// program counter sits a few runtime frames below the caller; a walk
// seeded from it still passes through every caller frame on its way up.
func Capture(c *Context) {
	_, _, _ = procRtlCaptureContext.Call(uintptr(unsafe.Pointer(c)))
}
