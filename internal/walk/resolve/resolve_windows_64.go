// Copyright 2025 The stackwalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows && (amd64 || arm64)

package resolve

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/kolkov/stackwalk/internal/walk/dbghelp"
)

var (
	modKernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procRtlLookupFunctionEntry = modKernel32.NewProc("RtlLookupFunctionEntry")

	callbackOnce  sync.Once
	tableAccessCB uintptr
	moduleBaseCB  uintptr
)

// Callbacks returns the function-table-access and module-base callbacks
// for the walking primitive. Both go through RtlLookupFunctionEntry so
// the walk can traverse dynamically generated code; the symbol engine's
// own resolvers only know about registered modules. The native callback
// thunks are created once and reused; NewCallback allocations live for
// the rest of the process.
func Callbacks(_ *dbghelp.Engine) (tableAccess, moduleBase uintptr) {
	callbackOnce.Do(func() {
		tableAccessCB = windows.NewCallback(functionTableAccess)
		moduleBaseCB = windows.NewCallback(getModuleBase)
	})
	return tableAccessCB, moduleBaseCB
}

// functionTableAccess resolves the runtime function-table entry owning
// addr. The process handle is unused: RtlLookupFunctionEntry is
// in-process only, which is all this walker supports.
func functionTableAccess(_ uintptr, addr uintptr) uintptr {
	var base uint64
	entry, _, _ := procRtlLookupFunctionEntry.Call(
		addr,
		uintptr(unsafe.Pointer(&base)),
		0, // no history table
	)
	return entry
}

// getModuleBase reports the base address of the module containing addr,
// or zero when no module owns it.
func getModuleBase(_ uintptr, addr uintptr) uintptr {
	var base uint64
	_, _, _ = procRtlLookupFunctionEntry.Call(
		addr,
		uintptr(unsafe.Pointer(&base)),
		0, // no history table
	)
	return uintptr(base)
}
