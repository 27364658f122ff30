// Copyright 2025 The stackwalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

// Package dbghelp manages the process-wide DbgHelp symbol engine.
//
// dbghelp.dll is loaded lazily and SymInitializeW runs once per process.
// The engine is a shared, stateful native resource that is not safe for
// concurrent use, so access is serialized through a process-wide lock:
// Acquire takes the lock (initializing on first use) and Release drops
// it. A walk holds the engine for its whole duration.
//
// Bring-up can fail (dbghelp.dll missing, SymInitializeW refusing) and
// the failure is sticky: it is reported as ErrUnavailable on this and
// every later Acquire, and callers are expected to degrade to an empty
// trace rather than surface it.
package dbghelp

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"

	"github.com/kolkov/stackwalk/internal/walk/cpu"
)

// ErrUnavailable reports that the symbol engine could not be brought up.
var ErrUnavailable = errors.New("dbghelp: symbol engine unavailable")

// SYMOPT_DEFERRED_LOADS defers per-module symbol loading until a symbol
// from the module is actually requested.
const symoptDeferredLoads = 0x00000004

var (
	modDbghelp = windows.NewLazySystemDLL("dbghelp.dll")

	procSymInitializeW           = modDbghelp.NewProc("SymInitializeW")
	procSymGetOptions            = modDbghelp.NewProc("SymGetOptions")
	procSymSetOptions            = modDbghelp.NewProc("SymSetOptions")
	procStackWalk64              = modDbghelp.NewProc("StackWalk64")
	procStackWalkEx              = modDbghelp.NewProc("StackWalkEx")
	procSymFunctionTableAccess64 = modDbghelp.NewProc("SymFunctionTableAccess64")
	procSymGetModuleBase64       = modDbghelp.NewProc("SymGetModuleBase64")

	// mu serializes every use of the engine. DbgHelp keeps global state
	// and documents itself as single-threaded; the lock is held from
	// Acquire to Release, covering whole walks.
	mu sync.Mutex

	initDone bool
	initErr  error

	engine Engine
)

// Engine grants access to the initialized symbol engine. It is only valid
// between the Acquire that returned it and the matching Release.
type Engine struct{}

// Acquire locks the engine for the calling goroutine, performing one-time
// bring-up on first use. On failure the lock is not held and the error
// wraps ErrUnavailable.
func Acquire(log zerolog.Logger) (*Engine, error) {
	mu.Lock()
	if !initDone {
		initErr = initialize(log)
		initDone = true
	}
	if initErr != nil {
		mu.Unlock()
		return nil, initErr
	}
	return &engine, nil
}

// Release unlocks the engine. The receiver must not be used afterwards.
func (e *Engine) Release() {
	mu.Unlock()
}

// initialize loads dbghelp.dll and initializes the symbol handler for the
// current process. Called once, under mu.
func initialize(log zerolog.Logger) error {
	if err := modDbghelp.Load(); err != nil {
		log.Debug().Err(err).Msg("dbghelp.dll not loadable")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Defer symbol loading: the walk itself only needs addresses, and
	// eager loads would pay symbolication costs nobody asked for.
	opts, _, _ := procSymGetOptions.Call()
	_, _, _ = procSymSetOptions.Call(opts | symoptDeferredLoads)

	// TRUE invadeProcess: enumerate the modules already loaded so the
	// built-in resolvers can find them.
	ret, _, err := procSymInitializeW.Call(
		uintptr(windows.CurrentProcess()),
		0, // no user search path
		1, // invadeProcess = TRUE
	)
	if ret == 0 {
		log.Debug().Err(err).Msg("SymInitializeW failed")
		return fmt.Errorf("%w: SymInitializeW: %v", ErrUnavailable, err)
	}

	log.Debug().Bool("stackwalkex", procStackWalkEx.Find() == nil).
		Msg("symbol engine initialized")
	return nil
}

// HasWalkEx reports whether this dbghelp build exports StackWalkEx.
// Availability decides both the walking primitive and the frame-record
// variant for an entire walk.
func (e *Engine) HasWalkEx() bool {
	return procStackWalkEx.Find() == nil
}

// WalkEx advances rec (a *frame.StackFrameEx) and ctx (a *cpu.Context) by
// one frame using StackWalkEx. A false return means the walk is over;
// end of stack and mid-walk resolution failures are indistinguishable
// here.
func (e *Engine) WalkEx(machine cpu.Machine, process, thread windows.Handle, rec, ctx unsafe.Pointer, tableAccess, moduleBase uintptr) bool {
	ret, _, _ := procStackWalkEx.Call(
		uintptr(machine),
		uintptr(process),
		uintptr(thread),
		uintptr(rec),
		uintptr(ctx),
		0, // ReadMemoryRoutine: default in-process reads
		tableAccess,
		moduleBase,
		0, // TranslateAddress: flat addresses only
		0, // Flags: SYM_STKWALK_DEFAULT
	)
	return ret != 0
}

// Walk64 advances rec (a *frame.StackFrame64) and ctx by one frame using
// the legacy StackWalk64 primitive. Same termination contract as WalkEx.
func (e *Engine) Walk64(machine cpu.Machine, process, thread windows.Handle, rec, ctx unsafe.Pointer, tableAccess, moduleBase uintptr) bool {
	ret, _, _ := procStackWalk64.Call(
		uintptr(machine),
		uintptr(process),
		uintptr(thread),
		uintptr(rec),
		uintptr(ctx),
		0, // ReadMemoryRoutine: default in-process reads
		tableAccess,
		moduleBase,
		0, // TranslateAddress: flat addresses only
	)
	return ret != 0
}

// SymFunctionTableAccess64Addr returns the raw entry point of the symbol
// engine's own function-table resolver, for use as a walk callback.
func (e *Engine) SymFunctionTableAccess64Addr() uintptr {
	return procSymFunctionTableAccess64.Addr()
}

// SymGetModuleBase64Addr returns the raw entry point of the symbol
// engine's own module-base resolver, for use as a walk callback.
func (e *Engine) SymGetModuleBase64Addr() uintptr {
	return procSymGetModuleBase64.Addr()
}
