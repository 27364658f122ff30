// Copyright 2025 The stackwalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows && (386 || arm)

package resolve

import "github.com/kolkov/stackwalk/internal/walk/dbghelp"

// Callbacks returns the symbol engine's own resolvers, passed through as
// raw entry points. No Go trampoline sits in between: the callback ABI
// hands over a 64-bit address split across two words on these targets,
// which a NewCallback-generated thunk cannot receive.
func Callbacks(e *dbghelp.Engine) (tableAccess, moduleBase uintptr) {
	return e.SymFunctionTableAccess64Addr(), e.SymGetModuleBase64Addr()
}
