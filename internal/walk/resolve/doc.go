// Package resolve supplies the two per-frame lookup callbacks the walking
// primitive needs: one resolving the unwind/function-table entry for a
// code address, one resolving the base of the module containing it.
//
// The strategy is fixed by pointer width at build time:
//
//   - 64-bit targets answer both through the kernel's
//     RtlLookupFunctionEntry, which also covers code regions generated at
//     run time (JIT) that were never registered with the symbol engine;
//   - 32-bit targets hand DbgHelp its own SymFunctionTableAccess64 and
//     SymGetModuleBase64 entry points, unwrapped; a Go trampoline could
//     not take the 64-bit address argument these callbacks receive when
//     it is split across two machine words.
//
// If neither resolver can place an address, the walking primitive stops
// the walk; no error surfaces here.
package resolve
