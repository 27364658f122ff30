//go:build !windows

package api

// Trace yields zero frames on platforms without the DbgHelp symbol
// engine, the same degradation a failed engine bring-up produces on
// Windows. Callers must already tolerate an empty trace, so there is no
// separate "unsupported" signal.
func Trace(visitor func(pc, sp, fp uintptr) bool) {
	_ = visitor
	log.Debug().Msg("stack walking unsupported on this platform")
}
