package api

import "github.com/rs/zerolog"

// log is the package logger. Silent by default: stack capture typically
// runs in crash and diagnostic paths where the library must not produce
// output nobody asked for.
var log = zerolog.Nop()

// SetLogger routes the walker's debug output to l. Configure once at
// startup, before the first Trace call; the logger is read without
// synchronization afterwards.
func SetLogger(l zerolog.Logger) {
	log = l
}
