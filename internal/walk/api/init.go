package api

import (
	"github.com/kolkov/stackwalk/internal/walk/cpu"
	"github.com/kolkov/stackwalk/internal/walk/frame"
)

// initRecord seeds a freshly created frame record from the captured
// register context, storing program counter, stack pointer and frame
// pointer in flat addressing mode, and reports the machine tag the
// walking primitive needs. Pure transcription, no failure path: the
// context-to-register mapping was already fixed at build time by the cpu
// package (RIP/RSP/RBP on x86-64, EIP/ESP/EBP on x86, PC/SP/X29 on
// ARM64, PC/SP/R11 on ARM).
func initRecord(rec *frame.Record, ctx *cpu.Context) cpu.Machine {
	rec.InitFlat(ctx.PC(), ctx.SP(), ctx.FP())
	return cpu.NativeMachine
}
