// Package cpu provides the per-architecture register context used to seed
// a stack walk, and the capture routines that fill it in.
//
// A Context is a raw winnt.h CONTEXT record for the build architecture.
// The layouts are defined locally rather than pulled from
// golang.org/x/sys/windows because x/sys only covers a subset of the
// architectures handled here, and defining all four side by side keeps the
// accessors and the capture code uniform.
//
// Capture has two implementations selected at build/probe time:
//
//   - the OS primitive RtlCaptureContext, guaranteed on every supported
//     system for amd64, arm64 and arm;
//   - a hand-written assembly transcription for 386 systems whose
//     kernel32 predates RtlCaptureContext (capture_windows_386.s).
//
// Callers never distinguish which path ran.
package cpu

// Machine is the IMAGE_FILE_MACHINE architecture tag passed to the
// walking primitive. It is the only value that crosses from "which CPU we
// are on" into "how DbgHelp interprets addresses".
type Machine uint16

// Machine tags from winnt.h.
const (
	MachineUnknown Machine = 0x0000
	MachineI386    Machine = 0x014c
	MachineARMNT   Machine = 0x01c4
	MachineAMD64   Machine = 0x8664
	MachineARM64   Machine = 0xaa64
)
