package main

import "golang.org/x/arch/x86/x86asm"

// decodeAt decodes the instruction at pc. For caller frames pc is a
// return address, so the decoded instruction is the one following the
// call. Returns "" when the bytes do not decode.
func decodeAt(pc uintptr) string {
	code := readCode(pc, 15) // maximum x86 instruction length
	if code == nil {
		return ""
	}
	inst, err := x86asm.Decode(code, 64)
	if err != nil {
		return ""
	}
	return inst.String()
}
