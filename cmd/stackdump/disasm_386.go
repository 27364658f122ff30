package main

import "golang.org/x/arch/x86/x86asm"

// decodeAt decodes the instruction at pc in 32-bit mode. Returns "" when
// the bytes do not decode.
func decodeAt(pc uintptr) string {
	code := readCode(pc, 15) // maximum x86 instruction length
	if code == nil {
		return ""
	}
	inst, err := x86asm.Decode(code, 32)
	if err != nil {
		return ""
	}
	return inst.String()
}
