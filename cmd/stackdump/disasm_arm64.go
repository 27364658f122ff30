package main

import "golang.org/x/arch/arm64/arm64asm"

// decodeAt decodes the instruction at pc. Returns "" when the word does
// not decode.
func decodeAt(pc uintptr) string {
	code := readCode(pc, 4)
	if code == nil {
		return ""
	}
	inst, err := arm64asm.Decode(code)
	if err != nil {
		return ""
	}
	return inst.String()
}
