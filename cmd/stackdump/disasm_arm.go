package main

import "golang.org/x/arch/arm/armasm"

// decodeAt decodes the instruction at pc. Windows on 32-bit ARM runs
// Thumb-2; armasm handles the 32-bit encodings we care to show. Returns
// "" when the word does not decode.
func decodeAt(pc uintptr) string {
	code := readCode(pc, 4)
	if code == nil {
		return ""
	}
	inst, err := armasm.Decode(code, armasm.ModeARM)
	if err != nil {
		return ""
	}
	return inst.String()
}
