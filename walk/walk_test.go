package walk

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSymbolAddress(t *testing.T) {
	f := Frame{PC: 0x401000, SP: 0x12f000, FP: 0x12f040}
	assert.Equal(t, f.PC, f.SymbolAddress())
}

// TestFrameIsPlainValue documents that frames carry no hidden state: a
// copy is independent of the original.
func TestFrameIsPlainValue(t *testing.T) {
	f := Frame{PC: 1, SP: 2, FP: 3}
	g := f
	g.PC = 99
	assert.Equal(t, uintptr(1), f.PC)
}

func TestSetLogger(t *testing.T) {
	// Route debug output somewhere harmless and walk once; the logger
	// must be accepted before and between walks.
	SetLogger(zerolog.Nop())
	Trace(func(Frame) bool { return true })
	SetLogger(zerolog.Nop())
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch), info.Version)
	assert.NotEmpty(t, info.Engine)
}
