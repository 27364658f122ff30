package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/stackwalk/internal/walk/cpu"
	"github.com/kolkov/stackwalk/internal/walk/frame"
)

// TestInitRecordAMD64 feeds a synthetic register context through the
// initializer and checks that RIP, RSP and RBP land in the record's
// address slots, flat mode, for both record variants.
func TestInitRecordAMD64(t *testing.T) {
	ctx := cpu.NewContext()
	ctx.Rip = 0x7ff6_1234_5678
	ctx.Rsp = 0xe4_9fff_e000
	ctx.Rbp = 0xe4_9fff_e040

	for _, kind := range []frame.Kind{frame.KindExtended, frame.KindLegacy} {
		rec := frame.NewRecord(kind)
		machine := initRecord(rec, ctx)

		require.Equal(t, cpu.MachineAMD64, machine)
		assert.Equal(t, uint64(0x7ff6_1234_5678), rec.PC())
		assert.Equal(t, uint64(0xe4_9fff_e000), rec.SP())
		assert.Equal(t, uint64(0xe4_9fff_e040), rec.FP())
		assert.True(t, rec.Flat(), "seeded record must use flat addressing")
	}
}
