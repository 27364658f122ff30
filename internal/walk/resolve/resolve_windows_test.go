//go:build windows

package resolve

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/stackwalk/internal/walk/dbghelp"
)

// TestCallbacksStable verifies both resolver callbacks come back nonzero
// and identical across calls; the walking primitive stores the pair for
// a whole walk, so they must not move.
func TestCallbacksStable(t *testing.T) {
	eng, err := dbghelp.Acquire(zerolog.Nop())
	if err != nil {
		t.Skip("symbol engine unavailable on this host")
	}
	defer eng.Release()

	ta1, mb1 := Callbacks(eng)
	require.NotZero(t, ta1)
	require.NotZero(t, mb1)

	ta2, mb2 := Callbacks(eng)
	assert.Equal(t, ta1, ta2)
	assert.Equal(t, mb1, mb2)
}
