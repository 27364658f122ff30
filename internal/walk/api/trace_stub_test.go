//go:build !windows

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTraceYieldsNothing pins the degraded behavior on non-Windows
// hosts: the visitor is never called and Trace returns normally.
func TestTraceYieldsNothing(t *testing.T) {
	calls := 0
	Trace(func(pc, sp, fp uintptr) bool {
		calls++
		return true
	})
	assert.Zero(t, calls, "visitor must not run without a symbol engine")
}
