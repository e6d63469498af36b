package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledScopesRecordNothing(t *testing.T) {
	SetEnabled(false)
	Drain()

	Start("idle")()
	assert.Empty(t, Drain())
}

func TestScopeAccumulation(t *testing.T) {
	SetEnabled(true)
	t.Cleanup(func() { SetEnabled(false) })
	Drain()

	for i := 0; i < 3; i++ {
		end := Start("work")
		time.Sleep(time.Millisecond)
		end()
	}
	Start("other")()

	samples := Drain()
	require.Len(t, samples, 2)

	// sorted by total descending; the slept scope dominates
	assert.Equal(t, "work", samples[0].Name)
	assert.Equal(t, 3, samples[0].Calls)
	assert.GreaterOrEqual(t, samples[0].Total, 3*time.Millisecond)
	assert.GreaterOrEqual(t, samples[0].Max, samples[0].Average())

	assert.Empty(t, Drain(), "drain clears the accumulator")
}

func TestHeapStats(t *testing.T) {
	heap, _ := HeapStats()
	assert.Greater(t, heap, uint64(0))
}
