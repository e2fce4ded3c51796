package ttable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroBudgetDisablesTable(t *testing.T) {
	tt := New(0)
	assert.False(t, tt.Insert(123, 456, 1))
	_, ok := tt.Probe(123)
	assert.False(t, ok)
	assert.Equal(t, 0, tt.Usage(100))
}

func TestInsertThenProbeRoundTrips(t *testing.T) {
	tt := New(1)
	wasEmpty := tt.Insert(0xdeadbeef_00000001, 42, 5)
	assert.True(t, wasEmpty)

	v, ok := tt.Probe(0xdeadbeef_00000001)
	assert.True(t, ok)
	assert.EqualValues(t, 42, v)

	_, ok = tt.Probe(0xdeadbeef_00000002)
	assert.False(t, ok)
}

func TestInsertIgnoresKeyMatchAndEvictsByPriorityAlone(t *testing.T) {
	tt := New(1)
	// Three inserts of the same key fill all three slots of its bucket -
	// Insert never checks whether a slot already holds this key before
	// choosing where to write, so repeated inserts of one key behave
	// exactly like inserts of three different keys that happen to land
	// in the same bucket.
	tt.Insert(1, 10, 1)
	tt.Insert(1, 20, 2)
	tt.Insert(1, 30, 3)
	assert.EqualValues(t, 3, tt.Len())

	// A fourth insert of the same key still evicts the bucket's
	// lowest-priority occupant rather than updating an existing slot for
	// this key.
	tt.Insert(1, 40, 4)
	assert.EqualValues(t, 3, tt.Len(), "eviction replaces a slot, it does not grow occupancy further")
}

func TestLowestPriorityEntryIsEvicted(t *testing.T) {
	tt := New(1)
	// Keys sharing bucket 0 and distinct fragments: high 32 bits all zero
	// selects bucket 0 regardless of fragment, so these four collide into
	// one bucket of three slots.
	tt.Insert(0x00000000_00000001, 1, 1)
	tt.Insert(0x00000000_00000002, 2, 2)
	tt.Insert(0x00000000_00000003, 3, 3)
	assert.EqualValues(t, 3, tt.Len())

	// A fourth key with higher priority than the lowest-priority occupant
	// (priority 1) must evict it.
	tt.Insert(0x00000000_00000004, 4, 10)
	_, ok := tt.Probe(0x00000000_00000001)
	assert.False(t, ok, "lowest-priority entry should have been evicted")

	for _, k := range []uint64{2, 3, 4} {
		_, ok := tt.Probe(k)
		assert.True(t, ok)
	}
}

func TestClearResetsOccupancyAndStats(t *testing.T) {
	tt := New(1)
	tt.Insert(1, 1, 1)
	tt.Probe(1)
	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	assert.EqualValues(t, 0, tt.Stats.Probes)
	_, ok := tt.Probe(1)
	assert.False(t, ok)
}

func TestUsageScalesWithOccupancy(t *testing.T) {
	tt := New(1)
	assert.Equal(t, 0, tt.Usage(1000))
	tt.Insert(1, 1, 1)
	assert.Greater(t, tt.Usage(1_000_000), 0)
}
