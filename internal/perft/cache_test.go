package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkopp/chesscore/internal/position"
)

func TestPerftUsesCacheAcrossRepeatedCalls(t *testing.T) {
	cache := NewCache(1)
	pos, err := position.NewPositionFEN(position.StartFen, nil)
	assert.NoError(t, err)

	first := Perft(pos, 3, cache)
	assert.EqualValues(t, 8_902, first.Nodes)
	assert.Greater(t, cache.Table().Len(), uint64(0))

	statsBefore := cache.Table().Stats.Hits
	pos2, err := position.NewPositionFEN(position.StartFen, nil)
	assert.NoError(t, err)
	second := Perft(pos2, 3, cache)
	assert.EqualValues(t, 8_902, second.Nodes)
	assert.Greater(t, cache.Table().Stats.Hits, statsBefore, "second pass should hit the root's cached subtree counts")
}

func TestCacheRejectsMismatchedDepth(t *testing.T) {
	cache := NewCache(1)
	pos, err := position.NewPositionFEN(position.StartFen, nil)
	assert.NoError(t, err)

	key := uint64(pos.ZobristKey())
	cache.Store(key, 5, 999)
	_, ok := cache.Probe(key, 3)
	assert.False(t, ok, "a node cached at depth 5 must not satisfy a depth-3 probe")

	v, ok := cache.Probe(key, 5)
	assert.True(t, ok)
	assert.EqualValues(t, 999, v)
}
