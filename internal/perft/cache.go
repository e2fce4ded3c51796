package perft

import "github.com/fkopp/chesscore/internal/ttable"

// depthBits is how many of a stored value's high bits record the depth a
// perft subtree count was computed at, so a probe can reject an entry
// whose depth doesn't match even when its key fragment happens to match a
// different node at a different depth - the table's own contract only
// promises "probably this position", not "this depth".
const depthBits = 8

// NewCache adapts a ttable.Table to perft's Cache interface, packing the
// requested depth into the high bits of the stored value alongside the
// node count.
func NewCache(sizeInMiB int) *PerftCache {
	return &PerftCache{tt: ttable.New(sizeInMiB)}
}

// PerftCache wraps a priority-evicting map for perft subtree caching,
// keyed by Zobrist key and remaining depth, prioritized by depth so
// deeper (more expensive) subtrees survive eviction longest.
type PerftCache struct {
	tt *ttable.Table
}

func (c *PerftCache) Probe(key uint64, depth int) (uint64, bool) {
	v, ok := c.tt.Probe(key)
	if !ok {
		return 0, false
	}
	storedDepth := int(v >> (64 - depthBits))
	if storedDepth != depth {
		return 0, false
	}
	return v &^ (uint64(0xFF) << (64 - depthBits)), true
}

func (c *PerftCache) Store(key uint64, depth int, nodes uint64) {
	packed := (uint64(depth) << (64 - depthBits)) | (nodes &^ (uint64(0xFF) << (64 - depthBits)))
	c.tt.Insert(key, packed, int32(depth))
}

// Table exposes the underlying map for stats reporting (Usage, String).
func (c *PerftCache) Table() *ttable.Table {
	return c.tt
}
