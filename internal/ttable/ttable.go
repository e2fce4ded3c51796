//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package ttable implements the fixed-memory, bucketed, priority-evicting
// map shared by perft subtree caching and (by the same contract) a search
// transposition table. It is sized from a MiB budget rather than entry
// count, and a zero budget disables it outright: inserts become no-ops,
// probes always miss.
package ttable

import (
	"github.com/fkopp/chesscore/internal/logging"
	"github.com/fkopp/chesscore/internal/util"
)

// MaxSizeInMB caps a requested budget, same ceiling the teacher's
// transposition table enforces.
const MaxSizeInMB = 65_536

const mib = 1 << 20

var log = logging.GetLog("ttable")

// Table is the bucketed priority-evicting map. Not safe for concurrent use;
// callers owning multiple search threads must shard or synchronize it
// externally, exactly as the teacher's TtTable documents.
type Table struct {
	buckets  []bucket
	capacity uint64
	occupied uint64
	Stats    Stats
}

// Stats mirrors the teacher's TtStats counters, renamed to the exported
// field names this package's callers use.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// New builds a Table sized to fit within sizeInMiB mebibytes. A budget of
// 0 disables the table.
func New(sizeInMiB int) *Table {
	t := &Table{}
	t.Resize(sizeInMiB)
	return t
}

// Resize rebuilds the table for a new memory budget, discarding all
// entries and statistics.
func (t *Table) Resize(sizeInMiB int) {
	if sizeInMiB > MaxSizeInMB {
		log.Error(util.Printer.Sprintf("requested ttable size %d MiB reduced to max %d MiB", sizeInMiB, MaxSizeInMB))
		sizeInMiB = MaxSizeInMB
	}
	if sizeInMiB < 0 {
		sizeInMiB = 0
	}

	numBuckets := uint64(sizeInMiB) * mib / bucketSize
	t.buckets = make([]bucket, numBuckets)
	t.capacity = numBuckets * entriesPerBucket
	t.occupied = 0
	t.Stats = Stats{}

	log.Info(util.Printer.Sprintf("ttable size %d MiB, %d buckets, capacity %d entries", sizeInMiB, numBuckets, t.capacity))
}

// Clear empties the table in place without changing its sizing.
func (t *Table) Clear() {
	for i := range t.buckets {
		t.buckets[i] = bucket{}
	}
	t.occupied = 0
	t.Stats = Stats{}
}

// Probe returns the value stored for key, or false if no entry in key's
// bucket carries a matching key fragment. Two distinct 64-bit keys can
// share a bucket and a 32-bit fragment; a probe hit is therefore not
// proof of identity, only of "probably this position" - callers must
// tolerate an occasional false positive, per the map's contract.
func (t *Table) Probe(key uint64) (uint64, bool) {
	t.Stats.Probes++
	if t.capacity == 0 {
		t.Stats.Misses++
		return 0, false
	}
	b := &t.buckets[bucketIndex(key, uint64(len(t.buckets)))]
	frag := keyFragment(key)
	for i := range b {
		if b[i].used && b[i].keyFragment == frag {
			t.Stats.Hits++
			return b[i].value, true
		}
	}
	t.Stats.Misses++
	return 0, false
}

// Insert writes value into key's bucket under the given priority, always
// overwriting the bucket's lowest-priority entry - even one already
// holding this exact key. There is no key-match shortcut: two inserts of
// the same key are indistinguishable from two different keys that happen
// to land in the same bucket, exactly as the bucket the map's design is
// grounded on never checks a candidate slot's key before evicting it.
// Returns whether the written slot was previously empty.
func (t *Table) Insert(key uint64, value uint64, priority int32) bool {
	if t.capacity == 0 {
		return false
	}
	t.Stats.Puts++

	b := &t.buckets[bucketIndex(key, uint64(len(t.buckets)))]
	frag := keyFragment(key)

	slot := 0
	for i := range b {
		if b[i].priority < b[slot].priority {
			slot = i
		}
	}

	t.Stats.Collisions++
	wasEmpty := !b[slot].used
	if !wasEmpty {
		t.Stats.Overwrites++
	} else {
		t.occupied++
	}
	b[slot] = entry{keyFragment: frag, value: value, priority: priority, used: true}
	return wasEmpty
}

// Usage returns floor(base*occupancy/capacity), 0 when the table is
// disabled - the occupancy estimator the teacher's Hashfull() computes in
// permill, generalized to an arbitrary base.
func (t *Table) Usage(base int) int {
	if t.capacity == 0 {
		return 0
	}
	return int(uint64(base) * t.occupied / t.capacity)
}

// Len returns the number of occupied entries.
func (t *Table) Len() uint64 {
	return t.occupied
}

func (t *Table) String() string {
	return util.Printer.Sprintf(
		"ttable: capacity %d entries %d (%d%%) puts %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d",
		t.capacity, t.occupied, t.Usage(100),
		t.Stats.Puts, t.Stats.Collisions, t.Stats.Overwrites,
		t.Stats.Probes, t.Stats.Hits, (t.Stats.Hits*100)/(1+t.Stats.Probes), t.Stats.Misses,
	)
}

func bucketIndex(key, numBuckets uint64) uint64 {
	if numBuckets == 0 {
		return 0
	}
	return (key >> 32) % numBuckets
}

func keyFragment(key uint64) uint32 {
	return uint32(key)
}
