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

package ttable

// entriesPerBucket is the small constant spec names for the inline array
// each bucket carries.
const entriesPerBucket = 3

// entry is one slot in a bucket: a 32-bit fragment of the 64-bit Zobrist
// key, a caller-supplied 64-bit value, a signed eviction priority, and
// whether the slot currently holds anything.
type entry struct {
	keyFragment uint32
	value       uint64
	priority    int32
	used        bool
}

// entrySize is the per-slot footprint used to size the table from a MiB
// budget; kept a named constant (as the teacher names TtEntrySize) rather
// than computed via unsafe.Sizeof, since Go struct padding would otherwise
// make the advertised budget depend on the compiler's layout choices.
const entrySize = 24

// bucket is entriesPerBucket inline entries selected by a key's high bits.
type bucket [entriesPerBucket]entry

// bucketSize is the memory footprint of one bucket.
const bucketSize = entriesPerBucket * entrySize
