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

// Package moveslice provides a fixed-capacity slice of Move used by the
// move generator: no chess position can produce more than a few dozen
// legal moves, but adversarial or malformed inputs must not be able to
// grow it without bound.
package moveslice

import (
	"fmt"
	"strings"

	"github.com/fkopp/chesscore/internal/assert"
	. "github.com/fkopp/chesscore/internal/types"
)

// MaxMoves bounds a single position's move list. No legal chess position
// comes close to this; it exists to cap pathological/malformed inputs.
const MaxMoves = 256

// MoveSlice is a slice of Move pre-sized to MaxMoves capacity.
type MoveSlice []Move

// NewMoveSlice returns an empty MoveSlice with MaxMoves capacity.
func NewMoveSlice() *MoveSlice {
	moves := make([]Move, 0, MaxMoves)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends a move. Panics (in debug builds) if the list is
// already at MaxMoves - a position generating more than that indicates
// a bug in the generator, not a valid board state.
func (ms *MoveSlice) PushBack(m Move) {
	if assert.DEBUG {
		assert.Assert(len(*ms) < MaxMoves, "MoveSlice: PushBack exceeds MaxMoves")
	}
	*ms = append(*ms, m)
}

// At returns the move at index i. Panics if out of bounds.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("MoveSlice: index out of bounds")
	}
	return (*ms)[i]
}

// Filter removes all elements for which f returns false, reusing the
// underlying array.
func (ms *MoveSlice) Filter(f func(index int) bool) {
	b := (*ms)[:0]
	for i, x := range *ms {
		if f(i) {
			b = append(b, x)
		}
	}
	*ms = b
}

// Clear empties the slice, retaining its capacity.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// ForEach calls f with the index of each element, in stored order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for index := range *ms {
		f(index)
	}
}

// String returns a debug representation of the slice.
func (ms *MoveSlice) String() string {
	var os strings.Builder
	size := len(*ms)
	os.WriteString(fmt.Sprintf("MoveList: [%d] { ", size))
	for i := 0; i < size; i++ {
		if i > 0 {
			os.WriteString(", ")
		}
		os.WriteString((*ms)[i].String())
	}
	os.WriteString(" }")
	return os.String()
}

// StringUci returns a space-separated list of the moves in UCI format.
func (ms *MoveSlice) StringUci() string {
	var os strings.Builder
	size := len(*ms)
	for i := 0; i < size; i++ {
		if i > 0 {
			os.WriteString(" ")
		}
		os.WriteString((*ms)[i].StringUci())
	}
	return os.String()
}
