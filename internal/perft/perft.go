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

// Package perft walks the legal move tree to a fixed depth, the
// authoritative end-to-end check that move generation, make/unmake and
// the derived check/pin fields all agree with each other.
package perft

import (
	"github.com/fkopp/chesscore/internal/movegen"
	"github.com/fkopp/chesscore/internal/moveslice"
	"github.com/fkopp/chesscore/internal/position"
	. "github.com/fkopp/chesscore/internal/types"
)

// Cache is the subset of a priority-evicting map perft can consult to
// short-circuit a subtree already counted from the same Zobrist key at
// the same remaining depth. A nil Cache disables this.
type Cache interface {
	Probe(key uint64, depth int) (uint64, bool)
	Store(key uint64, depth int, nodes uint64)
}

// Counts is the node and move-kind breakdown perft accumulates.
type Counts struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	CheckMates uint64
}

// Perft walks every legal move of pos to depth plies, returning the node
// count and move-kind breakdown. depth <= 0 counts only the root. tt may
// be nil to run without subtree caching.
func Perft(pos *position.Position, depth int, tt Cache) Counts {
	var c Counts
	if depth <= 0 {
		c.Nodes = 1
		return c
	}
	walk(pos, depth, tt, &c)
	return c
}

func walk(pos *position.Position, depth int, tt Cache, c *Counts) uint64 {
	if tt != nil {
		if n, ok := tt.Probe(uint64(pos.ZobristKey()), depth); ok {
			c.Nodes += n
			return n
		}
	}

	list := moveslice.NewMoveSlice()
	movegen.GenerateLegalMoves(pos, list)

	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		captured := pos.PieceOn(m.To()) != PieceNone
		isEP := m.Kind() == EnPassant
		isCastle := m.Kind() == Castle
		isPromo := m.Kind() == Promotion

		pos.MakeMove(m)
		if depth == 1 {
			nodes++
			c.Nodes++
			switch {
			case isEP:
				c.EnPassant++
				c.Captures++
			case captured:
				c.Captures++
			}
			if isCastle {
				c.Castles++
			}
			if isPromo {
				c.Promotions++
			}
			if pos.InCheck() {
				c.Checks++
				replies := moveslice.NewMoveSlice()
				movegen.GenerateLegalMoves(pos, replies)
				if replies.Len() == 0 {
					c.CheckMates++
				}
			}
		} else {
			nodes += walk(pos, depth-1, tt, c)
		}
		pos.UnmakeMove(m)
	}

	if tt != nil {
		tt.Store(uint64(pos.ZobristKey()), depth, nodes)
	}
	return nodes
}
