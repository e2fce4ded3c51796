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

// Package position represents a chess board and its state history: piece
// bitboards, a piece-on-square array, and a stack of reversible per-ply
// state records. A Position is mutated exclusively through MakeMove and
// UnmakeMove; every other field is derived and read-only to callers.
package position

import (
	"strconv"
	"strings"

	"github.com/fkopp/chesscore/internal/attacks"
	"github.com/fkopp/chesscore/internal/eval"
	. "github.com/fkopp/chesscore/internal/types"
	"github.com/fkopp/chesscore/internal/zobrist"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position owns the board state: per-side-per-kind piece bitboards, the
// redundant occupancy bitboards, a piece-on-square array, and the history
// stack of per-ply state records.
type Position struct {
	pieces     [SqLength]Piece
	piecesBb   [ColorLength][PtLength]Bitboard
	occupiedBb [ColorLength]Bitboard
	totalBb    Bitboard
	kingSquare [ColorLength]Square

	history History

	// eval receives OnSetPiece/OnRemovePiece notifications as pieces move.
	// May be nil, in which case evaluation bookkeeping is simply skipped.
	eval eval.Accumulator
}

// cornerCastlingRight maps a rook's starting corner to the castling right
// it guards, and a king's starting square to both of that side's rights;
// every other square maps to CastlingNone. Consulted on every move's from
// AND to square, so a right is revoked equally whether its rook moved away
// or was captured in place, and a king move or castle revokes both.
var cornerCastlingRight [SqLength]CastlingRights

func init() {
	cornerCastlingRight[SqA1] = CastlingWhiteOOO
	cornerCastlingRight[SqH1] = CastlingWhiteOO
	cornerCastlingRight[SqA8] = CastlingBlackOOO
	cornerCastlingRight[SqH8] = CastlingBlackOO
	cornerCastlingRight[SqE1] = CastlingWhite
	cornerCastlingRight[SqE8] = CastlingBlack
}

// NewPosition returns a Position loaded from the standard starting
// position. acc may be nil.
func NewPosition(acc eval.Accumulator) *Position {
	p, err := NewPositionFEN(StartFen, acc)
	if err != nil {
		panic("start position FEN must be valid: " + err.Error())
	}
	return p
}

// NewPositionFEN returns a Position loaded from fen, or an error (one of
// the FenError-tagged *ParseError cases) if fen is malformed. No partial
// state is retained on failure - the caller gets either a fully loaded
// Position or nothing. acc may be nil.
func NewPositionFEN(fen string, acc eval.Accumulator) (*Position, error) {
	p := &Position{eval: acc}
	for sq := Square(0); sq < SqLength; sq++ {
		p.pieces[sq] = PieceNone
	}
	if err := p.setFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// ---- read-only accessors ----

// SideToMove returns the color on move.
func (p *Position) SideToMove() Color {
	return p.history.Top().SideToMove
}

// PieceOn returns the piece on sq, or PieceNone if empty.
func (p *Position) PieceOn(sq Square) Piece {
	return p.pieces[sq]
}

// PiecesBb returns the bitboard of color c's pieces of type pt.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedBb returns the bitboard of all of color c's pieces.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// OccupiedAll returns the bitboard of every occupied square.
func (p *Position) OccupiedAll() Bitboard {
	return p.totalBb
}

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.history.Top().CastlingRights
}

// EnPassantSquare returns the current en passant target, or SqNone.
func (p *Position) EnPassantSquare() Square {
	return p.history.Top().EnPassantSquare
}

// ZobristKey returns the position's current incremental hash.
func (p *Position) ZobristKey() zobrist.Key {
	return p.history.Top().Zobrist
}

// HalfMoveClock returns the fifty-move-rule counter.
func (p *Position) HalfMoveClock() int {
	return p.history.Top().HalfMoveClock
}

// FullMoveNumber returns the current full move counter.
func (p *Position) FullMoveNumber() int {
	return p.history.Top().FullMoveNumber
}

// LastCapturedPiece returns the piece captured by the most recent move,
// or PieceNone if that move was not a capture (or there is no history).
func (p *Position) LastCapturedPiece() Piece {
	return p.history.Top().CapturedPiece
}

// Checkers returns the bitboard of pieces currently checking the side to
// move's king.
func (p *Position) Checkers() Bitboard {
	return p.history.Top().Checkers
}

// InCheck reports whether the side to move's king is in check.
func (p *Position) InCheck() bool {
	return p.history.Top().Checkers != BbZero
}

// KingBlockers returns color c's king-blocker bitboard: pieces of either
// color that, if moved, might expose c's king to a sliding attack.
func (p *Position) KingBlockers(c Color) Bitboard {
	return p.history.Top().KingBlockers[c]
}

// Pinners returns the bitboard of opposing sliders pinning a blocker
// against color c's king.
func (p *Position) Pinners(c Color) Bitboard {
	return p.history.Top().Pinners[c]
}

// CheckSquares returns the squares from which a piece of type pt,
// belonging to the side to move, would check the opponent's king.
func (p *Position) CheckSquares(pt PieceType) Bitboard {
	return p.history.Top().CheckSquares[pt]
}

// AttackersTo returns the bitboard of color by's pieces that attack sq,
// evaluated against the given occupancy - not necessarily the board's
// actual occupancy, since callers probing king safety through a moving
// piece pass occupancy with that piece's origin square cleared so
// sliders see through it.
func (p *Position) AttackersTo(sq Square, by Color, occupied Bitboard) Bitboard {
	return attacks.AttacksTo(occupied,
		p.piecesBb[by][Pawn], p.piecesBb[by][Knight], p.piecesBb[by][Bishop],
		p.piecesBb[by][Rook], p.piecesBb[by][Queen], p.piecesBb[by][King],
		sq, by)
}

// IsAttacked reports whether any of color by's pieces attacks sq on the
// board's actual occupancy.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	return p.AttackersTo(sq, by, p.totalBb) != BbZero
}

// pawnAttacksSquare reports whether a pawn of color by attacks sq.
func (p *Position) pawnAttacksSquare(by Color, sq Square) bool {
	return attacks.GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != BbZero
}

// GivesCheck reports whether making m would check the opponent's king.
// Direct checks are read straight off CheckSquares. A discovered check is
// reported when the mover is one of the opponent king's blockers and its
// to-square leaves the line through its from-square and that king.
// Discovered checks opened by removing an en passant captured pawn are
// not detected.
func (p *Position) GivesCheck(m Move) bool {
	us := p.SideToMove()
	them := us.Flip()
	fromSq, toSq := m.From(), m.To()
	fromPt := p.pieces[fromSq].TypeOf()

	if m.Kind() == Promotion {
		fromPt = m.PromotionType()
	} else if m.Kind() == Castle {
		fromPt = Rook
		switch toSq {
		case SqG1:
			toSq = SqF1
		case SqC1:
			toSq = SqD1
		case SqG8:
			toSq = SqF8
		case SqC8:
			toSq = SqD8
		}
	}
	if p.CheckSquares(fromPt).Has(toSq) {
		return true
	}
	if p.KingBlockers(them).Has(fromSq) && !Line(fromSq, p.kingSquare[them]).Has(toSq) {
		return true
	}
	return false
}

// ---- piece manipulation primitives ----

// SetPiece places a piece, maintaining bitboards/occupancy/the piece
// array, XORing the Zobrist piece-square random, and notifying eval.
func (p *Position) SetPiece(side Color, pt PieceType, sq Square) {
	piece := MakePiece(side, pt)
	p.pieces[sq] = piece
	p.piecesBb[side][pt] = PushSquare(p.piecesBb[side][pt], sq)
	p.occupiedBb[side] = PushSquare(p.occupiedBb[side], sq)
	p.totalBb = PushSquare(p.totalBb, sq)
	if pt == King {
		p.kingSquare[side] = sq
	}
	p.history.Top().Zobrist ^= zobrist.Pieces[piece][sq]
	if p.eval != nil {
		p.eval.OnSetPiece(side, pt, sq)
	}
}

// RemovePiece clears a piece, the incremental counterpart to SetPiece.
func (p *Position) RemovePiece(side Color, pt PieceType, sq Square) {
	piece := MakePiece(side, pt)
	p.pieces[sq] = PieceNone
	p.piecesBb[side][pt] = PopSquare(p.piecesBb[side][pt], sq)
	p.occupiedBb[side] = PopSquare(p.occupiedBb[side], sq)
	p.totalBb = PopSquare(p.totalBb, sq)
	p.history.Top().Zobrist ^= zobrist.Pieces[piece][sq]
	if p.eval != nil {
		p.eval.OnRemovePiece(side, pt, sq)
	}
}

// MovePiece relocates a piece: RemovePiece then SetPiece.
func (p *Position) MovePiece(side Color, pt PieceType, from, to Square) {
	p.RemovePiece(side, pt, from)
	p.SetPiece(side, pt, to)
}

// ---- move application (spec section 4.4) ----

// MakeMove applies m to the position, pushing a new history frame. The
// caller is responsible for only ever applying pseudo-legal moves
// generated against this exact position; MakeMove does no legality
// checking of its own.
func (p *Position) MakeMove(m Move) {
	top := p.history.Top()
	us := top.SideToMove
	them := us.Flip()
	fromSq, toSq := m.From(), m.To()
	fromPc := p.pieces[fromSq]
	captured := p.pieces[toSq]

	next := p.history.PushNext()
	next.CapturedPiece = PieceNone

	switch m.Kind() {
	case Castle:
		p.doCastle(us, toSq, fromSq, next)
	case EnPassant:
		p.doEnPassant(us, them, fromSq, toSq, next)
	case Promotion:
		p.doPromotion(m, us, fromSq, toSq, captured, next)
	default:
		p.doNormal(us, fromPc, fromSq, toSq, captured, next)
	}

	if us == Black {
		next.FullMoveNumber++
	}
	next.SideToMove = them
	next.Zobrist ^= zobrist.SideToMove

	p.computeDerivedFields(next)
}

// UnmakeMove undoes the most recently made move and pops its history
// frame, so the prior frame's rights, en passant square, clocks and
// Zobrist key are restored verbatim. The pieces are moved back with the
// same SetPiece/RemovePiece primitives MakeMove uses: the eval accumulator
// receives the inverse notifications, and the Zobrist XORs of those calls
// land on the frame that is then discarded. There are no separate
// non-incremental piece primitives.
func (p *Position) UnmakeMove(m Move) {
	prev := p.history.Top()
	us := prev.SideToMove.Flip()

	switch m.Kind() {
	case Castle:
		p.undoCastle(us, m.To(), m.From())
	case EnPassant:
		p.undoEnPassant(us, m.From(), m.To())
	case Promotion:
		p.undoPromotion(us, m, prev.CapturedPiece)
	default:
		p.undoNormal(us, m.From(), m.To(), prev.CapturedPiece)
	}

	p.history.Pop()
}

func (p *Position) revokeCastling(next *StateRecord, fromSq, toSq Square) {
	cr := cornerCastlingRight[fromSq] | cornerCastlingRight[toSq]
	if cr == CastlingNone {
		return
	}
	cur := next.CastlingRights
	if cur&cr == CastlingNone {
		return
	}
	next.Zobrist ^= zobrist.CastlingRights[next.CastlingRights]
	next.CastlingRights = cur &^ cr
	next.Zobrist ^= zobrist.CastlingRights[next.CastlingRights]
}

func (p *Position) clearEnPassant(next *StateRecord) {
	if next.EnPassantSquare != SqNone {
		next.Zobrist ^= zobrist.EnPassantFile[next.EnPassantSquare.FileOf()]
		next.EnPassantSquare = SqNone
	}
}

func (p *Position) doNormal(us Color, fromPc Piece, fromSq, toSq Square, captured Piece, next *StateRecord) {
	p.revokeCastling(next, fromSq, toSq)
	p.clearEnPassant(next)

	if captured != PieceNone {
		p.RemovePiece(captured.ColorOf(), captured.TypeOf(), toSq)
		next.CapturedPiece = captured
		next.HalfMoveClock = 0
	} else if fromPc.TypeOf() == Pawn {
		next.HalfMoveClock = 0
		if SquareDistance(fromSq, toSq) == 2 {
			crossed := toSq.To(us.Flip().MoveDirection())
			if p.pawnAttacksSquare(us.Flip(), crossed) {
				next.EnPassantSquare = crossed
				next.Zobrist ^= zobrist.EnPassantFile[crossed.FileOf()]
			}
		}
	} else {
		next.HalfMoveClock++
	}
	p.MovePiece(us, fromPc.TypeOf(), fromSq, toSq)
}

func (p *Position) undoNormal(us Color, fromSq, toSq Square, captured Piece) {
	them := us.Flip()
	pt := p.pieces[toSq].TypeOf()
	p.RemovePiece(us, pt, toSq)
	p.SetPiece(us, pt, fromSq)
	if captured != PieceNone {
		p.SetPiece(them, captured.TypeOf(), toSq)
	}
}

func (p *Position) doPromotion(m Move, us Color, fromSq, toSq Square, captured Piece, next *StateRecord) {
	p.revokeCastling(next, fromSq, toSq)
	p.clearEnPassant(next)
	if captured != PieceNone {
		p.RemovePiece(captured.ColorOf(), captured.TypeOf(), toSq)
		next.CapturedPiece = captured
	}
	p.RemovePiece(us, Pawn, fromSq)
	p.SetPiece(us, m.PromotionType(), toSq)
	next.HalfMoveClock = 0
}

func (p *Position) undoPromotion(us Color, m Move, captured Piece) {
	them := us.Flip()
	p.RemovePiece(us, m.PromotionType(), m.To())
	p.SetPiece(us, Pawn, m.From())
	if captured != PieceNone {
		p.SetPiece(them, captured.TypeOf(), m.To())
	}
}

func (p *Position) doEnPassant(us, them Color, fromSq, toSq Square, next *StateRecord) {
	capSq := toSq.To(them.MoveDirection())
	p.RemovePiece(them, Pawn, capSq)
	next.CapturedPiece = MakePiece(them, Pawn)
	p.MovePiece(us, Pawn, fromSq, toSq)
	p.clearEnPassant(next)
	next.HalfMoveClock = 0
}

func (p *Position) undoEnPassant(us Color, fromSq, toSq Square) {
	them := us.Flip()
	p.RemovePiece(us, Pawn, toSq)
	p.SetPiece(us, Pawn, fromSq)
	p.SetPiece(them, Pawn, toSq.To(them.MoveDirection()))
}

func (p *Position) doCastle(us Color, toSq, fromSq Square, next *StateRecord) {
	p.revokeCastling(next, fromSq, toSq)
	switch toSq {
	case SqG1:
		p.MovePiece(us, King, fromSq, toSq)
		p.MovePiece(us, Rook, SqH1, SqF1)
	case SqC1:
		p.MovePiece(us, King, fromSq, toSq)
		p.MovePiece(us, Rook, SqA1, SqD1)
	case SqG8:
		p.MovePiece(us, King, fromSq, toSq)
		p.MovePiece(us, Rook, SqH8, SqF8)
	case SqC8:
		p.MovePiece(us, King, fromSq, toSq)
		p.MovePiece(us, Rook, SqA8, SqD8)
	default:
		panic("MakeMove: invalid castle destination " + toSq.String())
	}
	p.clearEnPassant(next)
	next.HalfMoveClock++
}

func (p *Position) undoCastle(us Color, toSq, fromSq Square) {
	p.MovePiece(us, King, toSq, fromSq)
	switch toSq {
	case SqG1:
		p.MovePiece(us, Rook, SqF1, SqH1)
	case SqC1:
		p.MovePiece(us, Rook, SqD1, SqA1)
	case SqG8:
		p.MovePiece(us, Rook, SqF8, SqH8)
	case SqC8:
		p.MovePiece(us, Rook, SqD8, SqA8)
	default:
		panic("UnmakeMove: invalid castle destination " + toSq.String())
	}
}

// ---- derived state (spec section 4.5) ----

// computeDerivedFields fills in next's Checkers, KingBlockers, Pinners
// and CheckSquares from scratch against the board as it stands once the
// ply's pieces have landed. Called once per MakeMove; nothing here is
// carried forward incrementally, since a single move can change the
// blocker/pinner picture for squares far from the move itself.
func (p *Position) computeDerivedFields(next *StateRecord) {
	stm := next.SideToMove
	opp := stm.Flip()

	next.Checkers = p.AttackersTo(p.kingSquare[stm], opp, p.totalBb)

	for _, c := range [ColorLength]Color{White, Black} {
		them := c.Flip()
		king := p.kingSquare[c]
		snipers := (attacks.GetPseudoAttacks(Rook, king) & (p.piecesBb[them][Rook] | p.piecesBb[them][Queen])) |
			(attacks.GetPseudoAttacks(Bishop, king) & (p.piecesBb[them][Bishop] | p.piecesBb[them][Queen]))

		var blockers, pinners Bitboard
		for s := snipers; s != BbZero; {
			sniperSq := s.PopLsb()
			between := Between(sniperSq, king) &^ king.Bb()
			inBetween := between & p.totalBb
			if inBetween.PopCount() == 1 {
				blockers |= inBetween
				if inBetween&p.occupiedBb[c] != BbZero {
					pinners |= sniperSq.Bb()
				}
			}
		}
		next.KingBlockers[c] = blockers
		next.Pinners[c] = pinners
	}

	oppKing := p.kingSquare[opp]
	occ := p.totalBb
	next.CheckSquares[Pawn] = attacks.GetPawnAttacks(opp, oppKing)
	next.CheckSquares[Knight] = attacks.GetAttacksBb(Knight, oppKing, occ)
	next.CheckSquares[Bishop] = attacks.GetAttacksBb(Bishop, oppKing, occ)
	next.CheckSquares[Rook] = attacks.GetAttacksBb(Rook, oppKing, occ)
	next.CheckSquares[Queen] = next.CheckSquares[Bishop] | next.CheckSquares[Rook]
	next.CheckSquares[King] = BbZero
}

// ---- string rendering ----

func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.FEN())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	return os.String()
}

// StringBoard returns a visual matrix of the board and pieces.
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.pieces[SquareOf(f, r)].String())
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}

// FEN returns the FEN string of the current position.
func (p *Position) FEN() string {
	top := p.history.Top()
	var fen strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.pieces[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				fen.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			fen.WriteString(pc.String())
		}
		if empty > 0 {
			fen.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			fen.WriteString("/")
		}
		if r == Rank1 {
			break
		}
	}
	fen.WriteString(" ")
	fen.WriteString(top.SideToMove.String())
	fen.WriteString(" ")
	fen.WriteString(top.CastlingRights.String())
	fen.WriteString(" ")
	fen.WriteString(top.EnPassantSquare.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(top.HalfMoveClock))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(top.FullMoveNumber))
	return fen.String()
}
