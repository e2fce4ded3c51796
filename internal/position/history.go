package position

import (
	. "github.com/fkopp/chesscore/internal/types"
	"github.com/fkopp/chesscore/internal/zobrist"
)

// maxHistory bounds the number of plies a single Position can look ahead
// from any root; double spec's floor of 256 to give search headroom.
const maxHistory = 512

// StateRecord is one ply's worth of state. The header fields are copied
// forward by PushNext and restored by Pop; the derived fields are
// recomputed by the Position after the ply's piece movements land.
type StateRecord struct {
	// header - copied forward, restored verbatim on unmake
	SideToMove      Color
	CastlingRights  CastlingRights
	EnPassantSquare Square
	CapturedPiece   Piece
	HalfMoveClock   int
	FullMoveNumber  int
	Zobrist         zobrist.Key

	// derived - recomputed after every ply transition, never copied
	// forward meaningfully (PushNext leaves them at the zero value)
	Checkers     Bitboard
	KingBlockers [ColorLength]Bitboard
	Pinners      [ColorLength]Bitboard
	CheckSquares [PtLength]Bitboard
}

// History is a fixed-capacity, array-backed LIFO stack of StateRecords.
type History struct {
	records [maxHistory]StateRecord
	count   int
}

// PushNext materializes a new top frame by copying the current top's
// header fields; derived fields start zeroed and must be filled in by the
// caller once the new ply's pieces have moved. Returns the new top frame
// for in-place mutation.
func (h *History) PushNext() *StateRecord {
	prev := &h.records[h.count-1]
	h.count++
	next := &h.records[h.count-1]
	next.SideToMove = prev.SideToMove
	next.CastlingRights = prev.CastlingRights
	next.EnPassantSquare = prev.EnPassantSquare
	next.HalfMoveClock = prev.HalfMoveClock
	next.FullMoveNumber = prev.FullMoveNumber
	next.Zobrist = prev.Zobrist
	next.CapturedPiece = PieceNone
	next.Checkers = BbZero
	next.KingBlockers = [ColorLength]Bitboard{}
	next.Pinners = [ColorLength]Bitboard{}
	next.CheckSquares = [PtLength]Bitboard{}
	return next
}

// Pop discards the top frame and returns the one beneath it, now current.
func (h *History) Pop() *StateRecord {
	h.count--
	return &h.records[h.count-1]
}

// Top returns the current frame.
func (h *History) Top() *StateRecord {
	return &h.records[h.count-1]
}

// Reset clears the stack back to a single frame, which the caller is
// expected to populate (used when loading a new FEN into the position).
func (h *History) Reset() *StateRecord {
	h.count = 1
	h.records[0] = StateRecord{}
	return &h.records[0]
}

// Len returns the number of frames currently on the stack (always >= 1).
func (h *History) Len() int {
	return h.count
}
