package position

import (
	"regexp"
	"strconv"
	"strings"

	. "github.com/fkopp/chesscore/internal/types"
	"github.com/fkopp/chesscore/internal/zobrist"
)

var (
	regexFenPos          = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)
	regexSideToMove      = regexp.MustCompile(`^[wb]$`)
	regexCastlingRights  = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	regexEnPassantSquare = regexp.MustCompile(`^([a-h][1-8]|-)$`)
)

// setFEN (re)initializes the position from a FEN string. On any parse
// failure the Position is left in whatever partial state the in-progress
// piece placement reached; callers only ever see the partial state via
// NewPositionFEN, which discards p entirely on error.
func (p *Position) setFEN(fen string) error {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return newParseError(InvalidFormat, fen)
	}

	for sq := Square(0); sq < SqLength; sq++ {
		p.pieces[sq] = PieceNone
	}
	p.piecesBb = [ColorLength][PtLength]Bitboard{}
	p.occupiedBb = [ColorLength]Bitboard{}
	p.totalBb = BbZero
	frame := p.history.Reset()

	if !regexFenPos.MatchString(fields[0]) {
		return newParseError(InvalidPieces, fields[0])
	}
	file, rank := 0, 7
	for _, c := range fields[0] {
		switch {
		case c >= '1' && c <= '8':
			file += int(c - '0')
		case c == '/':
			if file != 8 || rank == 0 {
				return newParseError(InvalidPieces, fields[0])
			}
			rank--
			file = 0
		default:
			pc := PieceFromChar(byte(c))
			if pc == PieceNone || file >= 8 {
				return newParseError(InvalidPieces, fields[0])
			}
			p.SetPiece(pc.ColorOf(), pc.TypeOf(), SquareOf(File(file), Rank(rank)))
			file++
		}
	}
	if file != 8 || rank != 0 {
		return newParseError(InvalidPieces, fields[0])
	}

	frame.SideToMove = White
	if !regexSideToMove.MatchString(fields[1]) {
		return newParseError(InvalidTurn, fields[1])
	}
	if fields[1] == "b" {
		frame.SideToMove = Black
		frame.Zobrist ^= zobrist.SideToMove
	}

	frame.CastlingRights = CastlingNone
	if !regexCastlingRights.MatchString(fields[2]) {
		return newParseError(InvalidCastling, fields[2])
	}
	for _, c := range fields[2] {
		switch c {
		case 'K':
			frame.CastlingRights.Add(CastlingWhiteOO)
		case 'Q':
			frame.CastlingRights.Add(CastlingWhiteOOO)
		case 'k':
			frame.CastlingRights.Add(CastlingBlackOO)
		case 'q':
			frame.CastlingRights.Add(CastlingBlackOOO)
		}
	}
	frame.Zobrist ^= zobrist.CastlingRights[frame.CastlingRights]

	frame.EnPassantSquare = SqNone
	if !regexEnPassantSquare.MatchString(fields[3]) {
		return newParseError(InvalidEnPassant, fields[3])
	}
	if fields[3] != "-" {
		frame.EnPassantSquare = MakeSquare(fields[3])
		frame.Zobrist ^= zobrist.EnPassantFile[frame.EnPassantSquare.FileOf()]
	}

	n, err := strconv.Atoi(fields[4])
	if err != nil || n < 0 {
		return newParseError(InvalidHalfmoveCount, fields[4])
	}
	frame.HalfMoveClock = n

	n, err = strconv.Atoi(fields[5])
	if err != nil || n < 1 {
		return newParseError(InvalidFullmoveCount, fields[5])
	}
	frame.FullMoveNumber = n

	p.computeDerivedFields(frame)
	return nil
}
