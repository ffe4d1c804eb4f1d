package board

import (
	"fmt"
	"strings"
)

// Grid is the 8x8 array of square contents.
type Grid [8][8]Piece

// State is the authoritative record of a game in progress: the board,
// whose move it is, and every piece of history-sensitive state needed to
// make and undo moves and to detect draws.
type State struct {
	Board       Grid
	SideToMove  Color
	MoveLog     []Move
	WhiteKing   Square
	BlackKing   Square

	CastleRights    CastleRights
	CastleRightsLog []CastleRights

	EPTarget    Square
	EPTargetLog []Square

	HalfmoveQuietWhite int
	HalfmoveQuietBlack int

	Checkmate bool
	Stalemate bool
	Draw      bool

	// Transient cache written by the pin/check scanner ahead of move
	// generation and consulted by the per-piece generators. Callers should
	// treat these as read-only; LegalMoves recomputes them on every call.
	InCheck bool
	Pins    []Pin
	Checks  []Check
}

// NewGame returns the standard initial position, white to move.
func NewGame() *State {
	s := &State{
		SideToMove:      White,
		CastleRights:    AllCastleRights(),
		CastleRightsLog: []CastleRights{AllCastleRights()},
		EPTarget:        NoSquare,
		EPTargetLog:     []Square{NoSquare},
		WhiteKing:       Square{Row: 7, Col: 4},
		BlackKing:       Square{Row: 0, Col: 4},
	}

	backRank := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range backRank {
		s.Board[0][col] = Piece{Color: Black, Kind: kind}
		s.Board[7][col] = Piece{Color: White, Kind: kind}
	}
	for col := 0; col < 8; col++ {
		s.Board[1][col] = Piece{Color: Black, Kind: Pawn}
		s.Board[6][col] = Piece{Color: White, Kind: Pawn}
	}

	return s
}

// PieceAt returns the piece on a square, or Empty.
func (s *State) PieceAt(sq Square) Piece {
	return s.Board[sq.Row][sq.Col]
}

// KingSquare returns the cached king location for a color.
func (s *State) KingSquare(c Color) Square {
	if c == White {
		return s.WhiteKing
	}
	return s.BlackKing
}

// setKingSquare updates the king-location cache for a color.
func (s *State) setKingSquare(c Color, sq Square) {
	if c == White {
		s.WhiteKing = sq
	} else {
		s.BlackKing = sq
	}
}

// String renders the board the way the teacher renders bitboard positions:
// a labelled 8x8 grid plus the side-effect state beneath it.
func (s *State) String() string {
	var b strings.Builder
	for row := 0; row < 8; row++ {
		fmt.Fprintf(&b, "%d  ", 8-row)
		for col := 0; col < 8; col++ {
			fmt.Fprintf(&b, "%s ", s.Board[row][col].String())
		}
		b.WriteByte('\n')
	}
	b.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&b, "Side to move: %s\n", s.SideToMove)
	fmt.Fprintf(&b, "En passant: %s\n", s.EPTarget)
	fmt.Fprintf(&b, "Halfmove quiet (w/b): %d/%d\n", s.HalfmoveQuietWhite, s.HalfmoveQuietBlack)
	return b.String()
}
