package board

import "fmt"

// Move is an immutable move record carrying everything needed to unmake it.
type Move struct {
	Start, End Square

	PieceMoved    Piece
	PieceCaptured Piece // Empty if the move is not a capture.

	IsPromotion     bool
	PromotionChoice Kind // Valid only when IsPromotion; one of {Queen, Knight, Bishop, Rook}.

	IsEnPassant bool
	IsCastle    bool
}

// NewMove builds a move record, deriving IsPromotion from the destination
// rank when the moving piece is a pawn. PromotionChoice defaults to Queen,
// the engine default described in the spec for moves not driven by a human
// promotion choice.
func NewMove(start, end Square, moved, captured Piece) Move {
	m := Move{Start: start, End: end, PieceMoved: moved, PieceCaptured: captured}
	if moved.Kind == Pawn && (end.Row == 0 || end.Row == 7) {
		m.IsPromotion = true
		m.PromotionChoice = Queen
	}
	return m
}

// IsCapture reports whether the move captures a piece, counting en passant.
func (m Move) IsCapture() bool {
	return !m.PieceCaptured.IsEmpty() || m.IsEnPassant
}

// ID is deterministic in (start, end) only, as specified: two moves between
// the same pair of squares compare equal for repetition purposes regardless
// of promotion choice.
func (m Move) ID() int {
	return ((m.Start.Row*8+m.Start.Col)*64 + (m.End.Row*8 + m.End.Col))
}

// Equal reports whether two moves share a move ID.
func (m Move) Equal(other Move) bool {
	return m.ID() == other.ID()
}

// ToChessNotation returns "<start-file><start-rank><end-file><end-rank>",
// e.g. "e2e4".
func (m Move) ToChessNotation() string {
	return m.Start.String() + m.End.String()
}

// ToSANLike returns a readable, non-disambiguated notation: "O-O"/"O-O-O"
// for castles; "<file>x<dest>" on a pawn capture, "<dest>" on a quiet pawn
// move, with a trailing promotion letter; "<letter>[x]<dest>" for other
// pieces. checkSuffix should be "+" if the move gives check, "X" if it
// mates, or "" otherwise — the caller computes this from the resulting
// position, since notation alone cannot know it.
func (m Move) ToSANLike(checkSuffix string) string {
	if m.IsCastle {
		if m.End.Col-m.Start.Col > 0 {
			return "O-O" + checkSuffix
		}
		return "O-O-O" + checkSuffix
	}

	var s string
	if m.PieceMoved.Kind == Pawn {
		if m.IsCapture() {
			s = fmt.Sprintf("%cx%s", m.Start.File(), m.End)
		} else {
			s = m.End.String()
		}
		if m.IsPromotion {
			s += string(m.PromotionChoice.Letter())
		}
	} else {
		letter := m.PieceMoved.Kind.Letter()
		if m.IsCapture() {
			s = fmt.Sprintf("%cx%s", letter, m.End)
		} else {
			s = fmt.Sprintf("%c%s", letter, m.End)
		}
	}
	return s + checkSuffix
}

// MoveList is a growable list of moves, in the teacher's append-only style.
type MoveList struct {
	moves []Move
}

// NewMoveList returns an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves = append(ml.moves, m)
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Slice returns the list's own backing slice; it is not a copy.
func (ml *MoveList) Slice() []Move {
	return ml.moves
}

// Contains reports whether the list contains a move with the given move ID.
func (ml *MoveList) Contains(m Move) bool {
	for _, candidate := range ml.moves {
		if candidate.Equal(m) {
			return true
		}
	}
	return false
}
