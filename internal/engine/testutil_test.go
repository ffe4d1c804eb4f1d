package engine

import (
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

// mustMake plays the legal move between startAlg and endAlg, failing the
// test if no such legal move exists.
func mustMake(t *testing.T, s *board.State, startAlg, endAlg string) {
	t.Helper()
	ml := LegalMoves(s)
	start, end := algSquare(t, startAlg), algSquare(t, endAlg)
	for _, m := range ml.Slice() {
		if m.Start == start && m.End == end {
			board.Make(s, m)
			return
		}
	}
	t.Fatalf("move %s%s not found among legal moves", startAlg, endAlg)
}

func algSquare(t *testing.T, alg string) board.Square {
	t.Helper()
	sq, err := board.ParseSquare(alg)
	if err != nil {
		t.Fatalf("invalid square %q: %v", alg, err)
	}
	return sq
}

// emptyStateForTest returns a state with only the two kings placed, white
// to move, useful for isolated evaluator checks.
func emptyStateForTest() *board.State {
	s := &board.State{
		SideToMove:      board.White,
		EPTarget:        board.NoSquare,
		EPTargetLog:     []board.Square{board.NoSquare},
		CastleRightsLog: []board.CastleRights{{}},
	}
	wk, _ := board.ParseSquare("e1")
	bk, _ := board.ParseSquare("e8")
	s.Board[wk.Row][wk.Col] = board.Piece{Color: board.White, Kind: board.King}
	s.Board[bk.Row][bk.Col] = board.Piece{Color: board.Black, Kind: board.King}
	s.WhiteKing = wk
	s.BlackKing = bk
	return s
}
