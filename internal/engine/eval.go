// Package engine implements the static evaluator and the negamax
// alpha-beta search over internal/board positions, plus the embedding API
// a driver uses to play a game against it.
package engine

import "github.com/hailam/chesscore/internal/board"

// MATE is the sentinel magnitude used both as the checkmate score and as
// the initial alpha/beta search bounds.
const MATE = 10000

// pawnPST rewards central control and advancement, from White's
// perspective; row 0 is Black's back rank, row 7 is White's. Values are
// small positive floats, not centipawns, so they combine cleanly with
// board.Material's 1..9 scale.
var pawnPST = [8][8]float64{
	{0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8},
	{0.7, 0.7, 0.7, 0.7, 0.7, 0.7, 0.7, 0.7},
	{0.3, 0.3, 0.4, 0.5, 0.5, 0.4, 0.3, 0.3},
	{0.25, 0.25, 0.3, 0.45, 0.45, 0.3, 0.25, 0.25},
	{0.2, 0.2, 0.2, 0.4, 0.4, 0.2, 0.2, 0.2},
	{0.25, 0.15, 0.1, 0.2, 0.2, 0.1, 0.15, 0.25},
	{0.25, 0.3, 0.3, 0.0, 0.0, 0.3, 0.3, 0.25},
	{0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2},
}

var knightPST = [8][8]float64{
	{0.0, 0.1, 0.2, 0.2, 0.2, 0.2, 0.1, 0.0},
	{0.1, 0.3, 0.5, 0.5, 0.5, 0.5, 0.3, 0.1},
	{0.2, 0.5, 0.6, 0.65, 0.65, 0.6, 0.5, 0.2},
	{0.2, 0.55, 0.65, 0.7, 0.7, 0.65, 0.55, 0.2},
	{0.2, 0.5, 0.65, 0.7, 0.7, 0.65, 0.5, 0.2},
	{0.2, 0.55, 0.6, 0.65, 0.65, 0.6, 0.55, 0.2},
	{0.1, 0.3, 0.5, 0.55, 0.55, 0.5, 0.3, 0.1},
	{0.0, 0.1, 0.2, 0.2, 0.2, 0.2, 0.1, 0.0},
}

var bishopPST = [8][8]float64{
	{0.0, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.0},
	{0.2, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.2},
	{0.2, 0.4, 0.5, 0.6, 0.6, 0.5, 0.4, 0.2},
	{0.2, 0.5, 0.5, 0.6, 0.6, 0.5, 0.5, 0.2},
	{0.2, 0.4, 0.6, 0.6, 0.6, 0.6, 0.4, 0.2},
	{0.2, 0.6, 0.6, 0.6, 0.6, 0.6, 0.6, 0.2},
	{0.2, 0.5, 0.4, 0.4, 0.4, 0.4, 0.5, 0.2},
	{0.0, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.0},
}

var rookPST = [8][8]float64{
	{0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25},
	{0.5, 0.75, 0.75, 0.75, 0.75, 0.75, 0.75, 0.5},
	{0.0, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.0},
	{0.0, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.0},
	{0.0, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.0},
	{0.0, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.0},
	{0.0, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.0},
	{0.25, 0.25, 0.25, 0.5, 0.5, 0.25, 0.25, 0.25},
}

var queenPST = [8][8]float64{
	{0.0, 0.2, 0.2, 0.3, 0.3, 0.2, 0.2, 0.0},
	{0.2, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.2},
	{0.2, 0.4, 0.5, 0.5, 0.5, 0.5, 0.4, 0.2},
	{0.3, 0.4, 0.5, 0.5, 0.5, 0.5, 0.4, 0.3},
	{0.4, 0.4, 0.5, 0.5, 0.5, 0.5, 0.4, 0.3},
	{0.2, 0.5, 0.5, 0.5, 0.5, 0.5, 0.4, 0.2},
	{0.2, 0.4, 0.5, 0.4, 0.4, 0.4, 0.4, 0.2},
	{0.0, 0.2, 0.2, 0.3, 0.3, 0.2, 0.2, 0.0},
}

// pstByKind maps a piece kind to its table. Index 0 (NoKind) and King are
// unused; the king contributes no PST term, per the spec.
var pstByKind = map[board.Kind]*[8][8]float64{
	board.Pawn:   &pawnPST,
	board.Knight: &knightPST,
	board.Bishop: &bishopPST,
	board.Rook:   &rookPST,
	board.Queen:  &queenPST,
}

// pstValue looks up the white-perspective PST value for a piece at a
// square, mirroring the table vertically for black so each side's
// "advanced" ranks score the same way.
func pstValue(p board.Piece, row, col int) float64 {
	table, ok := pstByKind[p.Kind]
	if !ok {
		return 0
	}
	r := row
	if p.Color == board.Black {
		r = 7 - row
	}
	return table[r][col]
}

// Evaluate returns the static score of s from White's perspective:
// positive favors White. Terminal positions override the material+PST
// sum entirely.
func Evaluate(s *board.State) float64 {
	switch {
	case s.Checkmate:
		if s.SideToMove == board.White {
			return -MATE
		}
		return MATE
	case s.Stalemate, s.Draw:
		return 0
	}

	var score float64
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := s.Board[row][col]
			if p.IsEmpty() {
				continue
			}
			contribution := board.Material[p.Kind] + pstValue(p, row, col)
			if p.Color == board.White {
				score += contribution
			} else {
				score -= contribution
			}
		}
	}
	return score
}
