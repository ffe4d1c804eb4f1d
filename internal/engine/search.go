package engine

import "github.com/hailam/chesscore/internal/board"

// DefaultDepth is the fixed search depth used when a caller doesn't
// override it.
const DefaultDepth = 4

// searchRoot runs negamax with alpha-beta pruning to the given depth over
// moves, the caller-supplied legal-move list for s (which the caller may
// shuffle for move-order variety). It returns the chosen move and its
// score from the side-to-move's perspective. ok is false when moves is
// empty or no move scores above -MATE: at a terminal position at the
// root, and also when every move is answered by a mate within the search
// depth. In that case the caller should fall back to a random move.
func searchRoot(s *board.State, moves *board.MoveList, depth int) (best board.Move, score float64, ok bool) {
	sign := 1.0
	if s.SideToMove == board.Black {
		sign = -1.0
	}

	alpha, beta := float64(-MATE), float64(MATE)
	bestScore := float64(-MATE)

	for _, m := range moves.Slice() {
		board.Make(s, m)
		replies := board.LegalMoves(s)
		v := -negamax(s, replies, depth-1, -beta, -alpha, -sign)
		board.Undo(s)

		if v > bestScore {
			bestScore = v
			best = m
			ok = true
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
	}

	return best, bestScore, ok
}

// negamax is the recursive worker: it evaluates s from the perspective of
// whichever side sign represents (+1 for White, -1 for Black) and returns
// a score the parent negates.
func negamax(s *board.State, moves *board.MoveList, depth int, alpha, beta, sign float64) float64 {
	if depth == 0 {
		return sign * Evaluate(s)
	}
	if moves.Len() == 0 {
		return sign * Evaluate(s)
	}

	best := float64(-MATE)
	for _, m := range moves.Slice() {
		board.Make(s, m)
		replies := board.LegalMoves(s)
		v := -negamax(s, replies, depth-1, -beta, -alpha, -sign)
		board.Undo(s)

		if v > best {
			best = v
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
