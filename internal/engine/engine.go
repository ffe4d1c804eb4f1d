package engine

import "github.com/hailam/chesscore/internal/board"

// PromotionChooser is the human-promotion callback passed to Make. It
// must return one of {Queen, Knight, Bishop, Rook}; Make re-invokes it
// until it does.
type PromotionChooser func() board.Kind

// NewGame returns the standard initial position, white to move.
func NewGame() *board.State {
	return board.NewGame()
}

// LegalMoves recomputes and returns the legal moves for the side to move,
// updating the terminal flags on s as a side effect.
func LegalMoves(s *board.State) *board.MoveList {
	return board.LegalMoves(s)
}

// Make applies m to s. If m is a pawn promotion and choose is non-nil, it
// is consulted for the promotion piece, re-prompted until it returns a
// valid choice; otherwise the move's existing PromotionChoice (Queen by
// default, per board.NewMove) is used.
func Make(s *board.State, m board.Move, choose PromotionChooser) {
	if m.IsPromotion && choose != nil {
		for {
			k := choose()
			if k == board.Queen || k == board.Knight || k == board.Bishop || k == board.Rook {
				m.PromotionChoice = k
				break
			}
		}
	}
	board.Make(s, m)
}

// Undo reverses the most recently applied move; a no-op on an empty log.
func Undo(s *board.State) {
	board.Undo(s)
}

// IsCheckmate reports the terminal checkmate flag most recently computed
// by LegalMoves.
func IsCheckmate(s *board.State) bool { return s.Checkmate }

// IsStalemate reports the terminal stalemate flag.
func IsStalemate(s *board.State) bool { return s.Stalemate }

// IsDraw reports the terminal draw flag (repetition or fifty-move).
func IsDraw(s *board.State) bool { return s.Draw }

// MoveLog returns the applied move history, oldest first.
func MoveLog(s *board.State) []board.Move { return s.MoveLog }

// SideToMove returns the color to move.
func SideToMove(s *board.State) board.Color { return s.SideToMove }

// Result is the outcome best_move writes to its result channel: the
// chosen move, its score from the side-to-move's perspective, and
// whether a move was actually found (false at a terminal position, and
// also when every move is answered by a mate within the search depth).
type Result struct {
	Move  board.Move
	Score float64
	Found bool
}

// BestMove runs the fixed-depth negamax search over moves for s and
// writes the outcome to ch. It is meant to be called on a worker
// goroutine, per §5's concurrency model: the caller hands it an
// independent state and may simply stop reading from ch to abandon the
// result — there is no cancellation token.
func BestMove(s *board.State, moves *board.MoveList, depth int, ch chan<- Result) {
	m, score, ok := searchRoot(s, moves, depth)
	ch <- Result{Move: m, Score: score, Found: ok}
}

// MoveLogNotation renders s's move log as SAN-like strings, feeding
// UI-facing move-log panels. A move's check/mate suffix depends on the
// position immediately after it, so this replays the whole log from the
// initial position on a scratch state rather than reading it off s.
func MoveLogNotation(s *board.State) []string {
	cursor := board.NewGame()
	notations := make([]string, 0, len(s.MoveLog))

	for _, m := range s.MoveLog {
		board.Make(cursor, m)
		board.LegalMoves(cursor)

		suffix := ""
		switch {
		case cursor.Checkmate:
			suffix = "X"
		case cursor.InCheck:
			suffix = "+"
		}
		notations = append(notations, m.ToSANLike(suffix))
	}
	return notations
}
