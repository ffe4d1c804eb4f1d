package board

// LegalMoves recomputes the pin/check scan, generates every legal move for
// the side to move, and updates the terminal flags (Checkmate, Stalemate,
// Draw) on s. The returned list is valid until the next mutation of s.
func LegalMoves(s *State) *MoveList {
	snapshot := s.CastleRights

	s.InCheck, s.Pins, s.Checks = Scan(s, s.SideToMove)

	ml := NewMoveList()
	switch {
	case s.InCheck && len(s.Checks) >= 2:
		// Double check: only the king can move.
		generateKingMoves(s, s.SideToMove, ml)

	case s.InCheck:
		check := s.Checks[0]
		allowedDestinations := blockingSquares(s, check)

		all := NewMoveList()
		generateAllPseudoLegal(s, s.SideToMove, all)
		for _, m := range all.Slice() {
			if m.PieceMoved.Kind == King || allowedDestinations[m.End] {
				ml.Add(m)
			}
		}

	default:
		generateAllPseudoLegal(s, s.SideToMove, ml)
		appendCastlingMoves(s, ml)
	}

	if ml.Len() == 0 {
		if s.InCheck {
			s.Checkmate = true
		} else {
			s.Stalemate = true
		}
	}

	checkRepetitionDraw(s)
	checkFiftyMoveDraw(s)

	s.CastleRights = snapshot
	return ml
}

// blockingSquares returns the set of destination squares that resolve a
// single check: the checker's own square always works (capture), plus, for
// a slider, every square strictly between the king and the checker.
func blockingSquares(s *State, check Check) map[Square]bool {
	allowed := map[Square]bool{check.Square: true}

	attacker := s.PieceAt(check.Square)
	if attacker.Kind != Bishop && attacker.Kind != Rook && attacker.Kind != Queen {
		return allowed
	}

	king := s.KingSquare(s.SideToMove)
	for dist := 1; ; dist++ {
		sq := king.Add(check.DR*dist, check.DC*dist)
		if sq == check.Square || !sq.IsValid() {
			break
		}
		allowed[sq] = true
	}
	return allowed
}

// checkRepetitionDraw implements the move-sequence-based repetition rule:
// a draw is declared once the same move ID recurs on three plies spaced
// four apart.
func checkRepetitionDraw(s *State) {
	n := len(s.MoveLog)
	if n < 8 {
		return
	}
	for i := 0; i+8 < n; i++ {
		if s.MoveLog[i].ID() == s.MoveLog[i+4].ID() && s.MoveLog[i+4].ID() == s.MoveLog[i+8].ID() {
			s.Draw = true
			return
		}
	}
}

func checkFiftyMoveDraw(s *State) {
	if s.HalfmoveQuietWhite >= 50 || s.HalfmoveQuietBlack >= 50 {
		s.Draw = true
	}
}

// appendCastlingMoves generates castling moves for a side not currently in
// check: the intermediate squares must be empty, and the square the king
// passes through plus its destination must both be unattacked.
func appendCastlingMoves(s *State, ml *MoveList) {
	side := s.SideToMove
	opponent := side.Other()
	row := 7
	if side == Black {
		row = 0
	}
	king := Square{Row: row, Col: 4}
	kingPiece := s.PieceAt(king)

	if s.CastleRights.Get(side, true) &&
		s.Board[row][5].IsEmpty() && s.Board[row][6].IsEmpty() &&
		!squareAttacked(s, king, opponent) &&
		!squareAttacked(s, Square{Row: row, Col: 5}, opponent) &&
		!squareAttacked(s, Square{Row: row, Col: 6}, opponent) {
		m := NewMove(king, Square{Row: row, Col: 6}, kingPiece, Empty)
		m.IsCastle = true
		ml.Add(m)
	}

	if s.CastleRights.Get(side, false) &&
		s.Board[row][1].IsEmpty() && s.Board[row][2].IsEmpty() && s.Board[row][3].IsEmpty() &&
		!squareAttacked(s, king, opponent) &&
		!squareAttacked(s, Square{Row: row, Col: 3}, opponent) &&
		!squareAttacked(s, Square{Row: row, Col: 2}, opponent) {
		m := NewMove(king, Square{Row: row, Col: 2}, kingPiece, Empty)
		m.IsCastle = true
		ml.Add(m)
	}
}

// squareAttacked is the non-mutating attacks_to(square, by_color) query the
// spec's design notes prefer over the king generator's temporary-mutation
// test: it enumerates by_color's pseudo-legal attacks without generating
// full Move records.
func squareAttacked(s *State, sq Square, by Color) bool {
	pawnAttackerRow := sq.Row + 1
	if by == Black {
		pawnAttackerRow = sq.Row - 1
	}
	for _, dc := range []int{-1, 1} {
		from := Square{Row: pawnAttackerRow, Col: sq.Col + dc}
		if from.IsValid() {
			p := s.PieceAt(from)
			if p.Kind == Pawn && p.Color == by {
				return true
			}
		}
	}

	for _, off := range knightOffsets {
		from := sq.Add(off[0], off[1])
		if from.IsValid() {
			p := s.PieceAt(from)
			if p.Kind == Knight && p.Color == by {
				return true
			}
		}
	}

	for _, d := range rayDirections {
		from := sq.Add(d[0], d[1])
		if from.IsValid() {
			p := s.PieceAt(from)
			if p.Kind == King && p.Color == by {
				return true
			}
		}
	}

	for dirIdx, d := range rayDirections {
		orthogonal := dirIdx < 4
		for dist := 1; dist < 8; dist++ {
			from := sq.Add(d[0]*dist, d[1]*dist)
			if !from.IsValid() {
				break
			}
			p := s.PieceAt(from)
			if p.IsEmpty() {
				continue
			}
			if p.Color == by {
				if p.Kind == Queen || (orthogonal && p.Kind == Rook) || (!orthogonal && p.Kind == Bishop) {
					return true
				}
			}
			break
		}
	}

	return false
}
