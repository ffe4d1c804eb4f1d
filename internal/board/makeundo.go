package board

// Make applies a move to s, recording everything Undo needs to reverse it.
// It trusts its input: the caller is expected to gate Make on membership in
// the most recent LegalMoves result, per the spec's error-handling design.
// It panics if the start square does not hold the piece the move claims to
// move — a programmer error, not a recoverable condition.
func Make(s *State, m Move) {
	actual := s.PieceAt(m.Start)
	if actual != m.PieceMoved {
		panic("board: Make called with a move whose start square does not hold piece_moved")
	}

	s.Board[m.Start.Row][m.Start.Col] = Empty
	s.Board[m.End.Row][m.End.Col] = m.PieceMoved

	if m.IsPromotion {
		s.Board[m.End.Row][m.End.Col] = Piece{Color: m.PieceMoved.Color, Kind: m.PromotionChoice}
	}

	if m.IsEnPassant {
		s.Board[m.Start.Row][m.End.Col] = Empty
	}

	if m.PieceMoved.Kind == Pawn && abs(m.End.Row-m.Start.Row) == 2 {
		s.EPTarget = Square{Row: (m.Start.Row + m.End.Row) / 2, Col: m.Start.Col}
	} else {
		s.EPTarget = NoSquare
	}

	if m.IsCastle {
		applyCastleRookMove(s, m)
	}

	updateCastleRightsOnMove(s, m)

	s.EPTargetLog = append(s.EPTargetLog, s.EPTarget)
	s.CastleRightsLog = append(s.CastleRightsLog, s.CastleRights)

	if m.PieceMoved.Kind == King {
		s.setKingSquare(m.PieceMoved.Color, m.End)
	}

	s.MoveLog = append(s.MoveLog, m)
	s.SideToMove = s.SideToMove.Other()

	if m.PieceMoved.Color == White {
		if m.IsCapture() {
			s.HalfmoveQuietWhite = 0
		} else {
			s.HalfmoveQuietWhite++
		}
	} else {
		if m.IsCapture() {
			s.HalfmoveQuietBlack = 0
		} else {
			s.HalfmoveQuietBlack++
		}
	}
}

// Undo reverses the most recently applied move. It is a no-op on an empty
// move log.
func Undo(s *State) {
	n := len(s.MoveLog)
	if n == 0 {
		return
	}

	m := s.MoveLog[n-1]
	s.MoveLog = s.MoveLog[:n-1]

	s.Board[m.Start.Row][m.Start.Col] = m.PieceMoved
	s.Board[m.End.Row][m.End.Col] = m.PieceCaptured

	s.SideToMove = s.SideToMove.Other()

	if m.PieceMoved.Kind == King {
		s.setKingSquare(m.PieceMoved.Color, m.Start)
	}

	if m.IsEnPassant {
		s.Board[m.End.Row][m.End.Col] = Empty
		s.Board[m.Start.Row][m.End.Col] = m.PieceCaptured
	}

	s.EPTargetLog = s.EPTargetLog[:len(s.EPTargetLog)-1]
	s.EPTarget = s.EPTargetLog[len(s.EPTargetLog)-1]

	s.CastleRightsLog = s.CastleRightsLog[:len(s.CastleRightsLog)-1]
	s.CastleRights = s.CastleRightsLog[len(s.CastleRightsLog)-1]

	if m.IsCastle {
		undoCastleRookMove(s, m)
	}

	s.Checkmate = false
	s.Stalemate = false
	s.Draw = false

	s.HalfmoveQuietWhite--
	s.HalfmoveQuietBlack--
}

func applyCastleRookMove(s *State, m Move) {
	row := m.End.Row
	if m.End.Col-m.Start.Col == 2 {
		rook := s.Board[row][m.End.Col+1]
		s.Board[row][m.End.Col-1] = rook
		s.Board[row][m.End.Col+1] = Empty
	} else {
		rook := s.Board[row][m.End.Col-2]
		s.Board[row][m.End.Col+1] = rook
		s.Board[row][m.End.Col-2] = Empty
	}
}

func undoCastleRookMove(s *State, m Move) {
	row := m.End.Row
	if m.End.Col-m.Start.Col == 2 {
		rook := s.Board[row][m.End.Col-1]
		s.Board[row][m.End.Col+1] = rook
		s.Board[row][m.End.Col-1] = Empty
	} else {
		rook := s.Board[row][m.End.Col+1]
		s.Board[row][m.End.Col-2] = rook
		s.Board[row][m.End.Col+1] = Empty
	}
}

// updateCastleRightsOnMove clears rights on a king move, a rook move from
// its home corner, or a capture of a rook on its home corner.
func updateCastleRightsOnMove(s *State, m Move) {
	switch {
	case m.PieceMoved.Kind == King && m.PieceMoved.Color == White:
		s.CastleRights.WhiteKingSide = false
		s.CastleRights.WhiteQueenSide = false
	case m.PieceMoved.Kind == King && m.PieceMoved.Color == Black:
		s.CastleRights.BlackKingSide = false
		s.CastleRights.BlackQueenSide = false
	}

	if m.PieceMoved.Kind == Rook {
		clearRookCornerRights(s, m.PieceMoved.Color, m.Start)
	}
	if m.PieceCaptured.Kind == Rook {
		clearRookCornerRights(s, m.PieceCaptured.Color, m.End)
	}
}

func clearRookCornerRights(s *State, c Color, sq Square) {
	homeRow := 7
	if c == Black {
		homeRow = 0
	}
	if sq.Row != homeRow {
		return
	}
	switch sq.Col {
	case 0:
		if c == White {
			s.CastleRights.WhiteQueenSide = false
		} else {
			s.CastleRights.BlackQueenSide = false
		}
	case 7:
		if c == White {
			s.CastleRights.WhiteKingSide = false
		} else {
			s.CastleRights.BlackKingSide = false
		}
	}
}
