package board

// newEmptyState returns a board with no pieces, empty castling rights, and
// no en-passant target. Tests place the pieces a scenario needs and must
// set the king squares themselves via placeKing.
func newEmptyState(side Color) *State {
	return &State{
		SideToMove:      side,
		CastleRights:    CastleRights{},
		CastleRightsLog: []CastleRights{{}},
		EPTarget:        NoSquare,
		EPTargetLog:     []Square{NoSquare},
		WhiteKing:       NoSquare,
		BlackKing:       NoSquare,
	}
}

func placeKing(s *State, c Color, sq Square) {
	s.Board[sq.Row][sq.Col] = Piece{Color: c, Kind: King}
	s.setKingSquare(c, sq)
}

func place(s *State, sq Square, p Piece) {
	s.Board[sq.Row][sq.Col] = p
}

func sq(alg string) Square {
	s, err := ParseSquare(alg)
	if err != nil {
		panic(err)
	}
	return s
}
