package board

// generateAllPseudoLegal appends every piece-generator's output to ml. It
// assumes s.Pins has already been populated by Scan; it does not filter by
// check — that is the legality filter's job.
func generateAllPseudoLegal(s *State, side Color, ml *MoveList) {
	generatePawnMoves(s, side, ml)
	generateKnightMoves(s, side, ml)
	generateSliderMoves(s, side, ml, Bishop, rayDirections[4:8])
	generateSliderMoves(s, side, ml, Rook, rayDirections[0:4])
	generateSliderMoves(s, side, ml, Queen, rayDirections[:])
	generateKingMoves(s, side, ml)
}

func generatePawnMoves(s *State, side Color, ml *MoveList) {
	dir := -1
	startRow := 6
	if side == Black {
		dir = 1
		startRow = 1
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			from := Square{Row: row, Col: col}
			p := s.PieceAt(from)
			if p.Kind != Pawn || p.Color != side {
				continue
			}

			pinDR, pinDC, pinned := pinDirection(s.Pins, from)
			allowed := func(to Square) bool {
				return !pinned || alongPinLine(from, to, pinDR, pinDC)
			}

			// Single push.
			one := from.Add(dir, 0)
			if one.IsValid() && s.PieceAt(one).IsEmpty() {
				if allowed(one) {
					ml.Add(NewMove(from, one, p, Empty))
				}
				// Double push, only from the starting row, only if both
				// squares are empty.
				if row == startRow {
					two := from.Add(2*dir, 0)
					if two.IsValid() && s.PieceAt(two).IsEmpty() && allowed(two) {
						ml.Add(NewMove(from, two, p, Empty))
					}
				}
			}

			// Diagonal captures.
			for _, dc := range []int{-1, 1} {
				to := from.Add(dir, dc)
				if !to.IsValid() || !allowed(to) {
					continue
				}
				target := s.PieceAt(to)
				if !target.IsEmpty() && target.Color != side {
					ml.Add(NewMove(from, to, p, target))
					continue
				}
				if to == s.EPTarget && enPassantLegal(s, from, to, side) {
					m := NewMove(from, to, p, Piece{Color: side.Other(), Kind: Pawn})
					m.IsEnPassant = true
					ml.Add(m)
				}
			}
		}
	}
}

// enPassantLegal implements the discovered-check guard: if the capturing
// pawn's king shares a row with the captured pawn, the rest of that row
// (excluding both pawns) must not expose the king to an enemy rook or queen.
func enPassantLegal(s *State, from, to Square, side Color) bool {
	capturedCol := to.Col
	king := s.KingSquare(side)
	if king.Row != from.Row {
		return true
	}

	loCol, hiCol := from.Col, capturedCol
	if loCol > hiCol {
		loCol, hiCol = hiCol, loCol
	}

	var direction int
	switch {
	case king.Col < loCol:
		direction = 1
	case king.Col > hiCol:
		direction = -1
	default:
		return true
	}

	for col := king.Col + direction; col >= 0 && col < 8; col += direction {
		if col == from.Col || col == capturedCol {
			continue
		}
		p := s.Board[king.Row][col]
		if p.IsEmpty() {
			continue
		}
		if p.Color != side && (p.Kind == Rook || p.Kind == Queen) {
			return false
		}
		return true
	}
	return true
}

func generateKnightMoves(s *State, side Color, ml *MoveList) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			from := Square{Row: row, Col: col}
			p := s.PieceAt(from)
			if p.Kind != Knight || p.Color != side {
				continue
			}
			if _, _, pinned := pinDirection(s.Pins, from); pinned {
				// A pinned knight has no legal destination at all.
				continue
			}
			for _, off := range knightOffsets {
				to := from.Add(off[0], off[1])
				if !to.IsValid() {
					continue
				}
				target := s.PieceAt(to)
				if target.IsEmpty() || target.Color != side {
					ml.Add(NewMove(from, to, p, target))
				}
			}
		}
	}
}

func generateSliderMoves(s *State, side Color, ml *MoveList, kind Kind, dirs [][2]int) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			from := Square{Row: row, Col: col}
			p := s.PieceAt(from)
			if p.Kind != kind || p.Color != side {
				continue
			}

			pinDR, pinDC, pinned := pinDirection(s.Pins, from)

			for _, d := range dirs {
				for dist := 1; dist < 8; dist++ {
					to := from.Add(d[0]*dist, d[1]*dist)
					if !to.IsValid() {
						break
					}
					if pinned && !alongPinLine(from, to, pinDR, pinDC) {
						// Sliding further away from the pin line only gets
						// worse; skip the whole ray.
						break
					}
					target := s.PieceAt(to)
					if target.IsEmpty() {
						ml.Add(NewMove(from, to, p, Empty))
						continue
					}
					if target.Color != side {
						ml.Add(NewMove(from, to, p, target))
					}
					break
				}
			}
		}
	}
}

func generateKingMoves(s *State, side Color, ml *MoveList) {
	from := s.KingSquare(side)
	p := s.PieceAt(from)

	for _, d := range rayDirections {
		to := from.Add(d[0], d[1])
		if !to.IsValid() {
			continue
		}
		target := s.PieceAt(to)
		if !target.IsEmpty() && target.Color == side {
			continue
		}

		// Temporarily move the king and rerun the scanner, per the spec's
		// chosen self-check test for king moves.
		s.Board[from.Row][from.Col] = Empty
		captured := s.Board[to.Row][to.Col]
		s.Board[to.Row][to.Col] = p
		s.setKingSquare(side, to)

		inCheck, _, _ := Scan(s, side)

		s.Board[to.Row][to.Col] = captured
		s.Board[from.Row][from.Col] = p
		s.setKingSquare(side, from)

		if !inCheck {
			ml.Add(NewMove(from, to, p, target))
		}
	}
}
