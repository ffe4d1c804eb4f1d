package board

import "testing"

func TestScanDetectsSliderCheck(t *testing.T) {
	s := newEmptyState(White)
	placeKing(s, White, sq("e1"))
	placeKing(s, Black, sq("a8"))
	place(s, sq("e8"), Piece{Color: Black, Kind: Rook})

	inCheck, pins, checks := Scan(s, White)
	if !inCheck {
		t.Fatalf("expected check from rook on open file")
	}
	if len(pins) != 0 {
		t.Fatalf("expected no pins, got %v", pins)
	}
	if len(checks) != 1 || checks[0].Square != sq("e8") {
		t.Fatalf("unexpected checks: %v", checks)
	}
}

func TestScanDetectsAbsolutePin(t *testing.T) {
	s := newEmptyState(White)
	placeKing(s, White, sq("e1"))
	placeKing(s, Black, sq("a8"))
	place(s, sq("e2"), Piece{Color: White, Kind: Rook})
	place(s, sq("e8"), Piece{Color: Black, Kind: Rook})

	inCheck, pins, checks := Scan(s, White)
	if inCheck {
		t.Fatalf("pinned piece blocks check, should not be in check")
	}
	if len(checks) != 0 {
		t.Fatalf("expected no checks, got %v", checks)
	}
	if len(pins) != 1 || pins[0].Square != sq("e2") {
		t.Fatalf("expected rook on e2 pinned, got %v", pins)
	}
}

func TestScanDetectsPawnCheck(t *testing.T) {
	s := newEmptyState(White)
	placeKing(s, White, sq("e1"))
	placeKing(s, Black, sq("a8"))
	place(s, sq("d2"), Piece{Color: Black, Kind: Pawn})

	inCheck, _, checks := Scan(s, White)
	if !inCheck {
		t.Fatalf("expected check from pawn on d2")
	}
	if len(checks) != 1 || checks[0].Square != sq("d2") {
		t.Fatalf("unexpected checks: %v", checks)
	}
}

func TestScanIgnoresNonAttackingPawnDiagonal(t *testing.T) {
	s := newEmptyState(White)
	placeKing(s, White, sq("e1"))
	placeKing(s, Black, sq("a8"))
	// A white pawn in the same relative squares never checks the white king.
	place(s, sq("d2"), Piece{Color: White, Kind: Pawn})

	inCheck, _, _ := Scan(s, White)
	if inCheck {
		t.Fatalf("own pawn must never check own king")
	}
}

func TestScanDetectsKnightCheck(t *testing.T) {
	s := newEmptyState(White)
	placeKing(s, White, sq("e1"))
	placeKing(s, Black, sq("a8"))
	place(s, sq("d3"), Piece{Color: Black, Kind: Knight})

	inCheck, _, checks := Scan(s, White)
	if !inCheck {
		t.Fatalf("expected check from knight on d3")
	}
	if len(checks) != 1 || checks[0].Square != sq("d3") {
		t.Fatalf("unexpected checks: %v", checks)
	}
}

func TestScanDoubleCheck(t *testing.T) {
	s := newEmptyState(White)
	placeKing(s, White, sq("e1"))
	placeKing(s, Black, sq("a8"))
	place(s, sq("e8"), Piece{Color: Black, Kind: Rook})
	place(s, sq("d3"), Piece{Color: Black, Kind: Knight})

	inCheck, _, checks := Scan(s, White)
	if !inCheck || len(checks) != 2 {
		t.Fatalf("expected double check, got inCheck=%v checks=%v", inCheck, checks)
	}
}

func TestAlongPinLineBothSenses(t *testing.T) {
	from := sq("e2")
	if !alongPinLine(from, sq("e4"), -1, 0) {
		t.Fatalf("expected e2->e4 to be along the vertical pin line")
	}
	if !alongPinLine(from, sq("e1"), -1, 0) {
		t.Fatalf("expected e2->e1, the reverse sense, to be along the pin line")
	}
	if alongPinLine(from, sq("d2"), -1, 0) {
		t.Fatalf("e2->d2 leaves the vertical pin line")
	}
}
