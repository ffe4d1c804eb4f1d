package engine

import (
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

func newTestState(side board.Color) *board.State {
	return &board.State{
		SideToMove:      side,
		EPTarget:        board.NoSquare,
		EPTargetLog:     []board.Square{board.NoSquare},
		CastleRightsLog: []board.CastleRights{{}},
	}
}

func place(s *board.State, alg string, p board.Piece) {
	sq, _ := board.ParseSquare(alg)
	s.Board[sq.Row][sq.Col] = p
	if p.Kind == board.King {
		if p.Color == board.White {
			s.WhiteKing = sq
		} else {
			s.BlackKing = sq
		}
	}
}

func TestBestMoveFindsUndefendedQueenCapture(t *testing.T) {
	s := newTestState(board.White)
	place(s, "e1", board.Piece{Color: board.White, Kind: board.King})
	place(s, "h8", board.Piece{Color: board.Black, Kind: board.King})
	place(s, "c4", board.Piece{Color: board.White, Kind: board.Bishop})
	place(s, "f7", board.Piece{Color: board.Black, Kind: board.Queen})

	ch := make(chan Result, 1)
	moves := LegalMoves(s)
	BestMove(s, moves, 2, ch)
	result := <-ch

	if !result.Found {
		t.Fatalf("expected a move to be found")
	}
	if result.Move.Start.String() != "c4" || result.Move.End.String() != "f7" {
		t.Fatalf("expected Bxf7, got %s%s", result.Move.Start, result.Move.End)
	}
}

func TestBestMoveLeavesStateUnchanged(t *testing.T) {
	s := NewGame()
	moves := LegalMoves(s)
	before := s.Board

	ch := make(chan Result, 1)
	BestMove(s, moves, 2, ch)
	<-ch

	if s.Board != before {
		t.Fatalf("BestMove must restore the board via paired make/undo")
	}
}

func TestBestMoveAtTerminalPositionReturnsNotFound(t *testing.T) {
	s := newTestState(board.Black)
	place(s, "a8", board.Piece{Color: board.Black, Kind: board.King})
	place(s, "a6", board.Piece{Color: board.White, Kind: board.King})
	place(s, "b6", board.Piece{Color: board.White, Kind: board.Queen})

	moves := LegalMoves(s) // stalemate: zero legal moves
	if moves.Len() != 0 {
		t.Fatalf("expected the setup position to be stalemate, got %d moves", moves.Len())
	}

	ch := make(chan Result, 1)
	BestMove(s, moves, DefaultDepth, ch)
	result := <-ch

	if result.Found {
		t.Fatalf("expected no move to be found at a terminal position")
	}
}
