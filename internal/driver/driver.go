// Package driver is the reference "separate worker" the core engine is
// designed to be driven by: it runs a search on a goroutine so a caller's
// own goroutine — typically a UI event loop — is never blocked, and it
// falls back to a random legal move on the rare occasion the search
// itself comes back empty.
package driver

import (
	"math/rand"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/engine"
)

// RequestMove starts engine.BestMove on its own goroutine against an
// independent copy of s (the caller retains s and must not mutate it
// concurrently with the search) and returns a channel the caller may
// either read from or simply abandon — cancellation is cooperative by
// discard, per the core's concurrency model.
func RequestMove(s *board.State, moves *board.MoveList, depth int) <-chan engine.Result {
	result := make(chan engine.Result, 1)
	stateCopy := *s
	go engine.BestMove(&stateCopy, moves, depth, result)
	return result
}

// FindRandomMove picks a uniformly random move from moves, mirroring the
// fallback a human-facing driver reaches for when BestMove comes back
// without a move. It returns the zero Move and false if moves is empty;
// per §7, the driver is expected to check IsCheckmate/IsStalemate/IsDraw
// before ever calling this, since a terminal position makes moves empty.
func FindRandomMove(moves *board.MoveList) (board.Move, bool) {
	if moves.Len() == 0 {
		return board.Move{}, false
	}
	return moves.Get(rand.Intn(moves.Len())), true
}

// PlayEngineMove requests a move at depth from the driver's worker,
// blocking until the result arrives, and falls back to a random legal
// move if the search returns none. It is a convenience wrapper for
// drivers that don't need to do other work while the search runs.
func PlayEngineMove(s *board.State, moves *board.MoveList, depth int) (board.Move, bool) {
	result := <-RequestMove(s, moves, depth)
	if result.Found {
		return result.Move, true
	}
	return FindRandomMove(moves)
}
