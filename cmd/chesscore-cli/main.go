// Command chesscore-cli is a minimal text driver for the embedding API:
// it prints the board, reads moves in start/end square notation from
// stdin, and answers with a reply computed on a worker goroutine so the
// input loop is never blocked. It persists a session summary and the
// running win/loss/draw tally to a BadgerDB store on game conclusion.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/driver"
	"github.com/hailam/chesscore/internal/engine"
	"github.com/hailam/chesscore/internal/storage"
)

func main() {
	depth := flag.Int("depth", engine.DefaultDepth, "search depth for the engine's replies")
	dbPath := flag.String("db", "", "path to the BadgerDB session-history store (default: OS data dir)")
	flag.Parse()

	dir := *dbPath
	if dir == "" {
		var err error
		dir, err = storage.GetDatabaseDir()
		if err != nil {
			log.Fatalf("could not resolve database directory: %v", err)
		}
	}

	store, err := storage.NewStorage(dir)
	if err != nil {
		log.Fatalf("could not open session store at %s: %v", dir, err)
	}
	defer store.Close()

	log.Printf("session store opened at %s", dir)

	s := engine.NewGame()
	start := time.Now()

	fmt.Println(s)
	fmt.Println("enter moves as start/end squares, e.g. e2e4. White moves first.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		moves := engine.LegalMoves(s)
		if terminal(s) {
			break
		}

		if s.SideToMove == board.White {
			fmt.Print("your move> ")
			if !scanner.Scan() {
				break
			}
			m, ok := parseMove(strings.TrimSpace(scanner.Text()), moves)
			if !ok {
				fmt.Println("not a legal move, try again")
				continue
			}
			engine.Make(s, m, promptPromotion(scanner))
		} else {
			log.Printf("searching at depth %d...", *depth)
			result := <-driver.RequestMove(s, moves, *depth)
			if !result.Found {
				break
			}
			engine.Make(s, result.Move, nil)
			fmt.Printf("engine plays %s\n", result.Move.ToChessNotation())
		}

		fmt.Println(s)
	}

	if terminal(s) {
		recordSession(store, s, start)
	}
}

func terminal(s *board.State) bool {
	return s.Checkmate || s.Stalemate || s.Draw
}

func parseMove(input string, moves *board.MoveList) (board.Move, bool) {
	if len(input) < 4 {
		return board.Move{}, false
	}
	start, err := board.ParseSquare(input[0:2])
	if err != nil {
		return board.Move{}, false
	}
	end, err := board.ParseSquare(input[2:4])
	if err != nil {
		return board.Move{}, false
	}
	for _, m := range moves.Slice() {
		if m.Start == start && m.End == end {
			return m, true
		}
	}
	return board.Move{}, false
}

// promptPromotion returns a PromotionChooser that reads a single piece
// letter from scanner, re-prompting the user until it parses. If input
// ends first, it returns Queen.
func promptPromotion(scanner *bufio.Scanner) engine.PromotionChooser {
	return func() board.Kind {
		for {
			fmt.Print("promote to (Q/N/B/R)> ")
			if !scanner.Scan() {
				return board.Queen
			}
			switch strings.ToUpper(strings.TrimSpace(scanner.Text())) {
			case "Q":
				return board.Queen
			case "N":
				return board.Knight
			case "B":
				return board.Bishop
			case "R":
				return board.Rook
			}
		}
	}
}

func recordSession(store *storage.Storage, s *board.State, start time.Time) {
	moveIDs := make([]int, len(s.MoveLog))
	for i, m := range s.MoveLog {
		moveIDs[i] = m.ID()
	}

	result := storage.SessionResult{
		MoveIDs:  moveIDs,
		Won:      s.Checkmate && s.SideToMove == board.Black, // White is the human in this driver
		Draw:     s.Stalemate || s.Draw,
		Plies:    len(s.MoveLog),
		Duration: time.Since(start),
		EndedAt:  time.Now(),
	}

	switch {
	case s.Checkmate:
		fmt.Printf("checkmate, %s wins\n", s.SideToMove.Other())
	case s.Stalemate:
		fmt.Println("stalemate")
	case s.Draw:
		fmt.Println("draw")
	}

	if err := store.RecordSession(result); err != nil {
		log.Printf("could not record session: %v", err)
	}
}
