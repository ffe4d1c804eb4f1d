// Package storage persists driver-level game session history and
// aggregate win/loss/draw statistics. The core engine never touches
// disk; this package exists for the driver layer sitting above it.
package storage

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyStats         = "stats"
	keySessionIndex  = "session_index"
	sessionKeyPrefix = "session_"
)

// GameStats stores aggregate statistics across all recorded sessions.
type GameStats struct {
	GamesPlayed    int           `json:"games_played"`
	Wins           int           `json:"wins"`
	Losses         int           `json:"losses"`
	Draws          int           `json:"draws"`
	TotalPlayTime  time.Duration `json:"total_play_time"`
	LongestWinStrk int           `json:"longest_win_streak"`
	CurrentStreak  int           `json:"current_streak"`
}

// NewGameStats returns empty game statistics.
func NewGameStats() *GameStats {
	return &GameStats{}
}

// GetWinRate returns the win rate as a percentage (0-100).
func (s *GameStats) GetWinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// SessionResult is the outcome of one completed game, recorded alongside
// its move-ID sequence so a full session can be replayed later.
type SessionResult struct {
	MoveIDs  []int         `json:"move_ids"`
	Won      bool          `json:"won"`
	Draw     bool          `json:"draw"`
	Plies    int           `json:"plies"`
	Duration time.Duration `json:"duration"`
	EndedAt  time.Time     `json:"ended_at"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if necessary) a BadgerDB database at dir.
func NewStorage(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveStats saves aggregate game statistics.
func (s *Storage) SaveStats(stats *GameStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads aggregate game statistics, returning empty stats if
// none have been recorded yet.
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordSession appends result to the session history and folds it
// into the aggregate statistics.
func (s *Storage) RecordSession(result SessionResult) error {
	if err := s.appendSession(result); err != nil {
		return err
	}

	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration

	switch {
	case result.Draw:
		stats.Draws++
		stats.CurrentStreak = 0
	case result.Won:
		stats.Wins++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestWinStrk {
			stats.LongestWinStrk = stats.CurrentStreak
		}
	default:
		stats.Losses++
		stats.CurrentStreak = 0
	}

	return s.SaveStats(stats)
}

func (s *Storage) appendSession(result SessionResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		n, err := nextSessionIndex(txn)
		if err != nil {
			return err
		}
		if err := txn.Set([]byte(sessionKey(n)), data); err != nil {
			return err
		}
		return txn.Set([]byte(keySessionIndex), []byte(strconv.Itoa(n+1)))
	})
}

// Sessions returns every recorded session in the order they were saved.
func (s *Storage) Sessions() ([]SessionResult, error) {
	var sessions []SessionResult

	err := s.db.View(func(txn *badger.Txn) error {
		n, err := nextSessionIndex(txn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			item, err := txn.Get([]byte(sessionKey(i)))
			if err == badger.ErrKeyNotFound {
				continue
			}
			if err != nil {
				return err
			}
			var r SessionResult
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			}); err != nil {
				return err
			}
			sessions = append(sessions, r)
		}
		return nil
	})

	return sessions, err
}

func nextSessionIndex(txn *badger.Txn) (int, error) {
	item, err := txn.Get([]byte(keySessionIndex))
	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var n int
	err = item.Value(func(val []byte) error {
		parsed, err := strconv.Atoi(string(val))
		if err != nil {
			return err
		}
		n = parsed
		return nil
	})
	return n, err
}

func sessionKey(n int) string {
	return sessionKeyPrefix + strconv.Itoa(n)
}
