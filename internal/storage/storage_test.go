package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "db")
	st, err := NewStorage(dir)
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestNewGameStats(t *testing.T) {
	stats := NewGameStats()
	if stats.GamesPlayed != 0 {
		t.Errorf("expected 0 games played")
	}
	if stats.GetWinRate() != 0 {
		t.Errorf("expected 0 win rate")
	}
}

func TestWinRate(t *testing.T) {
	stats := &GameStats{GamesPlayed: 10, Wins: 5, Losses: 3, Draws: 2}
	if rate := stats.GetWinRate(); rate != 50 {
		t.Errorf("expected 50%% win rate, got %.2f%%", rate)
	}
}

func TestLoadStatsWithNoHistoryReturnsEmpty(t *testing.T) {
	st := newTestStorage(t)

	stats, err := st.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.GamesPlayed != 0 {
		t.Errorf("expected no games recorded yet")
	}
}

func TestRecordSessionUpdatesAggregateStats(t *testing.T) {
	st := newTestStorage(t)

	win := SessionResult{MoveIDs: []int{101, 202}, Won: true, Plies: 2, Duration: time.Minute}
	if err := st.RecordSession(win); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}

	loss := SessionResult{MoveIDs: []int{303}, Won: false, Plies: 1, Duration: 30 * time.Second}
	if err := st.RecordSession(loss); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}

	draw := SessionResult{MoveIDs: []int{404, 505, 606}, Draw: true, Plies: 3}
	if err := st.RecordSession(draw); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}

	stats, err := st.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.GamesPlayed != 3 {
		t.Errorf("expected 3 games played, got %d", stats.GamesPlayed)
	}
	if stats.Wins != 1 || stats.Losses != 1 || stats.Draws != 1 {
		t.Errorf("expected 1 win, 1 loss, 1 draw, got %+v", stats)
	}
	if stats.CurrentStreak != 0 {
		t.Errorf("current streak should reset to 0 after the trailing draw, got %d", stats.CurrentStreak)
	}
}

func TestRecordSessionTracksWinStreak(t *testing.T) {
	st := newTestStorage(t)

	for i := 0; i < 3; i++ {
		if err := st.RecordSession(SessionResult{Won: true}); err != nil {
			t.Fatalf("RecordSession failed: %v", err)
		}
	}

	stats, err := st.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.CurrentStreak != 3 || stats.LongestWinStrk != 3 {
		t.Errorf("expected a streak of 3, got current=%d longest=%d", stats.CurrentStreak, stats.LongestWinStrk)
	}
}

func TestSessionsReturnsInOrder(t *testing.T) {
	st := newTestStorage(t)

	for i := 0; i < 3; i++ {
		if err := st.RecordSession(SessionResult{MoveIDs: []int{i}}); err != nil {
			t.Fatalf("RecordSession failed: %v", err)
		}
	}

	sessions, err := st.Sessions()
	if err != nil {
		t.Fatalf("Sessions failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
	for i, s := range sessions {
		if len(s.MoveIDs) != 1 || s.MoveIDs[0] != i {
			t.Errorf("session %d: expected move id %d, got %v", i, i, s.MoveIDs)
		}
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("data directory was not created: %s", dataDir)
	}
}
