package leaderboard

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// MemoryStore keeps the leaderboard in process.
type MemoryStore struct {
	entries []Entry
	mu      sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Submit(_ context.Context, e Entry) (bool, error) {
	if e.PlayerID == "" {
		return false, ErrEmptyPlayerID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.entries, func(x Entry) bool { return x.PlayerID == e.PlayerID })
	if i >= 0 {
		if e.CalculatedScore.LessThan(s.entries[i].CalculatedScore) {
			slog.Debug("leaderboard score not improved", "player", e.PlayerID, "score", e.CalculatedScore.String())
			return false, nil
		}
		s.entries = slices.Delete(s.entries, i, i+1)
	}

	pos, _ := slices.BinarySearchFunc(s.entries, e, func(x, target Entry) int {
		if ranksAbove(x, target) {
			return -1
		}
		return 1
	})
	if pos >= MaxEntries {
		return false, nil
	}
	s.entries = slices.Insert(s.entries, pos, e)
	if len(s.entries) > MaxEntries {
		s.entries = s.entries[:MaxEntries]
	}
	return true, nil
}

func (s *MemoryStore) Top(_ context.Context, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := min(normalizeLimit(limit), len(s.entries))
	out := make([]Entry, n)
	copy(out, s.entries[:n])
	return out, nil
}

func (s *MemoryStore) Rank(_ context.Context, playerID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.IndexFunc(s.entries, func(x Entry) bool { return x.PlayerID == playerID }) + 1, nil
}
