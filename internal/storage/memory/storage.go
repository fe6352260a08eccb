package memory

import (
	"context"
	"sync"

	"seabattle/internal/model"
	"seabattle/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	matches     map[model.MatchID]*model.MatchSummary
	playerIndex map[string][]model.MatchID
	stats       map[string]*model.PlayerStats
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		matches:     make(map[model.MatchID]*model.MatchSummary),
		playerIndex: make(map[string][]model.MatchID),
		stats:       make(map[string]*model.PlayerStats),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.MatchSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[match.ID]; !ok {
		s.playerIndex[match.PlayerName] = append(s.playerIndex[match.PlayerName], match.ID)
	}
	s.matches[match.ID] = match
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.MatchSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return match, nil
}

func (s *Storage) ListMatchesForPlayer(ctx context.Context, name string) ([]*model.MatchSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []*model.MatchSummary
	for _, id := range s.playerIndex[name] {
		if match, ok := s.matches[id]; ok {
			matches = append(matches, match)
		}
	}
	return matches, nil
}

// Player stats operations

func (s *Storage) SavePlayerStats(ctx context.Context, stats *model.PlayerStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[stats.Name] = stats
	return nil
}

func (s *Storage) GetPlayerStats(ctx context.Context, name string) (*model.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.stats[name]
	if !ok {
		return nil, model.ErrStatsNotFound
	}
	return stats, nil
}

func (s *Storage) ListPlayerStats(ctx context.Context) ([]*model.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.PlayerStats, 0, len(s.stats))
	for _, stats := range s.stats {
		result = append(result, stats)
	}
	return result, nil
}
