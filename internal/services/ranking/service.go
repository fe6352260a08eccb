package ranking

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"seabattle/internal/dependencies/clock"
	"seabattle/internal/dependencies/random"
	"seabattle/internal/model"
	"seabattle/internal/storage"
)

const (
	// MatchIDLength is the length of generated match IDs
	MatchIDLength = 12
	// MatchIDAlphabet is the characters used in match IDs
	MatchIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Service persists finished matches and maintains the leaderboard
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new RankingService
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "ranking-service")),
	}
}

// RecordMatch saves the finished match and folds its counters into the
// player's aggregate stats. A summary without an ID gets one assigned;
// a zero FinishedAt is stamped from the clock.
func (s *Service) RecordMatch(ctx context.Context, summary *model.MatchSummary) error {
	if summary.ID == "" {
		summary.ID = model.MatchID(s.random.String(MatchIDLength, MatchIDAlphabet))
	}
	if summary.FinishedAt.IsZero() {
		summary.FinishedAt = s.clock.Now()
	}

	if err := s.storage.SaveMatch(ctx, summary); err != nil {
		return err
	}

	stats, err := s.storage.GetPlayerStats(ctx, summary.PlayerName)
	if err != nil {
		if !errors.Is(err, model.ErrStatsNotFound) {
			return err
		}
		stats = &model.PlayerStats{Name: summary.PlayerName}
	}

	stats.Games++
	stats.Shots += summary.PlayerShots
	stats.Hits += summary.PlayerHits
	if summary.Winner == model.SeatPlayer {
		stats.Wins++
		if stats.BestWinShots == 0 || summary.PlayerShots < stats.BestWinShots {
			stats.BestWinShots = summary.PlayerShots
		}
	} else {
		stats.Losses++
	}
	stats.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayerStats(ctx, stats); err != nil {
		return err
	}

	s.logger.Info("match recorded",
		slog.String("match_id", string(summary.ID)),
		slog.String("player", summary.PlayerName),
		slog.String("winner", string(summary.Winner)),
		slog.Int("rounds", summary.Rounds),
	)

	return nil
}

// Standings returns the leaderboard ordered by wins, then accuracy,
// then name. A limit of 0 returns all players.
func (s *Service) Standings(ctx context.Context, limit int) ([]*model.PlayerStats, error) {
	all, err := s.storage.ListPlayerStats(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Wins != all[j].Wins {
			return all[i].Wins > all[j].Wins
		}
		if all[i].Accuracy() != all[j].Accuracy() {
			return all[i].Accuracy() > all[j].Accuracy()
		}
		return all[i].Name < all[j].Name
	})

	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// PlayerStats retrieves one player's aggregate stats
func (s *Service) PlayerStats(ctx context.Context, name string) (*model.PlayerStats, error) {
	return s.storage.GetPlayerStats(ctx, name)
}

// Match retrieves one recorded match by ID
func (s *Service) Match(ctx context.Context, id model.MatchID) (*model.MatchSummary, error) {
	return s.storage.GetMatch(ctx, id)
}

// MatchesForPlayer returns a player's recorded matches, most recent first
func (s *Service) MatchesForPlayer(ctx context.Context, name string) ([]*model.MatchSummary, error) {
	matches, err := s.storage.ListMatchesForPlayer(ctx, name)
	if err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].FinishedAt.After(matches[j].FinishedAt)
	})
	return matches, nil
}
