package storage

import (
	"context"

	"seabattle/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Match operations
	SaveMatch(ctx context.Context, match *model.MatchSummary) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.MatchSummary, error)
	ListMatchesForPlayer(ctx context.Context, name string) ([]*model.MatchSummary, error)

	// Player stats operations
	SavePlayerStats(ctx context.Context, stats *model.PlayerStats) error
	GetPlayerStats(ctx context.Context, name string) (*model.PlayerStats, error)
	ListPlayerStats(ctx context.Context) ([]*model.PlayerStats, error)
}
