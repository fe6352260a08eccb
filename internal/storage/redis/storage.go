package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"seabattle/internal/model"
	"seabattle/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.MatchSummary) error {
	data, err := json.Marshal(match)
	if err != nil {
		return err
	}

	mKey := matchKey(match.ID)
	indexKey := matchesForPlayerIndexKey(match.PlayerName)

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, mKey, data, s.cfg.MatchTTL)
	pipe.SAdd(ctx, indexKey, mKey)
	if s.cfg.MatchTTL > 0 {
		pipe.Expire(ctx, indexKey, s.cfg.MatchTTL) // Keep index TTL in sync
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.MatchSummary, error) {
	data, err := s.client.Get(ctx, matchKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}

	var match model.MatchSummary
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *Storage) ListMatchesForPlayer(ctx context.Context, name string) ([]*model.MatchSummary, error) {
	indexKey := matchesForPlayerIndexKey(name)

	// Get all match keys from the index
	matchKeys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(matchKeys) == 0 {
		return []*model.MatchSummary{}, nil
	}

	// Fetch all matches in parallel using MGET
	values, err := s.client.MGet(ctx, matchKeys...).Result()
	if err != nil {
		return nil, err
	}

	matches := make([]*model.MatchSummary, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Match may have expired
		}
		var match model.MatchSummary
		if err := json.Unmarshal([]byte(val.(string)), &match); err != nil {
			continue // Skip invalid data
		}
		matches = append(matches, &match)
	}

	return matches, nil
}

// Player stats operations

func (s *Storage) SavePlayerStats(ctx context.Context, stats *model.PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	sKey := statsKey(stats.Name)
	indexKey := statsIndexKey()

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, sKey, data, s.cfg.StatsTTL)
	pipe.SAdd(ctx, indexKey, sKey)
	if s.cfg.StatsTTL > 0 {
		pipe.Expire(ctx, indexKey, s.cfg.StatsTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayerStats(ctx context.Context, name string) (*model.PlayerStats, error) {
	data, err := s.client.Get(ctx, statsKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrStatsNotFound
		}
		return nil, err
	}

	var stats model.PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Storage) ListPlayerStats(ctx context.Context) ([]*model.PlayerStats, error) {
	indexKey := statsIndexKey()

	// Get all stats keys from the index
	statsKeys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(statsKeys) == 0 {
		return []*model.PlayerStats{}, nil
	}

	// Fetch all stats in parallel using MGET
	values, err := s.client.MGet(ctx, statsKeys...).Result()
	if err != nil {
		return nil, err
	}

	result := make([]*model.PlayerStats, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Entry may have expired
		}
		var stats model.PlayerStats
		if err := json.Unmarshal([]byte(val.(string)), &stats); err != nil {
			continue // Skip invalid data
		}
		result = append(result, &stats)
	}

	return result, nil
}
