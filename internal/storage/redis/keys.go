package redis

import (
	"fmt"

	"seabattle/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "seabattle"

// Key generation functions for each entity type

// matchKey returns the Redis key for a MatchSummary
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchesForPlayerIndexKey returns the Redis key for the SET of a player's matches
func matchesForPlayerIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:matches_for_player:%s", keyPrefix, name)
}

// statsKey returns the Redis key for a player's PlayerStats
func statsKey(name string) string {
	return fmt.Sprintf("%s:stats:%s", keyPrefix, name)
}

// statsIndexKey returns the Redis key for the SET of all stats keys
func statsIndexKey() string {
	return fmt.Sprintf("%s:idx:stats", keyPrefix)
}
