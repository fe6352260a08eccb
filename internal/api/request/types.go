package request

import "seabattle/internal/model"

// CreateMatchRequest is the request body for creating a match.
// Omitted or zero numeric fields fall back to the default setup.
type CreateMatchRequest struct {
	BoardSize  int    `json:"board_size,omitempty"`
	ShipCount  int    `json:"ship_count,omitempty"`
	ShipLength int    `json:"ship_length,omitempty"`
	PlayerName string `json:"player_name,omitempty"`
	Seed       *int64 `json:"seed,omitempty"`
}

// MatchConfig builds the match configuration, filling unset fields
// from the defaults
func (r CreateMatchRequest) MatchConfig() model.MatchConfig {
	cfg := model.DefaultMatchConfig()
	if r.BoardSize != 0 {
		cfg.BoardSize = r.BoardSize
	}
	if r.ShipCount != 0 {
		cfg.ShipCount = r.ShipCount
	}
	if r.ShipLength != 0 {
		cfg.ShipLength = r.ShipLength
	}
	cfg.Seed = r.Seed
	return cfg
}

// ShotRequest is the request body for firing a shot
type ShotRequest struct {
	Coord string `json:"coord"`
}
