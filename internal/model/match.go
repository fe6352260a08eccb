package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// Seat identifies one side of a match
type Seat string

const (
	// SeatPlayer is the side driven by the shell (human input or autoplay)
	SeatPlayer Seat = "player"
	// SeatOpponent is the side driven by the opponent strategy
	SeatOpponent Seat = "opponent"
)

// Board size limits. The lower bound comes from the rules; the upper
// bound keeps grid allocation sane for untrusted configuration.
const (
	MinBoardSize = 1
	MaxBoardSize = 100
)

// MatchConfig holds the setup parameters for one match
type MatchConfig struct {
	BoardSize  int    `json:"board_size"`
	ShipCount  int    `json:"ship_count"`
	ShipLength int    `json:"ship_length"`
	Seed       *int64 `json:"seed,omitempty"` // deterministic placement and opponent play when set
}

// DefaultMatchConfig returns the standard 10x10 setup
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		BoardSize:  10,
		ShipCount:  5,
		ShipLength: 3,
	}
}

// Validate checks the configuration bounds. Feasibility of placement is
// not checked here; infeasible setups fail with a PlacementError.
func (c MatchConfig) Validate() error {
	if c.BoardSize < MinBoardSize || c.BoardSize > MaxBoardSize {
		return ErrInvalidMatchConfig
	}
	if c.ShipCount < 0 || c.ShipLength < 0 {
		return ErrInvalidMatchConfig
	}
	return nil
}

// MatchSummary is the persisted record of one finished match
type MatchSummary struct {
	ID            MatchID     `json:"id"`
	PlayerName    string      `json:"player_name"`
	Winner        Seat        `json:"winner"`
	Config        MatchConfig `json:"config"`
	Rounds        int         `json:"rounds"`
	PlayerShots   int         `json:"player_shots"`
	PlayerHits    int         `json:"player_hits"`
	OpponentShots int         `json:"opponent_shots"`
	OpponentHits  int         `json:"opponent_hits"`
	StartedAt     time.Time   `json:"started_at"`
	FinishedAt    time.Time   `json:"finished_at"`
}

// PlayerStats aggregates a player's results across matches
type PlayerStats struct {
	Name         string    `json:"name"`
	Games        int       `json:"games"`
	Wins         int       `json:"wins"`
	Losses       int       `json:"losses"`
	Shots        int       `json:"shots"`
	Hits         int       `json:"hits"`
	BestWinShots int       `json:"best_win_shots"` // fewest shots in a won match, 0 if no wins
	UpdatedAt    time.Time `json:"updated_at"`
}

// Accuracy returns the player's lifetime hit rate in [0, 1]
func (p PlayerStats) Accuracy() float64 {
	if p.Shots == 0 {
		return 0
	}
	return float64(p.Hits) / float64(p.Shots)
}
