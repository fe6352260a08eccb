package response

import (
	"time"

	"seabattle/internal/model"
	"seabattle/internal/render"
	"seabattle/internal/services/match"
)

// MatchState represents a match snapshot in API responses. Grids are
// serialized as one glyph string per row; the tracking grid shows only
// what the player has learned about the opponent's waters.
type MatchState struct {
	ID                string            `json:"id"`
	PlayerName        string            `json:"player_name"`
	Phase             string            `json:"phase"`
	Winner            string            `json:"winner,omitempty"`
	Round             int               `json:"round"`
	Config            model.MatchConfig `json:"config"`
	PlayerShots       int               `json:"player_shots"`
	PlayerHits        int               `json:"player_hits"`
	OpponentShots     int               `json:"opponent_shots"`
	OpponentHits      int               `json:"opponent_hits"`
	PlayerRemaining   int               `json:"player_remaining"`
	OpponentRemaining int               `json:"opponent_remaining"`
	BotMode           string            `json:"bot_mode"`
	PlayerGrid        []string          `json:"player_grid"`
	TrackingGrid      []string          `json:"tracking_grid"`
	StartedAt         time.Time         `json:"started_at"`
}

// MatchStateFromView converts a match.View to a response MatchState
func MatchStateFromView(v *match.View) MatchState {
	return MatchState{
		ID:                string(v.ID),
		PlayerName:        v.PlayerName,
		Phase:             string(v.Phase),
		Winner:            string(v.Winner),
		Round:             v.Round,
		Config:            v.Config,
		PlayerShots:       v.PlayerShots,
		PlayerHits:        v.PlayerHits,
		OpponentShots:     v.OpponentShots,
		OpponentHits:      v.OpponentHits,
		PlayerRemaining:   v.PlayerRemaining,
		OpponentRemaining: v.OpponentRemaining,
		BotMode:           string(v.BotMode),
		PlayerGrid:        render.Rows(v.PlayerGrid),
		TrackingGrid:      render.Rows(v.TrackingGrid),
		StartedAt:         v.StartedAt,
	}
}

// Shot represents one resolved shot in API responses
type Shot struct {
	Seat  string `json:"seat"`
	Coord string `json:"coord"`
	Hit   bool   `json:"hit"`
	Sunk  bool   `json:"sunk"`
}

// ShotResult is the response after firing a shot: the full round that
// the shot triggered plus the post-round match snapshot
type ShotResult struct {
	Round    int        `json:"round"`
	Shots    []Shot     `json:"shots"`
	Finished bool       `json:"finished"`
	Winner   string     `json:"winner,omitempty"`
	Match    MatchState `json:"match"`
}

// ShotResultFromOutcome converts a match.ShotOutcome to a ShotResult
func ShotResultFromOutcome(o *match.ShotOutcome) ShotResult {
	size := o.View.Config.BoardSize

	shots := make([]Shot, len(o.Report.Shots))
	for i, s := range o.Report.Shots {
		shots[i] = Shot{
			Seat:  string(s.Seat),
			Coord: model.FormatCoordinate(s.Coord, size),
			Hit:   s.Result.Hit,
			Sunk:  s.Result.Sunk,
		}
	}

	return ShotResult{
		Round:    o.Report.Round,
		Shots:    shots,
		Finished: o.Report.Finished,
		Winner:   string(o.Report.Winner),
		Match:    MatchStateFromView(o.View),
	}
}

// LeaderboardEntry represents one player's standing
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	Name         string  `json:"name"`
	Games        int     `json:"games"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	Accuracy     float64 `json:"accuracy"`
	BestWinShots int     `json:"best_win_shots,omitempty"`
}

// Leaderboard is the standings response
type Leaderboard struct {
	Players []LeaderboardEntry `json:"players"`
}

// LeaderboardFromStats converts ranked stats to a Leaderboard
func LeaderboardFromStats(stats []*model.PlayerStats) Leaderboard {
	players := make([]LeaderboardEntry, len(stats))
	for i, s := range stats {
		players[i] = LeaderboardEntry{
			Rank:         i + 1,
			Name:         s.Name,
			Games:        s.Games,
			Wins:         s.Wins,
			Losses:       s.Losses,
			Accuracy:     s.Accuracy(),
			BestWinShots: s.BestWinShots,
		}
	}
	return Leaderboard{Players: players}
}

// MatchSummary represents one recorded match in API responses
type MatchSummary struct {
	ID          string    `json:"id"`
	Winner      string    `json:"winner"`
	Rounds      int       `json:"rounds"`
	PlayerShots int       `json:"player_shots"`
	PlayerHits  int       `json:"player_hits"`
	FinishedAt  time.Time `json:"finished_at"`
}

// PlayerStats is the per-player stats response, including the
// player's recorded matches most recent first
type PlayerStats struct {
	Name         string         `json:"name"`
	Games        int            `json:"games"`
	Wins         int            `json:"wins"`
	Losses       int            `json:"losses"`
	Shots        int            `json:"shots"`
	Hits         int            `json:"hits"`
	Accuracy     float64        `json:"accuracy"`
	BestWinShots int            `json:"best_win_shots,omitempty"`
	Matches      []MatchSummary `json:"matches"`
}

// PlayerStatsFromModel converts stats and match history to a response
func PlayerStatsFromModel(stats *model.PlayerStats, matches []*model.MatchSummary) PlayerStats {
	history := make([]MatchSummary, len(matches))
	for i, m := range matches {
		history[i] = MatchSummary{
			ID:          string(m.ID),
			Winner:      string(m.Winner),
			Rounds:      m.Rounds,
			PlayerShots: m.PlayerShots,
			PlayerHits:  m.PlayerHits,
			FinishedAt:  m.FinishedAt,
		}
	}

	return PlayerStats{
		Name:         stats.Name,
		Games:        stats.Games,
		Wins:         stats.Wins,
		Losses:       stats.Losses,
		Shots:        stats.Shots,
		Hits:         stats.Hits,
		Accuracy:     stats.Accuracy(),
		BestWinShots: stats.BestWinShots,
		Matches:      history,
	}
}
