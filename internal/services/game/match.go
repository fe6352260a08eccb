package game

import (
	"time"

	"seabattle/internal/model"
	"seabattle/internal/services/bot"
)

// Match bundles one game's engine with the boards and opponent
// strategy behind it, so shells can render state and build summaries.
// PlayerBoard and OpponentBoard hold the fleets; the tracking boards
// hold each side's knowledge of the other. The boards referenced here
// are the live ones driven by the engine, so reads for display should
// go through Snapshot.
type Match struct {
	Config           model.MatchConfig
	Engine           *Engine
	PlayerBoard      *model.Board
	PlayerTracking   *model.Board
	OpponentBoard    *model.Board
	OpponentTracking *model.Board
	Strategy         bot.Strategy
	StartedAt        time.Time
}

// MaxRounds bounds an autoplay loop: no strategy ever repeats a guess,
// so a match cannot outlast one guess per cell per side.
func (m *Match) MaxRounds() int {
	size := m.Config.BoardSize
	return size*size + 1
}

// Summary builds the persistent record of a finished match
func (m *Match) Summary(id model.MatchID, playerName string, finishedAt time.Time) *model.MatchSummary {
	return &model.MatchSummary{
		ID:            id,
		PlayerName:    playerName,
		Winner:        m.Engine.Winner(),
		Config:        m.Config,
		Rounds:        m.Engine.Round(),
		PlayerShots:   m.Engine.Shots(model.SeatPlayer),
		PlayerHits:    m.Engine.Hits(model.SeatPlayer),
		OpponentShots: m.Engine.Shots(model.SeatOpponent),
		OpponentHits:  m.Engine.Hits(model.SeatOpponent),
		StartedAt:     m.StartedAt,
		FinishedAt:    finishedAt,
	}
}
