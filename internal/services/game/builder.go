package game

import (
	"log/slog"

	"seabattle/internal/dependencies/clock"
	"seabattle/internal/dependencies/random"
	"seabattle/internal/model"
	"seabattle/internal/services/bot"
	"seabattle/internal/services/fleet"
)

// Builder assembles ready-to-play matches: boards with placed fleets,
// seats, and the engine driving them
type Builder struct {
	random random.Random
	clock  clock.Clock
	logger *slog.Logger
}

// NewBuilder creates a match Builder
func NewBuilder(rnd random.Random, clk clock.Clock, logger *slog.Logger) *Builder {
	return &Builder{
		random: rnd,
		clock:  clk,
		logger: logger,
	}
}

// NewMatch builds a human-vs-strategy match fed by the given input
// source. Setup failures (bad config, exhausted placement) propagate;
// a half-built match is never returned.
func (b *Builder) NewMatch(cfg model.MatchConfig, input InputSource) (*Match, error) {
	return b.build(cfg, func(_ random.Random, tracking *model.Board) Shooter {
		return NewHumanSeat(input, tracking)
	})
}

// NewAutoMatch builds a strategy-vs-strategy match for simulations.
// Both seats run their own hunt/target strategy.
func (b *Builder) NewAutoMatch(cfg model.MatchConfig) (*Match, error) {
	return b.build(cfg, func(rnd random.Random, tracking *model.Board) Shooter {
		return NewBotSeat(bot.NewHuntTarget(rnd), tracking)
	})
}

func (b *Builder) build(cfg model.MatchConfig, playerSeat func(random.Random, *model.Board) Shooter) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// A seed switches placement and strategy draws to one reproducible
	// source for the whole match
	rnd := b.random
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	placer := fleet.New(rnd, b.logger)

	playerBoard := model.NewBoard(cfg.BoardSize)
	if err := placer.PlaceFleet(playerBoard, cfg.ShipCount, cfg.ShipLength); err != nil {
		return nil, err
	}

	opponentBoard := model.NewBoard(cfg.BoardSize)
	if err := placer.PlaceFleet(opponentBoard, cfg.ShipCount, cfg.ShipLength); err != nil {
		return nil, err
	}

	playerTracking := model.NewBoard(cfg.BoardSize)
	opponentTracking := model.NewBoard(cfg.BoardSize)

	strategy := bot.NewHuntTarget(rnd)
	player := playerSeat(rnd, playerTracking)
	opponent := NewBotSeat(strategy, opponentTracking)

	engine := NewEngine(player, playerBoard, opponent, opponentBoard, b.logger)

	return &Match{
		Config:           cfg,
		Engine:           engine,
		PlayerBoard:      playerBoard,
		PlayerTracking:   playerTracking,
		OpponentBoard:    opponentBoard,
		OpponentTracking: opponentTracking,
		Strategy:         strategy,
		StartedAt:        b.clock.Now(),
	}, nil
}
