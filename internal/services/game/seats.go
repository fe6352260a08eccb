package game

import (
	"context"

	"seabattle/internal/model"
	"seabattle/internal/services/bot"
)

// Shooter is one seat's capability to produce guesses and learn from
// their outcomes. The engine drives both seats through this interface
// without knowing which kind it holds.
type Shooter interface {
	// NextShot produces the seat's next guess. Human seats block on
	// their input source and surface rejected input as a
	// model.GuessRejectedError; strategy seats never fail.
	NextShot(ctx context.Context) (model.Coordinate, error)

	// ObserveResult feeds back the resolved outcome of the seat's own
	// shot so the seat can maintain its tracking board.
	ObserveResult(c model.Coordinate, result model.GuessResult)
}

// InputSource supplies raw guess strings for a human seat. ReadGuess
// blocks until a line is available, the source is closed, or the
// context is cancelled.
type InputSource interface {
	ReadGuess(ctx context.Context) (string, error)
}

// HumanSeat validates guesses from an external input source
type HumanSeat struct {
	input    InputSource
	tracking *model.Board
}

// NewHumanSeat creates a seat fed by the given input source
func NewHumanSeat(input InputSource, tracking *model.Board) *HumanSeat {
	return &HumanSeat{
		input:    input,
		tracking: tracking,
	}
}

// NextShot reads one raw guess and validates it against the seat's
// tracking board
func (h *HumanSeat) NextShot(ctx context.Context) (model.Coordinate, error) {
	raw, err := h.input.ReadGuess(ctx)
	if err != nil {
		return model.Coordinate{}, err
	}
	return ValidateGuess(raw, h.tracking)
}

// ObserveResult records the shot's outcome on the tracking board
func (h *HumanSeat) ObserveResult(c model.Coordinate, result model.GuessResult) {
	if result.AlreadyGuessed {
		return
	}
	h.tracking.RecordResult(c, result.Hit)
}

// BotSeat delegates guessing to an opponent strategy
type BotSeat struct {
	strategy bot.Strategy
	tracking *model.Board
}

// NewBotSeat creates a seat driven by the given strategy
func NewBotSeat(strategy bot.Strategy, tracking *model.Board) *BotSeat {
	return &BotSeat{
		strategy: strategy,
		tracking: tracking,
	}
}

// NextShot asks the strategy for its next guess
func (b *BotSeat) NextShot(ctx context.Context) (model.Coordinate, error) {
	return b.strategy.NextGuess(b.tracking), nil
}

// ObserveResult feeds the outcome into the strategy's state machine
func (b *BotSeat) ObserveResult(c model.Coordinate, result model.GuessResult) {
	b.strategy.Observe(c, result, b.tracking)
}

// Ensure both seats implement Shooter
var (
	_ Shooter = (*HumanSeat)(nil)
	_ Shooter = (*BotSeat)(nil)
)
