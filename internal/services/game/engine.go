package game

import (
	"context"
	"log/slog"

	"seabattle/internal/model"
)

// Phase is the lifecycle state of a match
type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseFinished   Phase = "finished"
)

// ShotReport describes one resolved shot
type ShotReport struct {
	Seat   model.Seat
	Coord  model.Coordinate
	Result model.GuessResult
}

// RoundReport describes the outcome of one full round
type RoundReport struct {
	Round    int
	Shots    []ShotReport
	Finished bool
	Winner   model.Seat
}

// Engine sequences a match between two seats. Each round the player
// seat fires at the opponent's fleet, then the opponent seat fires
// back, with an end check after each resolution. The engine is
// single-threaded; callers that share a match across goroutines must
// serialize access themselves.
type Engine struct {
	playerShooter   Shooter
	playerBoard     *model.Board
	opponentShooter Shooter
	opponentBoard   *model.Board

	round  int
	phase  Phase
	winner model.Seat
	shots  map[model.Seat]int
	hits   map[model.Seat]int

	logger *slog.Logger
}

// NewEngine creates an engine over two seats and their fleet boards.
// Each seat fires at the other side's board.
func NewEngine(
	playerShooter Shooter,
	playerBoard *model.Board,
	opponentShooter Shooter,
	opponentBoard *model.Board,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		playerShooter:   playerShooter,
		playerBoard:     playerBoard,
		opponentShooter: opponentShooter,
		opponentBoard:   opponentBoard,
		phase:           PhaseInProgress,
		shots:           make(map[model.Seat]int),
		hits:            make(map[model.Seat]int),
		logger:          logger.With(slog.String("component", "turn-engine")),
	}
}

// Phase returns the match lifecycle state
func (e *Engine) Phase() Phase {
	return e.phase
}

// Winner returns the winning seat once the match is finished
func (e *Engine) Winner() model.Seat {
	return e.winner
}

// Round returns the number of completed rounds
func (e *Engine) Round() int {
	return e.round
}

// Shots returns how many shots the seat has fired
func (e *Engine) Shots(seat model.Seat) int {
	return e.shots[seat]
}

// Hits returns how many of the seat's shots have hit
func (e *Engine) Hits(seat model.Seat) int {
	return e.hits[seat]
}

// PlayRound runs one full round: player shot, resolution, end check,
// opponent shot, resolution, end check. The player's coordinate is
// obtained before anything mutates, so a rejected guess or cancelled
// input returns an error with the match state untouched and the round
// not advanced. Victory is declared the moment the final ship sinks;
// the losing side gets no reply shot.
func (e *Engine) PlayRound(ctx context.Context) (*RoundReport, error) {
	if e.phase == PhaseFinished {
		return nil, model.ErrMatchFinished
	}

	coord, err := e.playerShooter.NextShot(ctx)
	if err != nil {
		return nil, err
	}

	e.round++
	report := &RoundReport{Round: e.round}

	e.resolveShot(model.SeatPlayer, e.playerShooter, e.opponentBoard, coord, report)
	if e.opponentBoard.AllSunk() {
		e.finish(model.SeatPlayer, report)
		return report, nil
	}

	coord, err = e.opponentShooter.NextShot(ctx)
	if err != nil {
		return nil, err
	}

	e.resolveShot(model.SeatOpponent, e.opponentShooter, e.playerBoard, coord, report)
	if e.playerBoard.AllSunk() {
		e.finish(model.SeatOpponent, report)
	}

	return report, nil
}

// resolveShot resolves one shot against the target board and feeds the
// outcome back to the shooter
func (e *Engine) resolveShot(seat model.Seat, shooter Shooter, target *model.Board, coord model.Coordinate, report *RoundReport) {
	result := target.ResolveGuess(coord)
	shooter.ObserveResult(coord, result)

	e.shots[seat]++
	if result.Hit {
		e.hits[seat]++
	}

	report.Shots = append(report.Shots, ShotReport{Seat: seat, Coord: coord, Result: result})

	e.logger.Debug("shot resolved",
		slog.String("seat", string(seat)),
		slog.Int("row", coord.Row),
		slog.Int("col", coord.Col),
		slog.Bool("hit", result.Hit),
		slog.Bool("sunk", result.Sunk),
	)
}

func (e *Engine) finish(winner model.Seat, report *RoundReport) {
	e.phase = PhaseFinished
	e.winner = winner
	report.Finished = true
	report.Winner = winner

	e.logger.Info("match finished",
		slog.String("winner", string(winner)),
		slog.Int("rounds", e.round),
	)
}
