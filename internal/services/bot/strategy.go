package bot

import "seabattle/internal/model"

// Mode is the phase a strategy is in
type Mode string

const (
	// ModeHunt issues uncorrelated guesses looking for a new contact
	ModeHunt Mode = "hunt"
	// ModeTarget works the neighbors of a known, unsunk hit
	ModeTarget Mode = "target"
)

// Strategy chooses the opponent's guesses. The tracking board passed in
// is the strategy's own record of the adversary's waters; the strategy
// reads it when choosing and writes it when observing results.
type Strategy interface {
	// NextGuess picks the next coordinate to fire at. It never repeats
	// a coordinate already guessed on the tracking board.
	NextGuess(tracking *model.Board) model.Coordinate

	// Observe records the resolved outcome of the strategy's own guess
	// and updates internal state.
	Observe(c model.Coordinate, result model.GuessResult, tracking *model.Board)

	// Mode reports the current phase, for shells that reveal it
	Mode() Mode
}
