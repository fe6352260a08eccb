package game

import (
	"errors"

	"seabattle/internal/model"
)

// ValidateGuess turns a raw human guess into a coordinate, checked
// against the shooter's tracking board. Rejections come back as a
// model.GuessRejectedError whose reason distinguishes malformed input
// from in-range-but-used coordinates:
//
//   - malformed_length: wrong number of characters or components
//   - out_of_range: non-digit characters, or a cell off the board
//   - already_guessed: a coordinate the shooter has fired at before
//
// Nothing is mutated; the caller prompts again on rejection.
func ValidateGuess(raw string, tracking *model.Board) (model.Coordinate, error) {
	c, err := model.ParseCoordinate(raw, tracking.Size())
	if err != nil {
		reason := model.RejectOutOfRange
		if errors.Is(err, model.ErrCoordinateLength) {
			reason = model.RejectMalformedLength
		}
		return model.Coordinate{}, &model.GuessRejectedError{Raw: raw, Reason: reason}
	}

	if !tracking.InBounds(c) {
		return model.Coordinate{}, &model.GuessRejectedError{Raw: raw, Reason: model.RejectOutOfRange}
	}

	if tracking.Guessed(c) {
		return model.Coordinate{}, &model.GuessRejectedError{Raw: raw, Reason: model.RejectAlreadyGuessed}
	}

	return c, nil
}
