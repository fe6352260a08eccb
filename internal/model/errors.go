package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Coordinate errors
	ErrCoordinateLength = errors.New("coordinate has the wrong length")
	ErrCoordinateDigits = errors.New("coordinate contains non-digit characters")

	// Ship errors
	ErrInvalidShipShape = errors.New("ship cells must be distinct")

	// Board errors
	ErrInvalidPlacement = errors.New("placement is out of bounds or overlaps another ship")

	// Match errors
	ErrInvalidMatchConfig = errors.New("invalid match configuration")
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchFinished      = errors.New("match is already finished")

	// Stats errors
	ErrStatsNotFound = errors.New("player stats not found")
)

// PlacementError reports that random fleet placement ran out of attempts
// before the requested number of ships could be placed. It is fatal to
// match setup; the caller should not retry with the same configuration.
type PlacementError struct {
	Placed    int
	Requested int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("placed %d of %d ships before exhausting the attempt budget", e.Placed, e.Requested)
}

// RejectReason classifies why a raw guess string was rejected
type RejectReason string

const (
	RejectMalformedLength RejectReason = "malformed_length"
	RejectOutOfRange      RejectReason = "out_of_range"
	RejectAlreadyGuessed  RejectReason = "already_guessed"
)

// GuessRejectedError reports a rejected human guess. It is recoverable:
// no game state has been mutated and the caller should prompt again.
type GuessRejectedError struct {
	Raw    string
	Reason RejectReason
}

func (e *GuessRejectedError) Error() string {
	return fmt.Sprintf("guess %q rejected: %s", e.Raw, e.Reason)
}
