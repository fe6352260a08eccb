package bot

import (
	"seabattle/internal/dependencies/random"
	"seabattle/internal/model"
)

// HuntTarget is a two-phase strategy. It hunts with random guesses
// until something is hit, then targets the orthogonal neighbors of
// that contact until the ship under it sinks.
//
// The target queue is FIFO and candidates are enqueued in a fixed
// order (up, down, left, right), so the first unexplored neighbor of
// the oldest contact is always investigated first. Sinking a ship
// clears the queue: any remaining candidates came from that ship and
// are worthless.
type HuntTarget struct {
	random  random.Random
	mode    Mode
	queue   []model.Coordinate
	lastHit model.Coordinate
}

// NewHuntTarget creates a HuntTarget strategy in hunt mode
func NewHuntTarget(rnd random.Random) *HuntTarget {
	return &HuntTarget{
		random: rnd,
		mode:   ModeHunt,
	}
}

// Ensure HuntTarget implements Strategy
var _ Strategy = (*HuntTarget)(nil)

// Mode reports the current phase
func (s *HuntTarget) Mode() Mode {
	return s.mode
}

// LastHit returns the most recent hit coordinate. Only meaningful in
// target mode.
func (s *HuntTarget) LastHit() model.Coordinate {
	return s.lastHit
}

// QueueLength returns the number of pending target candidates
func (s *HuntTarget) QueueLength() int {
	return len(s.queue)
}

// NextGuess dequeues target candidates in FIFO order, skipping any that
// have since been guessed. An emptied queue drops the strategy back to
// hunt mode, where guesses are random with a fallback scan on nearly
// full boards.
func (s *HuntTarget) NextGuess(tracking *model.Board) model.Coordinate {
	if s.mode == ModeTarget {
		for len(s.queue) > 0 {
			c := s.queue[0]
			s.queue = s.queue[1:]
			if !tracking.Guessed(c) {
				return c
			}
		}
		s.mode = ModeHunt
	}
	return s.huntGuess(tracking)
}

// huntGuess samples random unguessed coordinates, one probe per board
// cell. If every probe lands on a guessed cell, a row-major scan finds
// the first open coordinate, so progress is guaranteed even when the
// board is nearly exhausted.
func (s *HuntTarget) huntGuess(tracking *model.Board) model.Coordinate {
	size := tracking.Size()

	for i := 0; i < size*size; i++ {
		c := model.Coordinate{Row: s.random.Intn(size), Col: s.random.Intn(size)}
		if !tracking.Guessed(c) {
			return c
		}
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := model.Coordinate{Row: row, Col: col}
			if !tracking.Guessed(c) {
				return c
			}
		}
	}

	// Fully guessed board; only reachable after the game has ended
	return model.Coordinate{}
}

// Observe records the outcome on the tracking board and runs the mode
// transition: a sink resets to hunt, a hit switches to target and
// enqueues the contact's neighbors, and a miss falls back to hunt only
// when no candidates remain.
func (s *HuntTarget) Observe(c model.Coordinate, result model.GuessResult, tracking *model.Board) {
	if result.AlreadyGuessed {
		return
	}
	tracking.RecordResult(c, result.Hit)

	switch {
	case result.Sunk:
		s.queue = nil
		s.mode = ModeHunt
	case result.Hit:
		s.mode = ModeTarget
		s.lastHit = c
		s.enqueueNeighbors(c, tracking)
	default:
		if s.mode == ModeTarget && len(s.queue) == 0 {
			s.mode = ModeHunt
		}
	}
}

// enqueueNeighbors appends the contact's orthogonal neighbors that are
// in bounds, unguessed, and not already queued
func (s *HuntTarget) enqueueNeighbors(c model.Coordinate, tracking *model.Board) {
	for _, n := range c.Neighbors() {
		if !tracking.InBounds(n) || tracking.Guessed(n) || s.queued(n) {
			continue
		}
		s.queue = append(s.queue, n)
	}
}

func (s *HuntTarget) queued(c model.Coordinate) bool {
	for _, q := range s.queue {
		if q == c {
			return true
		}
	}
	return false
}
