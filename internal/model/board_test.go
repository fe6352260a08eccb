package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
	board *Board
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) SetupTest() {
	s.board = NewBoard(10)
}

// placeRow places a horizontal ship starting at (row, col)
func (s *BoardSuite) placeRow(row, col, length int) *Ship {
	cells := make([]Coordinate, length)
	for i := range cells {
		cells[i] = Coordinate{Row: row, Col: col + i}
	}
	ship, err := s.board.PlaceShip(cells)
	s.Require().NoError(err)
	return ship
}

// Placement tests

func (s *BoardSuite) TestNewBoardIsAllWater() {
	s.Equal(100, s.board.Count(CellWater))
	s.Equal(0, s.board.ShipCount())
	s.Equal(0, s.board.GuessCount())
}

func (s *BoardSuite) TestPlaceShipMarksCells() {
	s.placeRow(2, 3, 3)

	s.Equal(CellShip, s.board.At(Coordinate{Row: 2, Col: 3}))
	s.Equal(CellShip, s.board.At(Coordinate{Row: 2, Col: 4}))
	s.Equal(CellShip, s.board.At(Coordinate{Row: 2, Col: 5}))
	s.Equal(3, s.board.Count(CellShip))
	s.Equal(1, s.board.ShipCount())
}

func (s *BoardSuite) TestCanPlaceRejectsOutOfBounds() {
	s.False(s.board.CanPlace([]Coordinate{{Row: 9, Col: 9}, {Row: 9, Col: 10}}))
	s.False(s.board.CanPlace([]Coordinate{{Row: -1, Col: 0}}))
}

func (s *BoardSuite) TestCanPlaceRejectsOverlap() {
	s.placeRow(2, 3, 3)

	// Crossing the existing ship at (2,4)
	s.False(s.board.CanPlace([]Coordinate{{Row: 1, Col: 4}, {Row: 2, Col: 4}, {Row: 3, Col: 4}}))
	// Adjacent but not overlapping is fine
	s.True(s.board.CanPlace([]Coordinate{{Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 3, Col: 5}}))
}

func (s *BoardSuite) TestPlaceShipRejectsOverlap() {
	s.placeRow(2, 3, 3)

	_, err := s.board.PlaceShip([]Coordinate{{Row: 2, Col: 5}, {Row: 2, Col: 6}})
	s.ErrorIs(err, ErrInvalidPlacement)
	s.Equal(1, s.board.ShipCount())
}

func (s *BoardSuite) TestNoTwoShipsShareACoordinate() {
	s.placeRow(0, 0, 3)
	s.placeRow(1, 0, 3)
	s.placeRow(2, 0, 3)

	// Every ship cell belongs to exactly one ship
	s.Equal(9, s.board.Count(CellShip))
}

// Guess resolution tests

func (s *BoardSuite) TestResolveGuessMiss() {
	s.placeRow(2, 3, 3)

	result := s.board.ResolveGuess(Coordinate{Row: 0, Col: 0})
	s.Equal(GuessResult{}, result)
	s.Equal(CellMiss, s.board.At(Coordinate{Row: 0, Col: 0}))
	s.True(s.board.Guessed(Coordinate{Row: 0, Col: 0}))
}

func (s *BoardSuite) TestResolveGuessHit() {
	s.placeRow(2, 3, 3)

	result := s.board.ResolveGuess(Coordinate{Row: 2, Col: 3})
	s.Equal(GuessResult{Hit: true}, result)
	s.Equal(CellHit, s.board.At(Coordinate{Row: 2, Col: 3}))
}

func (s *BoardSuite) TestResolveGuessIdempotentOnRepeat() {
	s.placeRow(2, 3, 3)

	first := s.board.ResolveGuess(Coordinate{Row: 2, Col: 3})
	s.True(first.Hit)

	// A repeat guess reports only AlreadyGuessed, even on a hit cell,
	// and leaves the grid and hit flags alone
	second := s.board.ResolveGuess(Coordinate{Row: 2, Col: 3})
	s.Equal(GuessResult{AlreadyGuessed: true}, second)
	s.Equal(CellHit, s.board.At(Coordinate{Row: 2, Col: 3}))
	s.Equal(1, s.board.GuessCount())
}

func (s *BoardSuite) TestSinkShipGuessByGuess() {
	// The classic scenario: one ship at "23" "24" "25"
	s.placeRow(2, 3, 3)

	for i, want := range []GuessResult{
		{Hit: true, Sunk: false},
		{Hit: true, Sunk: false},
		{Hit: true, Sunk: true},
	} {
		raw := FormatCoordinate(Coordinate{Row: 2, Col: 3 + i}, 10)
		c, err := ParseCoordinate(raw, 10)
		s.Require().NoError(err)

		s.Equal(want, s.board.ResolveGuess(c), "guess %q", raw)
		s.Equal(want.Sunk, s.board.AllSunk(), "guess %q", raw)
	}
}

func (s *BoardSuite) TestResolveGuessAttributesToOneShip() {
	s.placeRow(0, 0, 2)
	other := s.placeRow(1, 0, 2)

	s.board.ResolveGuess(Coordinate{Row: 0, Col: 0})
	s.board.ResolveGuess(Coordinate{Row: 0, Col: 1})

	s.False(s.board.AllSunk())
	s.Equal(1, s.board.RemainingShips())
	s.False(other.IsSunk())
}

// End state tests

func (s *BoardSuite) TestAllSunkEmptyBoardNeverDefeated() {
	s.False(s.board.AllSunk())

	s.board.ResolveGuess(Coordinate{Row: 0, Col: 0})
	s.False(s.board.AllSunk())
}

func (s *BoardSuite) TestRemainingShips() {
	s.placeRow(0, 0, 1)
	s.placeRow(1, 0, 1)
	s.Equal(2, s.board.RemainingShips())

	s.board.ResolveGuess(Coordinate{Row: 0, Col: 0})
	s.Equal(1, s.board.RemainingShips())

	s.board.ResolveGuess(Coordinate{Row: 1, Col: 0})
	s.Equal(0, s.board.RemainingShips())
	s.True(s.board.AllSunk())
}

// Tracking board tests

func (s *BoardSuite) TestRecordResult() {
	s.board.RecordResult(Coordinate{Row: 4, Col: 4}, true)
	s.board.RecordResult(Coordinate{Row: 5, Col: 5}, false)

	s.Equal(CellHit, s.board.At(Coordinate{Row: 4, Col: 4}))
	s.Equal(CellMiss, s.board.At(Coordinate{Row: 5, Col: 5}))
	s.Equal(2, s.board.GuessCount())
}

func (s *BoardSuite) TestRecordResultNeverRewrites() {
	s.board.RecordResult(Coordinate{Row: 4, Col: 4}, true)
	s.board.RecordResult(Coordinate{Row: 4, Col: 4}, false)

	s.Equal(CellHit, s.board.At(Coordinate{Row: 4, Col: 4}))
}

func (s *BoardSuite) TestRecordResultIgnoresOutOfBounds() {
	s.board.RecordResult(Coordinate{Row: -1, Col: 4}, true)
	s.Equal(0, s.board.GuessCount())
}

// Snapshot tests

func (s *BoardSuite) TestSnapshotIsDeepCopy() {
	s.placeRow(2, 3, 3)

	snapshot := s.board.Snapshot()
	s.Equal(CellShip, snapshot[2][3])

	snapshot[2][3] = CellMiss
	s.Equal(CellShip, s.board.At(Coordinate{Row: 2, Col: 3}))
}
