package fleet

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"seabattle/internal/dependencies/mocks"
	"seabattle/internal/dependencies/random"
	"seabattle/internal/model"
	"seabattle/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random, testutil.NopLogger())
}

// Each footprint consumes three Intn draws: orientation (0 horizontal,
// 1 vertical), then row, then column.

func (s *ServiceSuite) TestPlaceFleetHorizontal() {
	board := model.NewBoard(10)
	s.random.QueueIntn(0, 2, 3)

	err := s.service.PlaceFleet(board, 1, 3)
	s.Require().NoError(err)

	s.Equal(model.CellShip, board.At(model.Coordinate{Row: 2, Col: 3}))
	s.Equal(model.CellShip, board.At(model.Coordinate{Row: 2, Col: 4}))
	s.Equal(model.CellShip, board.At(model.Coordinate{Row: 2, Col: 5}))
	s.Equal(1, board.ShipCount())
}

func (s *ServiceSuite) TestPlaceFleetVertical() {
	board := model.NewBoard(10)
	s.random.QueueIntn(1, 4, 6)

	err := s.service.PlaceFleet(board, 1, 3)
	s.Require().NoError(err)

	s.Equal(model.CellShip, board.At(model.Coordinate{Row: 4, Col: 6}))
	s.Equal(model.CellShip, board.At(model.Coordinate{Row: 5, Col: 6}))
	s.Equal(model.CellShip, board.At(model.Coordinate{Row: 6, Col: 6}))
}

func (s *ServiceSuite) TestPlaceFleetRetriesOnCollision() {
	board := model.NewBoard(10)
	// Ship 1 lands on row 0; ship 2 tries the same footprint, collides,
	// and succeeds on row 1
	s.random.QueueIntn(
		0, 0, 0,
		0, 0, 0,
		0, 1, 0,
	)

	err := s.service.PlaceFleet(board, 2, 3)
	s.Require().NoError(err)

	s.Equal(2, board.ShipCount())
	s.Equal(6, board.Count(model.CellShip))
}

func (s *ServiceSuite) TestPlaceFleetExhaustsBudget() {
	// A length-3 ship can never fit on a 2x2 board
	board := model.NewBoard(2)

	err := s.service.PlaceFleet(board, 1, 3)

	var placementErr *model.PlacementError
	s.Require().ErrorAs(err, &placementErr)
	s.Equal(0, placementErr.Placed)
	s.Equal(1, placementErr.Requested)
}

func (s *ServiceSuite) TestPlaceFleetReportsPartialCount() {
	// Two length-2 ships fill a 2x2 board; the third has nowhere to go.
	// The drained mock queue then repeats footprint (0,0) until the
	// budget runs out.
	board := model.NewBoard(2)
	s.random.QueueIntn(
		0, 0, 0,
		0, 1, 0,
	)

	err := s.service.PlaceFleet(board, 3, 2)

	var placementErr *model.PlacementError
	s.Require().ErrorAs(err, &placementErr)
	s.Equal(2, placementErr.Placed)
	s.Equal(3, placementErr.Requested)
}

func (s *ServiceSuite) TestPlaceFleetZeroLengthShips() {
	board := model.NewBoard(5)

	err := s.service.PlaceFleet(board, 2, 0)
	s.Require().NoError(err)

	s.Equal(2, board.ShipCount())
	s.Equal(0, board.Count(model.CellShip))
	// Zero-length ships are vacuously sunk from the start
	s.True(board.AllSunk())
}

func (s *ServiceSuite) TestPlaceFleetZeroShips() {
	board := model.NewBoard(5)

	err := s.service.PlaceFleet(board, 0, 3)
	s.Require().NoError(err)
	s.Equal(0, board.ShipCount())
}

func (s *ServiceSuite) TestPlacedShipsNeverOverlap() {
	// Real randomness: a standard fleet must land without any shared
	// cells, which shows as an exact ship-cell count
	service := New(random.NewSeeded(1), testutil.NopLogger())
	board := model.NewBoard(10)

	err := service.PlaceFleet(board, 5, 3)
	s.Require().NoError(err)

	s.Equal(5, board.ShipCount())
	s.Equal(15, board.Count(model.CellShip))
}
