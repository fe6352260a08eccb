package fleet

import (
	"log/slog"

	"seabattle/internal/dependencies/random"
	"seabattle/internal/model"
)

// MaxPlacementAttempts bounds one whole placement pass. The budget is
// global across all ships, not per ship, so dense configurations fail
// fast instead of thrashing. Callers must pick board, count and length
// combinations that are feasible with high probability.
const MaxPlacementAttempts = 1000

// Service places fleets of straight ships at random board positions
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new fleet Service
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger.With(slog.String("component", "fleet-service")),
	}
}

// PlaceFleet places shipCount ships of shipLength on the board. Each
// attempt samples an orientation and a start position whose footprint
// stays in bounds, then accepts it only if the footprint is open water.
// When the attempt budget runs out first, it fails with a
// model.PlacementError carrying the partial count.
func (s *Service) PlaceFleet(board *model.Board, shipCount, shipLength int) error {
	placed := 0
	attempts := 0

	for placed < shipCount {
		if attempts == MaxPlacementAttempts {
			s.logger.Warn("placement budget exhausted",
				slog.Int("placed", placed),
				slog.Int("requested", shipCount),
			)
			return &model.PlacementError{Placed: placed, Requested: shipCount}
		}
		attempts++

		cells := s.randomFootprint(board.Size(), shipLength)
		if !board.CanPlace(cells) {
			continue
		}
		if _, err := board.PlaceShip(cells); err != nil {
			return err
		}
		placed++
	}

	s.logger.Debug("fleet placed",
		slog.Int("ships", placed),
		slog.Int("ship_length", shipLength),
		slog.Int("attempts", attempts),
	)
	return nil
}

// randomFootprint samples a horizontal or vertical run of length cells
// whose start is chosen so the run cannot leave the board. Lengths
// larger than the board produce an unplaceable footprint, which the
// CanPlace check rejects until the budget runs out.
func (s *Service) randomFootprint(size, length int) []model.Coordinate {
	horizontal := s.random.Intn(2) == 0

	var start model.Coordinate
	if horizontal {
		start.Row = s.random.Intn(size)
		start.Col = s.random.Intn(size - length + 1)
	} else {
		start.Row = s.random.Intn(size - length + 1)
		start.Col = s.random.Intn(size)
	}

	cells := make([]model.Coordinate, length)
	for i := range cells {
		if horizontal {
			cells[i] = model.Coordinate{Row: start.Row, Col: start.Col + i}
		} else {
			cells[i] = model.Coordinate{Row: start.Row + i, Col: start.Col}
		}
	}
	return cells
}
