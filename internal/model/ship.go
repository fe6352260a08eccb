package model

// Ship is one vessel on a board. Its cells are fixed at creation; the
// only mutation is marking cells hit.
type Ship struct {
	cells []Coordinate
	hits  []bool
}

// NewShip creates a ship occupying the given cells. Duplicate cells are
// rejected with ErrInvalidShipShape. An empty cell list is permitted and
// produces a ship that is already sunk.
func NewShip(cells []Coordinate) (*Ship, error) {
	seen := make(map[Coordinate]struct{}, len(cells))
	for _, c := range cells {
		if _, ok := seen[c]; ok {
			return nil, ErrInvalidShipShape
		}
		seen[c] = struct{}{}
	}

	owned := make([]Coordinate, len(cells))
	copy(owned, cells)

	return &Ship{
		cells: owned,
		hits:  make([]bool, len(cells)),
	}, nil
}

// Length returns the number of cells the ship occupies
func (s *Ship) Length() int {
	return len(s.cells)
}

// Cells returns a copy of the ship's cells
func (s *Ship) Cells() []Coordinate {
	result := make([]Coordinate, len(s.cells))
	copy(result, s.cells)
	return result
}

// Occupies returns true if the ship occupies the given coordinate
func (s *Ship) Occupies(c Coordinate) bool {
	for _, cell := range s.cells {
		if cell == c {
			return true
		}
	}
	return false
}

// RegisterHit marks the given cell hit. It returns true only for the
// first hit on a cell the ship occupies; repeat hits and misses return
// false without error.
func (s *Ship) RegisterHit(c Coordinate) bool {
	for i, cell := range s.cells {
		if cell != c {
			continue
		}
		if s.hits[i] {
			return false
		}
		s.hits[i] = true
		return true
	}
	return false
}

// IsSunk returns true if every cell has been hit. A zero-length ship is
// vacuously sunk.
func (s *Ship) IsSunk() bool {
	for _, hit := range s.hits {
		if !hit {
			return false
		}
	}
	return true
}
