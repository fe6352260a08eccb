package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shipCells(n int) []Coordinate {
	cells := make([]Coordinate, n)
	for i := range cells {
		cells[i] = Coordinate{Row: 2, Col: 3 + i}
	}
	return cells
}

func TestNewShipCopiesCells(t *testing.T) {
	cells := shipCells(3)
	ship, err := NewShip(cells)
	require.NoError(t, err)

	cells[0] = Coordinate{Row: 9, Col: 9}
	assert.Equal(t, Coordinate{Row: 2, Col: 3}, ship.Cells()[0])
}

func TestNewShipRejectsDuplicateCells(t *testing.T) {
	_, err := NewShip([]Coordinate{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 1}})
	assert.ErrorIs(t, err, ErrInvalidShipShape)
}

func TestNewShipPermitsEmpty(t *testing.T) {
	ship, err := NewShip(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, ship.Length())
	assert.True(t, ship.IsSunk())
}

func TestOccupies(t *testing.T) {
	ship, err := NewShip(shipCells(3))
	require.NoError(t, err)

	assert.True(t, ship.Occupies(Coordinate{Row: 2, Col: 4}))
	assert.False(t, ship.Occupies(Coordinate{Row: 3, Col: 4}))
}

func TestRegisterHit(t *testing.T) {
	ship, err := NewShip(shipCells(3))
	require.NoError(t, err)

	assert.True(t, ship.RegisterHit(Coordinate{Row: 2, Col: 3}))
	// Repeat hit on the same cell is a no-op, not an error
	assert.False(t, ship.RegisterHit(Coordinate{Row: 2, Col: 3}))
	// Coordinates the ship does not occupy are ignored
	assert.False(t, ship.RegisterHit(Coordinate{Row: 0, Col: 0}))
}

func TestIsSunk(t *testing.T) {
	for _, length := range []int{1, 2, 3, 5} {
		ship, err := NewShip(shipCells(length))
		require.NoError(t, err)

		cells := ship.Cells()
		for i := 0; i < length-1; i++ {
			ship.RegisterHit(cells[i])
			assert.False(t, ship.IsSunk(), "length %d with %d hits", length, i+1)
		}
		ship.RegisterHit(cells[length-1])
		assert.True(t, ship.IsSunk(), "length %d fully hit", length)
	}
}
