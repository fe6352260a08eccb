package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate identifies a cell on a board
type Coordinate struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// ParseCoordinate parses the textual form of a coordinate for a board of
// the given size. Boards up to 10 wide use the compact two-digit form
// ("34" is row 3, col 4); larger boards use the comma form ("12,7").
// Bounds are not checked here; use Board.InBounds for that.
func ParseCoordinate(raw string, size int) (Coordinate, error) {
	if size > 10 {
		return parseDelimited(raw)
	}
	return parseCompact(raw)
}

func parseCompact(raw string) (Coordinate, error) {
	if len(raw) != 2 {
		return Coordinate{}, ErrCoordinateLength
	}
	row, ok := digitValue(raw[0])
	if !ok {
		return Coordinate{}, ErrCoordinateDigits
	}
	col, ok := digitValue(raw[1])
	if !ok {
		return Coordinate{}, ErrCoordinateDigits
	}
	return Coordinate{Row: row, Col: col}, nil
}

func parseDelimited(raw string) (Coordinate, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return Coordinate{}, ErrCoordinateLength
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || row < 0 {
		return Coordinate{}, ErrCoordinateDigits
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || col < 0 {
		return Coordinate{}, ErrCoordinateDigits
	}
	return Coordinate{Row: row, Col: col}, nil
}

func digitValue(b byte) (int, bool) {
	if b < '0' || b > '9' {
		return 0, false
	}
	return int(b - '0'), true
}

// FormatCoordinate renders a coordinate in the textual form matching
// ParseCoordinate for a board of the given size.
func FormatCoordinate(c Coordinate, size int) string {
	if size > 10 {
		return fmt.Sprintf("%d,%d", c.Row, c.Col)
	}
	return fmt.Sprintf("%d%d", c.Row, c.Col)
}

// Neighbors returns the four orthogonal neighbors in a fixed order:
// up, down, left, right. Results may be out of bounds; callers filter.
func (c Coordinate) Neighbors() []Coordinate {
	return []Coordinate{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}
}
