package model

// CellState is the observable state of one board cell
type CellState int

const (
	CellWater CellState = iota
	CellShip
	CellHit
	CellMiss
)

// String returns the cell state's name
func (s CellState) String() string {
	switch s {
	case CellShip:
		return "ship"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		return "water"
	}
}

// GuessResult is the outcome of resolving one guess against a board.
// AlreadyGuessed is exclusive: a repeated guess never reports Hit or
// Sunk, even when the cell holds a previously hit ship.
type GuessResult struct {
	Hit            bool `json:"hit"`
	Sunk           bool `json:"sunk"`
	AlreadyGuessed bool `json:"already_guessed"`
}

// Board is one player's grid: the ships placed on it and the set of
// coordinates the adversary has guessed against it. A tracking board is
// the same type with no ships; its cells record the owner's inferred
// knowledge of the adversary via RecordResult.
//
// Accessors return copies, never live references. The guessed set only
// grows; a cell is hit or miss exactly when its coordinate has been
// guessed.
type Board struct {
	size    int
	cells   [][]CellState
	ships   []*Ship
	guessed map[Coordinate]bool
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) *Board {
	cells := make([][]CellState, size)
	for i := range cells {
		cells[i] = make([]CellState, size)
	}
	return &Board{
		size:    size,
		cells:   cells,
		guessed: make(map[Coordinate]bool),
	}
}

// Size returns the board dimension
func (b *Board) Size() int {
	return b.size
}

// InBounds returns true if the coordinate lies on the board
func (b *Board) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// At returns the state of the given cell, or CellWater if out of bounds
func (b *Board) At(c Coordinate) CellState {
	if !b.InBounds(c) {
		return CellWater
	}
	return b.cells[c.Row][c.Col]
}

// CanPlace returns true if every coordinate is in bounds and open water
func (b *Board) CanPlace(cells []Coordinate) bool {
	for _, c := range cells {
		if !b.InBounds(c) || b.cells[c.Row][c.Col] != CellWater {
			return false
		}
	}
	return true
}

// PlaceShip creates a ship on the given cells and adds it to the board.
// The footprint must be entirely in-bounds open water.
func (b *Board) PlaceShip(cells []Coordinate) (*Ship, error) {
	if !b.CanPlace(cells) {
		return nil, ErrInvalidPlacement
	}

	ship, err := NewShip(cells)
	if err != nil {
		return nil, err
	}

	for _, c := range cells {
		b.cells[c.Row][c.Col] = CellShip
	}
	b.ships = append(b.ships, ship)

	return ship, nil
}

// Guessed returns true if the coordinate has already been guessed
func (b *Board) Guessed(c Coordinate) bool {
	return b.guessed[c]
}

// GuessCount returns the number of distinct guesses made against the board
func (b *Board) GuessCount() int {
	return len(b.guessed)
}

// ResolveGuess resolves one guess against the board's ships. A repeated
// guess returns AlreadyGuessed with nothing mutated. Otherwise the guess
// is recorded, the cell becomes hit or miss, and at most one ship (by
// the no-overlap invariant) takes the hit. The coordinate must be in
// bounds; callers validate raw input first.
func (b *Board) ResolveGuess(c Coordinate) GuessResult {
	if b.guessed[c] {
		return GuessResult{AlreadyGuessed: true}
	}
	b.guessed[c] = true

	for _, ship := range b.ships {
		if !ship.Occupies(c) {
			continue
		}
		b.cells[c.Row][c.Col] = CellHit
		ship.RegisterHit(c)
		return GuessResult{Hit: true, Sunk: ship.IsSunk()}
	}

	b.cells[c.Row][c.Col] = CellMiss
	return GuessResult{}
}

// RecordResult marks a cell hit or miss on a tracking board. Repeat
// coordinates are ignored so recorded knowledge is never rewritten.
func (b *Board) RecordResult(c Coordinate, hit bool) {
	if !b.InBounds(c) || b.guessed[c] {
		return
	}
	b.guessed[c] = true
	if hit {
		b.cells[c.Row][c.Col] = CellHit
	} else {
		b.cells[c.Row][c.Col] = CellMiss
	}
}

// AllSunk returns true if the board has at least one ship and every
// ship is sunk. A board with no ships is never defeated.
func (b *Board) AllSunk() bool {
	if len(b.ships) == 0 {
		return false
	}
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

// RemainingShips returns the number of unsunk ships
func (b *Board) RemainingShips() int {
	count := 0
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			count++
		}
	}
	return count
}

// ShipCount returns the total number of ships on the board
func (b *Board) ShipCount() int {
	return len(b.ships)
}

// Count returns the number of cells in the given state
func (b *Board) Count(state CellState) int {
	count := 0
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.cells[row][col] == state {
				count++
			}
		}
	}
	return count
}

// Snapshot returns a deep copy of the grid for rendering
func (b *Board) Snapshot() [][]CellState {
	cells := make([][]CellState, b.size)
	for i := range cells {
		cells[i] = make([]CellState, b.size)
		copy(cells[i], b.cells[i])
	}
	return cells
}
