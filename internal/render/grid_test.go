package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seabattle/internal/model"
)

func sampleBoard(t *testing.T) *model.Board {
	t.Helper()
	board := model.NewBoard(3)
	_, err := board.PlaceShip([]model.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	require.NoError(t, err)
	board.ResolveGuess(model.Coordinate{Row: 0, Col: 0}) // hit
	board.ResolveGuess(model.Coordinate{Row: 2, Col: 2}) // miss
	return board
}

func TestGlyphs(t *testing.T) {
	assert.Equal(t, "~", Glyph(model.CellWater))
	assert.Equal(t, "S", Glyph(model.CellShip))
	assert.Equal(t, "X", Glyph(model.CellHit))
	assert.Equal(t, "O", Glyph(model.CellMiss))
}

func TestRows(t *testing.T) {
	board := sampleBoard(t)

	rows := Rows(board.Snapshot())
	assert.Equal(t, []string{"XS~", "~~~", "~~O"}, rows)
}

func TestGridLayout(t *testing.T) {
	board := sampleBoard(t)

	out := Grid(board.Snapshot())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header plus one line per row")

	assert.Contains(t, lines[0], "0")
	assert.Contains(t, lines[0], "2")
	assert.Contains(t, lines[1], "X")
	assert.Contains(t, lines[1], "S")
	assert.Contains(t, lines[3], "O")
}

func TestGridEmpty(t *testing.T) {
	assert.Equal(t, "", Grid(nil))
}
