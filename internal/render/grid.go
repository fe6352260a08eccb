package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"seabattle/internal/model"
)

// Cell glyphs for console output
const (
	GlyphWater = "~"
	GlyphShip  = "S"
	GlyphHit   = "X"
	GlyphMiss  = "O"
)

// Glyph returns the console glyph for a cell state
func Glyph(state model.CellState) string {
	switch state {
	case model.CellShip:
		return GlyphShip
	case model.CellHit:
		return GlyphHit
	case model.CellMiss:
		return GlyphMiss
	default:
		return GlyphWater
	}
}

// Grid renders a board snapshot as an aligned text grid with row and
// column headers. Tracking boards never contain ship cells, so the
// same renderer serves both the own-fleet view and the shots view.
func Grid(cells [][]model.CellState) string {
	if len(cells) == 0 {
		return ""
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 2, 0, 1, ' ', 0)

	fmt.Fprint(w, "\t")
	for col := 0; col < len(cells); col++ {
		fmt.Fprint(w, strconv.Itoa(col)+"\t")
	}
	fmt.Fprint(w, "\n")

	for row := range cells {
		fmt.Fprint(w, strconv.Itoa(row)+"\t")
		for _, state := range cells[row] {
			fmt.Fprint(w, Glyph(state)+"\t")
		}
		fmt.Fprint(w, "\n")
	}

	_ = w.Flush()
	return buf.String()
}

// Rows flattens a snapshot into one compact glyph string per row,
// the form the API uses to serialize grids
func Rows(cells [][]model.CellState) []string {
	rows := make([]string, len(cells))
	for i, row := range cells {
		var b strings.Builder
		for _, state := range row {
			b.WriteString(Glyph(state))
		}
		rows[i] = b.String()
	}
	return rows
}
