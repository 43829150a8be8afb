package sudoku

import (
	"fmt"
	"strings"
)

// Grid is the 9x9 puzzle state. 0 marks an empty cell, 1-9 a placed digit.
type Grid [9][9]int

// Parse builds a Grid from a compact puzzle string: the bytes '1'-'9' are
// givens, any other byte is an empty cell. Whitespace is ignored, and the
// remaining input must hold exactly 81 cells.
func Parse(s string) (Grid, error) {
	var g Grid
	cells := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	if len(cells) != 81 {
		return g, fmt.Errorf("puzzle has %d cells, want 81", len(cells))
	}
	for k, c := range []byte(cells) {
		if c >= '1' && c <= '9' {
			g[k/9][k%9] = int(c - '0')
		}
	}
	return g, nil
}

// Row returns the 9 values of row i, left to right.
func (g *Grid) Row(i int) [9]int {
	return g[i]
}

// Column returns the 9 values of column j, top to bottom.
func (g *Grid) Column(j int) [9]int {
	var col [9]int
	for i := 0; i < 9; i++ {
		col[i] = g[i][j]
	}
	return col
}

// Box returns the 9 values of the 3x3 box containing (i, j), row-major
// within the box.
func (g *Grid) Box(i, j int) [9]int {
	var box [9]int
	bi, bj := i/3*3, j/3*3
	for k := 0; k < 9; k++ {
		box[k] = g[bi+k/3][bj+k%3]
	}
	return box
}

// IsFilled reports whether cell (i, j) holds a digit.
func (g *Grid) IsFilled(i, j int) bool {
	return g[i][j] != 0
}

// Equal reports whether both grids hold the same value in every cell.
func (g *Grid) Equal(other *Grid) bool {
	return *g == *other
}

// String renders the grid as nine lines of nine characters, '.' for
// empty cells. The output parses back into an equal grid.
func (g Grid) String() string {
	var sb strings.Builder
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if g[i][j] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + g[i][j]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compact renders the grid as a single 81-character line in the same
// alphabet Parse accepts.
func (g *Grid) Compact() string {
	var sb strings.Builder
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if g[i][j] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + g[i][j]))
			}
		}
	}
	return sb.String()
}
