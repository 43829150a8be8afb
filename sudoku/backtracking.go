package sudoku

// search is the exhaustive fallback for grids propagation cannot finish:
// depth-first over the empty cells in row-major order, trying each legal
// digit in ascending order. nodes counts tentative assignments.
func search(g *Grid, r, c int, nodes *int) bool {
	r, c, ok := nextEmptyCell(g, r, c)
	if !ok {
		return Valid(g)
	}

	for _, d := range g.LegalDigits(r, c).Digits() {
		*nodes++
		g[r][c] = d
		if search(g, r, c, nodes) {
			return true
		}
		g[r][c] = 0 // backtracking
	}

	return false
}

// nextEmptyCell resumes the row-major scan at (row, col); every cell
// before that point is already filled by the callers on the stack.
func nextEmptyCell(g *Grid, row, col int) (r, c int, found bool) {
	for ; row < 9; row++ {
		for ; col < 9; col++ {
			if g[row][col] == 0 {
				return row, col, true
			}
		}
		col = 0
	}
	return 0, 0, false
}
