package sudoku

// Valid reports whether g is a complete, correct solution: every row,
// column, and 3x3 box holds each digit 1-9 exactly once. Any empty cell
// fails the check.
func Valid(g *Grid) bool {
	var rows, cols, boxes [9][9]bool
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			cell := g[row][col]
			if cell == 0 {
				return false
			}

			digit := cell - 1
			boxIndex := row/3*3 + col/3
			if rows[row][digit] || cols[col][digit] || boxes[boxIndex][digit] {
				return false
			}

			rows[row][digit], cols[col][digit], boxes[boxIndex][digit] = true, true, true
		}
	}
	return true
}
