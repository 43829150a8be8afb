package sudoku

// LegalDigits returns the digits still placeable at (i, j): every digit
// not already present in the cell's row, column, or box. A filled cell
// has no candidates.
func (g *Grid) LegalDigits(i, j int) DigitSet {
	if g.IsFilled(i, j) {
		return 0
	}
	s := allDigits
	for k := 0; k < 9; k++ {
		if v := g[i][k]; v != 0 {
			s = s.Remove(v)
		}
		if v := g[k][j]; v != 0 {
			s = s.Remove(v)
		}
		if v := g[i/3*3+k/3][j/3*3+k%3]; v != 0 {
			s = s.Remove(v)
		}
	}
	return s
}

// AllLegalDigits computes the candidate set of every cell against the
// grid's current state. The table is a single snapshot: one propagation
// pass bases all of its deductions on it.
func (g *Grid) AllLegalDigits() [9][9]DigitSet {
	var t [9][9]DigitSet
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			t[i][j] = g.LegalDigits(i, j)
		}
	}
	return t
}
