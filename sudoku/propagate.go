package sudoku

// Step is a determined assignment not yet applied to the grid.
type Step struct {
	Row, Col, Digit int
}

// findSteps scans the whole grid once and collects every assignment the
// current state determines: cells with a single candidate, and hidden
// singles among cells with several. At most one step is emitted per
// cell, and all deductions read the same candidate snapshot, so the
// batch may be applied atomically afterwards.
func findSteps(g *Grid) []Step {
	cands := g.AllLegalDigits()
	var steps []Step
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			c := cands[i][j]
			if g.IsFilled(i, j) {
				continue
			}
			if c.Len() == 1 {
				steps = append(steps, Step{i, j, c.Sole()})
				continue
			}
			for _, d := range c.Digits() {
				if !placeableElsewhere(&cands, i, j, d) {
					steps = append(steps, Step{i, j, d})
					break
				}
			}
		}
	}
	return steps
}

// placeableElsewhere reports whether d is a candidate of another cell in
// the row of (i, j), AND of another cell in its column, AND of another
// cell in its box. Only when all three regions admit an alternative does
// the digit count as placeable elsewhere; the hidden-single deduction in
// findSteps fires when this is false.
func placeableElsewhere(cands *[9][9]DigitSet, i, j, d int) bool {
	inRow := false
	for k := 0; k < 9; k++ {
		if k != j && cands[i][k].Has(d) {
			inRow = true
			break
		}
	}
	inCol := false
	for k := 0; k < 9; k++ {
		if k != i && cands[k][j].Has(d) {
			inCol = true
			break
		}
	}
	inBox := false
	bi, bj := i/3*3, j/3*3
	for k := 0; k < 9; k++ {
		r, c := bi+k/3, bj+k%3
		if (r != i || c != j) && cands[r][c].Has(d) {
			inBox = true
			break
		}
	}
	return inRow && inCol && inBox
}

func apply(g *Grid, steps []Step) {
	for _, s := range steps {
		g[s.Row][s.Col] = s.Digit
	}
}

// propagate runs full passes over the grid until one determines nothing
// new, applying each pass's batch of steps between scans. It returns the
// number of passes run (including the final stalled one) and the total
// cells assigned.
func propagate(g *Grid) (passes, assigned int) {
	for {
		passes++
		steps := findSteps(g)
		if len(steps) == 0 {
			return passes, assigned
		}
		apply(g, steps)
		assigned += len(steps)
	}
}
