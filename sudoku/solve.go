package sudoku

import "errors"

// ErrUnsolvable is returned by Solve when no assignment of the empty
// cells yields a valid solution.
var ErrUnsolvable = errors.New("sudoku: no solution exists")

// Result reports how a solve went.
type Result struct {
	Passes   int  // propagation passes run, including the final stalled one
	Assigned int  // cells filled by propagation
	Nodes    int  // tentative assignments tried by the search
	Searched bool // whether the search ran after propagation stalled
}

// Solve fills g in place. Propagation runs to fixpoint first; if the
// grid is not complete and valid by then, the backtracking search takes
// over. On failure the grid is restored to the givens it was called
// with and ErrUnsolvable is returned.
func Solve(g *Grid) (Result, error) {
	givens := *g
	var res Result
	res.Passes, res.Assigned = propagate(g)
	if Valid(g) {
		return res, nil
	}
	res.Searched = true
	if !search(g, 0, 0, &res.Nodes) {
		*g = givens
		return res, ErrUnsolvable
	}
	return res, nil
}
