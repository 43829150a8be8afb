package solvesvc

import "context"

// SolveService represent the puzzle solving service.
type SolveService interface {
	// Solve the 81-character puzzle to a full grid
	Solve(ctx context.Context, req *SolveRequest) (*SolveResponse, error)
}

type SolveRequest struct {
	Puzzle string `json:"puzzle"` // 81 characters, digits are givens, anything else is blank
}

type SolveResponse struct {
	Solution string    `json:"solution"` // the solved puzzle as 81 characters
	Grid     [9][9]int `json:"grid"`     // the solved 9*9 grid
	Passes   int       `json:"passes"`   // propagation passes run
	Nodes    int       `json:"nodes"`    // search nodes visited, 0 when propagation sufficed
}
