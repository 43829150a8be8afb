package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MaxRieger96/Sudoku/service/solvesvc"
	"github.com/MaxRieger96/Sudoku/sudoku"
)

type SolveHandler struct{}

func NewSolveHandler() *SolveHandler {
	return &SolveHandler{}
}

func (s *SolveHandler) Solve(c *gin.Context) {
	var req solvesvc.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("read request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body", "message": err.Error()})
		return
	}

	grid, err := sudoku.Parse(req.Puzzle)
	if err != nil {
		log.Err(err).Msg("parse puzzle")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid puzzle", "message": err.Error()})
		return
	}

	res, err := sudoku.Solve(&grid)
	if errors.Is(err, sudoku.ErrUnsolvable) {
		log.Err(err).Str("puzzle", req.Puzzle).Msg("solve puzzle")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Puzzle has no solution", "message": err.Error()})
		return
	}

	log.Info().
		Int("passes", res.Passes).
		Int("assigned", res.Assigned).
		Int("nodes", res.Nodes).
		Bool("searched", res.Searched).
		Msg("solved puzzle")
	c.JSON(http.StatusOK, solvesvc.SolveResponse{
		Solution: grid.Compact(),
		Grid:     grid,
		Passes:   res.Passes,
		Nodes:    res.Nodes,
	})
}
