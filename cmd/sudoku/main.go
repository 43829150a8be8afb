package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/MaxRieger96/Sudoku/sudoku"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("sudoku")
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "sudoku",
		Short:        "Solve 9x9 Sudoku puzzles",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCommand())
	return root
}

func newSolveCommand() *cobra.Command {
	var (
		file  string
		trace bool
		prof  bool
	)
	cmd := &cobra.Command{
		Use:   "solve [puzzle...]",
		Short: "Solve puzzles given as 81-character strings, digits as givens and any other character as blank",
		RunE: func(cmd *cobra.Command, args []string) error {
			if prof {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}

			puzzles := args
			if file != "" {
				fromFile, err := readPuzzles(file)
				if err != nil {
					return err
				}
				puzzles = append(puzzles, fromFile...)
			}
			if len(puzzles) == 0 {
				return fmt.Errorf("no puzzles given")
			}

			for _, p := range puzzles {
				grid, err := sudoku.Parse(p)
				if err != nil {
					return fmt.Errorf("parse puzzle: %w", err)
				}
				res, err := sudoku.Solve(&grid)
				if err != nil {
					return fmt.Errorf("solve puzzle %q: %w", p, err)
				}
				if trace {
					log.Info().
						Int("passes", res.Passes).
						Int("assigned", res.Assigned).
						Int("nodes", res.Nodes).
						Bool("searched", res.Searched).
						Msg("solved puzzle")
				}
				fmt.Fprintln(cmd.OutOrStdout(), grid)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read puzzles from a file, one per line")
	cmd.Flags().BoolVar(&trace, "trace", false, "log solve diagnostics")
	cmd.Flags().BoolVar(&prof, "profile", false, "write a CPU profile to the working directory")
	return cmd
}

// readPuzzles loads one puzzle per line, skipping blank lines and
// '#' comments.
func readPuzzles(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle file: %w", err)
	}
	var puzzles []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		puzzles = append(puzzles, line)
	}
	return puzzles, nil
}
