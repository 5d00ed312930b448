package solver

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lattice-forge/lattice-solver/solve"
)

// SolveAll runs one Solver per director concurrently, each isolated on
// its own director/solution (spec §5 "Parallelism, if added, is across
// independent solves, each with its own director"). It cancels the
// remaining solves and returns the first error, if any.
func SolveAll(ctx context.Context, solvers []*Solver, directors []solve.ScoreDirector) ([]*SolveResult, error) {
	if len(solvers) != len(directors) {
		return nil, fmt.Errorf("solver: SolveAll got %d solvers but %d directors", len(solvers), len(directors))
	}

	results := make([]*SolveResult, len(solvers))
	g, gctx := errgroup.WithContext(ctx)
	for i := range solvers {
		i := i
		g.Go(func() error {
			result, err := solvers[i].Solve(gctx, directors[i])
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
