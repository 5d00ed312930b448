// Command lattice-solve wires a construction phase, a local-search phase
// with a simulated-annealing acceptor, and a time-based termination
// together over a small built-in N-queens instance, to demonstrate how a
// host program assembles a solver.Solver (spec §1: no config file, no
// wire protocol — wiring is done in Go, not parsed from TOML).
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/lattice-forge/lattice-solver/accept"
	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/phase"
	"github.com/lattice-forge/lattice-solver/score"
	"github.com/lattice-forge/lattice-solver/selector"
	"github.com/lattice-forge/lattice-solver/solve"
	"github.com/lattice-forge/lattice-solver/solver"
	"github.com/lattice-forge/lattice-solver/terminate"
)

const unassignedRow int64 = -1

type queen struct {
	column int
	row    int64
}

type board struct{ queens []*queen }

func newBoard(size int) *board {
	b := &board{}
	for c := 0; c < size; c++ {
		b.queens = append(b.queens, &queen{column: c, row: unassignedRow})
	}
	return b
}

func cloneBoard(sol interface{}) interface{} {
	src := sol.(*board)
	cp := &board{queens: make([]*queen, len(src.queens))}
	for i, q := range src.queens {
		copyOfQueen := *q
		cp.queens[i] = &copyOfQueen
	}
	return cp
}

func queenDescriptor(size int) domain.EntityDescriptor {
	return domain.EntityDescriptor{
		Name:  "queen",
		Count: func(sol interface{}) int { return len(sol.(*board).queens) },
		Get:   func(sol interface{}, i int) interface{} { return sol.(*board).queens[i] },
		Variables: []domain.VariableDescriptor{{
			Name:       "row",
			Kind:       domain.GenuineBasic,
			ValueRange: domain.CountableValueRange(0, int64(size)),
			Get:        func(sol interface{}, i int) interface{} { return sol.(*board).queens[i].row },
			Set:        func(sol interface{}, i int, v interface{}) { sol.(*board).queens[i].row = v.(int64) },
		}},
	}
}

func buildConstraints(desc *domain.SolutionDescriptor) *constraint.ConstraintSet {
	onePerPair := func(interface{}, interface{}) score.Score { return score.NewHardSoft(1, 0) }
	sameRow := constraint.NewBiSelf("same row", "queen.row", true, desc, 0, score.ZeroHardSoft(),
		func(e interface{}) interface{} { return e.(*queen).row }, nil, onePerPair, true)
	ascendingDiagonal := constraint.NewBiSelf("ascending diagonal", "queen.diag.asc", true, desc, 0, score.ZeroHardSoft(),
		func(e interface{}) interface{} { q := e.(*queen); return q.row - int64(q.column) }, nil, onePerPair, true)
	descendingDiagonal := constraint.NewBiSelf("descending diagonal", "queen.diag.desc", true, desc, 0, score.ZeroHardSoft(),
		func(e interface{}) interface{} { q := e.(*queen); return q.row + int64(q.column) }, nil, onePerPair, true)

	set, err := constraint.NewConstraintSet(score.ZeroHardSoft(), sameRow, ascendingDiagonal, descendingDiagonal)
	if err != nil {
		panic(err)
	}
	return set
}

func main() {
	size := flag.Int("size", 8, "board size")
	timeLimit := flag.Duration("time-limit", 5*time.Second, "solve time budget")
	flag.Parse()

	b := newBoard(*size)
	desc := domain.NewSolutionDescriptor([]domain.EntityDescriptor{queenDescriptor(*size)}, nil)
	director := solve.NewScoreDirector(b, desc, buildConstraints(desc), cloneBoard)

	variable := desc.Entities[0].Variables[0]
	entities := selector.NewFromSolutionEntitySelector(0)
	values := selector.NewRangeValueSelector(variable.ValueRange)

	construction := &phase.ConstructionPhase{
		Placer: &phase.StandardEntityPlacer{
			Entities: entities,
			Variable: variable,
			Values:   values,
			IsUninitialized: func(_ solve.ScoreDirector, ref domain.EntityRef) bool {
				return b.queens[ref.EntityIndex].row == unassignedRow
			},
		},
		Forager: phase.BestFit{},
	}

	localSearch := &phase.LocalSearchPhase{
		Selector:  selector.NewChangeMoveSelector(entities, values, variable),
		Acceptor:  accept.NewSimulatedAnnealing(2.0, 0.999, nil),
		Forager:   &phase.HighestScoreForager{},
		StepLimit: 50_000,
	}

	s := &solver.Solver{
		Phases: []phase.Phase{construction, localSearch},
		Termination: terminate.Or{Terms: []terminate.Termination{
			terminate.Time{Limit: *timeLimit},
			terminate.BestScoreLimit{Target: score.ZeroHardSoft()},
		}},
	}

	result, err := s.Solve(context.Background(), director)
	if err != nil {
		panic(err)
	}

	fmt.Printf("size=%d score=%s steps=%d elapsed=%s\n", *size, result.BestScore, result.Stats.TotalSteps, result.Stats.Elapsed)
}
