package solver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/event"
	"github.com/lattice-forge/lattice-solver/phase"
	"github.com/lattice-forge/lattice-solver/score"
	"github.com/lattice-forge/lattice-solver/selector"
	"github.com/lattice-forge/lattice-solver/solve"
	"github.com/lattice-forge/lattice-solver/solver"
	"github.com/lattice-forge/lattice-solver/terminate"
)

type queen struct{ row int64 }

type board struct{ queens []*queen }

const unassigned int64 = -1

func queenDescriptor() domain.EntityDescriptor {
	return domain.EntityDescriptor{
		Name:  "queen",
		Count: func(sol interface{}) int { return len(sol.(*board).queens) },
		Get:   func(sol interface{}, i int) interface{} { return sol.(*board).queens[i] },
		Variables: []domain.VariableDescriptor{{
			Name:       "row",
			Kind:       domain.GenuineBasic,
			ValueRange: domain.CountableValueRange(0, 4),
			Get:        func(sol interface{}, i int) interface{} { return sol.(*board).queens[i].row },
			Set:        func(sol interface{}, i int, v interface{}) { sol.(*board).queens[i].row = v.(int64) },
		}},
	}
}

func noopConstraintSet(desc *domain.SolutionDescriptor) *constraint.ConstraintSet {
	uni := constraint.NewUni("noop", "noop", false, desc, 0, score.ZeroHardSoft(),
		func(interface{}) bool { return false },
		func(interface{}) score.Score { return score.NewHardSoft(1, 0) },
		false,
	)
	set, err := constraint.NewConstraintSet(score.ZeroHardSoft(), uni)
	if err != nil {
		panic(err)
	}
	return set
}

func cloneBoard(sol interface{}) interface{} {
	b := sol.(*board)
	cp := &board{queens: make([]*queen, len(b.queens))}
	for i, q := range b.queens {
		qq := *q
		cp.queens[i] = &qq
	}
	return cp
}

type countingListener struct {
	event.Noop
	solvingStarted int
	solvingEnded   int
	phaseStarted   int
	phaseEnded     int
}

func (l *countingListener) OnSolvingStarted(interface{})     { l.solvingStarted++ }
func (l *countingListener) OnSolvingEnded(interface{}, bool) { l.solvingEnded++ }
func (l *countingListener) OnPhaseStarted(int, string)       { l.phaseStarted++ }
func (l *countingListener) OnPhaseEnded(int, string)         { l.phaseEnded++ }

func TestSolverRunsConstructionPhaseAndDispatchesEvents(t *testing.T) {
	b := &board{queens: []*queen{{row: unassigned}, {row: unassigned}, {row: unassigned}}}
	desc := domain.NewSolutionDescriptor([]domain.EntityDescriptor{queenDescriptor()}, nil)
	director := solve.NewScoreDirector(b, desc, noopConstraintSet(desc), cloneBoard)

	variable := desc.Entities[0].Variables[0]
	placer := &phase.StandardEntityPlacer{
		Entities: selector.NewFromSolutionEntitySelector(0),
		Variable: variable,
		Values:   selector.NewRangeValueSelector(variable.ValueRange),
		IsUninitialized: func(_ solve.ScoreDirector, ref domain.EntityRef) bool {
			return b.queens[ref.EntityIndex].row == unassigned
		},
	}
	construction := &phase.ConstructionPhase{Placer: placer, Forager: phase.BestFit{}}

	bus := event.NewBus()
	listener := &countingListener{}
	bus.Register(listener)

	var callbackCount int
	s := &solver.Solver{
		Phases:      []phase.Phase{construction},
		Termination: terminate.Step{Limit: 1000},
		Bus:         bus,
		BestCallback: func(interface{}, score.Score) {
			callbackCount++
		},
	}

	result, err := s.Solve(context.Background(), director)
	require.NoError(t, err)
	require.NotNil(t, result.BestScore)
	require.Equal(t, 1, listener.solvingStarted)
	require.Equal(t, 1, listener.solvingEnded)
	require.Equal(t, 1, listener.phaseStarted)
	require.Equal(t, 1, listener.phaseEnded)
	require.Equal(t, 1, callbackCount)

	for _, q := range b.queens {
		require.NotEqual(t, unassigned, q.row)
	}
}

func TestSolverRespectsContextCancellation(t *testing.T) {
	b := &board{queens: []*queen{{row: unassigned}}}
	desc := domain.NewSolutionDescriptor([]domain.EntityDescriptor{queenDescriptor()}, nil)
	director := solve.NewScoreDirector(b, desc, noopConstraintSet(desc), cloneBoard)

	variable := desc.Entities[0].Variables[0]
	placer := &phase.StandardEntityPlacer{
		Entities: selector.NewFromSolutionEntitySelector(0),
		Variable: variable,
		Values:   selector.NewRangeValueSelector(variable.ValueRange),
		IsUninitialized: func(solve.ScoreDirector, domain.EntityRef) bool { return true },
	}
	construction := &phase.ConstructionPhase{Placer: placer, Forager: phase.BestFit{}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &solver.Solver{Phases: []phase.Phase{construction}, Termination: terminate.Time{Limit: time.Hour}}
	result, err := s.Solve(ctx, director)
	require.NoError(t, err)
	require.Equal(t, unassigned, b.queens[0].row)
	require.Equal(t, int64(0), result.Stats.TotalSteps)
}
