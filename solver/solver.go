package solver

import (
	"context"
	"time"

	"github.com/lattice-forge/lattice-solver/event"
	"github.com/lattice-forge/lattice-solver/phase"
	"github.com/lattice-forge/lattice-solver/score"
	"github.com/lattice-forge/lattice-solver/solve"
	"github.com/lattice-forge/lattice-solver/terminate"
)

// Stats summarizes one Solve call.
type Stats struct {
	PhaseCount int
	TotalSteps int64
	Elapsed    time.Duration
}

// SolveResult is the outcome of a Solve call: the best solution found,
// its score, and run statistics.
type SolveResult struct {
	BestSolution interface{}
	BestScore    score.Score
	Stats        Stats
}

// Solver runs Phases in order against one director, stopping at the
// first phase-internal termination or Termination/ctx cancellation
// between phases.
type Solver struct {
	Phases      []phase.Phase
	Termination terminate.Termination
	Bus         *event.Bus
	// BestCallback, if set, is invoked after every phase with the
	// current best solution and score (spec §4.M "update best after
	// each phase").
	BestCallback func(solution interface{}, bestScore score.Score)
}

// ctxTermination adapts a context.Context's cancellation into a
// terminate.Termination so Solve can fold it into the phase-boundary
// check alongside the Solver's own Termination.
type ctxTermination struct{ ctx context.Context }

func (c ctxTermination) IsTerminated(terminate.Context) bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

func (s *Solver) effectiveTermination(ctx context.Context) terminate.Termination {
	terms := make([]terminate.Termination, 0, 2)
	if s.Termination != nil {
		terms = append(terms, s.Termination)
	}
	terms = append(terms, ctxTermination{ctx})
	return terminate.Or{Terms: terms}
}

// Solve drives director through every phase in order.
func (s *Solver) Solve(ctx context.Context, director solve.ScoreDirector) (*SolveResult, error) {
	start := time.Now()
	bus := s.Bus
	if bus == nil {
		bus = event.NewBus()
	}

	initialScore, err := director.CalculateScore()
	if err != nil {
		return nil, err
	}

	state := phase.NewState(director, bus, start)
	state.BestScore = initialScore
	state.BestSolution = director.CloneWorkingSolution()

	bus.SolvingStarted(director.WorkingSolution())

	term := s.effectiveTermination(ctx)
	terminatedEarly := false

	for i, ph := range s.Phases {
		if term.IsTerminated(state.TerminationContext(time.Now())) {
			terminatedEarly = true
			break
		}
		bus.PhaseStarted(i, ph.TypeName())
		if err := ph.Run(state, term); err != nil {
			bus.PhaseEnded(i, ph.TypeName())
			bus.SolvingEnded(state.BestSolution, true)
			return nil, err
		}
		bus.PhaseEnded(i, ph.TypeName())
		if s.BestCallback != nil {
			s.BestCallback(state.BestSolution, state.BestScore)
		}
	}

	bus.SolvingEnded(state.BestSolution, terminatedEarly)

	return &SolveResult{
		BestSolution: state.BestSolution,
		BestScore:    state.BestScore,
		Stats: Stats{
			PhaseCount: len(s.Phases),
			TotalSteps: state.StepIndex,
			Elapsed:    time.Since(start),
		},
	}, nil
}
