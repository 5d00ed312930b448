package phase

import (
	"time"

	"github.com/lattice-forge/lattice-solver/event"
	"github.com/lattice-forge/lattice-solver/score"
	"github.com/lattice-forge/lattice-solver/solve"
	"github.com/lattice-forge/lattice-solver/terminate"
)

// State is the mutable, cross-phase state a Solver threads through every
// phase: the director, the event bus, the best solution seen so far, and
// enough bookkeeping to build a terminate.Context between steps.
type State struct {
	Director solve.ScoreDirector
	Bus      *event.Bus

	StartTime time.Time

	BestScore    score.Score
	BestSolution interface{}

	StepIndex           int64
	LastImprovementStep int64
	LastImprovementTime time.Time
}

// NewState constructs a State over director, with clock anchored at now.
func NewState(director solve.ScoreDirector, bus *event.Bus, now time.Time) *State {
	return &State{Director: director, Bus: bus, StartTime: now, LastImprovementTime: now}
}

// TerminationContext builds a terminate.Context snapshot from the
// current state, as of now.
func (s *State) TerminationContext(now time.Time) terminate.Context {
	return terminate.Context{
		StepIndex:             s.StepIndex,
		Elapsed:               now.Sub(s.StartTime),
		BestScore:             s.BestScore,
		StepsSinceImprovement: s.StepIndex - s.LastImprovementStep,
		TimeSinceImprovement:  now.Sub(s.LastImprovementTime),
	}
}

// ConsiderBest updates the best-known solution/score if candidateScore
// strictly improves on it, cloning the working solution and notifying
// the bus (spec §4.I/§4.J "update best if strictly better", §4.M step 2).
func (s *State) ConsiderBest(now time.Time, candidateScore score.Score) bool {
	if s.BestScore != nil {
		cmp, err := candidateScore.CompareTo(s.BestScore)
		if err != nil || cmp <= 0 {
			return false
		}
	}
	s.BestScore = candidateScore
	s.BestSolution = s.Director.CloneWorkingSolution()
	s.LastImprovementStep = s.StepIndex
	s.LastImprovementTime = now
	if s.Bus != nil {
		s.Bus.BestSolutionChanged(s.BestSolution, s.BestScore)
	}
	return true
}
