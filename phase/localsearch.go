package phase

import (
	"time"

	"github.com/lattice-forge/lattice-solver/accept"
	"github.com/lattice-forge/lattice-solver/score"
	"github.com/lattice-forge/lattice-solver/selector"
	"github.com/lattice-forge/lattice-solver/solve"
	"github.com/lattice-forge/lattice-solver/terminate"
)

// LocalSearchForager accumulates the accepted candidates of a single
// step and picks one (spec §4.J steps 2e-3).
type LocalSearchForager interface {
	// Add records that candidate index i produced candidateScore and was
	// accepted by the acceptor.
	Add(index int, candidateScore score.Score)
	// StopEarly reports whether the step should stop evaluating further
	// candidates now that Add has been called at least once.
	StopEarly() bool
	// Pick returns the chosen candidate, or ok=false if Add was never
	// called this step.
	Pick() (index int, pickedScore score.Score, ok bool)
	// Reset clears accumulated state for the next step.
	Reset()
}

// HighestScoreForager scans every accepted candidate in a step and keeps
// the best-scoring one, ties broken by first-seen (enumeration order).
type HighestScoreForager struct {
	idx int
	sc  score.Score
	has bool
}

func (f *HighestScoreForager) Add(i int, s score.Score) {
	if !f.has {
		f.idx, f.sc, f.has = i, s, true
		return
	}
	if cmp, err := s.CompareTo(f.sc); err == nil && cmp > 0 {
		f.idx, f.sc = i, s
	}
}

func (f *HighestScoreForager) StopEarly() bool { return false }

func (f *HighestScoreForager) Pick() (int, score.Score, bool) { return f.idx, f.sc, f.has }

func (f *HighestScoreForager) Reset() { f.has = false }

// FirstAcceptedForager takes the first accepted candidate in a step and
// stops evaluating the rest, trading solution quality for speed.
type FirstAcceptedForager struct {
	idx int
	sc  score.Score
	has bool
}

func (f *FirstAcceptedForager) Add(i int, s score.Score) {
	if !f.has {
		f.idx, f.sc, f.has = i, s, true
	}
}

func (f *FirstAcceptedForager) StopEarly() bool { return f.has }

func (f *FirstAcceptedForager) Pick() (int, score.Score, bool) { return f.idx, f.sc, f.has }

func (f *FirstAcceptedForager) Reset() { f.has = false }

// LocalSearchPhase repeatedly samples moves, scores them against the
// acceptor, and commits the forager's pick (spec §4.J). StepLimit of 0
// means no step limit beyond term.
type LocalSearchPhase struct {
	Selector  selector.MoveSelector
	Acceptor  accept.Acceptor
	Forager   LocalSearchForager
	StepLimit int64
}

func (*LocalSearchPhase) TypeName() string { return "local-search" }

func (p *LocalSearchPhase) Run(state *State, term terminate.Termination) error {
	lastStepScore, err := state.Director.CalculateScore()
	if err != nil {
		return err
	}
	p.Acceptor.PhaseStarted(lastStepScore)

	var arena Arena
	for {
		now := time.Now()
		if term.IsTerminated(state.TerminationContext(now)) {
			break
		}
		if p.StepLimit > 0 && state.StepIndex >= p.StepLimit {
			break
		}
		if state.Bus != nil {
			state.Bus.StepStarted(int(state.StepIndex))
		}

		arena.Reset()
		p.Forager.Reset()
		n := p.Selector.Size(state.Director)
		for i := int64(0); i < n; i++ {
			arena.Add(p.Selector.Select(state.Director, i))
		}

		rd := solve.NewRecordingScoreDirector(state.Director)
		for i := 0; i < arena.Len(); i++ {
			m := arena.At(i)
			if !m.IsDoable(rd) {
				continue
			}
			if err := m.DoMove(rd); err != nil {
				rd.UndoChanges()
				continue
			}
			candidateScore, err := rd.CalculateScore()
			if err != nil {
				rd.UndoChanges()
				continue
			}
			accepted := p.Acceptor.IsAccepted(lastStepScore, candidateScore, m.EntityRefs())
			rd.UndoChanges()
			if accepted {
				p.Forager.Add(i, candidateScore)
				if p.Forager.StopEarly() {
					break
				}
			}
		}

		idx, newScore, ok := p.Forager.Pick()
		if !ok {
			break
		}
		chosen := arena.Take(idx)
		if err := chosen.DoMove(rd); err != nil {
			return err
		}
		rd.Commit()

		lastStepScore = newScore
		state.ConsiderBest(time.Now(), newScore)
		p.Acceptor.StepEnded(newScore, chosen.EntityRefs())
		if state.Bus != nil {
			state.Bus.StepEnded(int(state.StepIndex), newScore)
		}
		state.StepIndex++
	}

	p.Acceptor.PhaseEnded()
	return nil
}
