package phase

import (
	"sort"
	"time"

	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/move"
	"github.com/lattice-forge/lattice-solver/score"
	"github.com/lattice-forge/lattice-solver/selector"
	"github.com/lattice-forge/lattice-solver/solve"
	"github.com/lattice-forge/lattice-solver/terminate"
)

// Placement is one uninitialized entity paired with the candidate
// moves that could assign it a value (spec §4.I).
type Placement struct {
	Ref   domain.EntityRef
	Moves []move.Move
}

// EntityPlacer walks uninitialized entities, yielding a Placement per
// entity.
type EntityPlacer interface {
	Placements(director solve.ScoreDirector) []Placement
}

// StandardEntityPlacer enumerates change moves over Values for every
// entity Entities yields that IsUninitialized reports true for.
type StandardEntityPlacer struct {
	Entities        selector.EntitySelector
	Variable        domain.VariableDescriptor
	Values          selector.ValueSelector
	IsUninitialized func(director solve.ScoreDirector, ref domain.EntityRef) bool
}

func (p *StandardEntityPlacer) Placements(director solve.ScoreDirector) []Placement {
	n := p.Entities.Size(director)
	var out []Placement
	for i := int64(0); i < n; i++ {
		ref := p.Entities.Select(director, i)
		if !p.IsUninitialized(director, ref) {
			continue
		}
		valueCount := p.Values.Size(director, ref)
		moves := make([]move.Move, 0, valueCount)
		for v := int64(0); v < valueCount; v++ {
			value := p.Values.Select(director, ref, v)
			moves = append(moves, move.NewChange(ref, p.Variable, value))
		}
		out = append(out, Placement{Ref: ref, Moves: moves})
	}
	return out
}

// SortedEntityPlacer decorates a base EntityPlacer, reordering its
// placements with Less (the "decreasing" variant of first-fit sorts
// placements by descending difficulty, e.g. fewest remaining values
// first).
type SortedEntityPlacer struct {
	Base EntityPlacer
	Less func(a, b Placement) bool
}

func (p *SortedEntityPlacer) Placements(director solve.ScoreDirector) []Placement {
	placements := p.Base.Placements(director)
	sort.SliceStable(placements, func(i, j int) bool { return p.Less(placements[i], placements[j]) })
	return placements
}

// ConstructionForager picks one move out of a placement's candidates.
type ConstructionForager interface {
	Pick(rd *solve.RecordingScoreDirector, moves []move.Move) (index int, resultScore score.Score, ok bool)
}

// BestFit evaluates every candidate (do, read score, undo) and keeps the
// one with the best resulting score, ties broken by insertion order.
type BestFit struct{}

func (BestFit) Pick(rd *solve.RecordingScoreDirector, moves []move.Move) (int, score.Score, bool) {
	bestIdx := -1
	var bestScore score.Score
	for i, m := range moves {
		if !m.IsDoable(rd) {
			continue
		}
		if err := m.DoMove(rd); err != nil {
			rd.UndoChanges()
			continue
		}
		s, err := rd.CalculateScore()
		if err != nil {
			rd.UndoChanges()
			continue
		}
		if bestIdx == -1 {
			bestIdx, bestScore = i, s
		} else if cmp, err := s.CompareTo(bestScore); err == nil && cmp > 0 {
			bestIdx, bestScore = i, s
		}
		rd.UndoChanges()
	}
	return bestIdx, bestScore, bestIdx != -1
}

// FirstFit commits the first feasible candidate; if none is feasible it
// falls back to the first doable one.
type FirstFit struct{}

func (FirstFit) Pick(rd *solve.RecordingScoreDirector, moves []move.Move) (int, score.Score, bool) {
	firstDoableIdx := -1
	var firstDoableScore score.Score
	for i, m := range moves {
		if !m.IsDoable(rd) {
			continue
		}
		if err := m.DoMove(rd); err != nil {
			rd.UndoChanges()
			continue
		}
		s, err := rd.CalculateScore()
		if err != nil {
			rd.UndoChanges()
			continue
		}
		feasible := s.IsFeasible()
		rd.UndoChanges()
		if firstDoableIdx == -1 {
			firstDoableIdx, firstDoableScore = i, s
		}
		if feasible {
			return i, s, true
		}
	}
	return firstDoableIdx, firstDoableScore, firstDoableIdx != -1
}

// ConstructionPhase assigns an initial value to every uninitialized
// entity (spec §4.I).
type ConstructionPhase struct {
	Placer  EntityPlacer
	Forager ConstructionForager
}

func (*ConstructionPhase) TypeName() string { return "construction" }

func (p *ConstructionPhase) Run(state *State, term terminate.Termination) error {
	placements := p.Placer.Placements(state.Director)
	rd := solve.NewRecordingScoreDirector(state.Director)

	for _, placement := range placements {
		now := time.Now()
		if term.IsTerminated(state.TerminationContext(now)) {
			break
		}
		if state.Bus != nil {
			state.Bus.StepStarted(int(state.StepIndex))
		}

		idx, _, ok := p.Forager.Pick(rd, placement.Moves)
		if ok {
			chosen := placement.Moves[idx]
			if err := chosen.DoMove(rd); err != nil {
				return err
			}
			rd.Commit()

			committed, err := state.Director.CalculateScore()
			if err != nil {
				return err
			}
			state.ConsiderBest(time.Now(), committed)
			if state.Bus != nil {
				state.Bus.StepEnded(int(state.StepIndex), committed)
			}
		}
		state.StepIndex++
	}
	return nil
}
