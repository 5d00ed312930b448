package phase

import (
	"time"

	"github.com/lattice-forge/lattice-solver/score"
	"github.com/lattice-forge/lattice-solver/solve"
	"github.com/lattice-forge/lattice-solver/terminate"
)

// ExhaustiveSearchPhase explores the entire assignment tree depth-first,
// backtracking after each leaf or exhausted branch (grounded on
// original_source's solverforge-solver exhaustive phase, simplified to
// its depth-first exploration mode — spec §1 calls this phase "not the
// hard part" and a fit for tiny instances only, e.g. 4-queens).
//
// Placer supplies the fixed entity order and, for each entity, the full
// candidate move list; the tree's branching factor at depth d is
// len(placements[d].Moves). Prune, if set, lets a caller cut a branch
// early given the best score found so far; nil never prunes.
type ExhaustiveSearchPhase struct {
	Placer    EntityPlacer
	Prune     func(rd *solve.RecordingScoreDirector, depth int, best score.Score) bool
	NodeLimit int64
}

func (*ExhaustiveSearchPhase) TypeName() string { return "exhaustive" }

func (p *ExhaustiveSearchPhase) Run(state *State, term terminate.Termination) error {
	placements := p.Placer.Placements(state.Director)
	if len(placements) == 0 {
		return nil
	}

	rd := solve.NewRecordingScoreDirector(state.Director)
	moveIdx := make([]int, len(placements))
	// levelMark[d] is the undo-log length just before the move chosen at
	// depth d (the one that advanced the search to depth d+1) was applied;
	// backtracking to depth d undoes only down to levelMark[d], never the
	// whole log, since rd is shared across the entire descent.
	levelMark := make([]int, len(placements))
	var nodesExplored int64
	var bestScore score.Score

	depth := 0
	for {
		now := time.Now()
		if term.IsTerminated(state.TerminationContext(now)) {
			break
		}
		if p.NodeLimit > 0 && nodesExplored >= p.NodeLimit {
			break
		}

		if depth == len(placements) {
			nodesExplored++
			leafScore, err := rd.CalculateScore()
			if err != nil {
				return err
			}
			if bestScore == nil {
				bestScore = leafScore
				state.ConsiderBest(now, leafScore)
			} else if cmp, err := leafScore.CompareTo(bestScore); err == nil && cmp > 0 {
				bestScore = leafScore
				state.ConsiderBest(now, leafScore)
			}
			depth--
			rd.UndoTo(levelMark[depth])
			continue
		}
		if depth < 0 {
			break
		}

		if moveIdx[depth] >= len(placements[depth].Moves) {
			moveIdx[depth] = 0
			depth--
			if depth >= 0 {
				rd.UndoTo(levelMark[depth])
			}
			continue
		}

		m := placements[depth].Moves[moveIdx[depth]]
		moveIdx[depth]++
		if !m.IsDoable(rd) {
			continue
		}
		if p.Prune != nil && p.Prune(rd, depth, bestScore) {
			continue
		}
		levelMark[depth] = rd.Mark()
		if err := m.DoMove(rd); err != nil {
			continue
		}
		nodesExplored++
		depth++
	}

	return nil
}
