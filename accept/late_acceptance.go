package accept

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// LateAcceptance keeps a ring buffer of the last L committed scores,
// initialized to the phase's starting score. A candidate is accepted if
// it's at least as good as the previous step, or at least as good as
// whatever score was committed L steps ago (spec §4.K).
type LateAcceptance struct {
	L int

	ring []score.Score
	step int64
}

// NewLateAcceptance constructs a LateAcceptance acceptor with ring size l.
func NewLateAcceptance(l int) *LateAcceptance {
	return &LateAcceptance{L: l}
}

func (a *LateAcceptance) PhaseStarted(initialScore score.Score) {
	a.ring = make([]score.Score, a.L)
	for i := range a.ring {
		a.ring[i] = initialScore
	}
	a.step = 0
}

func (a *LateAcceptance) IsAccepted(lastStepScore, candidateScore score.Score, _ []domain.EntityRef) bool {
	cmp, err := candidateScore.CompareTo(lastStepScore)
	if err == nil && cmp >= 0 {
		return true
	}
	horizon := a.ring[a.step%int64(a.L)]
	cmp2, err := candidateScore.CompareTo(horizon)
	if err != nil {
		return false
	}
	return cmp2 >= 0
}

func (a *LateAcceptance) StepEnded(committedScore score.Score, _ []domain.EntityRef) {
	a.ring[a.step%int64(a.L)] = committedScore
	a.step++
}

func (a *LateAcceptance) PhaseEnded() {}
