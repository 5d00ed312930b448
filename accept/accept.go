package accept

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// Acceptor decides whether a candidate move's resulting score should be
// offered to the forager (spec §4.K).
type Acceptor interface {
	PhaseStarted(initialScore score.Score)
	// IsAccepted is also told which entities the candidate move touched,
	// since Tabu needs that to judge a candidate; acceptors that don't
	// need it ignore touched.
	IsAccepted(lastStepScore, candidateScore score.Score, touched []domain.EntityRef) bool
	StepEnded(committedScore score.Score, touched []domain.EntityRef)
	PhaseEnded()
}

// HillClimbing accepts only candidates at least as good as the last
// committed step.
type HillClimbing struct{}

func (HillClimbing) PhaseStarted(score.Score) {}

func (HillClimbing) IsAccepted(lastStepScore, candidateScore score.Score, _ []domain.EntityRef) bool {
	cmp, err := candidateScore.CompareTo(lastStepScore)
	if err != nil {
		return false
	}
	return cmp >= 0
}

func (HillClimbing) StepEnded(score.Score, []domain.EntityRef) {}
func (HillClimbing) PhaseEnded()                               {}
