package accept

import (
	"math/big"

	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// GreatDeluge tracks a water level, starting at the phase's initial
// score. A candidate is accepted iff it never deteriorates a hard level
// and is at least as good as the current water level. After each
// committed step the water level drifts toward the committed score by
// RainSpeed (e.g. 1/20 closes a twentieth of the gap per step), so the
// acceptance bar rises to track solving progress (spec §6 acceptor
// config surface names great_deluge without detailing §4.K's body; this
// is the standard formulation).
type GreatDeluge struct {
	RainSpeed *big.Rat

	waterLevel score.Score
}

// NewGreatDeluge constructs a GreatDeluge acceptor; rainSpeed should be
// in (0, 1].
func NewGreatDeluge(rainSpeed *big.Rat) *GreatDeluge {
	return &GreatDeluge{RainSpeed: rainSpeed}
}

func (g *GreatDeluge) PhaseStarted(initialScore score.Score) {
	g.waterLevel = initialScore
}

func (g *GreatDeluge) IsAccepted(lastStepScore, candidateScore score.Score, _ []domain.EntityRef) bool {
	hardLast, _ := lastStepScore.Levels()
	hardCand, _ := candidateScore.Levels()
	for i := range hardCand {
		if hardCand[i] < hardLast[i] {
			return false
		}
	}
	cmp, err := candidateScore.CompareTo(g.waterLevel)
	if err != nil {
		return false
	}
	return cmp >= 0
}

func (g *GreatDeluge) StepEnded(committedScore score.Score, _ []domain.EntityRef) {
	gap, err := g.waterLevel.Subtract(committedScore)
	if err != nil {
		return
	}
	step := gap.Multiply(g.RainSpeed)
	newLevel, err := g.waterLevel.Subtract(step)
	if err != nil {
		return
	}
	g.waterLevel = newLevel
}

func (g *GreatDeluge) PhaseEnded() {}
