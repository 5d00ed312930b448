package accept

import (
	"math"
	"math/rand"

	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// SimulatedAnnealing accepts strictly-better candidates unconditionally.
// A candidate that deteriorates any hard level is never accepted. A
// candidate that only deteriorates the soft levels is accepted with
// probability exp(deltaSoft / temperature), Metropolis-style; the
// temperature cools geometrically (temperature *= CoolingRate) once per
// committed step (spec §4.K, §9's resolved rounding/acceptance rule).
type SimulatedAnnealing struct {
	StartingTemperature float64
	CoolingRate         float64
	Rand                *rand.Rand

	temperature float64
}

// NewSimulatedAnnealing constructs a SimulatedAnnealing acceptor.
// coolingRate should be in (0, 1]; 1 disables cooling.
func NewSimulatedAnnealing(startingTemperature, coolingRate float64, rng *rand.Rand) *SimulatedAnnealing {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &SimulatedAnnealing{StartingTemperature: startingTemperature, CoolingRate: coolingRate, Rand: rng}
}

func (a *SimulatedAnnealing) PhaseStarted(score.Score) {
	a.temperature = a.StartingTemperature
}

func (a *SimulatedAnnealing) IsAccepted(lastStepScore, candidateScore score.Score, _ []domain.EntityRef) bool {
	hardLast, softLast := lastStepScore.Levels()
	hardCand, softCand := candidateScore.Levels()

	for i := range hardCand {
		if hardCand[i] < hardLast[i] {
			return false
		}
	}

	cmp, err := candidateScore.CompareTo(lastStepScore)
	if err == nil && cmp > 0 {
		return true
	}

	var deltaSoft float64
	for i := range softCand {
		deltaSoft += float64(softCand[i] - softLast[i])
	}
	if deltaSoft >= 0 {
		return true
	}
	if a.temperature <= 0 {
		return false
	}
	prob := math.Exp(deltaSoft / a.temperature)
	return a.Rand.Float64() < prob
}

func (a *SimulatedAnnealing) StepEnded(score.Score, []domain.EntityRef) {
	a.temperature *= a.CoolingRate
}

func (a *SimulatedAnnealing) PhaseEnded() {}
