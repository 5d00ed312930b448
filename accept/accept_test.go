package accept_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/accept"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

func TestHillClimbing(t *testing.T) {
	var a accept.HillClimbing
	last := score.NewHardSoft(0, -5)
	require.True(t, a.IsAccepted(last, score.NewHardSoft(0, -5), nil))
	require.True(t, a.IsAccepted(last, score.NewHardSoft(0, -4), nil))
	require.False(t, a.IsAccepted(last, score.NewHardSoft(0, -6), nil))
}

func TestLateAcceptance(t *testing.T) {
	a := accept.NewLateAcceptance(2)
	initial := score.NewHardSoft(0, -10)
	a.PhaseStarted(initial)

	// Step 0: worse than last (-10) but equal to horizon ring[0]=-10 -> accepted.
	require.True(t, a.IsAccepted(score.NewHardSoft(0, -8), score.NewHardSoft(0, -10), nil))
	a.StepEnded(score.NewHardSoft(0, -10), nil)

	// Step 1: candidate worse than both last step and ring[1] (-10) -> rejected.
	require.False(t, a.IsAccepted(score.NewHardSoft(0, -10), score.NewHardSoft(0, -20), nil))
}

func TestSimulatedAnnealingNeverAcceptsHardDeterioration(t *testing.T) {
	a := accept.NewSimulatedAnnealing(100, 0.9, rand.New(rand.NewSource(1)))
	a.PhaseStarted(score.NewHardSoft(0, 0))
	require.False(t, a.IsAccepted(score.NewHardSoft(0, 0), score.NewHardSoft(-1, 5), nil))
}

func TestSimulatedAnnealingAlwaysAcceptsStrictlyBetter(t *testing.T) {
	a := accept.NewSimulatedAnnealing(0.001, 0.9, rand.New(rand.NewSource(1)))
	a.PhaseStarted(score.NewHardSoft(0, 0))
	require.True(t, a.IsAccepted(score.NewHardSoft(0, -5), score.NewHardSoft(0, -1), nil))
}

func TestTabuRejectsRecentlyTouchedEntities(t *testing.T) {
	a := accept.NewTabu(1)
	a.PhaseStarted(score.NewHardSoft(0, 0))

	refA := domain.EntityRef{DescriptorIndex: 0, EntityIndex: 0}
	refB := domain.EntityRef{DescriptorIndex: 0, EntityIndex: 1}

	require.True(t, a.IsAccepted(nil, nil, []domain.EntityRef{refA}))
	a.StepEnded(nil, []domain.EntityRef{refA})

	require.False(t, a.IsAccepted(nil, nil, []domain.EntityRef{refA}))
	require.True(t, a.IsAccepted(nil, nil, []domain.EntityRef{refB}))
}

func TestGreatDelugeWaterLevelTracksCommittedScore(t *testing.T) {
	g := accept.NewGreatDeluge(big.NewRat(1, 2))
	g.PhaseStarted(score.NewHardSoft(0, -100))

	require.True(t, g.IsAccepted(score.NewHardSoft(0, -100), score.NewHardSoft(0, -100), nil))
	require.False(t, g.IsAccepted(score.NewHardSoft(0, -100), score.NewHardSoft(0, -101), nil))

	g.StepEnded(score.NewHardSoft(0, -80), nil)
	// Water level moved halfway from -100 toward -80, i.e. -90; -85 now clears it.
	require.True(t, g.IsAccepted(score.NewHardSoft(0, -80), score.NewHardSoft(0, -85), nil))
}
