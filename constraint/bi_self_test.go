package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

func rowOf(e interface{}) interface{} { return e.(*queen).row }

func alwaysTrue2(interface{}, interface{}) bool { return true }

func onePerPair(interface{}, interface{}) score.Score { return score.NewHardSoft(1, 0) }

func newSameRowConstraint(desc *domain.SolutionDescriptor) *constraint.BiSelf {
	return constraint.NewBiSelf("sameRow", "sameRow", true, desc, 0, score.ZeroHardSoft(), rowOf, alwaysTrue2, onePerPair, true)
}

func TestBiSelfInitializeCountsCollidingPairs(t *testing.T) {
	desc := boardDescriptor()
	b := newBoard(0, 1, 0, 0) // queens 0,2,3 collide (3 queens in row 0)
	c := newSameRowConstraint(desc)

	total, err := c.Initialize(b)
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(-3, 0), total)

	n, err := c.MatchCount(b)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestBiSelfMoveOutOfGroupReducesPenalty(t *testing.T) {
	desc := boardDescriptor()
	b := newBoard(0, 1, 0, 0)
	c := newSameRowConstraint(desc)
	_, err := c.Initialize(b)
	require.NoError(t, err)

	delta, err := c.OnRetract(b, domain.EntityRef{DescriptorIndex: 0, EntityIndex: 2})
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(2, 0), delta) // queen 2 was in 2 colliding pairs

	b.queens[2].row = 5
	delta, err = c.OnInsert(b, domain.EntityRef{DescriptorIndex: 0, EntityIndex: 2})
	require.NoError(t, err)
	require.Equal(t, score.ZeroHardSoft(), delta)

	full, err := c.Evaluate(b)
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(-1, 0), full)
}
