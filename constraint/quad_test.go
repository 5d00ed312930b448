package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

func alwaysTrue4([4]interface{}) bool { return true }

func onePerQuad([4]interface{}) score.Score { return score.NewHardSoft(1, 0) }

func newSameRowQuad(desc *domain.SolutionDescriptor) *constraint.Quad {
	return constraint.NewQuad("sameRowQuad", "sameRowQuad", true, desc, 0, score.ZeroHardSoft(), rowOf, alwaysTrue4, onePerQuad, true)
}

func TestQuadInitializeCountsQuadruples(t *testing.T) {
	desc := boardDescriptor()
	b := newBoard(0, 0, 0, 0, 1) // 4 queens share row 0 -> exactly one quadruple
	c := newSameRowQuad(desc)

	total, err := c.Initialize(b)
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(-1, 0), total)

	n, err := c.MatchCount(b)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestQuadRetractBreaksTheOnlyQuadruple(t *testing.T) {
	desc := boardDescriptor()
	b := newBoard(0, 0, 0, 0, 1)
	c := newSameRowQuad(desc)
	_, err := c.Initialize(b)
	require.NoError(t, err)

	delta, err := c.OnRetract(b, domain.EntityRef{DescriptorIndex: 0, EntityIndex: 3})
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(1, 0), delta)

	n, err := c.MatchCount(b)
	require.NoError(t, err)
	require.Equal(t, 1, n) // MatchCount rescans the live board, unaffected by the retract bookkeeping
}
