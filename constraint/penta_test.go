package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

func alwaysTrue5([5]interface{}) bool { return true }

func onePerPenta([5]interface{}) score.Score { return score.NewHardSoft(1, 0) }

func newSameRowPenta(desc *domain.SolutionDescriptor) *constraint.Penta {
	return constraint.NewPenta("sameRowPenta", "sameRowPenta", true, desc, 0, score.ZeroHardSoft(), rowOf, alwaysTrue5, onePerPenta, true)
}

func TestPentaInitializeCountsQuintuples(t *testing.T) {
	desc := boardDescriptor()
	b := newBoard(0, 0, 0, 0, 0, 1) // 5 queens share row 0 -> exactly one quintuple
	c := newSameRowPenta(desc)

	total, err := c.Initialize(b)
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(-1, 0), total)

	n, err := c.MatchCount(b)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestPentaEvaluateMatchesInitialize(t *testing.T) {
	desc := boardDescriptor()
	b := newBoard(0, 0, 0, 0, 0, 1)
	c := newSameRowPenta(desc)

	initTotal, err := c.Initialize(b)
	require.NoError(t, err)
	evalTotal, err := c.Evaluate(b)
	require.NoError(t, err)
	require.Equal(t, initTotal, evalTotal)
}
