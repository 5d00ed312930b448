package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

func TestConstraintSetFansOutAndSums(t *testing.T) {
	desc := boardDescriptor()
	b := newBoard(0, 0, 1, 2) // two queens in row 0 collide; rowZero also penalizes both

	set, err := constraint.NewConstraintSet(
		score.ZeroHardSoft(),
		newRowZeroUni(desc),
		newSameRowConstraint(desc),
	)
	require.NoError(t, err)

	total, err := set.InitializeAll(b)
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(-3, 0), total) // -2 (rowZero x2) + -1 (the one colliding pair)

	evalTotal, err := set.EvaluateAll(b)
	require.NoError(t, err)
	require.Equal(t, total, evalTotal)
}

func TestConstraintSetInsertRetractKeepsTotalInSync(t *testing.T) {
	desc := boardDescriptor()
	b := newBoard(0, 0, 1, 2)
	set, err := constraint.NewConstraintSet(
		score.ZeroHardSoft(),
		newRowZeroUni(desc),
		newSameRowConstraint(desc),
	)
	require.NoError(t, err)
	_, err = set.InitializeAll(b)
	require.NoError(t, err)

	_, err = set.OnRetractAll(b, domain.EntityRef{DescriptorIndex: 0, EntityIndex: 1})
	require.NoError(t, err)
	b.queens[1].row = 5
	_, err = set.OnInsertAll(b, domain.EntityRef{DescriptorIndex: 0, EntityIndex: 1})
	require.NoError(t, err)

	rescanned, err := set.EvaluateAll(b)
	require.NoError(t, err)
	require.Equal(t, rescanned, set.Total())
}

func TestNewConstraintSetRejectsShapeMismatch(t *testing.T) {
	desc := boardDescriptor()
	simpleUni := constraint.NewUni(
		"simple", "simple", true, desc, 0,
		score.ZeroSimple(),
		func(interface{}) bool { return true },
		func(interface{}) score.Score { return score.Simple(1) },
		true,
	)

	_, err := constraint.NewConstraintSet(score.ZeroHardSoft(), simpleUni)
	require.ErrorIs(t, err, constraint.ErrShapeMismatch)
}
