package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

func rowZeroFilter(e interface{}) bool { return e.(*queen).row == 0 }

func onePerMatch(interface{}) score.Score { return score.NewHardSoft(1, 0) }

func newRowZeroUni(desc *domain.SolutionDescriptor) *constraint.Uni {
	return constraint.NewUni("rowZero", "rowZero", true, desc, 0, score.ZeroHardSoft(), rowZeroFilter, onePerMatch, true)
}

func TestUniInitializePenalizesEachMatch(t *testing.T) {
	desc := boardDescriptor()
	b := newBoard(0, 1, 0, 3)
	c := newRowZeroUni(desc)

	total, err := c.Initialize(b)
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(-2, 0), total)

	n, err := c.MatchCount(b)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestUniInsertRetractMatchesEvaluate(t *testing.T) {
	desc := boardDescriptor()
	b := newBoard(0, 1, 0, 3)
	c := newRowZeroUni(desc)
	_, err := c.Initialize(b)
	require.NoError(t, err)

	// Entity 1 moves from row 1 to row 0: retract old, mutate, insert new.
	delta, err := c.OnRetract(b, domain.EntityRef{DescriptorIndex: 0, EntityIndex: 1})
	require.NoError(t, err)
	require.Equal(t, score.ZeroHardSoft(), delta) // wasn't matching before

	b.queens[1].row = 0
	delta, err = c.OnInsert(b, domain.EntityRef{DescriptorIndex: 0, EntityIndex: 1})
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(-1, 0), delta)

	full, err := c.Evaluate(b)
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(-3, 0), full)
}

func TestUniResetClearsState(t *testing.T) {
	desc := boardDescriptor()
	b := newBoard(0, 1)
	c := newRowZeroUni(desc)
	_, err := c.Initialize(b)
	require.NoError(t, err)

	c.Reset()
	n, err := c.MatchCount(b)
	require.NoError(t, err)
	require.Equal(t, 1, n) // MatchCount rescans from scratch, independent of Reset
	matches, err := c.GetMatches(b)
	require.NoError(t, err)
	require.Len(t, matches, 1)
}
