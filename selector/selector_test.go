package selector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
	"github.com/lattice-forge/lattice-solver/selector"
	"github.com/lattice-forge/lattice-solver/solve"
)

type queen struct{ row int }
type board struct{ queens []*queen }

func queenDescriptor() domain.EntityDescriptor {
	return domain.EntityDescriptor{
		Name:  "queen",
		Count: func(sol interface{}) int { return len(sol.(*board).queens) },
		Get:   func(sol interface{}, i int) interface{} { return sol.(*board).queens[i] },
		Variables: []domain.VariableDescriptor{{
			Name:       "row",
			Kind:       domain.GenuineBasic,
			ValueRange: domain.CountableValueRange(0, 4),
			Get:        func(sol interface{}, i int) interface{} { return sol.(*board).queens[i].row },
			Set:        func(sol interface{}, i int, v interface{}) { sol.(*board).queens[i].row = v.(int) },
		}},
	}
}

func newDirector(b *board) solve.ScoreDirector {
	desc := domain.NewSolutionDescriptor([]domain.EntityDescriptor{queenDescriptor()}, nil)
	uni := constraint.NewUni("noop", "noop", false, desc, 0, score.ZeroHardSoft(),
		func(interface{}) bool { return false },
		func(interface{}) score.Score { return score.NewHardSoft(1, 0) },
		false,
	)
	set, err := constraint.NewConstraintSet(score.ZeroHardSoft(), uni)
	if err != nil {
		panic(err)
	}
	return solve.NewScoreDirector(b, desc, set, nil)
}

func TestFromSolutionEntitySelector(t *testing.T) {
	b := &board{queens: []*queen{{row: 0}, {row: 1}, {row: 2}}}
	d := newDirector(b)
	es := selector.NewFromSolutionEntitySelector(0)

	require.Equal(t, int64(3), es.Size(d))
	require.Equal(t, domain.EntityRef{DescriptorIndex: 0, EntityIndex: 2}, es.Select(d, 2))
}

func TestChangeMoveSelectorCoversEveryEntityValuePair(t *testing.T) {
	b := &board{queens: []*queen{{row: 0}, {row: 1}}}
	d := newDirector(b)
	desc := domain.NewSolutionDescriptor([]domain.EntityDescriptor{queenDescriptor()}, nil)
	variable := desc.Entities[0].Variables[0]

	es := selector.NewFromSolutionEntitySelector(0)
	vs := selector.NewRangeValueSelector(variable.ValueRange)
	ms := selector.NewChangeMoveSelector(es, vs, variable)

	require.Equal(t, int64(8), ms.Size(d)) // 2 entities * 4 values

	seen := make(map[string]bool)
	for i := int64(0); i < ms.Size(d); i++ {
		m := ms.Select(d, i)
		require.NotNil(t, m)
		seen[m.VariableName()] = true
	}
	require.True(t, seen["row"])
}

func TestSwapMoveSelectorUnorderedPairs(t *testing.T) {
	b := &board{queens: []*queen{{row: 0}, {row: 1}, {row: 2}}}
	d := newDirector(b)
	desc := domain.NewSolutionDescriptor([]domain.EntityDescriptor{queenDescriptor()}, nil)
	variable := desc.Entities[0].Variables[0]

	es := selector.NewFromSolutionEntitySelector(0)
	ms := selector.NewSwapMoveSelector(es, variable)

	require.Equal(t, int64(3), ms.Size(d)) // C(3,2)
	for i := int64(0); i < ms.Size(d); i++ {
		require.NotNil(t, ms.Select(d, i))
	}
}

func TestUnionSumsSizes(t *testing.T) {
	b := &board{queens: []*queen{{row: 0}, {row: 1}}}
	d := newDirector(b)
	desc := domain.NewSolutionDescriptor([]domain.EntityDescriptor{queenDescriptor()}, nil)
	variable := desc.Entities[0].Variables[0]

	es := selector.NewFromSolutionEntitySelector(0)
	vs := selector.NewRangeValueSelector(variable.ValueRange)
	change := selector.NewChangeMoveSelector(es, vs, variable)
	swap := selector.NewSwapMoveSelector(es, variable)

	u := selector.NewUnion(change, swap)
	require.Equal(t, change.Size(d)+swap.Size(d), u.Size(d))
}
