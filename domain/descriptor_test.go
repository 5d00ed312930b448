package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/domain"
)

// queen is a minimal planning entity used to exercise SolutionDescriptor
// without pulling in a full example problem.
type queen struct {
	column int
	row    int // -1 means unassigned
}

type board struct {
	queens []*queen
}

func queenDescriptor() domain.EntityDescriptor {
	return domain.EntityDescriptor{
		Name:  "queen",
		Count: func(sol interface{}) int { return len(sol.(*board).queens) },
		Get:   func(sol interface{}, i int) interface{} { return sol.(*board).queens[i] },
		Variables: []domain.VariableDescriptor{
			{
				Name:       "row",
				Kind:       domain.GenuineBasic,
				ValueRange: domain.CountableValueRange(0, 4),
				Get:        func(sol interface{}, i int) interface{} { return sol.(*board).queens[i].row },
				Set: func(sol interface{}, i int, v interface{}) {
					sol.(*board).queens[i].row = v.(int)
				},
			},
		},
	}
}

func newBoard(n int) *board {
	b := &board{}
	for i := 0; i < n; i++ {
		b.queens = append(b.queens, &queen{column: i, row: -1})
	}
	return b
}

func TestSolutionDescriptorCountAndGet(t *testing.T) {
	desc := domain.NewSolutionDescriptor([]domain.EntityDescriptor{queenDescriptor()}, nil)
	b := newBoard(4)

	require.Equal(t, 4, desc.EntityCount(b, 0))
	require.Equal(t, 4, desc.TotalEntityCount(b))

	got := desc.GetEntity(b, domain.EntityRef{DescriptorIndex: 0, EntityIndex: 2})
	require.Equal(t, b.queens[2], got)
}

func TestGetEntityOutOfBoundsReturnsNilNotPanic(t *testing.T) {
	desc := domain.NewSolutionDescriptor([]domain.EntityDescriptor{queenDescriptor()}, nil)
	b := newBoard(4)

	require.Nil(t, desc.GetEntity(b, domain.EntityRef{DescriptorIndex: 0, EntityIndex: 99}))
	require.Nil(t, desc.GetEntity(b, domain.EntityRef{DescriptorIndex: 7, EntityIndex: 0}))
}

func TestVariableGetSetRoundTrip(t *testing.T) {
	qd := queenDescriptor()
	b := newBoard(4)
	rowVar, ok := qd.Variable("row")
	require.True(t, ok)

	rowVar.Set(b, 1, 3)
	require.Equal(t, 3, rowVar.Get(b, 1))
	require.Equal(t, 3, b.queens[1].row)
}

func TestValueRangeCountableAndList(t *testing.T) {
	countable := domain.CountableValueRange(0, 4)
	require.Equal(t, 4, countable.Size())
	require.Equal(t, int64(2), countable.At(2))
	require.False(t, countable.IsEmpty())

	empty := domain.CountableValueRange(5, 5)
	require.True(t, empty.IsEmpty())

	list := domain.ListValueRange([]interface{}{"a", "b", "c"})
	require.Equal(t, 3, list.Size())
	require.Equal(t, "b", list.At(1))
}
