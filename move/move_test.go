package move_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/move"
	"github.com/lattice-forge/lattice-solver/score"
	"github.com/lattice-forge/lattice-solver/solve"
)

type queen struct {
	row int
}

type board struct {
	queens []*queen
}

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

func newBoard(rows ...int) *board {
	b := &board{}
	for _, r := range rows {
		b.queens = append(b.queens, &queen{row: r})
	}
	return b
}

func noopConstraintSet(desc *domain.SolutionDescriptor) *constraint.ConstraintSet {
	uni := constraint.NewUni("noop", "noop", false, desc, 0, score.ZeroHardSoft(),
		func(interface{}) bool { return false },
		func(interface{}) score.Score { return score.NewHardSoft(1, 0) },
		false,
	)
	set, err := constraint.NewConstraintSet(score.ZeroHardSoft(), uni)
	if err != nil {
		panic(err)
	}
	return set
}

func newRecordingDirector(sol interface{}, desc *domain.SolutionDescriptor) *solve.RecordingScoreDirector {
	set := noopConstraintSet(desc)
	inner := solve.NewScoreDirector(sol, desc, set, nil)
	return solve.NewRecordingScoreDirector(inner)
}

func TestChangeDoAndUndo(t *testing.T) {
	b := newBoard(0, 1, 2)
	desc := domain.NewSolutionDescriptor([]domain.EntityDescriptor{queenDescriptor()}, nil)
	d := newRecordingDirector(b, desc)

	ref := domain.EntityRef{DescriptorIndex: 0, EntityIndex: 0}
	m := move.NewChange(ref, desc.Entities[0].Variables[0], 3)

	require.True(t, m.IsDoable(d))
	require.NoError(t, m.DoMove(d))
	require.Equal(t, 3, b.queens[0].row)
	require.Equal(t, 1, d.PendingUndoCount())

	d.UndoChanges()
	require.Equal(t, 0, b.queens[0].row)
	require.Equal(t, 0, d.PendingUndoCount())
}

func TestSwapDoAndUndo(t *testing.T) {
	b := newBoard(0, 1, 2)
	desc := domain.NewSolutionDescriptor([]domain.EntityDescriptor{queenDescriptor()}, nil)
	d := newRecordingDirector(b, desc)

	refA := domain.EntityRef{DescriptorIndex: 0, EntityIndex: 0}
	refB := domain.EntityRef{DescriptorIndex: 0, EntityIndex: 2}
	m := move.NewSwap(refA, refB, desc.Entities[0].Variables[0])

	require.True(t, m.IsDoable(d))
	require.NoError(t, m.DoMove(d))
	require.Equal(t, 2, b.queens[0].row)
	require.Equal(t, 0, b.queens[2].row)

	d.UndoChanges()
	require.Equal(t, 0, b.queens[0].row)
	require.Equal(t, 2, b.queens[2].row)
}

type crew struct {
	tasks []*taskList
}

type taskList struct {
	items []interface{}
}

func crewDescriptor() domain.EntityDescriptor {
	return domain.EntityDescriptor{
		Name:  "crew",
		Count: func(sol interface{}) int { return len(sol.(*crew).tasks) },
		Get:   func(sol interface{}, i int) interface{} { return sol.(*crew).tasks[i] },
		Variables: []domain.VariableDescriptor{{
			Name: "items",
			Kind: domain.GenuineList,
			Get:  func(sol interface{}, i int) interface{} { return sol.(*crew).tasks[i].items },
			Set: func(sol interface{}, i int, v interface{}) {
				sol.(*crew).tasks[i].items = v.([]interface{})
			},
		}},
	}
}

func newCrew(lists ...[]interface{}) *crew {
	c := &crew{}
	for _, l := range lists {
		c.tasks = append(c.tasks, &taskList{items: l})
	}
	return c
}

func TestListChangeDoAndUndo(t *testing.T) {
	c := newCrew([]interface{}{"a", "b", "c"}, []interface{}{"x"})
	desc := domain.NewSolutionDescriptor([]domain.EntityDescriptor{crewDescriptor()}, nil)
	d := newRecordingDirector(c, desc)

	srcRef := domain.EntityRef{DescriptorIndex: 0, EntityIndex: 0}
	dstRef := domain.EntityRef{DescriptorIndex: 0, EntityIndex: 1}
	variable := desc.Entities[0].Variables[0]

	m := move.NewListChange(variable, srcRef, 1, dstRef, 0)
	require.True(t, m.IsDoable(d))
	require.NoError(t, m.DoMove(d))

	require.Equal(t, []interface{}{"a", "c"}, c.tasks[0].items)
	require.Equal(t, []interface{}{"b", "x"}, c.tasks[1].items)

	d.UndoChanges()
	require.Equal(t, []interface{}{"a", "b", "c"}, c.tasks[0].items)
	require.Equal(t, []interface{}{"x"}, c.tasks[1].items)
}
