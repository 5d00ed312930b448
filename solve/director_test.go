package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
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

func sameRowConstraint(desc *domain.SolutionDescriptor) *constraint.BiSelf {
	return constraint.NewBiSelf(
		"sameRow", "sameRow", true, desc, 0, score.ZeroHardSoft(),
		func(e interface{}) interface{} { return e.(*queen).row },
		nil,
		func(interface{}, interface{}) score.Score { return score.NewHardSoft(1, 0) },
		true,
	)
}

func newDirector(b *board) (solve.ScoreDirector, *domain.SolutionDescriptor) {
	desc := domain.NewSolutionDescriptor([]domain.EntityDescriptor{queenDescriptor()}, nil)
	set, err := constraint.NewConstraintSet(score.ZeroHardSoft(), sameRowConstraint(desc))
	if err != nil {
		panic(err)
	}
	return solve.NewScoreDirector(b, desc, set, nil), desc
}

func TestScoreDirectorCalculateScoreIsCached(t *testing.T) {
	b := newBoard(0, 0, 1)
	d, _ := newDirector(b)

	s1, err := d.CalculateScore()
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(-1, 0), s1)

	// Second call must not need any mutation to return the same cached value.
	s2, err := d.CalculateScore()
	require.NoError(t, err)
	require.Equal(t, s1, s2)
}

func TestScoreDirectorVariableChangeContract(t *testing.T) {
	b := newBoard(0, 0, 1)
	d, _ := newDirector(b)
	_, err := d.CalculateScore()
	require.NoError(t, err)

	ref := domain.EntityRef{DescriptorIndex: 0, EntityIndex: 1}
	require.NoError(t, d.BeforeVariableChanged(ref, "row"))
	b.queens[1].row = 2
	require.NoError(t, d.AfterVariableChanged(ref, "row"))

	got, err := d.CalculateScore()
	require.NoError(t, err)
	require.Equal(t, score.ZeroHardSoft(), got) // no more collision
}

func TestScoreDirectorRejectsMismatchedAfterVariableChanged(t *testing.T) {
	b := newBoard(0, 1)
	d, _ := newDirector(b)
	_, err := d.CalculateScore()
	require.NoError(t, err)

	ref := domain.EntityRef{DescriptorIndex: 0, EntityIndex: 0}
	err = d.AfterVariableChanged(ref, "row")
	require.ErrorIs(t, err, solve.ErrNoActiveChange)
}
