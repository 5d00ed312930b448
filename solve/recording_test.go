package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
	"github.com/lattice-forge/lattice-solver/solve"
)

func TestRecordingScoreDirectorUndoRestoresScoreAndSolution(t *testing.T) {
	b := newBoard(0, 0, 1)
	inner, _ := newDirector(b)
	_, err := inner.CalculateScore()
	require.NoError(t, err)
	before, err := inner.CalculateScore()
	require.NoError(t, err)

	rec := solve.NewRecordingScoreDirector(inner)
	ref := domain.EntityRef{DescriptorIndex: 0, EntityIndex: 1}
	oldRow := b.queens[1].row

	require.NoError(t, rec.BeforeVariableChanged(ref, "row"))
	b.queens[1].row = 3
	require.NoError(t, rec.AfterVariableChanged(ref, "row"))
	rec.RegisterUndo(func() {
		_ = rec.BeforeVariableChanged(ref, "row")
		b.queens[1].row = oldRow
		_ = rec.AfterVariableChanged(ref, "row")
	})

	mid, err := rec.CalculateScore()
	require.NoError(t, err)
	require.NotEqual(t, before, mid)
	require.Equal(t, 1, rec.PendingUndoCount())

	rec.UndoChanges()
	require.Equal(t, 0, rec.PendingUndoCount())
	require.Equal(t, oldRow, b.queens[1].row)

	after, err := rec.CalculateScore()
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestRecordingScoreDirectorUndoToOnlyUnwindsBackToMark(t *testing.T) {
	b := newBoard(0, 0, 1)
	inner, _ := newDirector(b)
	rec := solve.NewRecordingScoreDirector(inner)

	setRow := func(i int, row int) func() {
		ref := domain.EntityRef{DescriptorIndex: 0, EntityIndex: i}
		old := b.queens[i].row
		require.NoError(t, rec.BeforeVariableChanged(ref, "row"))
		b.queens[i].row = row
		require.NoError(t, rec.AfterVariableChanged(ref, "row"))
		return func() {
			_ = rec.BeforeVariableChanged(ref, "row")
			b.queens[i].row = old
			_ = rec.AfterVariableChanged(ref, "row")
		}
	}

	rec.RegisterUndo(setRow(0, 2))
	mark := rec.Mark()
	rec.RegisterUndo(setRow(1, 3))
	require.Equal(t, 2, rec.PendingUndoCount())

	rec.UndoTo(mark)

	require.Equal(t, 1, rec.PendingUndoCount())
	require.Equal(t, 2, b.queens[0].row, "undoing to mark must not touch the closure registered before it")
	require.Equal(t, 0, b.queens[1].row, "undoing to mark must reverse the closure registered after it")
}
