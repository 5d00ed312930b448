package move

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/solve"
)

// Move is the uniform contract every concrete move type implements
// (spec §4.G).
type Move interface {
	// IsDoable reports whether applying this move would actually change
	// the solution; a move that would be a no-op (same value, same
	// position, empty range) is not doable.
	IsDoable(director *solve.RecordingScoreDirector) bool
	// DoMove performs the mutation for real: for each touched entity it
	// pairs BeforeVariableChanged/AfterVariableChanged around the edit,
	// then registers an undo closure restoring the pre-move state.
	DoMove(director *solve.RecordingScoreDirector) error
	// EntityRefs returns every entity this move touches, used by tabu
	// search to recognize recently-moved entities.
	EntityRefs() []domain.EntityRef
	// DescriptorIndex returns the entity collection this move operates on.
	DescriptorIndex() int
	// VariableName returns the planning variable this move mutates.
	VariableName() string
}

// listOf asserts v is a list-variable value, returning a defensive copy
// so in-place edits never alias the solution's current slice.
func listOf(v interface{}) []interface{} {
	src := v.([]interface{})
	cp := make([]interface{}, len(src))
	copy(cp, src)
	return cp
}

// removeAt returns a copy of list with the element at pos removed.
func removeAt(list []interface{}, pos int) []interface{} {
	out := make([]interface{}, 0, len(list)-1)
	out = append(out, list[:pos]...)
	out = append(out, list[pos+1:]...)
	return out
}

// insertAt returns a copy of list with elem inserted at pos.
func insertAt(list []interface{}, pos int, elem interface{}) []interface{} {
	out := make([]interface{}, 0, len(list)+1)
	out = append(out, list[:pos]...)
	out = append(out, elem)
	out = append(out, list[pos:]...)
	return out
}

// insertSliceAt returns a copy of list with segment spliced in at pos.
func insertSliceAt(list []interface{}, pos int, segment []interface{}) []interface{} {
	out := make([]interface{}, 0, len(list)+len(segment))
	out = append(out, list[:pos]...)
	out = append(out, segment...)
	out = append(out, list[pos:]...)
	return out
}

// removeRange returns a copy of list with [start,end) removed.
func removeRange(list []interface{}, start, end int) []interface{} {
	out := make([]interface{}, 0, len(list)-(end-start))
	out = append(out, list[:start]...)
	out = append(out, list[end:]...)
	return out
}
