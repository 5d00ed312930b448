package move

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/solve"
)

// Composite chains two moves, applying A then B as a single logical
// move. Undo is handled transitively: A and B each register their own
// undo closure with the director, so RecordingScoreDirector.UndoChanges
// unwinds B before A without Composite needing to know either one's
// internals.
type Composite struct {
	A Move
	B Move
}

// NewComposite constructs a Composite move from a and b.
func NewComposite(a, b Move) *Composite {
	return &Composite{A: a, B: b}
}

func (m *Composite) IsDoable(director *solve.RecordingScoreDirector) bool {
	return m.A.IsDoable(director) && m.B.IsDoable(director)
}

func (m *Composite) DoMove(director *solve.RecordingScoreDirector) error {
	if err := m.A.DoMove(director); err != nil {
		return err
	}
	return m.B.DoMove(director)
}

func (m *Composite) EntityRefs() []domain.EntityRef {
	return append(append([]domain.EntityRef(nil), m.A.EntityRefs()...), m.B.EntityRefs()...)
}
func (m *Composite) DescriptorIndex() int { return m.A.DescriptorIndex() }
func (m *Composite) VariableName() string { return m.A.VariableName() }
