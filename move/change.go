package move

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/solve"
)

// Change sets entity Ref's Variable to NewValue.
type Change struct {
	Ref      domain.EntityRef
	Variable domain.VariableDescriptor
	NewValue interface{}
}

// NewChange constructs a Change move.
func NewChange(ref domain.EntityRef, variable domain.VariableDescriptor, newValue interface{}) *Change {
	return &Change{Ref: ref, Variable: variable, NewValue: newValue}
}

func (m *Change) IsDoable(director *solve.RecordingScoreDirector) bool {
	old := m.Variable.Get(director.WorkingSolution(), m.Ref.EntityIndex)
	return old != m.NewValue
}

func (m *Change) DoMove(director *solve.RecordingScoreDirector) error {
	sol := director.WorkingSolution()
	old := m.Variable.Get(sol, m.Ref.EntityIndex)

	if err := director.BeforeVariableChanged(m.Ref, m.Variable.Name); err != nil {
		return err
	}
	m.Variable.Set(sol, m.Ref.EntityIndex, m.NewValue)
	if err := director.AfterVariableChanged(m.Ref, m.Variable.Name); err != nil {
		return err
	}

	director.RegisterUndo(func() {
		_ = director.BeforeVariableChanged(m.Ref, m.Variable.Name)
		m.Variable.Set(sol, m.Ref.EntityIndex, old)
		_ = director.AfterVariableChanged(m.Ref, m.Variable.Name)
	})
	return nil
}

func (m *Change) EntityRefs() []domain.EntityRef { return []domain.EntityRef{m.Ref} }
func (m *Change) DescriptorIndex() int           { return m.Ref.DescriptorIndex }
func (m *Change) VariableName() string           { return m.Variable.Name }
