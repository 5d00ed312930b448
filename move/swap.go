package move

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/solve"
)

// Swap exchanges Variable's value between RefA and RefB.
type Swap struct {
	RefA, RefB domain.EntityRef
	Variable   domain.VariableDescriptor
}

// NewSwap constructs a Swap move.
func NewSwap(refA, refB domain.EntityRef, variable domain.VariableDescriptor) *Swap {
	return &Swap{RefA: refA, RefB: refB, Variable: variable}
}

func (m *Swap) IsDoable(director *solve.RecordingScoreDirector) bool {
	if m.RefA == m.RefB {
		return false
	}
	sol := director.WorkingSolution()
	a := m.Variable.Get(sol, m.RefA.EntityIndex)
	b := m.Variable.Get(sol, m.RefB.EntityIndex)
	return a != b
}

func (m *Swap) DoMove(director *solve.RecordingScoreDirector) error {
	sol := director.WorkingSolution()
	a := m.Variable.Get(sol, m.RefA.EntityIndex)
	b := m.Variable.Get(sol, m.RefB.EntityIndex)

	if err := director.BeforeVariableChanged(m.RefA, m.Variable.Name); err != nil {
		return err
	}
	m.Variable.Set(sol, m.RefA.EntityIndex, b)
	if err := director.AfterVariableChanged(m.RefA, m.Variable.Name); err != nil {
		return err
	}

	if err := director.BeforeVariableChanged(m.RefB, m.Variable.Name); err != nil {
		return err
	}
	m.Variable.Set(sol, m.RefB.EntityIndex, a)
	if err := director.AfterVariableChanged(m.RefB, m.Variable.Name); err != nil {
		return err
	}

	director.RegisterUndo(func() {
		_ = director.BeforeVariableChanged(m.RefB, m.Variable.Name)
		m.Variable.Set(sol, m.RefB.EntityIndex, b)
		_ = director.AfterVariableChanged(m.RefB, m.Variable.Name)

		_ = director.BeforeVariableChanged(m.RefA, m.Variable.Name)
		m.Variable.Set(sol, m.RefA.EntityIndex, a)
		_ = director.AfterVariableChanged(m.RefA, m.Variable.Name)
	})
	return nil
}

func (m *Swap) EntityRefs() []domain.EntityRef { return []domain.EntityRef{m.RefA, m.RefB} }
func (m *Swap) DescriptorIndex() int           { return m.RefA.DescriptorIndex }
func (m *Swap) VariableName() string           { return m.Variable.Name }
