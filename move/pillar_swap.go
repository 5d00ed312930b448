package move

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/solve"
)

// PillarSwap exchanges the common Variable value shared by every member
// of pillar Left with the common value shared by every member of pillar
// Right. A pillar is a set of entities currently holding the same value
// (e.g. every shift assigned to one employee); swapping pillars reassigns
// that whole group at once instead of one entity at a time.
type PillarSwap struct {
	Left, Right []domain.EntityRef
	Variable    domain.VariableDescriptor
}

// NewPillarSwap constructs a PillarSwap move. left and right must be
// non-empty and disjoint.
func NewPillarSwap(left, right []domain.EntityRef, variable domain.VariableDescriptor) *PillarSwap {
	return &PillarSwap{Left: left, Right: right, Variable: variable}
}

func (m *PillarSwap) IsDoable(director *solve.RecordingScoreDirector) bool {
	if len(m.Left) == 0 || len(m.Right) == 0 {
		return false
	}
	sol := director.WorkingSolution()
	leftValue := m.Variable.Get(sol, m.Left[0].EntityIndex)
	rightValue := m.Variable.Get(sol, m.Right[0].EntityIndex)
	return leftValue != rightValue
}

func (m *PillarSwap) DoMove(director *solve.RecordingScoreDirector) error {
	sol := director.WorkingSolution()
	leftValue := m.Variable.Get(sol, m.Left[0].EntityIndex)
	rightValue := m.Variable.Get(sol, m.Right[0].EntityIndex)

	for _, ref := range m.Left {
		if err := director.BeforeVariableChanged(ref, m.Variable.Name); err != nil {
			return err
		}
		m.Variable.Set(sol, ref.EntityIndex, rightValue)
		if err := director.AfterVariableChanged(ref, m.Variable.Name); err != nil {
			return err
		}
	}
	for _, ref := range m.Right {
		if err := director.BeforeVariableChanged(ref, m.Variable.Name); err != nil {
			return err
		}
		m.Variable.Set(sol, ref.EntityIndex, leftValue)
		if err := director.AfterVariableChanged(ref, m.Variable.Name); err != nil {
			return err
		}
	}

	director.RegisterUndo(func() {
		for _, ref := range m.Right {
			_ = director.BeforeVariableChanged(ref, m.Variable.Name)
			m.Variable.Set(sol, ref.EntityIndex, rightValue)
			_ = director.AfterVariableChanged(ref, m.Variable.Name)
		}
		for _, ref := range m.Left {
			_ = director.BeforeVariableChanged(ref, m.Variable.Name)
			m.Variable.Set(sol, ref.EntityIndex, leftValue)
			_ = director.AfterVariableChanged(ref, m.Variable.Name)
		}
	})
	return nil
}

func (m *PillarSwap) EntityRefs() []domain.EntityRef {
	out := make([]domain.EntityRef, 0, len(m.Left)+len(m.Right))
	out = append(out, m.Left...)
	out = append(out, m.Right...)
	return out
}
func (m *PillarSwap) DescriptorIndex() int { return m.Left[0].DescriptorIndex }
func (m *PillarSwap) VariableName() string { return m.Variable.Name }
