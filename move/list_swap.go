package move

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/solve"
)

// ListSwap exchanges the element at (RefA, PosA) with the element at
// (RefB, PosB), within one list variable or across two.
type ListSwap struct {
	Variable   domain.VariableDescriptor
	RefA       domain.EntityRef
	PosA       int
	RefB       domain.EntityRef
	PosB       int
}

// NewListSwap constructs a ListSwap move.
func NewListSwap(variable domain.VariableDescriptor, refA domain.EntityRef, posA int, refB domain.EntityRef, posB int) *ListSwap {
	return &ListSwap{Variable: variable, RefA: refA, PosA: posA, RefB: refB, PosB: posB}
}

func (m *ListSwap) IsDoable(director *solve.RecordingScoreDirector) bool {
	sol := director.WorkingSolution()
	listA := listOf(m.Variable.Get(sol, m.RefA.EntityIndex))
	if m.RefA == m.RefB {
		return listA[m.PosA] != listA[m.PosB]
	}
	listB := listOf(m.Variable.Get(sol, m.RefB.EntityIndex))
	return listA[m.PosA] != listB[m.PosB]
}

func (m *ListSwap) DoMove(director *solve.RecordingScoreDirector) error {
	sol := director.WorkingSolution()
	sameEntity := m.RefA == m.RefB

	originalA := listOf(m.Variable.Get(sol, m.RefA.EntityIndex))
	var originalB []interface{}
	if !sameEntity {
		originalB = listOf(m.Variable.Get(sol, m.RefB.EntityIndex))
	}

	if sameEntity {
		newList := append([]interface{}(nil), originalA...)
		newList[m.PosA], newList[m.PosB] = newList[m.PosB], newList[m.PosA]
		if err := director.BeforeVariableChanged(m.RefA, m.Variable.Name); err != nil {
			return err
		}
		m.Variable.Set(sol, m.RefA.EntityIndex, newList)
		if err := director.AfterVariableChanged(m.RefA, m.Variable.Name); err != nil {
			return err
		}
	} else {
		newA := append([]interface{}(nil), originalA...)
		newB := append([]interface{}(nil), originalB...)
		newA[m.PosA], newB[m.PosB] = originalB[m.PosB], originalA[m.PosA]

		if err := director.BeforeVariableChanged(m.RefA, m.Variable.Name); err != nil {
			return err
		}
		m.Variable.Set(sol, m.RefA.EntityIndex, newA)
		if err := director.AfterVariableChanged(m.RefA, m.Variable.Name); err != nil {
			return err
		}

		if err := director.BeforeVariableChanged(m.RefB, m.Variable.Name); err != nil {
			return err
		}
		m.Variable.Set(sol, m.RefB.EntityIndex, newB)
		if err := director.AfterVariableChanged(m.RefB, m.Variable.Name); err != nil {
			return err
		}
	}

	director.RegisterUndo(func() {
		if sameEntity {
			_ = director.BeforeVariableChanged(m.RefA, m.Variable.Name)
			m.Variable.Set(sol, m.RefA.EntityIndex, originalA)
			_ = director.AfterVariableChanged(m.RefA, m.Variable.Name)
			return
		}
		_ = director.BeforeVariableChanged(m.RefB, m.Variable.Name)
		m.Variable.Set(sol, m.RefB.EntityIndex, originalB)
		_ = director.AfterVariableChanged(m.RefB, m.Variable.Name)

		_ = director.BeforeVariableChanged(m.RefA, m.Variable.Name)
		m.Variable.Set(sol, m.RefA.EntityIndex, originalA)
		_ = director.AfterVariableChanged(m.RefA, m.Variable.Name)
	})
	return nil
}

func (m *ListSwap) EntityRefs() []domain.EntityRef { return []domain.EntityRef{m.RefA, m.RefB} }
func (m *ListSwap) DescriptorIndex() int           { return m.RefA.DescriptorIndex }
func (m *ListSwap) VariableName() string           { return m.Variable.Name }
