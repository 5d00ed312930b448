package move

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/solve"
)

// SubListSwap exchanges the range [StartA,EndA) with [StartB,EndB),
// within one list variable or across two. Intra-entity ranges must not
// overlap.
type SubListSwap struct {
	Variable         domain.VariableDescriptor
	RefA             domain.EntityRef
	StartA, EndA     int
	RefB             domain.EntityRef
	StartB, EndB     int
}

// NewSubListSwap constructs a SubListSwap move.
func NewSubListSwap(variable domain.VariableDescriptor, refA domain.EntityRef, startA, endA int, refB domain.EntityRef, startB, endB int) *SubListSwap {
	return &SubListSwap{Variable: variable, RefA: refA, StartA: startA, EndA: endA, RefB: refB, StartB: startB, EndB: endB}
}

func (m *SubListSwap) IsDoable(*solve.RecordingScoreDirector) bool {
	if m.StartA >= m.EndA || m.StartB >= m.EndB {
		return false
	}
	if m.RefA == m.RefB {
		// Ranges must not overlap.
		return m.EndA <= m.StartB || m.EndB <= m.StartA
	}
	return true
}

func (m *SubListSwap) DoMove(director *solve.RecordingScoreDirector) error {
	sol := director.WorkingSolution()
	sameEntity := m.RefA == m.RefB

	originalA := listOf(m.Variable.Get(sol, m.RefA.EntityIndex))

	if sameEntity {
		segA := append([]interface{}(nil), originalA[m.StartA:m.EndA]...)
		segB := append([]interface{}(nil), originalA[m.StartB:m.EndB]...)

		loStart, loEnd, loSeg := m.StartA, m.EndA, segA
		hiStart, hiEnd, hiSeg := m.StartB, m.EndB, segB
		if m.StartA > m.StartB {
			loStart, loEnd, loSeg, hiStart, hiEnd, hiSeg = m.StartB, m.EndB, segB, m.StartA, m.EndA, segA
		}
		var newList []interface{}
		newList = append(newList, originalA[:loStart]...)
		newList = append(newList, hiSeg...)
		newList = append(newList, originalA[loEnd:hiStart]...)
		newList = append(newList, loSeg...)
		newList = append(newList, originalA[hiEnd:]...)

		if err := director.BeforeVariableChanged(m.RefA, m.Variable.Name); err != nil {
			return err
		}
		m.Variable.Set(sol, m.RefA.EntityIndex, newList)
		if err := director.AfterVariableChanged(m.RefA, m.Variable.Name); err != nil {
			return err
		}

		director.RegisterUndo(func() {
			_ = director.BeforeVariableChanged(m.RefA, m.Variable.Name)
			m.Variable.Set(sol, m.RefA.EntityIndex, originalA)
			_ = director.AfterVariableChanged(m.RefA, m.Variable.Name)
		})
		return nil
	}

	originalB := listOf(m.Variable.Get(sol, m.RefB.EntityIndex))
	segA := append([]interface{}(nil), originalA[m.StartA:m.EndA]...)
	segB := append([]interface{}(nil), originalB[m.StartB:m.EndB]...)

	var newA, newB []interface{}
	newA = append(newA, originalA[:m.StartA]...)
	newA = append(newA, segB...)
	newA = append(newA, originalA[m.EndA:]...)

	newB = append(newB, originalB[:m.StartB]...)
	newB = append(newB, segA...)
	newB = append(newB, originalB[m.EndB:]...)

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

	director.RegisterUndo(func() {
		_ = director.BeforeVariableChanged(m.RefB, m.Variable.Name)
		m.Variable.Set(sol, m.RefB.EntityIndex, originalB)
		_ = director.AfterVariableChanged(m.RefB, m.Variable.Name)

		_ = director.BeforeVariableChanged(m.RefA, m.Variable.Name)
		m.Variable.Set(sol, m.RefA.EntityIndex, originalA)
		_ = director.AfterVariableChanged(m.RefA, m.Variable.Name)
	})
	return nil
}

func (m *SubListSwap) EntityRefs() []domain.EntityRef { return []domain.EntityRef{m.RefA, m.RefB} }
func (m *SubListSwap) DescriptorIndex() int           { return m.RefA.DescriptorIndex }
func (m *SubListSwap) VariableName() string           { return m.Variable.Name }
