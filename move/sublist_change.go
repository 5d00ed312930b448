package move

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/solve"
)

// SubListChange removes the range [Start,End) from SrcRef's list
// variable and inserts it at DstPos in DstRef's list.
type SubListChange struct {
	Variable domain.VariableDescriptor
	SrcRef   domain.EntityRef
	Start    int
	End      int
	DstRef   domain.EntityRef
	DstPos   int
}

// NewSubListChange constructs a SubListChange move.
func NewSubListChange(variable domain.VariableDescriptor, srcRef domain.EntityRef, start, end int, dstRef domain.EntityRef, dstPos int) *SubListChange {
	return &SubListChange{Variable: variable, SrcRef: srcRef, Start: start, End: end, DstRef: dstRef, DstPos: dstPos}
}

func (m *SubListChange) IsDoable(*solve.RecordingScoreDirector) bool {
	if m.Start >= m.End {
		return false
	}
	return !(m.SrcRef == m.DstRef && m.DstPos == m.Start)
}

func (m *SubListChange) DoMove(director *solve.RecordingScoreDirector) error {
	sol := director.WorkingSolution()
	sameEntity := m.SrcRef == m.DstRef

	srcOriginal := listOf(m.Variable.Get(sol, m.SrcRef.EntityIndex))
	var dstOriginal []interface{}
	if !sameEntity {
		dstOriginal = listOf(m.Variable.Get(sol, m.DstRef.EntityIndex))
	}

	segment := append([]interface{}(nil), srcOriginal[m.Start:m.End]...)
	newSrc := removeRange(srcOriginal, m.Start, m.End)
	if err := director.BeforeVariableChanged(m.SrcRef, m.Variable.Name); err != nil {
		return err
	}
	m.Variable.Set(sol, m.SrcRef.EntityIndex, newSrc)
	if err := director.AfterVariableChanged(m.SrcRef, m.Variable.Name); err != nil {
		return err
	}

	dstPos := m.DstPos
	var newDst []interface{}
	if sameEntity {
		if dstPos > m.Start {
			dstPos -= m.End - m.Start
		}
		newDst = insertSliceAt(newSrc, dstPos, segment)
	} else {
		newDst = insertSliceAt(dstOriginal, dstPos, segment)
	}
	if err := director.BeforeVariableChanged(m.DstRef, m.Variable.Name); err != nil {
		return err
	}
	m.Variable.Set(sol, m.DstRef.EntityIndex, newDst)
	if err := director.AfterVariableChanged(m.DstRef, m.Variable.Name); err != nil {
		return err
	}

	director.RegisterUndo(func() {
		if sameEntity {
			_ = director.BeforeVariableChanged(m.SrcRef, m.Variable.Name)
			m.Variable.Set(sol, m.SrcRef.EntityIndex, srcOriginal)
			_ = director.AfterVariableChanged(m.SrcRef, m.Variable.Name)
			return
		}
		_ = director.BeforeVariableChanged(m.DstRef, m.Variable.Name)
		m.Variable.Set(sol, m.DstRef.EntityIndex, dstOriginal)
		_ = director.AfterVariableChanged(m.DstRef, m.Variable.Name)

		_ = director.BeforeVariableChanged(m.SrcRef, m.Variable.Name)
		m.Variable.Set(sol, m.SrcRef.EntityIndex, srcOriginal)
		_ = director.AfterVariableChanged(m.SrcRef, m.Variable.Name)
	})
	return nil
}

func (m *SubListChange) EntityRefs() []domain.EntityRef {
	return []domain.EntityRef{m.SrcRef, m.DstRef}
}
func (m *SubListChange) DescriptorIndex() int { return m.SrcRef.DescriptorIndex }
func (m *SubListChange) VariableName() string { return m.Variable.Name }
