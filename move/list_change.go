package move

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/solve"
)

// ListChange removes the element at (SrcRef, SrcPos) from a list
// variable and re-inserts it at (DstRef, DstPos).
type ListChange struct {
	Variable domain.VariableDescriptor
	SrcRef   domain.EntityRef
	SrcPos   int
	DstRef   domain.EntityRef
	DstPos   int
}

// NewListChange constructs a ListChange move.
func NewListChange(variable domain.VariableDescriptor, srcRef domain.EntityRef, srcPos int, dstRef domain.EntityRef, dstPos int) *ListChange {
	return &ListChange{Variable: variable, SrcRef: srcRef, SrcPos: srcPos, DstRef: dstRef, DstPos: dstPos}
}

func (m *ListChange) IsDoable(*solve.RecordingScoreDirector) bool {
	return !(m.SrcRef == m.DstRef && m.SrcPos == m.DstPos)
}

func (m *ListChange) DoMove(director *solve.RecordingScoreDirector) error {
	sol := director.WorkingSolution()
	sameEntity := m.SrcRef == m.DstRef

	srcOriginal := listOf(m.Variable.Get(sol, m.SrcRef.EntityIndex))
	var dstOriginal []interface{}
	if !sameEntity {
		dstOriginal = listOf(m.Variable.Get(sol, m.DstRef.EntityIndex))
	}

	elem := srcOriginal[m.SrcPos]
	newSrc := removeAt(srcOriginal, m.SrcPos)
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
		// The removal above already shifted every index past SrcPos down by one.
		if dstPos > m.SrcPos {
			dstPos--
		}
		newDst = insertAt(newSrc, dstPos, elem)
	} else {
		newDst = insertAt(dstOriginal, dstPos, elem)
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

func (m *ListChange) EntityRefs() []domain.EntityRef { return []domain.EntityRef{m.SrcRef, m.DstRef} }
func (m *ListChange) DescriptorIndex() int           { return m.SrcRef.DescriptorIndex }
func (m *ListChange) VariableName() string           { return m.Variable.Name }
