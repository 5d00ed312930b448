package move

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/solve"
)

// KOpt cuts a list variable at CutPoints (interior indices, strictly
// ascending) into len(CutPoints)+1 segments, then reassembles them in
// Order, reversing each segment flagged true in Reverse.
type KOpt struct {
	Variable   domain.VariableDescriptor
	Ref        domain.EntityRef
	CutPoints  []int
	Order      []int
	Reverse    []bool
}

// NewKOpt constructs a KOpt move. len(Order) and len(Reverse) must equal
// len(CutPoints)+1.
func NewKOpt(variable domain.VariableDescriptor, ref domain.EntityRef, cutPoints []int, order []int, reverse []bool) *KOpt {
	return &KOpt{Variable: variable, Ref: ref, CutPoints: cutPoints, Order: order, Reverse: reverse}
}

func (m *KOpt) segments(list []interface{}) [][]interface{} {
	out := make([][]interface{}, 0, len(m.CutPoints)+1)
	prev := 0
	for _, cut := range m.CutPoints {
		out = append(out, list[prev:cut])
		prev = cut
	}
	out = append(out, list[prev:])
	return out
}

func (m *KOpt) IsDoable(director *solve.RecordingScoreDirector) bool {
	if len(m.Order) != len(m.CutPoints)+1 || len(m.Reverse) != len(m.CutPoints)+1 {
		return false
	}
	for i, o := range m.Order {
		if o != i {
			return true
		}
	}
	for _, r := range m.Reverse {
		if r {
			return true
		}
	}
	return false
}

func reversed(seg []interface{}) []interface{} {
	out := make([]interface{}, len(seg))
	for i, v := range seg {
		out[len(seg)-1-i] = v
	}
	return out
}

func (m *KOpt) DoMove(director *solve.RecordingScoreDirector) error {
	sol := director.WorkingSolution()
	original := listOf(m.Variable.Get(sol, m.Ref.EntityIndex))
	segs := m.segments(original)

	var newList []interface{}
	for i, segIdx := range m.Order {
		seg := segs[segIdx]
		if m.Reverse[i] {
			seg = reversed(seg)
		}
		newList = append(newList, seg...)
	}

	if err := director.BeforeVariableChanged(m.Ref, m.Variable.Name); err != nil {
		return err
	}
	m.Variable.Set(sol, m.Ref.EntityIndex, newList)
	if err := director.AfterVariableChanged(m.Ref, m.Variable.Name); err != nil {
		return err
	}

	director.RegisterUndo(func() {
		_ = director.BeforeVariableChanged(m.Ref, m.Variable.Name)
		m.Variable.Set(sol, m.Ref.EntityIndex, original)
		_ = director.AfterVariableChanged(m.Ref, m.Variable.Name)
	})
	return nil
}

func (m *KOpt) EntityRefs() []domain.EntityRef { return []domain.EntityRef{m.Ref} }
func (m *KOpt) DescriptorIndex() int           { return m.Ref.DescriptorIndex }
func (m *KOpt) VariableName() string           { return m.Variable.Name }
