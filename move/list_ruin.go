package move

import (
	"sort"

	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
	"github.com/lattice-forge/lattice-solver/solve"
)

// RuinTarget identifies one element to remove: the entity holding it and
// its position within that entity's list variable.
type RuinTarget struct {
	Ref domain.EntityRef
	Pos int
}

// ListRuin removes a batch of elements from their current list positions,
// then greedily reinserts each removed element at whichever (entity,
// position) slot among DstDescriptorIndex's entities yields the best
// score. It is self-contained: unlike the other move types it evaluates
// and commits its own internal search rather than leaving selection to a
// MoveSelector.
type ListRuin struct {
	Variable           domain.VariableDescriptor
	Targets            []RuinTarget
	DstDescriptorIndex int
}

// NewListRuin constructs a ListRuin move.
func NewListRuin(variable domain.VariableDescriptor, targets []RuinTarget, dstDescriptorIndex int) *ListRuin {
	return &ListRuin{Variable: variable, Targets: targets, DstDescriptorIndex: dstDescriptorIndex}
}

func (m *ListRuin) IsDoable(*solve.RecordingScoreDirector) bool {
	return len(m.Targets) > 0
}

// DoMove removes every target element, then for each one probes every
// (entity, position) slot in DstDescriptorIndex and commits the
// insertion with the best resulting score before moving to the next
// removed element.
func (m *ListRuin) DoMove(director *solve.RecordingScoreDirector) error {
	sol := director.WorkingSolution()

	originals := make(map[domain.EntityRef][]interface{})
	for _, t := range m.Targets {
		if _, ok := originals[t.Ref]; !ok {
			originals[t.Ref] = listOf(m.Variable.Get(sol, t.Ref.EntityIndex))
		}
	}
	working := make(map[domain.EntityRef][]interface{}, len(originals))
	for ref, orig := range originals {
		working[ref] = append([]interface{}(nil), orig...)
	}

	// Target positions refer to the lists as they were before the move:
	// read every element first, then remove from the highest position
	// down so no removal shifts a target still to be removed.
	elems := make([]interface{}, 0, len(m.Targets))
	for _, t := range m.Targets {
		elems = append(elems, originals[t.Ref][t.Pos])
	}
	byPosDesc := append([]RuinTarget(nil), m.Targets...)
	sort.Slice(byPosDesc, func(i, j int) bool { return byPosDesc[i].Pos > byPosDesc[j].Pos })
	for _, t := range byPosDesc {
		working[t.Ref] = removeAt(working[t.Ref], t.Pos)
	}

	for ref, list := range working {
		if err := director.BeforeVariableChanged(ref, m.Variable.Name); err != nil {
			return err
		}
		m.Variable.Set(sol, ref.EntityIndex, list)
		if err := director.AfterVariableChanged(ref, m.Variable.Name); err != nil {
			return err
		}
	}

	insertedAt := make([]domain.EntityRef, len(elems))

	for i, elem := range elems {
		count := director.EntityCount(m.DstDescriptorIndex)

		bestRef := domain.EntityRef{DescriptorIndex: m.DstDescriptorIndex, EntityIndex: 0}
		bestPos := 0
		haveBest := false
		var bestScore score.Score

		for entityIdx := 0; entityIdx < count; entityIdx++ {
			dstRef := domain.EntityRef{DescriptorIndex: m.DstDescriptorIndex, EntityIndex: entityIdx}
			base := listOf(m.Variable.Get(sol, dstRef.EntityIndex))

			for pos := 0; pos <= len(base); pos++ {
				candidate := insertAt(base, pos, elem)

				if err := director.BeforeVariableChanged(dstRef, m.Variable.Name); err != nil {
					return err
				}
				m.Variable.Set(sol, dstRef.EntityIndex, candidate)
				if err := director.AfterVariableChanged(dstRef, m.Variable.Name); err != nil {
					return err
				}

				candidateScore, err := director.CalculateScore()
				if err != nil {
					return err
				}

				better := !haveBest
				if haveBest {
					cmp, err := candidateScore.CompareTo(bestScore)
					if err != nil {
						return err
					}
					better = cmp > 0
				}
				if better {
					haveBest = true
					bestRef, bestPos = dstRef, pos
					bestScore = candidateScore
				}

				if err := director.BeforeVariableChanged(dstRef, m.Variable.Name); err != nil {
					return err
				}
				m.Variable.Set(sol, dstRef.EntityIndex, base)
				if err := director.AfterVariableChanged(dstRef, m.Variable.Name); err != nil {
					return err
				}
			}
		}

		finalList := listOf(m.Variable.Get(sol, bestRef.EntityIndex))
		if _, captured := originals[bestRef]; !captured {
			originals[bestRef] = append([]interface{}(nil), finalList...)
		}
		finalList = insertAt(finalList, bestPos, elem)
		if err := director.BeforeVariableChanged(bestRef, m.Variable.Name); err != nil {
			return err
		}
		m.Variable.Set(sol, bestRef.EntityIndex, finalList)
		if err := director.AfterVariableChanged(bestRef, m.Variable.Name); err != nil {
			return err
		}
		insertedAt[i] = bestRef
	}

	director.RegisterUndo(func() {
		for ref, orig := range originals {
			_ = director.BeforeVariableChanged(ref, m.Variable.Name)
			m.Variable.Set(sol, ref.EntityIndex, orig)
			_ = director.AfterVariableChanged(ref, m.Variable.Name)
		}
	})
	return nil
}

func (m *ListRuin) EntityRefs() []domain.EntityRef {
	refs := make([]domain.EntityRef, 0, len(m.Targets))
	for _, t := range m.Targets {
		refs = append(refs, t.Ref)
	}
	return refs
}
func (m *ListRuin) DescriptorIndex() int { return m.DstDescriptorIndex }
func (m *ListRuin) VariableName() string { return m.Variable.Name }
