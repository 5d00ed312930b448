package solve

import (
	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// ScoreDirector owns the working solution and constraint set, and routes
// the before/after-variable-changed notification pair so the cached
// score stays incrementally in sync (spec §4.E).
type ScoreDirector interface {
	// CalculateScore returns the cached score, recomputing only if dirty.
	CalculateScore() (score.Score, error)
	// BeforeVariableChanged must be called before mutating the variable
	// named variableName on the entity at ref; it retracts the entity's
	// current contribution from the cache.
	BeforeVariableChanged(ref domain.EntityRef, variableName string) error
	// AfterVariableChanged must be called after the mutation commits; it
	// inserts the entity's new contribution into the cache.
	AfterVariableChanged(ref domain.EntityRef, variableName string) error
	// CloneWorkingSolution returns a deep-enough copy suitable for best-
	// solution tracking; the caller's Solution type supplies the clone.
	CloneWorkingSolution() interface{}
	// WorkingSolution returns the live solution object moves mutate directly.
	WorkingSolution() interface{}
	// EntityCount returns the number of entities in the collection at
	// descriptorIndex.
	EntityCount(descriptorIndex int) int
	// GetEntity returns the entity at ref.
	GetEntity(ref domain.EntityRef) interface{}
	// Descriptor returns the solution descriptor backing this director.
	Descriptor() *domain.SolutionDescriptor
}

// cloneFunc produces the copy CloneWorkingSolution returns; it is the
// clone argument of NewScoreDirector.
type cloneFunc func(solution interface{}) interface{}

// basicScoreDirector is the direct (non-recording) ScoreDirector
// implementation: it owns the working solution, delegates all scoring
// work to a constraint.ConstraintSet, and keeps a dirty bit so a run of
// notifications between two CalculateScore calls costs nothing extra.
type basicScoreDirector struct {
	solution interface{}
	desc     *domain.SolutionDescriptor
	set      *constraint.ConstraintSet
	clone    cloneFunc

	dirty bool

	pending map[domain.EntityRef]string // ref -> variableName, entities mid-change
}

// NewScoreDirector constructs a basicScoreDirector over solution, using
// desc to resolve entities and set to score them. clone implements
// CloneWorkingSolution; pass nil to get a shallow reference copy (only
// safe if Solution is itself already value-semantics).
func NewScoreDirector(solution interface{}, desc *domain.SolutionDescriptor, set *constraint.ConstraintSet, clone func(interface{}) interface{}) ScoreDirector {
	if clone == nil {
		clone = func(s interface{}) interface{} { return s }
	}
	return &basicScoreDirector{
		solution: solution,
		desc:     desc,
		set:      set,
		clone:    clone,
		dirty:    true,
		pending:  make(map[domain.EntityRef]string),
	}
}

func (d *basicScoreDirector) CalculateScore() (score.Score, error) {
	if !d.dirty {
		return d.set.Total(), nil
	}
	total, err := d.set.InitializeAll(d.solution)
	if err != nil {
		return nil, err
	}
	d.dirty = false
	return total, nil
}

func (d *basicScoreDirector) BeforeVariableChanged(ref domain.EntityRef, variableName string) error {
	// Force the cache current before layering an incremental delta on it.
	if _, err := d.CalculateScore(); err != nil {
		return err
	}
	if _, err := d.set.OnRetractAll(d.solution, ref); err != nil {
		return err
	}
	d.pending[ref] = variableName
	return nil
}

func (d *basicScoreDirector) AfterVariableChanged(ref domain.EntityRef, variableName string) error {
	if d.pending[ref] != variableName {
		return ErrNoActiveChange
	}
	delete(d.pending, ref)
	_, err := d.set.OnInsertAll(d.solution, ref)
	return err
}

func (d *basicScoreDirector) CloneWorkingSolution() interface{} { return d.clone(d.solution) }
func (d *basicScoreDirector) WorkingSolution() interface{}      { return d.solution }
func (d *basicScoreDirector) EntityCount(descriptorIndex int) int {
	return d.desc.EntityCount(d.solution, descriptorIndex)
}
func (d *basicScoreDirector) GetEntity(ref domain.EntityRef) interface{} {
	return d.desc.GetEntity(d.solution, ref)
}
func (d *basicScoreDirector) Descriptor() *domain.SolutionDescriptor { return d.desc }
