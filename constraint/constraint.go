package constraint

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// Match is one currently-firing tuple, reported by GetMatches for
// diagnostics and test assertions. Entities are listed in canonical
// (ascending EntityRef) order for self-joins; for cross/grouped/exists
// patterns the order matches construction order (A-side first).
type Match struct {
	Entities []domain.EntityRef
	Weight   score.Score
}

// Constraint is the uniform contract every concrete scoring pattern
// implements (spec §4.C).
type Constraint interface {
	// Name returns a short, constraint-set-unique label.
	Name() string
	// IsHard reports whether this constraint contributes to a hard
	// level (true) or a soft level (false).
	IsHard() bool
	// ConstraintRef returns a stable identifier independent of Name,
	// suitable for correlating constraint matches with the rule that
	// produced them across constraint-set reorderings.
	ConstraintRef() string
	// Shape returns the score.Shape this constraint's weights are
	// expressed in, fixed at construction. NewConstraintSet checks every
	// member shares one Shape before the set is used.
	Shape() score.Shape

	// Evaluate recomputes the full score contribution from scratch,
	// consulting no internal state. Deterministic.
	Evaluate(solution interface{}) (score.Score, error)
	// MatchCount recomputes the number of currently-firing matches from
	// scratch.
	MatchCount(solution interface{}) (int, error)
	// Initialize clears internal state, rebuilds every index from the
	// solution, and returns the resulting total score.
	Initialize(solution interface{}) (score.Score, error)
	// OnInsert treats the entity at ref as newly present and returns the
	// resulting score delta, updating internal indices.
	OnInsert(solution interface{}, ref domain.EntityRef) (score.Score, error)
	// OnRetract treats the entity at ref as about to be absent and
	// returns the resulting score delta, updating internal indices.
	OnRetract(solution interface{}, ref domain.EntityRef) (score.Score, error)
	// Reset drops all internal state (matches, indices, cached deltas).
	Reset()
	// GetMatches enumerates every currently-firing match, in
	// deterministic order, for reporting.
	GetMatches(solution interface{}) ([]Match, error)
}

// signedWeight applies the penalize/reward sign convention: +weight for
// a reward constraint, -weight for a penalty constraint.
func signedWeight(penalize bool, weight score.Score) score.Score {
	if penalize {
		return weight.Negate()
	}
	return weight
}
