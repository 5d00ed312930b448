// Package solve provides the score director: the object that owns a
// working solution and a constraint.ConstraintSet, caches the current
// total score, and routes variable-change notifications so the cache
// stays in sync without a full rescore (spec §4.E).
//
// RecordingScoreDirector wraps a ScoreDirector with an undo log so the
// local-search phase can apply a candidate move, read the resulting
// score, and cheaply revert to try the next candidate (spec §4.F).
package solve
