package constraint

import "errors"

// ErrShapeMismatch indicates constraints in the same ConstraintSet
// disagree on hard/soft level layout (spec §4.D). Fatal: detected once
// at NewConstraintSet time.
var ErrShapeMismatch = errors.New("constraint: shape mismatch across constraint set")
