package solve

import "errors"

// ErrNoActiveChange indicates AfterVariableChanged was called without a
// matching prior BeforeVariableChanged on the same (descriptor, entity).
var ErrNoActiveChange = errors.New("solve: after_variable_changed with no matching before_variable_changed")
