package domain

import "errors"

// Sentinel errors for descriptor construction and lookup.
var (
	// ErrUnknownEntityCollection indicates a descriptor_index outside the
	// range of the SolutionDescriptor's entity list.
	ErrUnknownEntityCollection = errors.New("domain: unknown entity collection")

	// ErrUnknownVariable indicates a variable name not declared on the
	// referenced EntityDescriptor.
	ErrUnknownVariable = errors.New("domain: unknown variable")

	// ErrEmptyValueRange indicates a genuine basic variable was declared
	// with a value range that has zero candidate values.
	ErrEmptyValueRange = errors.New("domain: value range is empty")
)
