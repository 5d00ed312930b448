package collector

// Accumulator folds a stream of per-entity values (as extracted by the
// owning grouped constraint) into one group result.
type Accumulator interface {
	// Accumulate adds value to the running fold.
	Accumulate(value interface{})
	// Retract removes value from the running fold. value must be the
	// exact value previously passed to Accumulate for this entity (the
	// grouped constraint caches it per entity, since by retraction time
	// the source entity may already have changed).
	Retract(value interface{})
	// Finish returns the current group result without mutating state.
	Finish() interface{}
}

// Collector constructs a fresh Accumulator for a new group key.
type Collector interface {
	CreateAccumulator() Accumulator
}

// CollectorFunc adapts a plain constructor function to Collector.
type CollectorFunc func() Accumulator

func (f CollectorFunc) CreateAccumulator() Accumulator { return f() }
