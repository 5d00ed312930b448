// Package collector implements the group-by accumulators the grouped
// constraint pattern uses to fold a stream of per-entity values into a
// single group result, incrementally (spec §4.C "Grouped (group-by +
// collector)").
//
// Count, Sum, Min and Max satisfy Accumulator directly: Accumulate adds
// one value to the running fold, Retract removes one (using the value
// cached at insert time, since the source entity may already have been
// mutated by the time retraction runs), and Finish reads the current
// result without mutating state.
//
// LoadBalance also satisfies Collector/Accumulator, but each accumulated
// value names a bucket key rather than a foldable quantity: Accumulate
// adds one unit of load to that bucket (creating it on first sight),
// Retract removes one (deleting the bucket at zero load), and Finish
// reports the Unfairness of the resulting per-bucket load distribution,
// updated in O(1) per change via Σ(xi-μ)² = Σxi² - (Σxi)²/n. Used with
// Grouped under a constant keyOf, it expresses spec §4.C's
// whole-constraint load-balance fold (e.g. shift counts per employee)
// without a second aggregation layer.
package collector
