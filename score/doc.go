// Package score implements the multi-level integer score algebra used to
// rank candidate solutions during construction and local search.
//
// A score is a finite ordered vector of signed 64-bit integers split into
// a "hard" band and a "soft" band. Comparison is lexicographic starting at
// hard level 0: any hard-level difference dominates every soft level. A
// score is feasible iff every hard level is >= 0.
//
// Three shapes are provided:
//
//   - Simple    - a single level (no hard/soft split).
//   - HardSoft  - exactly one hard level and one soft level.
//   - Bendable  - a runtime-sized number of hard levels and soft levels.
//
// All three satisfy the Score interface and share the same textual
// grammars (see doc comments on Parse and the String methods) so that a
// score produced by one run round-trips through text unchanged.
//
// Add and Subtract never silently wrap: shape mismatches and int64
// overflow are reported as errors rather than producing a corrupted
// score. Negate, Multiply and Divide have no error return: Negate
// saturates math.MinInt64 at math.MaxInt64, and Multiply and Divide round
// half-away-from-zero without checking the result against the int64
// range.
package score
