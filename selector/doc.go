// Package selector supplies the entity, value and move selectors that
// drive the construction and local-search phases (spec §4.H). Every
// selector is indexable rather than iterator-based: Size reports how
// many picks exist and Select(director, i) returns the i-th one,
// so a phase can sample uniformly, round-robin, or walk exhaustively
// without the selector committing to an iteration order.
package selector
