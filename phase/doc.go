// Package phase implements the construction, local-search and
// exhaustive phases a Solver runs in sequence (spec §4.I, §4.J, §1's
// "exhaustive ... exists but is not the hard part").
package phase
