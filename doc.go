// Package lattice is the root of lattice-solver, an in-memory
// constraint-satisfaction and local-search optimization kernel: score a
// candidate solution incrementally, construct an initial assignment,
// then improve it with neighborhood moves under a pluggable acceptor
// and termination policy.
//
// Everything lives under focused subpackages:
//
//	score/      — multi-level score algebra (Simple, HardSoft, Bendable)
//	domain/     — solution/entity/variable descriptors, value ranges
//	constraint/ — incremental constraint kernel (uni/bi/tri/... streams)
//	solve/      — score directors: cached incremental scoring + undo log
//	move/       — the move vocabulary (change, swap, list ops, k-opt, ...)
//	selector/   — entity/value/move selectors sampling the move space
//	accept/     — acceptors (hill climbing, simulated annealing, tabu, ...)
//	terminate/  — termination policies, composable via And/Or
//	event/      — a synchronous listener bus for solve/phase/step events
//	phase/      — construction, local-search and exhaustive phases
//	solver/     — the driver that runs phases in order and reports a result
//
// cmd/lattice-solve is the one runnable demonstration: it solves an
// N-queens board with a construction phase followed by simulated-
// annealing local search.
package lattice
