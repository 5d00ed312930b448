// Package terminate supplies the termination predicates the solver
// driver polls between local-search steps and at phase boundaries (spec
// §4.L, §5 "consulted between steps"). A Termination is never consulted
// inside a phase's per-candidate evaluation loop.
package terminate
