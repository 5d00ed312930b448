// Package constraint implements the incremental scoring kernel: one
// concrete type per arity/pattern (uni, bi/tri/quad/penta self-join,
// cross-entity bi-join, grouped, if-exists/if-not-exists, flattened-join),
// each maintaining its own match set and indices so that a single entity
// insert or retract costs O(k) where k is the number of affected matches,
// not a full O(n) rescore.
//
// Every concrete type satisfies the Constraint interface. The arity-3/4/5
// self-joins (tri.go, quad.go, penta.go) are generated by hand from the
// arity-2 template (bi_self.go) per the same combinatorial shape, as
// recommended for monomorphized hot paths over runtime polymorphism.
//
// The uniform invariant every constraint maintains between notifications:
//
//	sum over currently-firing matches of signed_weight(match) == cached contribution
//	Evaluate(solution) == sum of all constraints' current cached contributions
//
// signed_weight is +weight for a reward constraint, -weight for a penalty
// constraint.
package constraint
