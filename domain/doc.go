// Package domain exposes planning entities, problem facts and planning
// variables to the scoring and move engines without either engine ever
// knowing the concrete shape of a user's solution type.
//
// A SolutionDescriptor holds an ordered list of EntityDescriptor (one per
// planning-entity collection) and FactDescriptor (one per problem-fact
// collection) values, each a fixed pair of accessor closures captured at
// construction time — count and indexed access, exactly as spec §4.B
// requires ("no runtime reflection"). The only identity the scoring and
// move core ever uses is EntityRef{DescriptorIndex, EntityIndex}: a
// position in the descriptor's entity list, and a position within that
// collection.
//
// Planning variables are declared per EntityDescriptor as
// VariableDescriptor values: genuine variables (the solver assigns them,
// drawing from a ValueRange) or shadow variables (a listener recomputes
// them whenever a named source variable changes; the solver never
// assigns them directly).
package domain
