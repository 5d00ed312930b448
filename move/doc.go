// Package move implements the move family (spec §4.G): typed mutations
// over a working solution, each pairing BeforeVariableChanged/
// AfterVariableChanged around its edit and registering an undo closure
// with the recording score director so local search can trial a move,
// read the resulting score, and cheaply revert.
package move
