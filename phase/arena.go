package phase

import "github.com/lattice-forge/lattice-solver/move"

// Arena is a per-step resizable buffer of candidate moves (spec §3
// "Move arena"). Move slots are populated by the selector, addressed by
// index during evaluation, and taken out of the arena (ownership
// transfer) when the forager commits one. Reset is O(1): it only
// truncates the logical length, keeping the backing array.
type Arena struct {
	moves []move.Move
}

// Reset truncates the arena to zero logical length without releasing
// its backing array.
func (a *Arena) Reset() { a.moves = a.moves[:0] }

// Add appends m to the arena.
func (a *Arena) Add(m move.Move) { a.moves = append(a.moves, m) }

// Len reports the arena's current logical length.
func (a *Arena) Len() int { return len(a.moves) }

// At returns the move at index i.
func (a *Arena) At(i int) move.Move { return a.moves[i] }

// Take returns the move at index i and clears that slot, transferring
// ownership to the caller (the forager's chosen candidate is the only
// one a phase commits).
func (a *Arena) Take(i int) move.Move {
	m := a.moves[i]
	a.moves[i] = nil
	return m
}
