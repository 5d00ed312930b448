package score_test

import (
	"fmt"

	"github.com/lattice-forge/lattice-solver/score"
)

// Example demonstrates comparing two HardSoft scores the way a forager
// ranks candidate moves: the one with fewer hard violations always wins,
// regardless of its soft score.
func Example() {
	a := score.NewHardSoft(-1, 100)
	b := score.NewHardSoft(0, -50)

	cmp, err := a.CompareTo(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(cmp < 0, b.IsFeasible())
	// Output: true true
}
