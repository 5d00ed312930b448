package accept

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// Tabu keeps a fixed-size ring of recently-committed entity refs. A
// candidate is accepted iff at least one of its touched entities is not
// currently in the ring (spec §4.K); on commit, its entities are pushed
// into the ring, evicting the oldest.
type Tabu struct {
	N int

	ring  []domain.EntityRef
	inSet map[domain.EntityRef]int // ref -> count currently in ring
	next  int
}

// NewTabu constructs a Tabu acceptor with ring size n.
func NewTabu(n int) *Tabu {
	return &Tabu{N: n, inSet: make(map[domain.EntityRef]int)}
}

func (t *Tabu) PhaseStarted(score.Score) {
	t.ring = make([]domain.EntityRef, 0, t.N)
	t.inSet = make(map[domain.EntityRef]int)
	t.next = 0
}

func (t *Tabu) IsAccepted(_, _ score.Score, touched []domain.EntityRef) bool {
	if t.N <= 0 {
		return true
	}
	for _, ref := range touched {
		if t.inSet[ref] == 0 {
			return true
		}
	}
	return false
}

func (t *Tabu) StepEnded(_ score.Score, touched []domain.EntityRef) {
	if t.N <= 0 {
		return
	}
	for _, ref := range touched {
		if len(t.ring) < t.N {
			t.ring = append(t.ring, ref)
		} else {
			evicted := t.ring[t.next]
			t.inSet[evicted]--
			if t.inSet[evicted] <= 0 {
				delete(t.inSet, evicted)
			}
			t.ring[t.next] = ref
			t.next = (t.next + 1) % t.N
		}
		t.inSet[ref]++
	}
}

func (t *Tabu) PhaseEnded() {}
