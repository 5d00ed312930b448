package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/event"
	"github.com/lattice-forge/lattice-solver/score"
)

type recorder struct {
	event.Noop
	bestCalls int
	lastScore score.Score
}

func (r *recorder) OnBestSolutionChanged(_ interface{}, s score.Score) {
	r.bestCalls++
	r.lastScore = s
}

func TestBusFansOutInRegistrationOrder(t *testing.T) {
	bus := event.NewBus()
	var order []string
	a := &orderListener{name: "a", order: &order}
	b := &orderListener{name: "b", order: &order}
	bus.Register(a)
	bus.Register(b)

	bus.PhaseStarted(0, "construction")
	require.Equal(t, []string{"a", "b"}, order)
}

type orderListener struct {
	event.Noop
	name  string
	order *[]string
}

func (l *orderListener) OnPhaseStarted(int, string) {
	*l.order = append(*l.order, l.name)
}

func TestBestSolutionChangedReachesListener(t *testing.T) {
	bus := event.NewBus()
	r := &recorder{}
	bus.Register(r)

	bus.BestSolutionChanged(nil, score.NewHardSoft(0, -3))
	require.Equal(t, 1, r.bestCalls)
	require.Equal(t, score.NewHardSoft(0, -3), r.lastScore)
}
