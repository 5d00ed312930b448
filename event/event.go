package event

import "github.com/lattice-forge/lattice-solver/score"

// Listener mirrors spec §6's seven host callbacks. Embed Noop to
// implement only the callbacks a given listener cares about.
type Listener interface {
	OnSolvingStarted(solution interface{})
	OnSolvingEnded(solution interface{}, terminatedEarly bool)
	OnPhaseStarted(index int, typeName string)
	OnPhaseEnded(index int, typeName string)
	OnStepStarted(index int)
	OnStepEnded(index int, stepScore score.Score)
	OnBestSolutionChanged(solution interface{}, bestScore score.Score)
}

// Noop implements every Listener callback as a no-op; embed it in a
// listener that only cares about some callbacks.
type Noop struct{}

func (Noop) OnSolvingStarted(interface{})                  {}
func (Noop) OnSolvingEnded(interface{}, bool)               {}
func (Noop) OnPhaseStarted(int, string)                     {}
func (Noop) OnPhaseEnded(int, string)                       {}
func (Noop) OnStepStarted(int)                              {}
func (Noop) OnStepEnded(int, score.Score)                   {}
func (Noop) OnBestSolutionChanged(interface{}, score.Score) {}

// Bus fans every call out to its registered listeners, in registration
// order, synchronously on the caller's goroutine.
type Bus struct {
	listeners []Listener
}

// NewBus constructs an empty Bus.
func NewBus() *Bus { return &Bus{} }

// Register adds l to the fan-out list.
func (b *Bus) Register(l Listener) { b.listeners = append(b.listeners, l) }

func (b *Bus) SolvingStarted(solution interface{}) {
	for _, l := range b.listeners {
		l.OnSolvingStarted(solution)
	}
}

func (b *Bus) SolvingEnded(solution interface{}, terminatedEarly bool) {
	for _, l := range b.listeners {
		l.OnSolvingEnded(solution, terminatedEarly)
	}
}

func (b *Bus) PhaseStarted(index int, typeName string) {
	for _, l := range b.listeners {
		l.OnPhaseStarted(index, typeName)
	}
}

func (b *Bus) PhaseEnded(index int, typeName string) {
	for _, l := range b.listeners {
		l.OnPhaseEnded(index, typeName)
	}
}

func (b *Bus) StepStarted(index int) {
	for _, l := range b.listeners {
		l.OnStepStarted(index)
	}
}

func (b *Bus) StepEnded(index int, stepScore score.Score) {
	for _, l := range b.listeners {
		l.OnStepEnded(index, stepScore)
	}
}

func (b *Bus) BestSolutionChanged(solution interface{}, bestScore score.Score) {
	for _, l := range b.listeners {
		l.OnBestSolutionChanged(solution, bestScore)
	}
}
