package terminate

import (
	"sync/atomic"
	"time"

	"github.com/lattice-forge/lattice-solver/score"
)

// Context carries the state a Termination consults, refreshed by the
// solver driver between steps and at phase boundaries.
type Context struct {
	StepIndex             int64
	Elapsed               time.Duration
	BestScore             score.Score
	StepsSinceImprovement int64
	TimeSinceImprovement  time.Duration
}

// Termination decides whether a phase (or the whole solve) should stop.
type Termination interface {
	IsTerminated(ctx Context) bool
}

// Time terminates once ctx.Elapsed reaches Limit.
type Time struct{ Limit time.Duration }

func (t Time) IsTerminated(ctx Context) bool { return ctx.Elapsed >= t.Limit }

// Step terminates once ctx.StepIndex reaches Limit.
type Step struct{ Limit int64 }

func (s Step) IsTerminated(ctx Context) bool { return ctx.StepIndex >= s.Limit }

// UnimprovedStep terminates once Limit consecutive steps have passed
// without a new best score.
type UnimprovedStep struct{ Limit int64 }

func (u UnimprovedStep) IsTerminated(ctx Context) bool {
	return ctx.StepsSinceImprovement >= u.Limit
}

// UnimprovedTime terminates once Limit has elapsed since the last best-
// score improvement.
type UnimprovedTime struct{ Limit time.Duration }

func (u UnimprovedTime) IsTerminated(ctx Context) bool {
	return ctx.TimeSinceImprovement >= u.Limit
}

// BestScoreLimit terminates once ctx.BestScore is at least Target.
type BestScoreLimit struct{ Target score.Score }

func (b BestScoreLimit) IsTerminated(ctx Context) bool {
	if ctx.BestScore == nil {
		return false
	}
	cmp, err := ctx.BestScore.CompareTo(b.Target)
	if err != nil {
		return false
	}
	return cmp >= 0
}

// External terminates once Flag is set, letting a caller cancel a
// running solve from another goroutine.
type External struct{ Flag *atomic.Bool }

func (e External) IsTerminated(Context) bool {
	return e.Flag != nil && e.Flag.Load()
}

// And terminates once every sub-termination is terminated.
type And struct{ Terms []Termination }

func (a And) IsTerminated(ctx Context) bool {
	if len(a.Terms) == 0 {
		return false
	}
	for _, t := range a.Terms {
		if !t.IsTerminated(ctx) {
			return false
		}
	}
	return true
}

// Or terminates once any sub-termination is terminated.
type Or struct{ Terms []Termination }

func (o Or) IsTerminated(ctx Context) bool {
	for _, t := range o.Terms {
		if t.IsTerminated(ctx) {
			return true
		}
	}
	return false
}
