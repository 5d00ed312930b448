package terminate_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/score"
	"github.com/lattice-forge/lattice-solver/terminate"
)

func TestStepAndTime(t *testing.T) {
	step := terminate.Step{Limit: 5}
	require.False(t, step.IsTerminated(terminate.Context{StepIndex: 4}))
	require.True(t, step.IsTerminated(terminate.Context{StepIndex: 5}))

	tm := terminate.Time{Limit: 2 * time.Second}
	require.False(t, tm.IsTerminated(terminate.Context{Elapsed: time.Second}))
	require.True(t, tm.IsTerminated(terminate.Context{Elapsed: 3 * time.Second}))
}

func TestUnimprovedStepAndTime(t *testing.T) {
	u := terminate.UnimprovedStep{Limit: 10}
	require.False(t, u.IsTerminated(terminate.Context{StepsSinceImprovement: 9}))
	require.True(t, u.IsTerminated(terminate.Context{StepsSinceImprovement: 10}))

	ut := terminate.UnimprovedTime{Limit: time.Minute}
	require.True(t, ut.IsTerminated(terminate.Context{TimeSinceImprovement: 2 * time.Minute}))
}

func TestBestScoreLimit(t *testing.T) {
	term := terminate.BestScoreLimit{Target: score.NewHardSoft(0, -5)}
	require.False(t, term.IsTerminated(terminate.Context{BestScore: score.NewHardSoft(0, -10)}))
	require.True(t, term.IsTerminated(terminate.Context{BestScore: score.NewHardSoft(0, -3)}))
}

func TestExternalFlag(t *testing.T) {
	var flag atomic.Bool
	ext := terminate.External{Flag: &flag}
	require.False(t, ext.IsTerminated(terminate.Context{}))
	flag.Store(true)
	require.True(t, ext.IsTerminated(terminate.Context{}))
}

func TestAndOr(t *testing.T) {
	a := terminate.And{Terms: []terminate.Termination{
		terminate.Step{Limit: 5},
		terminate.UnimprovedStep{Limit: 3},
	}}
	require.False(t, a.IsTerminated(terminate.Context{StepIndex: 5, StepsSinceImprovement: 2}))
	require.True(t, a.IsTerminated(terminate.Context{StepIndex: 5, StepsSinceImprovement: 3}))

	o := terminate.Or{Terms: []terminate.Termination{
		terminate.Step{Limit: 100},
		terminate.UnimprovedStep{Limit: 3},
	}}
	require.True(t, o.IsTerminated(terminate.Context{StepIndex: 1, StepsSinceImprovement: 3}))
}
