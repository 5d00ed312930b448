package collector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/constraint/collector"
)

func TestCountAccumulator(t *testing.T) {
	acc := collector.Count().CreateAccumulator()
	acc.Accumulate("a")
	acc.Accumulate("b")
	require.Equal(t, int64(2), acc.Finish())
	acc.Retract("a")
	require.Equal(t, int64(1), acc.Finish())
}

func TestSumAccumulator(t *testing.T) {
	extract := func(v interface{}) int64 { return v.(int64) }
	acc := collector.Sum(extract).CreateAccumulator()
	acc.Accumulate(int64(3))
	acc.Accumulate(int64(4))
	require.Equal(t, int64(7), acc.Finish())
	acc.Retract(int64(3))
	require.Equal(t, int64(4), acc.Finish())
}

func TestMinMaxSurvivesRemovalOfExtremum(t *testing.T) {
	extract := func(v interface{}) int64 { return v.(int64) }
	minAcc := collector.Min(extract).CreateAccumulator()
	minAcc.Accumulate(int64(5))
	minAcc.Accumulate(int64(2))
	minAcc.Accumulate(int64(8))
	require.Equal(t, int64(2), minAcc.Finish())

	minAcc.Retract(int64(2))
	require.Equal(t, int64(5), minAcc.Finish())

	maxAcc := collector.Max(extract).CreateAccumulator()
	maxAcc.Accumulate(int64(5))
	maxAcc.Accumulate(int64(2))
	require.Equal(t, int64(5), maxAcc.Finish())
}

func TestMinOnEmptyGroupIsNil(t *testing.T) {
	extract := func(v interface{}) int64 { return v.(int64) }
	acc := collector.Min(extract).CreateAccumulator()
	require.Nil(t, acc.Finish())
}

func TestLoadBalanceIsAComposableCollector(t *testing.T) {
	// collector.LoadBalance() must satisfy Collector so it plugs into
	// NewGrouped exactly like Count/Sum/Min/Max.
	var _ collector.Collector = collector.LoadBalance()
}

func TestLoadBalanceUpdateMatchesFromScratch(t *testing.T) {
	// Three employees with loads (4,3,3): accumulate "a" four times,
	// "b" and "c" three times each.
	acc := collector.LoadBalance().CreateAccumulator()
	for i := 0; i < 4; i++ {
		acc.Accumulate("a")
	}
	for i := 0; i < 3; i++ {
		acc.Accumulate("b")
	}
	for i := 0; i < 3; i++ {
		acc.Accumulate("c")
	}

	fromScratch := collector.LoadBalance().CreateAccumulator()
	for i := 0; i < 4; i++ {
		fromScratch.Accumulate("a")
	}
	for i := 0; i < 3; i++ {
		fromScratch.Accumulate("b")
	}
	for i := 0; i < 3; i++ {
		fromScratch.Accumulate("c")
	}
	require.InDelta(t, fromScratch.Finish(), acc.Finish(), 1e-9)

	// Move one shift from "a" to "b": (4,3,3) -> (3,4,3).
	acc.Retract("a")
	acc.Accumulate("b")

	recomputed := collector.LoadBalance().CreateAccumulator()
	for i := 0; i < 3; i++ {
		recomputed.Accumulate("a")
	}
	for i := 0; i < 4; i++ {
		recomputed.Accumulate("b")
	}
	for i := 0; i < 3; i++ {
		recomputed.Accumulate("c")
	}
	require.InDelta(t, recomputed.Finish(), acc.Finish(), 1e-9)
}

func TestLoadBalanceEmptyIsZero(t *testing.T) {
	acc := collector.LoadBalance().CreateAccumulator()
	require.Equal(t, 0.0, acc.Finish())
}

func TestLoadBalanceDeletesEmptiedBucket(t *testing.T) {
	acc := collector.LoadBalance().CreateAccumulator()
	acc.Accumulate("a")
	acc.Retract("a")
	require.Equal(t, 0.0, acc.Finish())
}
