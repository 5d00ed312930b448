package collector

// countAccumulator tracks how many values are currently in the group.
type countAccumulator struct{ n int64 }

// Count returns a Collector whose Finish() yields an int64 count.
func Count() Collector {
	return CollectorFunc(func() Accumulator { return &countAccumulator{} })
}

func (a *countAccumulator) Accumulate(interface{}) { a.n++ }
func (a *countAccumulator) Retract(interface{})    { a.n-- }
func (a *countAccumulator) Finish() interface{}    { return a.n }

// sumAccumulator sums values via an extraction function.
type sumAccumulator struct {
	extract func(value interface{}) int64
	total   int64
}

// Sum returns a Collector whose Finish() yields an int64 sum of
// extract(value) over every accumulated value.
func Sum(extract func(value interface{}) int64) Collector {
	return CollectorFunc(func() Accumulator { return &sumAccumulator{extract: extract} })
}

func (a *sumAccumulator) Accumulate(v interface{}) { a.total += a.extract(v) }
func (a *sumAccumulator) Retract(v interface{})    { a.total -= a.extract(v) }
func (a *sumAccumulator) Finish() interface{}      { return a.total }

// extremumAccumulator tracks the multiset of extracted keys so Retract
// can recompute the extremum in O(distinct values) even after the
// current extremum's only occurrence is removed.
type extremumAccumulator struct {
	extract func(value interface{}) int64
	min     bool
	counts  map[int64]int
}

// Min returns a Collector whose Finish() yields the smallest
// extract(value) currently in the group, or nil if the group is empty.
func Min(extract func(value interface{}) int64) Collector {
	return CollectorFunc(func() Accumulator {
		return &extremumAccumulator{extract: extract, min: true, counts: make(map[int64]int)}
	})
}

// Max returns a Collector whose Finish() yields the largest
// extract(value) currently in the group, or nil if the group is empty.
func Max(extract func(value interface{}) int64) Collector {
	return CollectorFunc(func() Accumulator {
		return &extremumAccumulator{extract: extract, min: false, counts: make(map[int64]int)}
	})
}

func (a *extremumAccumulator) Accumulate(v interface{}) {
	a.counts[a.extract(v)]++
}

func (a *extremumAccumulator) Retract(v interface{}) {
	k := a.extract(v)
	a.counts[k]--
	if a.counts[k] <= 0 {
		delete(a.counts, k)
	}
}

func (a *extremumAccumulator) Finish() interface{} {
	if len(a.counts) == 0 {
		return nil
	}
	var best int64
	first := true
	for k := range a.counts {
		if first || (a.min && k < best) || (!a.min && k > best) {
			best = k
			first = false
		}
	}
	return best
}
