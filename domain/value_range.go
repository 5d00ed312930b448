package domain

// ValueRange is the domain a genuine basic variable draws values from:
// either a countable integer range [Min, Max) or an explicit list of
// externally provided values (spec §3 "Variable").
type ValueRange struct {
	// countable range, used when values == nil.
	min, max int64
	// externally provided values, used when non-nil. Takes precedence
	// over the countable range.
	values []interface{}
}

// CountableValueRange returns a ValueRange over the half-open integer
// interval [min, max).
func CountableValueRange(min, max int64) ValueRange {
	return ValueRange{min: min, max: max}
}

// ListValueRange returns a ValueRange over an explicit, ordered list of
// values. The slice is copied so the caller's backing array can be
// reused.
func ListValueRange(values []interface{}) ValueRange {
	cp := append([]interface{}(nil), values...)
	return ValueRange{values: cp}
}

// Size returns the number of candidate values.
func (v ValueRange) Size() int {
	if v.values != nil {
		return len(v.values)
	}
	if v.max <= v.min {
		return 0
	}
	return int(v.max - v.min)
}

// At returns the i'th candidate value, 0 <= i < Size().
func (v ValueRange) At(i int) interface{} {
	if v.values != nil {
		return v.values[i]
	}
	return v.min + int64(i)
}

// IsEmpty reports whether the range has zero candidate values (spec §8
// boundary behaviors: "Value collections may be empty").
func (v ValueRange) IsEmpty() bool { return v.Size() == 0 }
