package constraint

// combinations returns every k-element subset of items, preserving
// items' input order within each subset (so if items is already sorted,
// every returned subset is sorted too — the property arity-k self-joins
// rely on to keep match tuples canonically ordered). Returns nil if
// k > len(items) or k <= 0.
func combinations(items []int, k int) [][]int {
	n := len(items)
	if k <= 0 || k > n {
		return nil
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]int, k)
		for i, j := range idx {
			combo[i] = items[j]
		}
		out = append(out, combo)

		// advance idx to the next combination, odometer-style from the
		// rightmost position that still has room to grow.
		pos := k - 1
		for pos >= 0 && idx[pos] == n-k+pos {
			pos--
		}
		if pos < 0 {
			return out
		}
		idx[pos]++
		for i := pos + 1; i < k; i++ {
			idx[i] = idx[i-1] + 1
		}
	}
}

// sortedInsert inserts v into the sorted int slice xs, preserving order
// and uniqueness: if v is already present, xs is returned unchanged.
func sortedInsert(xs []int, v int) []int {
	lo, hi := 0, len(xs)
	for lo < hi {
		mid := (lo + hi) / 2
		if xs[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(xs) && xs[lo] == v {
		return xs
	}
	xs = append(xs, 0)
	copy(xs[lo+1:], xs[lo:len(xs)-1])
	xs[lo] = v
	return xs
}

// sortedRemove removes v from the sorted int slice xs if present.
func sortedRemove(xs []int, v int) []int {
	lo, hi := 0, len(xs)
	for lo < hi {
		mid := (lo + hi) / 2
		if xs[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= len(xs) || xs[lo] != v {
		return xs
	}
	return append(xs[:lo], xs[lo+1:]...)
}

// sortInts sorts a small slice in place via insertion sort, which is the
// cheapest correct choice at the k<=5 tuple sizes arity-k self-joins
// build (spec §9).
func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
