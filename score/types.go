package score

import (
	"math"
	"math/big"
)

// Shape describes the level layout a score value carries: how many hard
// levels and how many soft levels. Two scores must share a Shape before
// any arithmetic or comparison is attempted; ConstraintSet validates this
// once at construction time (see package constraint) so the hot insert/
// retract path never has to re-check it.
type Shape struct {
	HardLevels int
	SoftLevels int
}

// Score is satisfied by Simple, HardSoft and Bendable. Every method that
// combines two scores returns ErrShapeMismatch if their Shape differs.
type Score interface {
	// IsFeasible reports whether every hard level is >= 0.
	IsFeasible() bool
	// Add returns the receiver plus other.
	Add(other Score) (Score, error)
	// Subtract returns the receiver minus other.
	Subtract(other Score) (Score, error)
	// Negate returns the additive inverse.
	Negate() Score
	// Multiply scales every level by ratio, rounding half-away-from-zero.
	Multiply(ratio *big.Rat) Score
	// Divide scales every level by 1/ratio, rounding half-away-from-zero.
	Divide(ratio *big.Rat) Score
	// Abs returns a score with every level's absolute value.
	Abs() Score
	// CompareTo returns -1, 0 or 1 comparing the receiver to other
	// lexicographically starting at hard level 0.
	CompareTo(other Score) (int, error)
	// Equal reports whether the receiver and other are identical vectors.
	Equal(other Score) bool
	// String renders the canonical textual form that Parse reads back.
	String() string
	// Levels returns the hard and soft level vectors, in order.
	Levels() (hard, soft []int64)
	// Shape returns the receiver's level layout.
	Shape() Shape
}

// addInt64 adds a and b, reporting ErrScoreOverflow instead of wrapping.
func addInt64(a, b int64) (int64, error) {
	sum := a + b
	// Overflow occurred iff the operands share a sign and the result's
	// sign differs from theirs.
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrScoreOverflow
	}
	return sum, nil
}

// negInt64 negates a, reporting ErrScoreOverflow for math.MinInt64 (whose
// negation does not fit in an int64).
func negInt64(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, ErrScoreOverflow
	}
	return -a, nil
}

// absInt64 returns the absolute value of a.
func absInt64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// roundRatToInt64 multiplies v by ratio and rounds the result
// half-away-from-zero.
func roundRatToInt64(v int64, ratio *big.Rat) int64 {
	scaled := new(big.Rat).Mul(big.NewRat(v, 1), ratio)
	num := new(big.Int).Set(scaled.Num())
	den := new(big.Int).Set(scaled.Denom())

	neg := num.Sign() < 0
	if neg {
		num.Neg(num)
	}
	// half-away-from-zero: (2*num + den) / (2*den), integer division.
	twoNum := new(big.Int).Lsh(num, 1)
	twoNum.Add(twoNum, den)
	twoDen := new(big.Int).Lsh(den, 1)
	q := new(big.Int).Quo(twoNum, twoDen)
	if neg {
		q.Neg(q)
	}
	return q.Int64()
}

// compareLevels lexicographically compares two equal-length level slices.
func compareLevels(a, b []int64) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

func equalLevels(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
