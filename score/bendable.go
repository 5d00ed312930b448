package score

import (
	"math/big"
	"strings"
)

// Bendable is a score whose hard-level and soft-level counts are fixed at
// construction but chosen at runtime (e.g. a problem with three hard
// rule families and two soft rule families). Two Bendable values must
// share both counts before any arithmetic is valid.
type Bendable struct {
	Hard []int64
	Soft []int64
}

// NewBendable constructs a Bendable, copying the input slices so the
// caller's backing arrays can be reused.
func NewBendable(hard, soft []int64) Bendable {
	h := append([]int64(nil), hard...)
	s := append([]int64(nil), soft...)
	return Bendable{Hard: h, Soft: s}
}

// ZeroBendable returns a Bendable of the given shape with every level 0.
func ZeroBendable(hardLevels, softLevels int) Bendable {
	return Bendable{Hard: make([]int64, hardLevels), Soft: make([]int64, softLevels)}
}

func (s Bendable) IsFeasible() bool {
	for _, h := range s.Hard {
		if h < 0 {
			return false
		}
	}
	return true
}

func (s Bendable) Shape() Shape {
	return Shape{HardLevels: len(s.Hard), SoftLevels: len(s.Soft)}
}

func (s Bendable) Levels() (hard, soft []int64) { return s.Hard, s.Soft }

func (s Bendable) sameShape(o Bendable) bool {
	return len(s.Hard) == len(o.Hard) && len(s.Soft) == len(o.Soft)
}

func (s Bendable) Add(other Score) (Score, error) {
	o, ok := other.(Bendable)
	if !ok || !s.sameShape(o) {
		return nil, ErrShapeMismatch
	}
	hard := make([]int64, len(s.Hard))
	for i := range hard {
		v, err := addInt64(s.Hard[i], o.Hard[i])
		if err != nil {
			return nil, err
		}
		hard[i] = v
	}
	soft := make([]int64, len(s.Soft))
	for i := range soft {
		v, err := addInt64(s.Soft[i], o.Soft[i])
		if err != nil {
			return nil, err
		}
		soft[i] = v
	}
	return Bendable{Hard: hard, Soft: soft}, nil
}

func (s Bendable) Subtract(other Score) (Score, error) {
	o, ok := other.(Bendable)
	if !ok || !s.sameShape(o) {
		return nil, ErrShapeMismatch
	}
	for _, levels := range [][]int64{o.Hard, o.Soft} {
		for _, v := range levels {
			if _, err := negInt64(v); err != nil {
				return nil, err
			}
		}
	}
	return s.Add(o.Negate())
}

func (s Bendable) Negate() Score {
	hard := make([]int64, len(s.Hard))
	for i, h := range s.Hard {
		n, err := negInt64(h)
		if err != nil {
			n = 9223372036854775807
		}
		hard[i] = n
	}
	soft := make([]int64, len(s.Soft))
	for i, v := range s.Soft {
		n, err := negInt64(v)
		if err != nil {
			n = 9223372036854775807
		}
		soft[i] = n
	}
	return Bendable{Hard: hard, Soft: soft}
}

func (s Bendable) Multiply(ratio *big.Rat) Score {
	hard := make([]int64, len(s.Hard))
	for i, h := range s.Hard {
		hard[i] = roundRatToInt64(h, ratio)
	}
	soft := make([]int64, len(s.Soft))
	for i, v := range s.Soft {
		soft[i] = roundRatToInt64(v, ratio)
	}
	return Bendable{Hard: hard, Soft: soft}
}

func (s Bendable) Divide(ratio *big.Rat) Score {
	inv := new(big.Rat).Inv(ratio)
	return s.Multiply(inv)
}

func (s Bendable) Abs() Score {
	hard := make([]int64, len(s.Hard))
	for i, h := range s.Hard {
		hard[i] = absInt64(h)
	}
	soft := make([]int64, len(s.Soft))
	for i, v := range s.Soft {
		soft[i] = absInt64(v)
	}
	return Bendable{Hard: hard, Soft: soft}
}

func (s Bendable) CompareTo(other Score) (int, error) {
	o, ok := other.(Bendable)
	if !ok || !s.sameShape(o) {
		return 0, ErrShapeMismatch
	}
	if c := compareLevels(s.Hard, o.Hard); c != 0 {
		return c, nil
	}
	return compareLevels(s.Soft, o.Soft), nil
}

func (s Bendable) Equal(other Score) bool {
	o, ok := other.(Bendable)
	if !ok {
		return false
	}
	return equalLevels(s.Hard, o.Hard) && equalLevels(s.Soft, o.Soft)
}

// String renders the grammar
// `^\[(-?\d+/)*-?\d+\]hard/\[(-?\d+/)*-?\d+\]soft$`,
// e.g. "[0/-1]hard/[-10/-20]soft".
func (s Bendable) String() string {
	var b strings.Builder
	b.WriteByte('[')
	writeLevels(&b, s.Hard)
	b.WriteString("]hard/[")
	writeLevels(&b, s.Soft)
	b.WriteString("]soft")
	return b.String()
}

func writeLevels(b *strings.Builder, levels []int64) {
	for i, v := range levels {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(formatInt64(v))
	}
}
