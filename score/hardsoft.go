package score

import (
	"fmt"
	"math/big"
)

// HardSoft is a score with exactly one hard level and one soft level: the
// canonical shape for "never break a hard rule, prefer a good soft rule"
// planning problems.
type HardSoft struct {
	Hard int64
	Soft int64
}

// ZeroHardSoft returns the HardSoft zero value.
func ZeroHardSoft() HardSoft { return HardSoft{} }

// NewHardSoft constructs a HardSoft from its two levels.
func NewHardSoft(hard, soft int64) HardSoft { return HardSoft{Hard: hard, Soft: soft} }

func (s HardSoft) IsFeasible() bool { return s.Hard >= 0 }

func (s HardSoft) Shape() Shape { return Shape{HardLevels: 1, SoftLevels: 1} }

func (s HardSoft) Levels() (hard, soft []int64) {
	return []int64{s.Hard}, []int64{s.Soft}
}

func (s HardSoft) Add(other Score) (Score, error) {
	o, ok := other.(HardSoft)
	if !ok {
		return nil, ErrShapeMismatch
	}
	hard, err := addInt64(s.Hard, o.Hard)
	if err != nil {
		return nil, err
	}
	soft, err := addInt64(s.Soft, o.Soft)
	if err != nil {
		return nil, err
	}
	return HardSoft{Hard: hard, Soft: soft}, nil
}

func (s HardSoft) Subtract(other Score) (Score, error) {
	o, ok := other.(HardSoft)
	if !ok {
		return nil, ErrShapeMismatch
	}
	if _, err := negInt64(o.Hard); err != nil {
		return nil, err
	}
	if _, err := negInt64(o.Soft); err != nil {
		return nil, err
	}
	return s.Add(o.Negate())
}

func (s HardSoft) Negate() Score {
	hard, errH := negInt64(s.Hard)
	soft, errS := negInt64(s.Soft)
	if errH != nil {
		hard = 9223372036854775807
	}
	if errS != nil {
		soft = 9223372036854775807
	}
	return HardSoft{Hard: hard, Soft: soft}
}

func (s HardSoft) Multiply(ratio *big.Rat) Score {
	return HardSoft{
		Hard: roundRatToInt64(s.Hard, ratio),
		Soft: roundRatToInt64(s.Soft, ratio),
	}
}

func (s HardSoft) Divide(ratio *big.Rat) Score {
	inv := new(big.Rat).Inv(ratio)
	return s.Multiply(inv)
}

func (s HardSoft) Abs() Score {
	return HardSoft{Hard: absInt64(s.Hard), Soft: absInt64(s.Soft)}
}

func (s HardSoft) CompareTo(other Score) (int, error) {
	o, ok := other.(HardSoft)
	if !ok {
		return 0, ErrShapeMismatch
	}
	return compareLevels([]int64{s.Hard, s.Soft}, []int64{o.Hard, o.Soft}), nil
}

func (s HardSoft) Equal(other Score) bool {
	o, ok := other.(HardSoft)
	return ok && s.Hard == o.Hard && s.Soft == o.Soft
}

// String renders the grammar `^-?\d+hard/-?\d+soft$`, e.g. "-2hard/5soft".
func (s HardSoft) String() string {
	return fmt.Sprintf("%dhard/%dsoft", s.Hard, s.Soft)
}
