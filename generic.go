package fix

import (
	"golang.org/x/exp/constraints"
)

// FromInt creates a Value equal to i; see FromInt64.
func FromInt[T constraints.Integer](i T, d Descriptor) (Value, error) {
	var zero T
	if zero-1 < zero {
		return FromInt64(int64(i), d)
	}
	return FromUint64(uint64(i), d)
}

// ToInt returns the integer part of v as a T, failing with ErrOverflow if it
// does not fit.
func ToInt[T constraints.Integer](v Value) (T, error) {
	var zero T
	if zero-1 < zero {
		i, err := v.Int64()
		if err != nil {
			return 0, err
		}
		if int64(T(i)) != i {
			return 0, ErrOverflow.New("%s outside the range of %T", v, zero)
		}
		return T(i), nil
	}

	u, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if uint64(T(u)) != u {
		return 0, ErrOverflow.New("%s outside the range of %T", v, zero)
	}
	return T(u), nil
}

// FromFloat creates a Value from f, truncating toward zero; see FromFloat64.
func FromFloat[T constraints.Float](f T, d Descriptor) (Value, error) {
	return FromFloat64(float64(f), d)
}

// ToFloat returns the T nearest to v.
func ToFloat[T constraints.Float](v Value) T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(v.Float32())
	}
	return T(v.Float64())
}
