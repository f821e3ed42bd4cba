package fix

import "fmt"

func mustMatch(v, w Value) {
	if v.desc != w.desc {
		panic(ErrDescriptorMismatch.New("%s and %s; cast one side first", v.desc, w.desc))
	}
}

// Cmp compares v and w and returns -1, 0 or +1. Both must share a
// descriptor; Cmp panics with ErrDescriptorMismatch otherwise.
func (v Value) Cmp(w Value) int {
	mustMatch(v, w)
	switch {
	case v.neg && !w.neg:
		return -1
	case !v.neg && w.neg:
		return 1
	case v.neg:
		return w.mag.Cmp(v.mag)
	default:
		return v.mag.Cmp(w.mag)
	}
}

// Equal reports whether v == w. Values of different descriptors are never
// equal, even if they denote the same number.
func (v Value) Equal(w Value) bool { return v == w }

func (v Value) LessThan(w Value) bool         { return v.Cmp(w) < 0 }
func (v Value) LessOrEqualTo(w Value) bool    { return v.Cmp(w) <= 0 }
func (v Value) GreaterThan(w Value) bool      { return v.Cmp(w) > 0 }
func (v Value) GreaterOrEqualTo(w Value) bool { return v.Cmp(w) >= 0 }

// Max returns the larger of a and b.
func Max(a, b Value) Value {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b Value) Value {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Difference subtracts the smaller of a and b from the larger. The result is
// at DifferenceOf(a, b) and never negative.
func Difference(a, b Value) Value {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

// Clamp limits v to [lo, hi]. All three must share a descriptor. It panics
// if lo > hi.
func Clamp(v, lo, hi Value) Value {
	if lo.Cmp(hi) > 0 {
		panic(fmt.Errorf("fix: clamp bounds %s > %s", lo, hi))
	}
	if v.Cmp(lo) < 0 {
		return lo
	}
	if v.Cmp(hi) > 0 {
		return hi
	}
	return v
}

// Scale multiplies v by a factor of the same descriptor. The result is at
// ProductOf(d, d).
func Scale(v, k Value) Value {
	mustMatch(v, k)
	return v.Mul(k)
}
