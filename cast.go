package fix

import (
	"math/big"
	"math/bits"

	"github.com/shabbyrobe/go-fix/internal/wide"
)

// Rounding selects how digits dropped by a conversion are handled.
type Rounding uint8

const (
	// HalfAwayFromZero rounds to the nearest mantissa, ties away from zero.
	// Cast uses it.
	HalfAwayFromZero Rounding = iota

	// TowardZero truncates. Conversions from floats, integers and decimals
	// use it.
	TowardZero
)

func (r Rounding) String() string {
	switch r {
	case HalfAwayFromZero:
		return "half-away-from-zero"
	case TowardZero:
		return "toward-zero"
	default:
		return "unknown"
	}
}

// Cast converts v to target. Moving to a smaller exponent multiplies the
// mantissa and is exact; moving to a larger one divides it, rounding half
// away from zero. The result must fit target, otherwise Cast fails with
// ErrOverflow. Negative values never fit an unsigned target.
//
// Descriptors with different radices fail with ErrRadixMismatch.
func (v Value) Cast(target Descriptor) (Value, error) {
	return v.CastWith(target, HalfAwayFromZero)
}

// CastWith is Cast with an explicit rounding rule.
func (v Value) CastWith(target Descriptor, mode Rounding) (Value, error) {
	if err := checkOperands(v.desc, target); err != nil {
		return Value{}, err
	}
	mag, overflow := rescale(v.mag, v.desc.radix, v.desc.Exponent(), target.Exponent(), mode)
	if overflow {
		return Value{}, ErrOverflow.New("%s outside the range of %s", v, target)
	}
	return target.make(v.neg, mag)
}

// CastSaturating is Cast, clamping to target's range instead of failing.
// Negative values saturate to zero at an unsigned target. It panics with
// ErrRadixMismatch if the radices differ.
func (v Value) CastSaturating(target Descriptor) Value {
	if err := checkOperands(v.desc, target); err != nil {
		panic(err)
	}
	if v.neg && !target.signed {
		return target.Zero()
	}
	mag, overflow := rescale(v.mag, v.desc.radix, v.desc.Exponent(), target.Exponent(), HalfAwayFromZero)
	if overflow || mag.GreaterThan(target.max) {
		mag = target.max
	}
	return makeValue(target, v.neg, mag)
}

// rescale moves a magnitude from exponent from to exponent to.
func rescale(mag wide.U128, radix uint32, from, to int, mode Rounding) (out wide.U128, overflow bool) {
	if mag.IsZero() || from == to {
		return mag, false
	}

	if from > to {
		f, ok := wide.Pow(uint64(radix), uint(from-to))
		if !ok {
			return wide.MaxU128, true
		}
		if out, ok = mag.MulCheck(f); !ok {
			return wide.MaxU128, true
		}
		return out, false
	}

	k := to - from
	f, ok := wide.Pow(uint64(radix), uint(k))
	if !ok {
		return rescaleTiny(mag, radix, k, mode), false
	}
	q, r := mag.QuoRem(f)
	if mode == HalfAwayFromZero && r.GreaterOrEqualTo(f.Sub(r)) {
		q = q.Inc()
	}
	return q, false
}

// rescaleTiny handles a divisor of radix^k beyond 128 bits. The truncated
// quotient is always zero; only rounding can lift it to one.
func rescaleTiny(mag wide.U128, radix uint32, k int, mode Rounding) wide.U128 {
	if mode == TowardZero {
		return wide.U128{}
	}

	// radix^k >= 2^(k*floor(log2(radix))); anything past 2^129 is more than
	// twice the largest magnitude.
	if k*(bits.Len32(radix)-1) > 129 {
		return wide.U128{}
	}

	var div, twice big.Int
	div.Exp(big.NewInt(int64(radix)), big.NewInt(int64(k)), nil)
	mag.IntoBigInt(&twice)
	twice.Lsh(&twice, 1)
	if twice.Cmp(&div) >= 0 {
		return wide.U128From64(1)
	}
	return wide.U128{}
}
