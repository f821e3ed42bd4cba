package fix

import (
	"math"
	"math/big"

	"github.com/shabbyrobe/go-fix/internal/wide"
)

// FromFloat64 creates a Value from f, truncating toward zero:
// mantissa = trunc(f / radix^exponent), computed exactly. NaN, infinities and
// values outside d's range fail with ErrOverflow.
func FromFloat64(f float64, d Descriptor) (Value, error) {
	return fromFloat(f, d, TowardZero)
}

// FromFloat64Rounded is FromFloat64, rounding half away from zero instead of
// truncating.
func FromFloat64Rounded(f float64, d Descriptor) (Value, error) {
	return fromFloat(f, d, HalfAwayFromZero)
}

// FromFloat32 is FromFloat64 for a float32; every float32 converts to
// float64 exactly.
func FromFloat32(f float32, d Descriptor) (Value, error) {
	return fromFloat(float64(f), d, TowardZero)
}

func fromFloat(f float64, d Descriptor, mode Rounding) (Value, error) {
	if err := d.checkValid(); err != nil {
		return Value{}, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, ErrOverflow.New("%v is not representable in %s", f, d)
	}

	if d.radix != 2 {
		return fromRat(new(big.Rat).SetFloat64(f), d, mode)
	}

	// Scaling by a power of two is exact, so radix 2 needs no big arithmetic.
	neg := f < 0
	s := math.Ldexp(math.Abs(f), -d.Exponent())
	t := math.Trunc(s)
	if mode == HalfAwayFromZero && s-t >= 0.5 {
		t++
	}
	mag, inRange := wide.U128FromFloat64(t)
	if !inRange {
		return Value{}, ErrOverflow.New("%v outside the range of %s", f, d)
	}
	return d.make(neg, mag)
}

// fromRat creates a Value from an exact rational.
func fromRat(x *big.Rat, d Descriptor, mode Rounding) (Value, error) {
	num := new(big.Int).Abs(x.Num())
	den := new(big.Int).Set(x.Denom())
	if e := d.Exponent(); e < 0 {
		num.Mul(num, bigPow(d.radix, -e))
	} else if e > 0 {
		den.Mul(den, bigPow(d.radix, e))
	}

	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if mode == HalfAwayFromZero {
		if r.Lsh(r, 1).Cmp(den) >= 0 {
			q.Add(q, big1)
		}
	}

	mag, ok := wide.U128FromBigInt(q)
	if !ok {
		return Value{}, ErrOverflow.New("%s outside the range of %s", x.FloatString(6), d)
	}
	return d.make(x.Sign() < 0, mag)
}

// FromInt64 creates a Value equal to i. If d's exponent is positive, the
// digits below radix^exponent are truncated toward zero.
func FromInt64(i int64, d Descriptor) (Value, error) {
	if i < 0 {
		return fromInteger(true, wide.U128From64(uint64(-(i+1))+1), d)
	}
	return fromInteger(false, wide.U128From64(uint64(i)), d)
}

// FromUint64 is FromInt64 for unsigned integers.
func FromUint64(u uint64, d Descriptor) (Value, error) {
	return fromInteger(false, wide.U128From64(u), d)
}

func fromInteger(neg bool, mag wide.U128, d Descriptor) (Value, error) {
	if err := d.checkValid(); err != nil {
		return Value{}, err
	}
	scaled, overflow := rescale(mag, d.radix, 0, d.Exponent(), TowardZero)
	if overflow {
		return Value{}, ErrOverflow.New("%s%s outside the range of %s", signString(neg), mag, d)
	}
	return d.make(neg, scaled)
}

// integer returns the integer part of v, truncated toward zero.
func (v Value) integer() (neg bool, mag wide.U128, err error) {
	mag, overflow := rescale(v.mag, v.desc.radix, v.desc.Exponent(), 0, TowardZero)
	if overflow {
		return false, mag, ErrOverflow.New("%s exceeds 128 bits", v)
	}
	return v.neg && !mag.IsZero(), mag, nil
}

// Int64 returns the integer part of v, truncated toward zero. It fails with
// ErrOverflow if that does not fit in an int64.
func (v Value) Int64() (int64, error) {
	neg, mag, err := v.integer()
	if err != nil {
		return 0, err
	}
	if mag.IsUint64() {
		u := mag.AsUint64()
		if neg && u <= 1<<63 {
			return -int64(u), nil
		} else if !neg && u <= math.MaxInt64 {
			return int64(u), nil
		}
	}
	return 0, ErrOverflow.New("%s outside the range of int64", v)
}

// Uint64 returns the integer part of v, truncated toward zero. It fails with
// ErrOverflow if that is negative or does not fit in a uint64.
func (v Value) Uint64() (uint64, error) {
	neg, mag, err := v.integer()
	if err != nil {
		return 0, err
	}
	if neg || !mag.IsUint64() {
		return 0, ErrOverflow.New("%s outside the range of uint64", v)
	}
	return mag.AsUint64(), nil
}

// Rat returns the exact value of v as a big.Rat.
func (v Value) Rat() *big.Rat {
	num := v.Mantissa()
	e := v.desc.Exponent()
	if e >= 0 {
		num.Mul(num, bigPow(v.desc.radix, e))
		return new(big.Rat).SetInt(num)
	}
	return new(big.Rat).SetFrac(num, bigPow(v.desc.radix, -e))
}

// Float64 returns the float64 nearest to v. Radix 2 values whose mantissa
// has at most 53 significant bits convert exactly.
func (v Value) Float64() float64 {
	if v.desc.radix == 2 {
		f := math.Ldexp(v.mag.AsFloat64(), v.desc.Exponent())
		if v.neg {
			f = -f
		}
		return f
	}
	f, _ := v.Rat().Float64()
	return f
}

// Float32 returns the float32 nearest to v.
func (v Value) Float32() float32 {
	f, _ := v.Rat().Float32()
	return f
}

var big1 = big.NewInt(1)

func bigPow(radix uint32, exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(int64(exp)), nil)
}
