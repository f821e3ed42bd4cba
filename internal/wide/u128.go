package wide

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is an unsigned 128-bit integer. It is the magnitude carrier for every
// fixed-point mantissa, whatever storage kind the descriptor resolves to.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }

// U128FromBigInt creates a U128 from a big.Int. Negative values and values
// that do not fit in 128 bits set accurate to false; overflow clamps to
// MaxU128.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 128 {
		return MaxU128, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
		case 1:
			out.lo = uint64(words[0])
		default:
			out.hi, out.lo = uint64(words[1]), uint64(words[0])
		}

	case 32:
		var w [4]uint64
		for i := 0; i < len(words) && i < 4; i++ {
			w[i] = uint64(words[i])
		}
		out.hi = w[3]<<32 | w[2]
		out.lo = w[1]<<32 | w[0]

	default:
		panic("wide: unsupported bit size")
	}

	return out, true
}

// U128FromFloat64 creates a U128 from the integer part of f, truncating
// toward zero. Negative values, NaN and values >= 2^128 set inRange to false;
// overflow clamps to MaxU128.
func U128FromFloat64(f float64) (out U128, inRange bool) {
	switch {
	case f != f: // NaN
		return out, false
	case f < 0:
		return out, f > -1
	case f < wrapUint64Float:
		return U128{lo: uint64(f)}, true
	case f < wrapU128Float:
		hi := math.Floor(f / wrapUint64Float)
		return U128{hi: uint64(hi), lo: uint64(f - hi*wrapUint64Float)}, true
	default:
		return MaxU128, false
	}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool { return u.hi == 0 }

// AsUint64 truncates the U128 to its low 64 bits.
func (u U128) AsUint64() uint64 { return u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// IntoBigInt copies u into b, allowing the caller to recycle memory.
func (u U128) IntoBigInt(b *big.Int) {
	b.SetUint64(u.hi)
	b.Lsh(b, 64)
	var lo big.Int
	lo.SetUint64(u.lo)
	b.Or(b, &lo)
}

func (u U128) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsFloat64 returns the float64 nearest to u.
func (u U128) AsFloat64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}

	// Keep the top 64 bits and fold everything shifted out into a sticky bit
	// so the single float64 conversion below rounds correctly.
	n := uint(64 - bits.LeadingZeros64(u.hi))
	top := u.Rsh(n).lo
	if u.lo<<(64-n) != 0 {
		top |= 1
	}
	return math.Ldexp(float64(top), int(n))
}

func (u U128) Inc() (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Dec() (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

// Add returns u+n, wrapping on overflow.
func (u U128) Add(n U128) (v U128) {
	v, _ = u.AddCarry(n)
	return v
}

// AddCarry returns u+n and whether the sum overflowed 128 bits.
func (u U128) AddCarry(n U128) (v U128, overflow bool) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, carry = bits.Add64(u.hi, n.hi, carry)
	return v, carry != 0
}

// Sub returns u-n, wrapping on underflow.
func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return !u.LessThan(n)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return !u.GreaterThan(n)
}

func (u U128) And(v U128) U128 { return U128{hi: u.hi & v.hi, lo: u.lo & v.lo} }
func (u U128) Or(v U128) U128  { return U128{hi: u.hi | v.hi, lo: u.lo | v.lo} }
func (u U128) Not() U128       { return U128{hi: ^u.hi, lo: ^u.lo} }

func (u U128) Lsh(n uint) (v U128) {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return v
	case n >= 64:
		v.hi = u.lo << (n - 64)
	default:
		v.hi = u.hi<<n | u.lo>>(64-n)
		v.lo = u.lo << n
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return v
	case n >= 64:
		v.lo = u.hi >> (n - 64)
	default:
		v.lo = u.lo>>n | u.hi<<(64-n)
		v.hi = u.hi >> n
	}
	return v
}

// Bit returns the value of bit i.
func (u U128) Bit(i uint) uint {
	if i >= 64 {
		return uint(u.hi>>(i-64)) & 1
	}
	return uint(u.lo>>i) & 1
}

// Mul returns the low 128 bits of u*n.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = bits.Mul64(u.lo, n.lo)
	dest.hi += u.hi*n.lo + u.lo*n.hi
	return dest
}

// MulFull returns the full 256-bit product u*n split into its high and low
// halves.
func (u U128) MulFull(n U128) (hi, lo U128) {
	h00, l00 := bits.Mul64(u.lo, n.lo)
	h01, l01 := bits.Mul64(u.lo, n.hi)
	h10, l10 := bits.Mul64(u.hi, n.lo)
	h11, l11 := bits.Mul64(u.hi, n.hi)

	var c1, c2, c3, c4 uint64
	lo.lo = l00
	lo.hi, c1 = bits.Add64(h00, l01, 0)
	lo.hi, c2 = bits.Add64(lo.hi, l10, 0)
	hi.lo, c3 = bits.Add64(h01, h10, c1)
	hi.lo, c4 = bits.Add64(hi.lo, l11, c2)
	hi.hi = h11 + c3 + c4
	return hi, lo
}

// MulCheck returns u*n and reports whether the product fits in 128 bits.
func (u U128) MulCheck(n U128) (U128, bool) {
	hi, lo := u.MulFull(n)
	return lo, hi.IsZero()
}

// Quo returns the quotient u/by, truncated. If by == 0, a division-by-zero
// run-time panic occurs.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by. If by == 0, a division-by-zero run-time
// panic occurs.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi == 0 && by.lo == 0 {
		panic("wide: division by zero")
	}

	if by.hi == 0 {
		if u.hi < by.lo {
			q.lo, r.lo = bits.Div64(u.hi, u.lo, by.lo)
			return q, r
		}
		q.hi, r.hi = bits.Div64(0, u.hi, by.lo)
		q.lo, r.lo = bits.Div64(r.hi, u.lo, by.lo)
		r.hi = 0
		return q, r
	}

	if u.LessThan(by) {
		return q, u
	}

	// Adapted from Warren, Hacker's Delight, 9-5 (divlu2). Normalise the
	// divisor so its top bit is set, estimate the quotient from the high
	// words and correct it by at most one.
	n := uint(bits.LeadingZeros64(by.hi))
	v1 := by.Lsh(n)
	u1 := u.Rsh(1)
	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}

	q = U128{lo: tq}
	r = u.Sub(q.Mul(by))
	if r.GreaterOrEqualTo(by) {
		q = q.Inc()
		r = r.Sub(by)
	}
	return q, r
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// BitLen returns the number of bits required to represent u; BitLen of zero
// is 0.
func (u U128) BitLen() int {
	return 128 - int(u.LeadingZeros())
}

// Pow returns base^exp and reports whether the result fits in 128 bits.
func Pow(base uint64, exp uint) (out U128, ok bool) {
	out = U128{lo: 1}
	b := U128{lo: base}
	for exp > 0 {
		if exp&1 == 1 {
			if out, ok = out.MulCheck(b); !ok {
				return MaxU128, false
			}
		}
		exp >>= 1
		if exp > 0 {
			if b, ok = b.MulCheck(b); !ok {
				return MaxU128, false
			}
		}
	}
	return out, true
}
