package fix

import (
	"math/big"
	"math/bits"

	"github.com/shabbyrobe/go-fix/internal/wide"
)

// Add returns v+w at SumOf(v, w). The result always fits, so Add cannot
// fail at run time; it panics if the descriptors have different radices or
// SumOf cannot be stored, both of which are fixed by the descriptors alone.
func (v Value) Add(w Value) Value {
	d := mustDescriptor(SumOf(v.desc, w.desc))
	neg, mag := addSigned(v.neg, v.align(d), w.neg, w.align(d))
	return makeValue(d, neg, mag)
}

// Sub returns v-w at DifferenceOf(v, w). It panics under the same conditions
// as Add.
func (v Value) Sub(w Value) Value {
	d := mustDescriptor(DifferenceOf(v.desc, w.desc))
	neg, mag := addSigned(v.neg, v.align(d), !w.neg, w.align(d))
	return makeValue(d, neg, mag)
}

// Mul returns v*w at ProductOf(v, w). It panics under the same conditions as
// Add.
func (v Value) Mul(w Value) Value {
	d := mustDescriptor(ProductOf(v.desc, w.desc))
	return makeValue(d, v.neg != w.neg, v.mag.Mul(w.mag))
}

// Div returns v/w at QuotientOf(v, w), truncating the mantissa quotient
// toward zero. Dividing two values of the same descriptor therefore yields
// an integer; cast v to a smaller exponent first to keep fraction digits, or
// use DivTo.
//
// The result has as many digits as v, so an exact quotient always fits. Div
// fails with ErrDivisionByZero if w is zero.
func (v Value) Div(w Value) (Value, error) {
	d, err := QuotientOf(v.desc, w.desc)
	if err != nil {
		return Value{}, err
	}
	if w.mag.IsZero() {
		return Value{}, ErrDivisionByZero.New("%s / %s", v, w)
	}
	return d.make(v.neg != w.neg, v.mag.Quo(w.mag))
}

// DivTo returns v/w at target, rounding half away from zero. The quotient is
// computed at target's exponent, so a target with a smaller exponent than
// QuotientOf(v, w) keeps fraction digits Div would drop. DivTo fails with
// ErrOverflow if the quotient does not fit target.
func (v Value) DivTo(w Value, target Descriptor) (Value, error) {
	if err := checkOperands(v.desc, w.desc); err != nil {
		return Value{}, err
	}
	if err := checkOperands(v.desc, target); err != nil {
		return Value{}, err
	}
	if w.mag.IsZero() {
		return Value{}, ErrDivisionByZero.New("%s / %s", v, w)
	}
	k := v.desc.Exponent() - w.desc.Exponent() - target.Exponent()
	mag, overflow := quoScaled(v.mag, w.mag, target.radix, k)
	if overflow {
		return Value{}, ErrOverflow.New("%s / %s outside the range of %s", v, w, target)
	}
	return target.make(v.neg != w.neg, mag)
}

// quoScaled returns n*radix^k/d rounded half away from zero. d is non-zero.
func quoScaled(n, d wide.U128, radix uint32, k int) (q wide.U128, overflow bool) {
	if n.IsZero() {
		return q, false
	}

	// radix^|k| >= 2^(|k|*log2f); past these bounds the quotient is either
	// above 2^129 or below 1/4, without building radix^k.
	log2f := bits.Len32(radix) - 1
	if k > 0 && k*log2f > 257 {
		return wide.MaxU128, true
	}
	if k < 0 && -k*log2f > 130 {
		return q, false
	}

	var num, den, rem big.Int
	n.IntoBigInt(&num)
	d.IntoBigInt(&den)
	if k > 0 {
		num.Mul(&num, bigPow(radix, k))
	} else if k < 0 {
		den.Mul(&den, bigPow(radix, -k))
	}
	quo, _ := new(big.Int).QuoRem(&num, &den, &rem)
	if rem.Lsh(&rem, 1).Cmp(&den) >= 0 {
		quo.Add(quo, big1)
	}
	q, ok := wide.U128FromBigInt(quo)
	if !ok {
		return wide.MaxU128, true
	}
	return q, false
}

// Rem returns the remainder v - trunc(v/w)*w, which has the sign of v. Both
// operands must share a descriptor.
func (v Value) Rem(w Value) (Value, error) {
	if v.desc != w.desc {
		return Value{}, ErrDescriptorMismatch.New("%s %% %s", v.desc, w.desc)
	}
	if err := v.desc.checkValid(); err != nil {
		return Value{}, err
	}
	if w.mag.IsZero() {
		return Value{}, ErrDivisionByZero.New("%s %% %s", v, w)
	}
	return makeValue(v.desc, v.neg, v.mag.Rem(w.mag)), nil
}

// MulInt returns v*k at v's descriptor, failing with ErrOverflow if the
// product is out of range.
func (v Value) MulInt(k int64) (Value, error) {
	var km wide.U128
	if k < 0 {
		km = wide.U128From64(uint64(-(k+1)) + 1)
	} else {
		km = wide.U128From64(uint64(k))
	}
	mag, ok := v.mag.MulCheck(km)
	if !ok {
		return Value{}, ErrOverflow.New("%s * %d exceeds 128 bits", v, k)
	}
	return v.desc.make(v.neg != (k < 0), mag)
}

// align returns v's magnitude rescaled to d's exponent, which is never
// larger than v's. The caller guarantees the result fits.
func (v Value) align(d Descriptor) wide.U128 {
	delta := v.desc.Exponent() - d.Exponent()
	if delta == 0 {
		return v.mag
	}
	f, _ := wide.Pow(uint64(d.radix), uint(delta))
	return v.mag.Mul(f)
}

func addSigned(an bool, am wide.U128, bn bool, bm wide.U128) (neg bool, mag wide.U128) {
	if an == bn {
		return an, am.Add(bm)
	}
	if am.GreaterOrEqualTo(bm) {
		return an, am.Sub(bm)
	}
	return bn, bm.Sub(am)
}
