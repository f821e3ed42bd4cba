package fix

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// DecimalPrecision is the number of fraction digits Decimal keeps when a
// value has no finite decimal expansion (radices with prime factors other
// than 2 and 5).
const DecimalPrecision = 34

// Decimal returns v as a decimal.Decimal. The conversion is exact when the
// radix divides a power of ten; otherwise the result is rounded to
// DecimalPrecision fraction digits.
func (v Value) Decimal() decimal.Decimal {
	if !v.desc.IsValid() {
		return decimal.Zero
	}

	m := v.Mantissa()
	e := v.desc.Exponent()
	if e >= 0 {
		m.Mul(m, bigPow(v.desc.radix, e))
		return decimal.NewFromBigInt(m, 0)
	}

	k := -e
	if places, ok := decimalPlaces(v.desc.radix, k); ok {
		// radix^-k == (10^places / radix^k) * 10^-places, and the first factor
		// is an integer.
		f := new(big.Int).Quo(bigPow(10, places), bigPow(v.desc.radix, k))
		m.Mul(m, f)
		return decimal.NewFromBigInt(m, -int32(places))
	}

	num := decimal.NewFromBigInt(m, 0)
	den := decimal.NewFromBigInt(bigPow(v.desc.radix, k), 0)
	return num.DivRound(den, DecimalPrecision)
}

// decimalPlaces returns the number of decimal places radix^-k needs, if
// that is finite.
func decimalPlaces(radix uint32, k int) (places int, ok bool) {
	var twos, fives int
	for radix%2 == 0 {
		radix /= 2
		twos++
	}
	for radix%5 == 0 {
		radix /= 5
		fives++
	}
	if radix != 1 {
		return 0, false
	}
	return maxInt(twos, fives) * k, true
}

// FromDecimal creates a Value from x, truncating toward zero like
// FromFloat64.
func FromDecimal(x decimal.Decimal, d Descriptor) (Value, error) {
	if err := d.checkValid(); err != nil {
		return Value{}, err
	}
	if x.IsZero() {
		return d.Zero(), nil
	}

	// x.Rat() expands 10^|exponent|, which "1e-100000000" makes enormous.
	// Values whose magnitude is clearly below d's ulp or above its max are
	// settled from the decimal exponent alone.
	switch decimalRange(x, d) {
	case belowUlp:
		return d.Zero(), nil
	case aboveMax:
		return Value{}, ErrOverflow.New("decimal with %d digits at 10^%d outside the range of %s",
			x.NumDigits(), x.Exponent(), d)
	}
	return fromRat(x.Rat(), d, TowardZero)
}

const (
	inRange = iota
	belowUlp
	aboveMax
)

// decimalRange compares the order of magnitude of x with d's range, with a
// margin of one decimal digit either side for the float64 logarithms.
func decimalRange(x decimal.Decimal, d Descriptor) int {
	// 10^(top-1) <= |x| < 10^top
	top := float64(x.Exponent()) + float64(x.NumDigits())

	lg := math.Log10(float64(d.radix))
	lo := float64(d.Exponent()) * lg
	hi := float64(d.Exponent()+d.Digits()) * lg

	switch {
	case top < lo-1:
		return belowUlp
	case top-1 > hi+1:
		return aboveMax
	}
	return inRange
}

// Parse parses a decimal string such as "-12.5" or "1.25e3" into a Value of
// descriptor d, truncating digits d cannot hold.
func Parse(s string, d Descriptor) (Value, error) {
	x, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, ErrSyntax.Wrap(err)
	}
	return FromDecimal(x, d)
}
