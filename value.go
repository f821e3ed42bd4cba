package fix

import (
	"math/big"

	"github.com/shabbyrobe/go-fix/internal/wide"
)

// Value is a fixed-point number: a mantissa interpreted as
// mantissa * radix^exponent under its Descriptor.
//
// Value is a value type; all operations return new values. Values are
// comparable with == (equal descriptors and equal mantissas) and can be used
// as map keys. The zero Value has no descriptor; use Descriptor.Zero.
type Value struct {
	desc Descriptor
	neg  bool
	mag  wide.U128
}

// makeValue skips the range check; the sign of a zero mantissa is dropped so
// == stays meaningful.
func makeValue(d Descriptor, neg bool, mag wide.U128) Value {
	if mag.IsZero() {
		neg = false
	}
	return Value{desc: d, neg: neg, mag: mag}
}

// FromMantissa creates a Value from its raw mantissa.
func FromMantissa(m int64, d Descriptor) (Value, error) {
	if err := d.checkValid(); err != nil {
		return Value{}, err
	}
	if m < 0 {
		return d.make(true, wide.U128From64(uint64(-(m + 1)) + 1))
	}
	return d.make(false, wide.U128From64(uint64(m)))
}

// FromBigInt creates a Value from a raw mantissa held in a big.Int.
func FromBigInt(m *big.Int, d Descriptor) (Value, error) {
	if err := d.checkValid(); err != nil {
		return Value{}, err
	}
	var abs big.Int
	abs.Abs(m)
	mag, ok := wide.U128FromBigInt(&abs)
	if !ok {
		return Value{}, ErrOverflow.New("mantissa %s outside the range of %s", m, d)
	}
	return d.make(m.Sign() < 0, mag)
}

// FromInt128 creates a Value from a mantissa in 128-bit two's complement
// form, split into its high and low words. See Value.Int128 for the
// counterpart.
func FromInt128(hi, lo uint64, d Descriptor) (Value, error) {
	if err := d.checkValid(); err != nil {
		return Value{}, err
	}
	neg, mag := wide.I128FromRaw(hi, lo).Split()
	return d.make(neg, mag)
}

func (v Value) Descriptor() Descriptor { return v.desc }

// Mantissa returns the raw mantissa as a big.Int.
func (v Value) Mantissa() *big.Int {
	m := v.mag.AsBigInt()
	if v.neg {
		m.Neg(m)
	}
	return m
}

// Mantissa64 returns the raw mantissa if it fits in an int64.
func (v Value) Mantissa64() (m int64, ok bool) {
	if !v.mag.IsUint64() {
		return 0, false
	}
	u := v.mag.AsUint64()
	if v.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}

// Int128 returns the raw mantissa in 128-bit two's complement form. Unsigned
// mantissas at or above 1<<127 come back with the top bit set, so read them
// as unsigned.
func (v Value) Int128() (hi, lo uint64) {
	return wide.I128FromSigned(v.neg, v.mag).Raw()
}

// Sign returns -1, 0 or +1.
func (v Value) Sign() int {
	if v.mag.IsZero() {
		return 0
	} else if v.neg {
		return -1
	}
	return 1
}

func (v Value) IsZero() bool { return v.mag.IsZero() }

// Neg returns -v. The result is at the signed variant of v's descriptor; Neg
// panics with ErrUnsupportedWidth if that variant cannot be stored.
func (v Value) Neg() Value {
	d := mustDescriptor(v.desc.WithSigned(true))
	return makeValue(d, !v.neg, v.mag)
}

// Abs returns |v| at the signed variant of v's descriptor, like Neg.
func (v Value) Abs() Value {
	d := mustDescriptor(v.desc.WithSigned(true))
	return makeValue(d, false, v.mag)
}
