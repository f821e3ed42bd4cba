package fix

import (
	"fmt"
	"math"

	"github.com/shabbyrobe/go-fix/internal/wide"
)

const (
	MinRadix = 2
	MaxRadix = math.MaxUint32

	// MaxDigits is the most digits any descriptor can have; even in radix 2,
	// more than 128 digits cannot be stored.
	MaxDigits = 128

	MinExponent = -1 << 20
	MaxExponent = 1 << 20
)

// Descriptor describes a fixed-point representation: a mantissa of up to
// digits digits in radix, scaled by radix^exponent, optionally signed.
//
// Descriptors are comparable; two descriptors are == when they describe the
// same representation. The zero Descriptor is invalid.
type Descriptor struct {
	radix    uint32
	digits   uint8
	signed   bool
	exponent int32
	kind     StorageKind
	max      wide.U128
}

// NewDescriptor validates a descriptor and resolves its StorageKind against
// EnabledWidths.
func NewDescriptor(radix, digits, exponent int, signed bool) (Descriptor, error) {
	return EnabledWidths.NewDescriptor(radix, digits, exponent, signed)
}

// NewDescriptor is like the package-level NewDescriptor but resolves the
// StorageKind against w instead of EnabledWidths. The result can only be
// used to build Values if its kind is also enabled in this binary.
func (w Widths) NewDescriptor(radix, digits, exponent int, signed bool) (Descriptor, error) {
	if err := checkRadixDigits(radix, digits); err != nil {
		return Descriptor{}, err
	}
	if exponent < MinExponent || exponent > MaxExponent {
		return Descriptor{}, ErrInvalidDescriptor.New("exponent %d outside [%d, %d]", exponent, MinExponent, MaxExponent)
	}

	max, ok := maxMantissa(radix, digits)
	if !ok {
		return Descriptor{}, ErrUnsupportedWidth.New("%d^%d does not fit in 128 bits", radix, digits)
	}
	kind, err := w.resolveMax(max, radix, digits, signed)
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		radix:    uint32(radix),
		digits:   uint8(digits),
		signed:   signed,
		exponent: int32(exponent),
		kind:     kind,
		max:      max,
	}, nil
}

// MustDescriptor is NewDescriptor for package-level variables; it panics if
// the descriptor is invalid or cannot be stored.
func MustDescriptor(radix, digits, exponent int, signed bool) Descriptor {
	d, err := NewDescriptor(radix, digits, exponent, signed)
	if err != nil {
		panic(err)
	}
	return d
}

func checkRadixDigits(radix, digits int) error {
	if radix < MinRadix || radix > MaxRadix {
		return ErrInvalidDescriptor.New("radix %d outside [%d, %d]", radix, MinRadix, MaxRadix)
	}
	if digits < 1 {
		return ErrInvalidDescriptor.New("digits must be at least 1, found %d", digits)
	}
	if digits > MaxDigits {
		return ErrUnsupportedWidth.New("%d digits in radix %d exceed 128 bits", digits, radix)
	}
	return nil
}

func (d Descriptor) Radix() int           { return int(d.radix) }
func (d Descriptor) Digits() int          { return int(d.digits) }
func (d Descriptor) Exponent() int        { return int(d.exponent) }
func (d Descriptor) Signed() bool         { return d.signed }
func (d Descriptor) Storage() StorageKind { return d.kind }

// IsValid reports whether d was built by NewDescriptor (or derived from one)
// rather than being the zero Descriptor.
func (d Descriptor) IsValid() bool { return d.radix != 0 }

// WithSigned returns d with its signedness replaced. Making a descriptor
// signed can need a wider container, so it can fail with ErrUnsupportedWidth.
func (d Descriptor) WithSigned(signed bool) (Descriptor, error) {
	if d.signed == signed {
		return d, nil
	}
	return NewDescriptor(d.Radix(), d.Digits(), d.Exponent(), signed)
}

// WithExponent returns d rescaled to a new exponent, keeping the digit count.
func (d Descriptor) WithExponent(exponent int) (Descriptor, error) {
	return NewDescriptor(d.Radix(), d.Digits(), exponent, d.signed)
}

// Zero returns the zero Value of d. Unmarshalling into a Value needs a
// receiver that already carries its descriptor:
//
//	v := d.Zero()
//	err := json.Unmarshal(data, &v)
func (d Descriptor) Zero() Value { return Value{desc: d} }

// Max returns the largest Value d can hold.
func (d Descriptor) Max() Value { return Value{desc: d, mag: d.max} }

// Min returns the smallest Value d can hold; zero for unsigned descriptors.
func (d Descriptor) Min() Value {
	if !d.signed {
		return Value{desc: d}
	}
	return Value{desc: d, neg: true, mag: d.max}
}

// Ulp returns the Value with a mantissa of one, the distance between
// adjacent values of d.
func (d Descriptor) Ulp() Value { return Value{desc: d, mag: wide.U128From64(1)} }

// String renders the descriptor as i16@2^-8: the sign (i or u), the digit
// count, the radix and the exponent.
func (d Descriptor) String() string {
	if !d.IsValid() {
		return "invalid"
	}
	sign := 'u'
	if d.signed {
		sign = 'i'
	}
	return fmt.Sprintf("%c%d@%d^%d", sign, d.digits, d.radix, d.exponent)
}

func (d Descriptor) checkValid() error {
	if !d.IsValid() {
		return ErrInvalidDescriptor.New("zero Descriptor")
	}
	return nil
}

// fits reports whether a sign and magnitude are within d's range.
func (d Descriptor) fits(neg bool, mag wide.U128) bool {
	if neg && !d.signed && !mag.IsZero() {
		return false
	}
	return mag.LessOrEqualTo(d.max)
}

// make builds a Value at d, failing with ErrOverflow if it is out of range.
func (d Descriptor) make(neg bool, mag wide.U128) (Value, error) {
	if !d.fits(neg, mag) {
		return Value{}, ErrOverflow.New("%s%s outside the range of %s", signString(neg), mag, d)
	}
	return makeValue(d, neg, mag), nil
}

func signString(neg bool) string {
	if neg {
		return "-"
	}
	return ""
}
