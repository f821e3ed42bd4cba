package fix

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// String returns the decimal form of v, e.g. "202.33984375".
func (v Value) String() string {
	return v.Decimal().String()
}

// GoString returns the raw form of v, mantissa x radix ^ exponent, e.g.
// "51799x2^-8".
func (v Value) GoString() string {
	return fmt.Sprintf("%sx%d^%d", v.Mantissa(), v.desc.radix, v.desc.exponent)
}

// Format implements fmt.Formatter.
//
//	%v, %s   decimal form
//	%#v      raw form, see GoString
//	%d       raw mantissa
//	%f, %F   decimal form, with %.Nf rounding half away from zero to N places
//	%e, %g   via Float64
func (v Value) Format(s fmt.State, c rune) {
	switch c {
	case 'v':
		if s.Flag('#') {
			io.WriteString(s, v.GoString())
			return
		}
		pad(s, v.String())

	case 's':
		pad(s, v.String())

	case 'q':
		pad(s, strconv.Quote(v.String()))

	case 'd':
		v.Mantissa().Format(s, c)

	case 'f', 'F':
		if prec, ok := s.Precision(); ok {
			pad(s, v.Decimal().StringFixed(int32(prec)))
		} else {
			pad(s, v.String())
		}

	case 'e', 'E', 'g', 'G':
		fmt.Fprintf(s, fmt.FormatString(s, c), v.Float64())

	default:
		fmt.Fprintf(s, "%%!%c(fix.Value=%s)", c, v.String())
	}
}

func pad(s fmt.State, str string) {
	w, ok := s.Width()
	if !ok || len(str) >= w {
		io.WriteString(s, str)
		return
	}
	fill := string(bytes.Repeat([]byte{' '}, w-len(str)))
	if s.Flag('-') {
		io.WriteString(s, str+fill)
	} else {
		io.WriteString(s, fill+str)
	}
}

func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses text into v's existing descriptor; v must already
// carry one, e.g. from Descriptor.Zero.
func (v *Value) UnmarshalText(text []byte) error {
	if err := v.desc.checkValid(); err != nil {
		return ErrInvalidDescriptor.New("unmarshal into a Value needs a descriptor, use Descriptor.Zero")
	}
	out, err := Parse(string(text), v.desc)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// MarshalJSON encodes v as a JSON number in its exact decimal form.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalJSON accepts a JSON number or a string holding one. Like
// UnmarshalText, v must already carry a descriptor. null leaves v unchanged.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return v.UnmarshalText(data)
}
