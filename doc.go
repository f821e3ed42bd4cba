/*
Package fix provides fixed-point numbers for code that cannot, or would rather
not, use floating point.

A Value is an integer mantissa scaled by a power of its radix:

	value = mantissa * radix^exponent

The Descriptor fixes the radix, the number of mantissa digits, the exponent
and the signedness. It is resolved to the smallest native integer container
able to hold every mantissa (see StorageKind and EnabledWidths).

Addition, subtraction and multiplication never overflow. Their result
descriptors are computed from the operands' descriptors (SumOf, DifferenceOf,
ProductOf) and are wide enough for any pair of operands:

	current := fix.MustDescriptor(2, 16, -8, false)  // u16@2^-8, uint16
	voltage := fix.MustDescriptor(2, 13, -6, false)  // u13@2^-6, uint16

	a, _ := fix.FromFloat64(123.45, current)
	b, _ := fix.FromFloat64(78.9, voltage)
	fmt.Println(a.Add(b), a.Add(b).Descriptor())
	// Output: 202.33984375 u17@2^-8

Precision is only lost when asked for: Cast to a descriptor with a larger
exponent (rounding half away from zero), Div (truncating), or a conversion
from a float, integer or decimal (truncating). Casting never wraps; values
that do not fit fail with ErrOverflow, or clamp with CastSaturating.

Div keeps the dividend's digits at the difference of the exponents, so
dividing two values of one descriptor yields an integer. Cast the dividend to
a smaller exponent first to keep fraction digits, or divide straight into the
descriptor you want with DivTo:

	a32, _ := a.Cast(fix.MustDescriptor(2, 32, -16, false))
	q, _ := a32.Div(b)
	r, _ := a.DivTo(b, current)

Values are comparable with == and support these formatting and marshalling
interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- fmt.GoStringer
	- json.Marshaler, json.Unmarshaler
	- encoding.TextMarshaler, encoding.TextUnmarshaler
	- encoding.BinaryMarshaler, encoding.BinaryUnmarshaler

Unmarshalling needs a receiver that already carries its descriptor, such as
one returned by Descriptor.Zero. Codec exposes the raw fixed-width and compact
varint mantissa encodings.
*/
package fix
