package fix

// The operand algebra computes result descriptors for arithmetic. Each rule is
// a pure function of its operands' descriptors, so callers that build
// descriptors once (package variables, fixgen output) pay for it once.

func checkOperands(a, b Descriptor) error {
	if err := a.checkValid(); err != nil {
		return err
	}
	if err := b.checkValid(); err != nil {
		return err
	}
	if a.radix != b.radix {
		return ErrRadixMismatch.New("%s and %s", a, b)
	}
	return nil
}

// alignedDigits returns the digit counts of a and b once both are rescaled to
// the smaller of their exponents, along with that exponent.
func alignedDigits(a, b Descriptor) (ad, bd, exp int) {
	ae, be := int(a.exponent), int(b.exponent)
	exp = ae
	if be < exp {
		exp = be
	}
	return int(a.digits) + (ae - exp), int(b.digits) + (be - exp), exp
}

// SumOf returns the descriptor of a+b: both operands aligned to the smaller
// exponent, with one extra digit for the carry. It is signed if either
// operand is.
func SumOf(a, b Descriptor) (Descriptor, error) { return EnabledWidths.SumOf(a, b) }

// DifferenceOf returns the descriptor of a-b. It has the same shape as SumOf
// but is always signed, as a-b is negative whenever b > a.
func DifferenceOf(a, b Descriptor) (Descriptor, error) { return EnabledWidths.DifferenceOf(a, b) }

// ProductOf returns the descriptor of a*b: digits and exponents add.
func ProductOf(a, b Descriptor) (Descriptor, error) { return EnabledWidths.ProductOf(a, b) }

// QuotientOf returns the descriptor of a/b: a.digits digits at exponent
// a.exponent-b.exponent.
//
// A quotient of mantissas has at most a.digits-b.digits+1 meaningful digits,
// but dividing by a mantissa of 1 keeps all of the dividend's, so the result
// keeps a's width and exact division never overflows.
//
// The quotient of the mantissas truncates toward zero, so dividing two values
// of the same descriptor yields an integer. Cast the dividend to a smaller
// exponent first to keep fractional digits, or use DivTo:
//
//	wide, _ := a.Cast(fix.MustDescriptor(2, 32, -16, false))
//	q, err := wide.Div(b)
func QuotientOf(a, b Descriptor) (Descriptor, error) { return EnabledWidths.QuotientOf(a, b) }

// SumOf is SumOf with the result resolved against w.
func (w Widths) SumOf(a, b Descriptor) (Descriptor, error) {
	if err := checkOperands(a, b); err != nil {
		return Descriptor{}, err
	}
	ad, bd, exp := alignedDigits(a, b)
	return w.NewDescriptor(a.Radix(), maxInt(ad, bd)+1, exp, a.signed || b.signed)
}

// DifferenceOf is DifferenceOf with the result resolved against w.
func (w Widths) DifferenceOf(a, b Descriptor) (Descriptor, error) {
	if err := checkOperands(a, b); err != nil {
		return Descriptor{}, err
	}
	ad, bd, exp := alignedDigits(a, b)
	return w.NewDescriptor(a.Radix(), maxInt(ad, bd)+1, exp, true)
}

// ProductOf is ProductOf with the result resolved against w.
func (w Widths) ProductOf(a, b Descriptor) (Descriptor, error) {
	if err := checkOperands(a, b); err != nil {
		return Descriptor{}, err
	}
	return w.NewDescriptor(a.Radix(), a.Digits()+b.Digits(), a.Exponent()+b.Exponent(), a.signed || b.signed)
}

// QuotientOf is QuotientOf with the result resolved against w.
func (w Widths) QuotientOf(a, b Descriptor) (Descriptor, error) {
	if err := checkOperands(a, b); err != nil {
		return Descriptor{}, err
	}
	return w.NewDescriptor(a.Radix(), a.Digits(), a.Exponent()-b.Exponent(), a.signed || b.signed)
}

func mustDescriptor(d Descriptor, err error) Descriptor {
	if err != nil {
		panic(err)
	}
	return d
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
