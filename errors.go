package fix

import "github.com/zeebo/errs"

// Error classes. Test for them with Has, e.g. ErrOverflow.Has(err).
var (
	ErrOverflow           = errs.Class("overflow")
	ErrUnsupportedWidth   = errs.Class("unsupported width")
	ErrDivisionByZero     = errs.Class("division by zero")
	ErrRadixMismatch      = errs.Class("radix mismatch")
	ErrDescriptorMismatch = errs.Class("descriptor mismatch")
	ErrInvalidDescriptor  = errs.Class("invalid descriptor")
	ErrSyntax             = errs.Class("syntax")

	// ErrEncoding is returned for truncated or malformed encoded mantissas.
	ErrEncoding = errs.Class("encoding")
)
