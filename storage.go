package fix

import (
	"fmt"
	"strconv"

	"github.com/shabbyrobe/go-fix/internal/wide"
)

// StorageKind is the native integer container a descriptor's mantissa
// resolves to.
type StorageKind struct {
	bits   uint8
	signed bool
}

func (k StorageKind) Bits() int    { return int(k.bits) }
func (k StorageKind) Signed() bool { return k.signed }

// Size is the encoded size of the container in bytes.
func (k StorageKind) Size() int { return int(k.bits) / 8 }

func (k StorageKind) String() string {
	if k.bits == 0 {
		return "invalid"
	}
	if k.signed {
		return "int" + strconv.Itoa(int(k.bits))
	}
	return "uint" + strconv.Itoa(int(k.bits))
}

// Widths is a set of enabled container widths.
type Widths uint8

const (
	W8 Widths = 1 << iota
	W16
	W32
	W64
	W128

	AllWidths = W8 | W16 | W32 | W64 | W128
)

var widthBits = [...]int{8, 16, 32, 64, 128}

// WidthsOf builds a Widths set from a list of bit sizes.
func WidthsOf(bits ...int) (w Widths, err error) {
	for _, b := range bits {
		found := false
		for i, wb := range widthBits {
			if wb == b {
				w |= 1 << uint(i)
				found = true
				break
			}
		}
		if !found {
			return 0, ErrUnsupportedWidth.New("%d-bit containers do not exist", b)
		}
	}
	return w, nil
}

func (w Widths) Has(bits int) bool {
	for i, wb := range widthBits {
		if wb == bits {
			return w&(1<<uint(i)) != 0
		}
	}
	return false
}

// Bits lists the enabled widths, smallest first.
func (w Widths) Bits() []int {
	var out []int
	for i, wb := range widthBits {
		if w&(1<<uint(i)) != 0 {
			out = append(out, wb)
		}
	}
	return out
}

func (w Widths) String() string {
	return fmt.Sprint(w.Bits())
}

// Resolve returns the smallest enabled container that holds every mantissa of
// a descriptor with the given radix, digit count and signedness.
func (w Widths) Resolve(radix, digits int, signed bool) (StorageKind, error) {
	if err := checkRadixDigits(radix, digits); err != nil {
		return StorageKind{}, err
	}
	max, ok := maxMantissa(radix, digits)
	if !ok {
		return StorageKind{}, ErrUnsupportedWidth.New("%d^%d does not fit in 128 bits", radix, digits)
	}
	return w.resolveMax(max, radix, digits, signed)
}

func (w Widths) resolveMax(max wide.U128, radix, digits int, signed bool) (StorageKind, error) {
	need := max.BitLen()
	if signed {
		need++
	}
	for i, wb := range widthBits {
		if w&(1<<uint(i)) != 0 && wb >= need {
			return StorageKind{bits: uint8(wb), signed: signed}, nil
		}
	}
	return StorageKind{}, ErrUnsupportedWidth.New("%d digits in radix %d need %d bits, enabled widths are %s", digits, radix, need, w)
}

// Resolve resolves against EnabledWidths.
func Resolve(radix, digits int, signed bool) (StorageKind, error) {
	return EnabledWidths.Resolve(radix, digits, signed)
}

// maxMantissa returns radix^digits - 1, the largest magnitude a descriptor
// can hold. radix^digits itself may be exactly 2^128.
func maxMantissa(radix, digits int) (wide.U128, bool) {
	p, ok := wide.Pow(uint64(radix), uint(digits-1))
	if !ok {
		return wide.U128{}, false
	}
	hi, lo := p.MulFull(wide.U128From64(uint64(radix)))
	switch {
	case hi.IsZero():
		return lo.Dec(), true
	case hi == wide.U128From64(1) && lo.IsZero():
		return wide.MaxU128, true
	}
	return wide.U128{}, false
}
