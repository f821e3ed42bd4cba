package wide

import (
	"math/big"
)

// I128 is a signed 128-bit integer in two's complement form.
type I128 struct {
	hi uint64
	lo uint64
}

func I128FromRaw(hi, lo uint64) I128 { return I128{hi: hi, lo: lo} }

func I128From64(v int64) (out I128) {
	out.lo = uint64(v)
	if v < 0 {
		out.hi = maxUint64
	}
	return out
}

// I128FromSigned builds the two's complement form of a sign and magnitude.
// Magnitudes above 1<<127 (or 1<<127 itself when neg is false) wrap.
func I128FromSigned(neg bool, mag U128) I128 {
	if neg {
		mag = mag.Not().Inc()
	}
	return I128{hi: mag.hi, lo: mag.lo}
}

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi, lo uint64) { return i.hi, i.lo }

func (i I128) IsZero() bool { return i == zeroI128 }

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

// Split returns the sign and magnitude of i. The magnitude of MinI128 is
// 1<<127, which a U128 can hold.
func (i I128) Split() (neg bool, mag U128) {
	mag = U128{hi: i.hi, lo: i.lo}
	if i.hi&signBit != 0 {
		return true, mag.Not().Inc()
	}
	return false, mag
}

func (i I128) Neg() I128 {
	v := U128{hi: i.hi, lo: i.lo}.Not().Inc()
	return I128{hi: v.hi, lo: v.lo}
}

func (i I128) Cmp(n I128) int {
	if i == n {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

// IsInt64 reports whether i can be represented as an int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= 0x8000000000000000
	}
	return i.hi == 0 && i.lo <= maxInt64
}

// AsInt64 truncates the I128 to an int64.
func (i I128) AsInt64() int64 { return int64(i.lo) }

func (i I128) AsBigInt() *big.Int {
	neg, mag := i.Split()
	v := mag.AsBigInt()
	if neg {
		v.Neg(v)
	}
	return v
}

func (i I128) String() string {
	return i.AsBigInt().String()
}

const (
	signBit  = 0x8000000000000000
	maxInt64 = 1<<63 - 1
)
