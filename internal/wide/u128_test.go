package wide

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var u64 = U128From64

func TestU128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a U128
		b *big.Int
	}{
		{U128{0, 2}, big.NewInt(2)},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE}, bigs("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE")},
		{U128{0x1, 0x0}, bigs("18446744073709551616")},
		{U128{0x1, 0xFFFFFFFFFFFFFFFF}, bigs("36893488147419103231")}, // (1<<65) - 1
		{U128{0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("170141183460469231731687303715884105727")},
		{U128{0x8000000000000000, 0}, bigs("0x 8000000000000000 0000000000000000")},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d=%s", idx, tc.a.hi, tc.a.lo, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)

			back, acc := U128FromBigInt(v)
			tt.MustAssert(acc)
			tt.MustEqual(tc.a, back)
		})
	}
}

func TestU128FromBigIntInaccurate(t *testing.T) {
	tt := assert.WrapTB(t)

	_, acc := U128FromBigInt(big.NewInt(-1))
	tt.MustAssert(!acc)

	v, acc := U128FromBigInt(wrapBigU128)
	tt.MustAssert(!acc)
	tt.MustEqual(MaxU128, v)
}

func TestU128Add(t *testing.T) {
	for _, tc := range []struct {
		a, b, c  U128
		overflow bool
	}{
		{u64(1), u64(2), u64(3), false},
		{u64(10), u64(3), u64(13), false},
		{MaxU128, u64(1), u64(0), true},
		{u64(maxUint64), u64(1), u128s("18446744073709551616"), false},
		{u128s("18446744073709551615"), u128s("18446744073709551615"), u128s("36893488147419103230"), false},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Add(tc.b)))

			v, overflow := tc.a.AddCarry(tc.b)
			tt.MustEqual(tc.c, v)
			tt.MustEqual(tc.overflow, overflow)
		})
	}
}

func TestU128Sub(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
	}{
		{u64(3), u64(2), u64(1)},
		{u128s("18446744073709551616"), u64(1), u64(maxUint64)},
		{u64(0), u64(1), MaxU128},
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Sub(tc.b))
		})
	}
}

func TestU128MulFull(t *testing.T) {
	for idx, tc := range []struct {
		a, b   U128
		hi, lo U128
	}{
		{u64(7), u64(6), U128{}, u64(42)},
		{MaxU128, u64(2), u64(1), MaxU128.Dec()},
		{MaxU128, MaxU128, MaxU128.Dec(), u64(1)},
		{u128s("0x1 0000000000000000"), u128s("0x1 0000000000000000"), u64(1), U128{}},
	} {
		t.Run(fmt.Sprintf("%d/%s*%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			hi, lo := tc.a.MulFull(tc.b)
			tt.MustEqual(tc.hi, hi)
			tt.MustEqual(tc.lo, lo)
			tt.MustEqual(tc.lo, tc.a.Mul(tc.b))

			_, ok := tc.a.MulCheck(tc.b)
			tt.MustEqual(tc.hi.IsZero(), ok)
		})
	}
}

func TestU128QuoRem(t *testing.T) {
	for _, tc := range []struct {
		u, by, q, r U128
	}{
		{u: u64(1), by: u64(2), q: u64(0), r: u64(1)},
		{u: u64(10), by: u64(3), q: u64(3), r: u64(1)},
		{u: u128s("0x1 0000000000000000"), by: u64(3), q: u64(0x5555555555555555), r: u64(1)},
		{u: MaxU128, by: u128s("0x1 0000000000000000"), q: u64(maxUint64), r: u64(maxUint64)},
		{u: MaxU128, by: MaxU128, q: u64(1), r: u64(0)},
		{u: u64(5), by: MaxU128, q: u64(0), r: u64(5)},
		{
			u:  u128s("340282366920938463463374607431768211455"),
			by: u128s("10000000000000000000000000000000000000"),
			q:  u64(34),
			r:  u128s("282366920938463463374607431768211455"),
		},
	} {
		t.Run(fmt.Sprintf("%s÷%s=%s,%s", tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())
		})
	}
}

func TestU128QuoByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	u64(1).Quo(U128{})
}

func TestU128Shifts(t *testing.T) {
	tt := assert.WrapTB(t)
	one := u64(1)
	tt.MustEqual(u128s("0x1 0000000000000000"), one.Lsh(64))
	tt.MustEqual(u128s("0x8000000000000000 0000000000000000"), one.Lsh(127))
	tt.MustEqual(U128{}, one.Lsh(128))
	tt.MustEqual(one, one.Lsh(127).Rsh(127))
	tt.MustEqual(u64(maxUint64), MaxU128.Rsh(64))
	tt.MustEqual(uint(1), one.Lsh(100).Bit(100))
	tt.MustEqual(uint(0), one.Lsh(100).Bit(99))
}

func TestU128BitLen(t *testing.T) {
	for _, tc := range []struct {
		in  U128
		out int
	}{
		{U128{}, 0},
		{u64(1), 1},
		{u64(255), 8},
		{u64(256), 9},
		{u128s("0x1 0000000000000000"), 65},
		{MaxU128, 128},
	} {
		t.Run(fmt.Sprintf("bitlen(%s)=%d", tc.in, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.BitLen())
		})
	}
}

func TestPow(t *testing.T) {
	for _, tc := range []struct {
		base uint64
		exp  uint
		out  U128
		ok   bool
	}{
		{2, 0, u64(1), true},
		{2, 10, u64(1024), true},
		{10, 19, u64(10000000000000000000), true},
		{10, 20, u128s("100000000000000000000"), true},
		{10, 38, u128s("100000000000000000000000000000000000000"), true},
		{10, 39, MaxU128, false},
		{2, 127, u128s("0x8000000000000000 0000000000000000"), true},
		{2, 128, MaxU128, false},
		{3, 80, u128s("147808829414345923316083210206383297601"), true},
	} {
		t.Run(fmt.Sprintf("%d^%d", tc.base, tc.exp), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, ok := Pow(tc.base, tc.exp)
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(tc.out.String(), out.String())
		})
	}
}

func TestU128FromFloat64(t *testing.T) {
	for idx, tc := range []struct {
		f       float64
		out     U128
		inRange bool
	}{
		{0, u64(0), true},
		{1.9, u64(1), true},
		{-0.5, u64(0), true},
		{-1, u64(0), false},
		{math.NaN(), u64(0), false},
		{18446744073709551616.0, u128s("18446744073709551616"), true},
		{math.Ldexp(1, 100), u64(1).Lsh(100), true},
		{math.Ldexp(1, 128), MaxU128, false},
		{math.Inf(1), MaxU128, false},
	} {
		t.Run(fmt.Sprintf("%d/%g", idx, tc.f), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, inRange := U128FromFloat64(tc.f)
			tt.MustEqual(tc.inRange, inRange)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestU128AsFloat64(t *testing.T) {
	for _, tc := range []struct {
		a   U128
		out float64
	}{
		{u64(0), 0},
		{u64(31603), 31603},
		{u64(1).Lsh(100), math.Ldexp(1, 100)},
		{u128s("2384067163226812360730"), 2384067163226812448768},
		{MaxU128, math.Ldexp(1, 128)},
	} {
		t.Run(fmt.Sprintf("float64(%s)", tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.AsFloat64())
		})
	}
}
