package fix

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestFromFloat64(t *testing.T) {
	for idx, tc := range []struct {
		f       float64
		d       Descriptor
		trunc   int64
		rounded int64
	}{
		{123.45, desc(2, 16, -8, false), 31603, 31603},
		{78.9, desc(2, 13, -6, false), 5049, 5050},
		{78.9, desc(2, 16, -8, false), 20198, 20198},
		{-78.9, desc(2, 16, -6, true), -5049, -5050},
		{0.5, desc(2, 8, 0, false), 0, 1},
		{-0.5, desc(2, 8, 0, true), 0, -1},
		{1.005, desc(10, 6, -2, false), 100, 100},
		{1.015, desc(10, 6, -2, false), 101, 101},
		{-12.345, desc(10, 6, -3, true), -12345, -12345},
		{-12.3449, desc(10, 6, -3, true), -12344, -12345},
		{12345, desc(10, 3, 2, false), 123, 123},
		{12351, desc(10, 3, 2, false), 123, 124},
		{0.1, desc(3, 10, -4, false), 8, 8},
		{math.Copysign(0, -1), desc(2, 8, 0, false), 0, 0},
	} {
		t.Run(fmt.Sprintf("%d/%g@%s", idx, tc.f, tc.d), func(t *testing.T) {
			tt := assert.WrapTB(t)

			v, err := FromFloat64(tc.f, tc.d)
			tt.MustOK(err)
			tt.MustEqual(mant(tc.trunc, tc.d), v)

			v, err = FromFloat64Rounded(tc.f, tc.d)
			tt.MustOK(err)
			tt.MustEqual(mant(tc.rounded, tc.d), v)

			v, err = FromFloat(float32(tc.f), tc.d)
			tt.MustOK(err)
			tt.MustAssert(v.Descriptor() == tc.d)
		})
	}
}

func TestFromFloat64Overflow(t *testing.T) {
	for idx, tc := range []struct {
		f float64
		d Descriptor
	}{
		{math.NaN(), desc(2, 16, -8, true)},
		{math.Inf(1), desc(2, 16, -8, true)},
		{math.Inf(-1), desc(10, 4, 0, true)},
		{256, desc(2, 8, 0, false)},
		{-1, desc(2, 8, 0, false)},
		{1e20, desc(10, 19, 0, false)},
		{1e30, desc(2, 16, -8, true)},
		{-1e30, desc(10, 4, 0, true)},
	} {
		t.Run(fmt.Sprintf("%d/%g@%s", idx, tc.f, tc.d), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := FromFloat64(tc.f, tc.d)
			tt.MustAssert(ErrOverflow.Has(err), err)
		})
	}
}

func TestFromFloat64Invalid(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := FromFloat64(1, Descriptor{})
	tt.MustAssert(ErrInvalidDescriptor.Has(err), err)
}

func TestFloat64(t *testing.T) {
	for idx, tc := range []struct {
		v Value
		f float64
	}{
		{mant(31603, desc(2, 16, -8, false)), 123.44921875},
		{mant(-5049, desc(2, 13, -6, true)), -78.890625},
		{mant(5, desc(2, 8, 10, false)), 5120},
		{mant(12345, desc(10, 6, -2, true)), 123.45},
		{mant(-12345, desc(10, 6, 3, true)), -12345000},
		{mant(1, desc(3, 4, -1, false)), 1.0 / 3},
		{desc(2, 8, 0, false).Zero(), 0},
	} {
		t.Run(fmt.Sprintf("%d/%#v", idx, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.f, tc.v.Float64())
			tt.MustEqual(float32(tc.f), tc.v.Float32())
			tt.MustEqual(tc.f, ToFloat[float64](tc.v))
			tt.MustEqual(float32(tc.f), ToFloat[float32](tc.v))
		})
	}
}

func TestFloatRoundTrip(t *testing.T) {
	// Every value of a binary descriptor with at most 53 digits is a float64.
	tt := assert.WrapTB(t)

	for _, d := range []Descriptor{desc(2, 53, -20, true), desc(2, 32, 5, false), desc(2, 16, -40, true)} {
		for i := 0; i < 1000; i++ {
			m := globalRNG.Int63n(int64(d.max.AsUint64()) + 1)
			if d.signed && globalRNG.Intn(2) == 1 {
				m = -m
			}
			v := mant(m, d)
			back, err := FromFloat64(v.Float64(), d)
			tt.MustOK(err)
			tt.MustEqual(v, back)
		}
	}
}

func TestFromInt64(t *testing.T) {
	for idx, tc := range []struct {
		i int64
		d Descriptor
		m int64
	}{
		{5, desc(2, 16, -8, true), 1280},
		{-5, desc(2, 16, -8, true), -1280},
		{12345, desc(10, 3, 2, false), 123},
		{-12399, desc(10, 3, 2, true), -123},
		{math.MinInt64 + 1, desc(2, 63, 0, true), math.MinInt64 + 1},
	} {
		t.Run(fmt.Sprintf("%d/%d@%s", idx, tc.i, tc.d), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := FromInt64(tc.i, tc.d)
			tt.MustOK(err)
			tt.MustEqual(mant(tc.m, tc.d), v)

			g, err := FromInt(tc.i, tc.d)
			tt.MustOK(err)
			tt.MustEqual(v, g)
		})
	}
}

func TestFromIntOverflow(t *testing.T) {
	tt := assert.WrapTB(t)

	_, err := FromInt64(256, desc(2, 8, 0, false))
	tt.MustAssert(ErrOverflow.Has(err), err)

	_, err = FromInt64(-1, desc(2, 8, 0, false))
	tt.MustAssert(ErrOverflow.Has(err), err)

	_, err = FromUint64(math.MaxUint64, desc(10, 19, -1, false))
	tt.MustAssert(ErrOverflow.Has(err), err)

	_, err = FromInt(uint8(200), desc(2, 7, 0, true))
	tt.MustAssert(ErrOverflow.Has(err), err)

	v, err := FromInt(uint8(200), desc(2, 8, 0, false))
	tt.MustOK(err)
	tt.MustEqual(mant(200, desc(2, 8, 0, false)), v)
}

func TestToInt(t *testing.T) {
	d := desc(10, 6, -2, true)
	for idx, tc := range []struct {
		m int64
		i int64
	}{
		{12399, 123},
		{-12399, -123},
		{99, 0},
		{-99, 0},
		{0, 0},
	} {
		t.Run(fmt.Sprintf("%d/%d", idx, tc.m), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := mant(tc.m, d)

			i, err := v.Int64()
			tt.MustOK(err)
			tt.MustEqual(tc.i, i)

			i8, err := ToInt[int8](v)
			tt.MustOK(err)
			tt.MustEqual(int8(tc.i), i8)

			if tc.i >= 0 {
				u, err := v.Uint64()
				tt.MustOK(err)
				tt.MustEqual(uint64(tc.i), u)
			}
		})
	}
}

func TestToIntOverflow(t *testing.T) {
	tt := assert.WrapTB(t)

	v := mant(300, desc(10, 3, 0, true))
	_, err := ToInt[int8](v)
	tt.MustAssert(ErrOverflow.Has(err), err)
	_, err = ToInt[uint8](v)
	tt.MustAssert(ErrOverflow.Has(err), err)

	u16, err := ToInt[uint16](v)
	tt.MustOK(err)
	tt.MustEqual(uint16(300), u16)

	_, err = mant(-1, desc(10, 3, 0, true)).Uint64()
	tt.MustAssert(ErrOverflow.Has(err), err)

	_, err = ToInt[uint](mant(-1, desc(10, 3, 0, true)))
	tt.MustAssert(ErrOverflow.Has(err), err)

	_, err = mant(1, desc(10, 3, 38, false)).Int64()
	tt.MustAssert(ErrOverflow.Has(err), err)

	t.Run("beyond64", func(t *testing.T) {
		needWidth(t, 128)
		tt := assert.WrapTB(t)
		huge, err := FromBigInt(new(big.Int).Lsh(big.NewInt(1), 70), desc(2, 80, 0, false))
		tt.MustOK(err)
		_, err = huge.Int64()
		tt.MustAssert(ErrOverflow.Has(err), err)
		_, err = huge.Uint64()
		tt.MustAssert(ErrOverflow.Has(err), err)
	})
}

func TestMantissaAccess(t *testing.T) {
	needWidth(t, 128)
	tt := assert.WrapTB(t)

	d := desc(2, 100, 0, true)
	v, err := FromBigInt(new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 90)), d)
	tt.MustOK(err)
	tt.MustEqual("-1237940039285380274899124224", v.Mantissa().String())

	_, ok := v.Mantissa64()
	tt.MustAssert(!ok)

	hi, lo := v.Int128()
	back, err := FromInt128(hi, lo, d)
	tt.MustOK(err)
	tt.MustEqual(v, back)

	s := mant(math.MinInt64, desc(2, 64, 0, true))
	m, ok := s.Mantissa64()
	tt.MustAssert(ok)
	tt.MustEqual(int64(math.MinInt64), m)

	_, err = FromBigInt(new(big.Int).Lsh(big.NewInt(1), 130), d)
	tt.MustAssert(ErrOverflow.Has(err), err)

	_, err = FromMantissa(-1, desc(2, 8, 0, false))
	tt.MustAssert(ErrOverflow.Has(err), err)
}

func TestRat(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("51799/256", mant(51799, desc(2, 17, -8, false)).Rat().String())
	tt.MustEqual("-1/3", mant(-1, desc(3, 2, -1, true)).Rat().String())
	tt.MustEqual("500/1", mant(5, desc(10, 2, 2, false)).Rat().String())
}
