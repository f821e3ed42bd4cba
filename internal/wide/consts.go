package wide

const (
	maxUint64 = 1<<64 - 1

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64
	wrapU128Float   = wrapUint64Float * wrapUint64Float

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}

	zeroU128 U128
	zeroI128 I128
)
