/*
Package wide provides the 128-bit integer arithmetic that carries fixed-point
mantissas.

U128 holds magnitudes; every fixed-point value is stored as a sign and a U128
magnitude regardless of the storage kind its descriptor resolves to. I128 is
the two's complement view of the same bits, used when a mantissa has to be
laid out in memory the way a native signed integer would be.

Operations that can lose information return an extra bool (accurate, inRange,
ok) instead of wrapping silently; the exceptions are Add, Sub and Mul, which
wrap the way the builtin integer types do.
*/
package wide
