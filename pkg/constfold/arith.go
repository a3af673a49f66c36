package constfold

import "math"

// This file is the checked-arithmetic kernel (component C): every function
// here is a pre-condition predicate answering "would this operation
// overflow", computed without ever performing the operation itself. Go
// defines signed integer overflow as two's-complement wraparound rather than
// leaving it undefined, but wraparound still loses the fact that an overflow
// happened, and integer division/mod by zero panics outright — so the order
// is always test-then-compute, never compute-then-check.

// CheckOverflowU64Sum reports whether a+b overflows uint64.
func CheckOverflowU64Sum(a, b uint64) bool {
	return math.MaxUint64-a < b
}

// CheckOverflowU64Sub reports whether a-b overflows uint64 (goes negative).
func CheckOverflowU64Sub(a, b uint64) bool {
	return b > a
}

// CheckOverflowU64Mul reports whether a*b overflows uint64. The a≠0 guard
// avoids a division by zero in the overflow test itself.
func CheckOverflowU64Mul(a, b uint64) bool {
	return a != 0 && math.MaxUint64/a < b
}

// CheckOverflowU64Div reports whether a/b overflows uint64 — true only for
// division by zero; unsigned division never escapes range otherwise.
func CheckOverflowU64Div(a, b uint64) bool {
	return b == 0
}

const (
	maxI64 = math.MaxInt64
	minI64 = math.MinInt64
)

// CheckOverflowI64Sum reports whether a+b overflows int64.
func CheckOverflowI64Sum(a, b int64) bool {
	return (b > 0 && a > maxI64-b) || (b < 0 && a < minI64-b)
}

// CheckOverflowI64Sub reports whether a-b overflows int64.
func CheckOverflowI64Sub(a, b int64) bool {
	return (b > 0 && a < minI64+b) || (b < 0 && a > maxI64+b)
}

// CheckOverflowI64Mul reports whether a*b overflows int64, covering each of
// the four sign quadrants separately so no intermediate product is ever
// computed before the check.
func CheckOverflowI64Mul(a, b int64) bool {
	switch {
	case a > 0 && b > 0:
		return a > maxI64/b
	case a > 0 && b <= 0:
		return b < minI64/a
	case a <= 0 && b > 0:
		return a < minI64/b
	default: // a<0 && b<0, or a==0 && b==0 falls through harmlessly
		if a == 0 || b == 0 {
			return false
		}
		return b < maxI64/a
	}
}

// CheckOverflowI64Div reports whether a/b overflows int64: division by zero,
// or the one two's-complement asymmetry MIN_I64 / -1.
func CheckOverflowI64Div(a, b int64) bool {
	return b == 0 || (a == minI64 && b == -1)
}

// CheckOverflowI64Mod reports whether the IEC MOD expansion (which contains
// a/b) would overflow. b==0 is NOT overflow here — the visitor handles that
// case by yielding Const 0 directly.
func CheckOverflowI64Mod(a, b int64) bool {
	return a == minI64 && b == -1
}

// CheckOverflowI64Neg reports whether -a overflows int64; true only for the
// one value whose magnitude has no positive int64 counterpart.
func CheckOverflowI64Neg(a int64) bool {
	return a == minI64
}

// CheckOverflowF64 is the post-condition float check: IEEE-754 arithmetic is
// total and never invokes undefined behavior, so floats are checked after
// the operation rather than before. Overflow is any non-finite result.
func CheckOverflowF64(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
