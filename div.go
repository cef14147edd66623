package ratio

import "math"

// DivFloor returns n/d rounded down. It panics with ErrDivideByZero if d is 0.
func DivFloor(n, d uint32) uint32 {
	if d == 0 {
		panic(divideByZero("DivFloor", n))
	}
	return n / d
}

// DivCeil returns n/d rounded up, computed as (n+d-1)/d.
// It panics with ErrDivideByZero if d is 0 and with ErrOverflow if n+d-1
// does not fit in uint32.
func DivCeil(n, d uint32) uint32 {
	if d == 0 {
		panic(divideByZero("DivCeil", n))
	}
	biased := uint64(n) + uint64(d) - 1
	if biased > math.MaxUint32 {
		panic(overflow("DivCeil", n, d))
	}
	return uint32(biased) / d
}

// IDivRem returns the truncated quotient and remainder of n/d.
// The remainder has the sign of n.
func IDivRem(n int32, d uint32) (q, r int32) {
	q64, r64 := idivRem(int64(n), d)
	return int32(q64), int32(r64)
}

// IDivFloor returns n/d rounded toward negative infinity.
func IDivFloor(n int32, d uint32) int32 {
	return int32(idivFloor(int64(n), d))
}

// IDivCeil returns n/d rounded toward positive infinity.
func IDivCeil(n int32, d uint32) int32 {
	return int32(idivCeil(int64(n), d))
}

// The 64-bit forms take products of an int32 and a uint32, which always fit.

func idivRem(n int64, d uint32) (int64, int64) {
	if d == 0 {
		panic(divideByZero("IDivRem", n))
	}
	return n / int64(d), n % int64(d)
}

func idivFloor(n int64, d uint32) int64 {
	q, r := idivRem(n, d)
	if r < 0 {
		return q - 1
	}
	return q
}

func idivCeil(n int64, d uint32) int64 {
	q, r := idivRem(n, d)
	if r > 0 {
		return q + 1
	}
	return q
}

func mul32(op string, a, b uint32) uint32 {
	p := uint64(a) * uint64(b)
	if p > math.MaxUint32 {
		panic(overflow(op, a, b))
	}
	return uint32(p)
}

func narrow32(op string, v int64, x int32, r Ratio) int32 {
	if v < math.MinInt32 || v > math.MaxInt32 {
		panic(overflow(op, x, r))
	}
	return int32(v)
}
