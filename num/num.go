// Package num provides small generic numeric helpers: zero and one values,
// sign, absolute value, clamping, interpolation and float32 wrappers that
// panic outside their domain.
package num

import (
	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is any signed integer or floating-point type.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Zero returns the zero value of T.
func Zero[T Number]() T {
	return 0
}

// One returns 1 as a T.
func One[T Number]() T {
	return 1
}

func IsZero[T comparable](x T) bool {
	var zero T
	return x == zero
}

func IsNonzero[T comparable](x T) bool {
	return !IsZero(x)
}

// Sign returns -1, 0 or +1 according to the sign of x. NaN is returned
// unchanged.
func Sign[T Signed](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

// Abs returns the absolute value of x. Like the builtin negation, the most
// negative integer of a type is returned unchanged.
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sq returns x*x.
func Sq[T Number](x T) T {
	return x * x
}

// Cb returns x*x*x.
func Cb[T Number](x T) T {
	return x * x * x
}

// Clamp limits x to the interval [lo, hi]. The bounds are not checked.
func Clamp[T constraints.Ordered](lo, x, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates between a and b; t=0 gives a and t=1 gives b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}
