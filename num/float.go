package num

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is wrapped by the panic value of Sqrt and Log when the argument
// is outside the function's domain.
var ErrDomain = errors.New("num: argument out of domain")

func Floor(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

// Fract returns the fractional part of x with the sign of x.
func Fract(x float32) float32 {
	_, frac := math.Modf(float64(x))
	return float32(frac)
}

// Sqrt returns the square root of x. It panics if x is negative.
func Sqrt(x float32) float32 {
	if x < 0 {
		panic(fmt.Errorf("%w: Sqrt(%v)", ErrDomain, x))
	}
	return float32(math.Sqrt(float64(x)))
}

// Log returns the natural logarithm of x. It panics unless x is positive.
func Log(x float32) float32 {
	if !(x > 0) {
		panic(fmt.Errorf("%w: Log(%v)", ErrDomain, x))
	}
	return float32(math.Log(float64(x)))
}

func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Atan returns the angle of the point (x, y), as math.Atan2(y, x).
func Atan(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}
