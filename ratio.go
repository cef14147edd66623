// Package ratio implements Ratio, an unreduced fraction of two uint32 values
// used as an exact scaling factor, and the floor/ceil division primitives it
// is built on.
//
// Arithmetic is checked: a zero divisor panics with an error wrapping
// ErrDivideByZero and a product that does not fit its width panics with an
// error wrapping ErrOverflow. Use Try to turn those panics into errors.
package ratio

// Ratio is a fraction Num/Div. It is never reduced, so Ratio{2, 4} and
// Ratio{1, 2} are different values that compare as equal by Cmp.
//
// Any Ratio can be constructed, including ones with a zero Div. Operations
// that divide by a zero field panic at that point.
type Ratio struct {
	Num uint32
	Div uint32
}

var (
	// Unit is the multiplicative identity 1/1.
	Unit = Ratio{Num: 1, Div: 1}
	// Undefined is 0/0. It is the zero value of Ratio and is kept as an
	// inert sentinel; it is not a valid rational.
	Undefined = Ratio{}
)

// Default returns Unit.
func Default() Ratio {
	return Unit
}

func (r Ratio) IsUndefined() bool {
	return r == Undefined
}

func (r Ratio) IsUnit() bool {
	return r == Unit
}

// Rcp returns Div/Num. The reciprocal of a ratio with a zero numerator is
// representable but faults when later used as a divisor.
func (r Ratio) Rcp() Ratio {
	return Ratio{Num: r.Div, Div: r.Num}
}

// Equal reports whether r and o have the same fields. It does not compare
// mathematical values; use Cmp for that.
func (r Ratio) Equal(o Ratio) bool {
	return r == o
}

// Mul returns x*r rounded down.
func (r Ratio) Mul(x uint32) uint32 {
	return DivFloor(mul32("Mul", x, r.Num), r.Div)
}

// Ceil returns x*r rounded up.
func (r Ratio) Ceil(x uint32) uint32 {
	return DivCeil(mul32("Ceil", x, r.Num), r.Div)
}

// Quo returns x/r rounded down.
func (r Ratio) Quo(x uint32) uint32 {
	return DivFloor(mul32("Quo", x, r.Div), r.Num)
}

// IFloor returns x*r rounded toward negative infinity. The product is formed
// in 64 bits; only a result outside int32 overflows.
func (r Ratio) IFloor(x int32) int32 {
	return narrow32("IFloor", idivFloor(int64(x)*int64(r.Num), r.Div), x, r)
}

// ICeil returns x*r rounded toward positive infinity.
func (r Ratio) ICeil(x int32) int32 {
	return narrow32("ICeil", idivCeil(int64(x)*int64(r.Num), r.Div), x, r)
}

// IMul is the signed counterpart of Mul and is identical to IFloor.
func (r Ratio) IMul(x int32) int32 {
	return r.IFloor(x)
}

// IQuo returns x/r rounded toward negative infinity.
func (r Ratio) IQuo(x int32) int32 {
	return narrow32("IQuo", idivFloor(int64(x)*int64(r.Div), r.Num), x, r)
}

// MulRatio multiplies the fields pairwise without reducing the result.
func (r Ratio) MulRatio(o Ratio) Ratio {
	return Ratio{
		Num: mul32("MulRatio", r.Num, o.Num),
		Div: mul32("MulRatio", r.Div, o.Div),
	}
}

// MulFloat32 returns x*r in float32. It is lossy: float32(Num) and
// float32(Div) are themselves rounded for values above 2^24, and the result
// is rounded twice.
func (r Ratio) MulFloat32(x float32) float32 {
	return x * float32(r.Num) / float32(r.Div)
}

// QuoFloat32 returns x/r in float32 with the same loss of precision as
// MulFloat32.
func (r Ratio) QuoFloat32(x float32) float32 {
	return x * float32(r.Div) / float32(r.Num)
}

// Float32 returns Num/Div as a float32. A zero Div gives ±Inf or NaN.
func (r Ratio) Float32() float32 {
	return float32(r.Num) / float32(r.Div)
}

// Float64 is like Float32 with float64 precision.
func (r Ratio) Float64() float64 {
	return float64(r.Num) / float64(r.Div)
}
