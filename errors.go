package ratio

import (
	"errors"
	"fmt"
)

var (
	// ErrDivideByZero is wrapped by the panic value of any operation whose
	// divisor (a caller argument or a Ratio field) is zero.
	ErrDivideByZero = errors.New("ratio: division by zero")
	// ErrOverflow is wrapped by the panic value of any operation whose
	// intermediate product or result does not fit the operand width.
	ErrOverflow = errors.New("ratio: integer overflow")
	// ErrSyntax is returned when text cannot be parsed as a Ratio.
	ErrSyntax = errors.New("ratio: invalid syntax")
)

func divideByZero(op string, n any) error {
	return fmt.Errorf("%w: %s(%v, 0)", ErrDivideByZero, op, n)
}

func overflow(op string, a, b any) error {
	return fmt.Errorf("%w: %s(%v, %v)", ErrOverflow, op, a, b)
}

// Try calls fn and converts an arithmetic fault raised inside it into an
// error. Panics that do not wrap ErrDivideByZero or ErrOverflow are
// re-raised.
//
//	v, err := ratio.Try(func() uint32 { return r.Ceil(x) })
func Try[T any](fn func() T) (v T, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if e, ok := p.(error); ok && isFault(e) {
			err = e
			return
		}
		panic(p)
	}()
	return fn(), nil
}

func isFault(err error) bool {
	return errors.Is(err, ErrDivideByZero) || errors.Is(err, ErrOverflow)
}
