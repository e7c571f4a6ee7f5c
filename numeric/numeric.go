// Package numeric wraps a single integer or floating-point value and combines
// it with other numbers through a caller-supplied binary operation.
//
// The numeric restriction is a type constraint, so a wrapper over a string
// (or an operation with the wrong shape) is rejected by the compiler, never
// at run time:
//
//	numeric.New(3).Combine(numeric.Add, 3)   // Value[int] holding 6
//	numeric.New("3")                          // does not compile
package numeric

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number admits every integer and floating-point type, including defined
// types such as `type Celsius float64`.
type Number interface {
	constraints.Integer | constraints.Float
}

// Op combines a value of type T with an operand of type U. The result keeps
// the kind of the first operand.
type Op[T, U Number] func(a T, b U) T

// Value holds one number. It has no setters: combining produces a new Value.
// The zero value holds 0.
type Value[T Number] struct {
	v T
}

// New wraps v.
func New[T Number](v T) Value[T] { return Value[T]{v: v} }

// Get returns the wrapped number.
func (w Value[T]) Get() T { return w.v }

// Combine returns a new Value holding op(w.Get(), n). op is called exactly
// once; w itself is left untouched.
func (w Value[T]) Combine(op Op[T, T], n T) Value[T] {
	return Value[T]{v: op(w.v, n)}
}

// String formats the wrapped number the way fmt formats T.
func (w Value[T]) String() string { return fmt.Sprint(w.v) }

// With is Combine for an operand of a different numeric type.
//
// Methods cannot introduce type parameters of their own, so mixing types
// needs a top-level function:
//
//	shift := func(a int64, b uint8) int64 { return a << b }
//	numeric.With(numeric.New(int64(10)), shift, uint8(2)) // 40
func With[T, U Number](w Value[T], op Op[T, U], n U) Value[T] {
	return Value[T]{v: op(w.v, n)}
}

// ── Standard operations ──────────────────────────────────────────────────────
// Each has the shape Op[T, T], so it can be passed to Combine as is.

// Add returns a + b.
func Add[T Number](a, b T) T { return a + b }

// Sub returns a - b.
func Sub[T Number](a, b T) T { return a - b }

// Mul returns a * b.
func Mul[T Number](a, b T) T { return a * b }

// Div follows Go division: integers truncate toward zero and panic on a zero
// divisor, floats yield ±Inf or NaN.
func Div[T Number](a, b T) T { return a / b }
