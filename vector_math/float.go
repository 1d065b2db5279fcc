package vector_math

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar type every vector and matrix in this package is built on.
// float32 is what the GPU consumes, float64 is there for offline computations.
type Float interface {
	constraints.Float
}

func is32[T Float]() bool {
	var x T
	return unsafe.Sizeof(x) == 4
}

// Epsilon returns the absolute tolerance used by the CloseTo family for T.
func Epsilon[T Float]() T {
	if is32[T]() {
		return 1e-5
	}
	return 1e-12
}

// CloseToZero reports whether |x| is within Epsilon of zero.
func CloseToZero[T Float](x T) bool {
	return abs(x) <= Epsilon[T]()
}

// CloseTo reports whether a and b differ by no more than Epsilon.
func CloseTo[T Float](a, b T) bool {
	return CloseToZero(a - b)
}

// The helpers below keep float32 math on the float32 code path of chewxy/math32
// instead of widening every call to float64.

func abs[T Float](x T) T {
	if is32[T]() {
		return T(math32.Abs(float32(x)))
	}
	return T(math.Abs(float64(x)))
}

func sqrt[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

func sin[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sin(float32(x)))
	}
	return T(math.Sin(float64(x)))
}

func cos[T Float](x T) T {
	if is32[T]() {
		return T(math32.Cos(float32(x)))
	}
	return T(math.Cos(float64(x)))
}

func dot[T Float](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func closeToAll[T Float](a, b []T) bool {
	for i := range a {
		if !CloseTo(a[i], b[i]) {
			return false
		}
	}
	return true
}

// mustLen is the arity assertion of every slice based constructor.
func mustLen(got, want int, ctor string) {
	if got != want {
		panic(fmt.Sprintf("vector_math: %s expects %d values, got %d", ctor, want, got))
	}
}
