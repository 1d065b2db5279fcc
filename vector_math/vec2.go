package vector_math

import "fmt"

type Vec2[T Float] [2]T

func NewVec2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Vec2FromSlice panics unless vals holds exactly two values.
func Vec2FromSlice[T Float](vals []T) Vec2[T] {
	mustLen(len(vals), 2, "Vec2FromSlice")
	return Vec2[T]{vals[0], vals[1]}
}

func (v Vec2[T]) X() T { return v[0] }
func (v Vec2[T]) Y() T { return v[1] }
func (v Vec2[T]) R() T { return v[0] }
func (v Vec2[T]) G() T { return v[1] }
func (v Vec2[T]) S() T { return v[0] }
func (v Vec2[E]) T() E { return v[1] }

func (v *Vec2[T]) SetX(x T) { v[0] = x }
func (v *Vec2[T]) SetY(y T) { v[1] = y }
func (v *Vec2[T]) SetR(r T) { v[0] = r }
func (v *Vec2[T]) SetG(g T) { v[1] = g }
func (v *Vec2[T]) SetS(s T) { v[0] = s }
func (v *Vec2[T]) SetT(t T) { v[1] = t }

// Data exposes the two contiguous components for upload.
func (v *Vec2[T]) Data() *[2]T {
	return (*[2]T)(v)
}

func (v Vec2[T]) Dot(w Vec2[T]) T {
	return dot(v[:], w[:])
}

// Dot2 is the free form of Vec2.Dot.
func Dot2[T Float](a, b Vec2[T]) T {
	return a.Dot(b)
}

func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] + w[0], v[1] + w[1]}
}

func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] - w[0], v[1] - w[1]}
}

func (v Vec2[T]) Mul(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] * w[0], v[1] * w[1]}
}

func (v Vec2[T]) Div(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] / w[0], v[1] / w[1]}
}

func (v Vec2[T]) ScalarMul(factor T) Vec2[T] {
	return Vec2[T]{v[0] * factor, v[1] * factor}
}

func (v Vec2[T]) ScalarDiv(divisor T) Vec2[T] {
	return Vec2[T]{v[0] / divisor, v[1] / divisor}
}

func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-v[0], -v[1]}
}

func (v Vec2[T]) LenSquared() T {
	return v.Dot(v)
}

func (v Vec2[T]) Len() T {
	return sqrt(v.Dot(v))
}

// Norm returns v scaled to unit length. Vectors that are already unit length or
// zero length are returned as they are.
func (v Vec2[T]) Norm() Vec2[T] {
	l := v.Len()
	if CloseToZero(l-1) || CloseToZero(l) {
		return v
	}
	return v.ScalarDiv(l)
}

// Normalize is the in-place form of Norm.
func (v *Vec2[T]) Normalize() {
	*v = v.Norm()
}

func (v Vec2[T]) CloseTo(w Vec2[T]) bool {
	return closeToAll(v[:], w[:])
}

func (v Vec2[T]) Vec3(z T) Vec3[T] {
	return Vec3[T]{v[0], v[1], z}
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("%v", [2]T(v))
}
