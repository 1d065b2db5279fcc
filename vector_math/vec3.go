package vector_math

import "fmt"

type Vec3[T Float] [3]T

func NewVec3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Vec3FromSlice panics unless vals holds exactly three values.
func Vec3FromSlice[T Float](vals []T) Vec3[T] {
	mustLen(len(vals), 3, "Vec3FromSlice")
	return Vec3[T]{vals[0], vals[1], vals[2]}
}

// x, y, z components
func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

// r, g, b components
func (v Vec3[T]) R() T { return v[0] }
func (v Vec3[T]) G() T { return v[1] }
func (v Vec3[T]) B() T { return v[2] }

// s, t, p components
func (v Vec3[T]) S() T { return v[0] }
func (v Vec3[E]) T() E { return v[1] }
func (v Vec3[T]) P() T { return v[2] }

func (v *Vec3[T]) SetX(x T) { v[0] = x }
func (v *Vec3[T]) SetY(y T) { v[1] = y }
func (v *Vec3[T]) SetZ(z T) { v[2] = z }
func (v *Vec3[T]) SetR(r T) { v[0] = r }
func (v *Vec3[T]) SetG(g T) { v[1] = g }
func (v *Vec3[T]) SetB(b T) { v[2] = b }
func (v *Vec3[T]) SetS(s T) { v[0] = s }
func (v *Vec3[T]) SetT(t T) { v[1] = t }
func (v *Vec3[T]) SetP(p T) { v[2] = p }

// Data exposes the three contiguous components for upload.
func (v *Vec3[T]) Data() *[3]T {
	return (*[3]T)(v)
}

func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		(v[1] * w[2]) - (v[2] * w[1]),
		(v[2] * w[0]) - (v[0] * w[2]),
		(v[0] * w[1]) - (v[1] * w[0]),
	}
}

func (v Vec3[T]) Dot(w Vec3[T]) T {
	return dot(v[:], w[:])
}

// Dot3 is the free form of Vec3.Dot.
func Dot3[T Float](a, b Vec3[T]) T {
	return a.Dot(b)
}

func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] * w[0], v[1] * w[1], v[2] * w[2]}
}

func (v Vec3[T]) Div(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] / w[0], v[1] / w[1], v[2] / w[2]}
}

func (v Vec3[T]) ScalarMul(factor T) Vec3[T] {
	return Vec3[T]{v[0] * factor, v[1] * factor, v[2] * factor}
}

func (v Vec3[T]) ScalarDiv(divisor T) Vec3[T] {
	return Vec3[T]{v[0] / divisor, v[1] / divisor, v[2] / divisor}
}

func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v[0], -v[1], -v[2]}
}

func (v Vec3[T]) LenSquared() T {
	return v.Dot(v)
}

func (v Vec3[T]) Len() T {
	return sqrt(v.Dot(v))
}

// Norm returns v scaled to unit length. Vectors that are already unit length or
// zero length are returned as they are.
func (v Vec3[T]) Norm() Vec3[T] {
	l := v.Len()
	if CloseToZero(l-1) || CloseToZero(l) {
		return v
	}
	return v.ScalarDiv(l)
}

// Normalize is the in-place form of Norm.
func (v *Vec3[T]) Normalize() {
	*v = v.Norm()
}

func (v Vec3[T]) CloseTo(w Vec3[T]) bool {
	return closeToAll(v[:], w[:])
}

// Vec4 extends v by a homogeneous coordinate.
func (v Vec3[T]) Vec4(w T) Vec4[T] {
	return Vec4[T]{v[0], v[1], v[2], w}
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("%v", [3]T(v))
}
