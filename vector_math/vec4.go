package vector_math

import "fmt"

type Vec4[T Float] [4]T

func NewVec4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// Vec4FromSlice panics unless vals holds exactly four values.
func Vec4FromSlice[T Float](vals []T) Vec4[T] {
	mustLen(len(vals), 4, "Vec4FromSlice")
	return Vec4[T]{vals[0], vals[1], vals[2], vals[3]}
}

func (v Vec4[T]) X() T { return v[0] }
func (v Vec4[T]) Y() T { return v[1] }
func (v Vec4[T]) Z() T { return v[2] }
func (v Vec4[T]) W() T { return v[3] }

func (v Vec4[T]) R() T { return v[0] }
func (v Vec4[T]) G() T { return v[1] }
func (v Vec4[T]) B() T { return v[2] }
func (v Vec4[T]) A() T { return v[3] }

func (v Vec4[T]) S() T { return v[0] }
func (v Vec4[E]) T() E { return v[1] }
func (v Vec4[T]) P() T { return v[2] }
func (v Vec4[T]) Q() T { return v[3] }

func (v *Vec4[T]) SetX(x T) { v[0] = x }
func (v *Vec4[T]) SetY(y T) { v[1] = y }
func (v *Vec4[T]) SetZ(z T) { v[2] = z }
func (v *Vec4[T]) SetW(w T) { v[3] = w }
func (v *Vec4[T]) SetR(r T) { v[0] = r }
func (v *Vec4[T]) SetG(g T) { v[1] = g }
func (v *Vec4[T]) SetB(b T) { v[2] = b }
func (v *Vec4[T]) SetA(a T) { v[3] = a }
func (v *Vec4[T]) SetS(s T) { v[0] = s }
func (v *Vec4[T]) SetT(t T) { v[1] = t }
func (v *Vec4[T]) SetP(p T) { v[2] = p }
func (v *Vec4[T]) SetQ(q T) { v[3] = q }

func (v *Vec4[T]) Data() *[4]T {
	return (*[4]T)(v)
}

func (v Vec4[T]) Dot(w Vec4[T]) T {
	return dot(v[:], w[:])
}

// Dot4 is the free form of Vec4.Dot.
func Dot4[T Float](a, b Vec4[T]) T {
	return a.Dot(b)
}

func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

func (v Vec4[T]) Mul(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] * w[0], v[1] * w[1], v[2] * w[2], v[3] * w[3]}
}

func (v Vec4[T]) Div(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] / w[0], v[1] / w[1], v[2] / w[2], v[3] / w[3]}
}

func (v Vec4[T]) ScalarMul(factor T) Vec4[T] {
	return Vec4[T]{v[0] * factor, v[1] * factor, v[2] * factor, v[3] * factor}
}

func (v Vec4[T]) ScalarDiv(divisor T) Vec4[T] {
	return Vec4[T]{v[0] / divisor, v[1] / divisor, v[2] / divisor, v[3] / divisor}
}

func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v[0], -v[1], -v[2], -v[3]}
}

func (v Vec4[T]) LenSquared() T {
	return v.Dot(v)
}

func (v Vec4[T]) Len() T {
	return sqrt(v.Dot(v))
}

// Norm returns v scaled to unit length. Vectors that are already unit length or
// zero length are returned as they are.
func (v Vec4[T]) Norm() Vec4[T] {
	l := v.Len()
	if CloseToZero(l-1) || CloseToZero(l) {
		return v
	}
	return v.ScalarDiv(l)
}

func (v *Vec4[T]) Normalize() {
	*v = v.Norm()
}

func (v Vec4[T]) CloseTo(w Vec4[T]) bool {
	return closeToAll(v[:], w[:])
}

// Vec3 drops the w component.
func (v Vec4[T]) Vec3() Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("%v", [4]T(v))
}
