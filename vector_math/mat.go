// Package vector_math holds the vector and matrix types shared by the renderer.
//
// Matrices are stored column-major, the layout GPU uniform uploads expect, and
// are addressed by (row, col). Transform mutators post-multiply: m.Translate(t)
// is m = m * T, so with column vectors the transform applied last acts on the
// point first.
package vector_math

import (
	"fmt"
	"strings"
	"unsafe"
)

// Mat4 is a 4x4 matrix in column-major order.
//
// m[4*c + r] is the element in the r'th row and c'th column. The zero value is
// the zero matrix, NewMat4 returns the identity.
type Mat4[T Float] [16]T

// idx4 maps a logical (row, col) to its column-major offset.
func idx4(row, col int) int {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		panic(fmt.Sprintf("vector_math: Mat4 index (%d, %d) out of range", row, col))
	}
	return col*4 + row
}

func NewMat4[T Float]() Mat4[T] {
	var m Mat4[T]
	m.SetToIdentity()
	return m
}

// Mat4FromRows builds a matrix from 16 values given row by row, so literals
// read the way the matrix is written on paper. It panics on any other count.
func Mat4FromRows[T Float](vals ...T) Mat4[T] {
	mustLen(len(vals), 16, "Mat4FromRows")
	var m Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[idx4(r, c)] = vals[r*4+c]
		}
	}
	return m
}

// Mat4FromColumns builds a matrix from 16 values in column-major order, the
// layout returned by Data.
func Mat4FromColumns[T Float](vals ...T) Mat4[T] {
	mustLen(len(vals), 16, "Mat4FromColumns")
	var m Mat4[T]
	copy(m[:], vals)
	return m
}

func (m *Mat4[T]) SetToIdentity() {
	*m = Mat4[T]{}
	for i := 0; i < 4; i++ {
		m[idx4(i, i)] = 1
	}
}

func (m Mat4[T]) At(row, col int) T {
	return m[idx4(row, col)]
}

func (m *Mat4[T]) Set(row, col int, v T) {
	m[idx4(row, col)] = v
}

// Data returns the 16 scalars in column-major order, ready to be handed to a
// uniform or push constant upload.
func (m *Mat4[T]) Data() *[16]T {
	return (*[16]T)(m)
}

func (m Mat4[T]) Row(row int) Vec4[T] {
	return Vec4[T]{m.At(row, 0), m.At(row, 1), m.At(row, 2), m.At(row, 3)}
}

func (m Mat4[T]) Col(col int) Vec4[T] {
	return Vec4[T]{m.At(0, col), m.At(1, col), m.At(2, col), m.At(3, col)}
}

// Mul returns m * b.
func (m Mat4[T]) Mul(b Mat4[T]) Mat4[T] {
	var c Mat4[T]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum T
			for k := 0; k < 4; k++ {
				sum += m[idx4(row, k)] * b[idx4(k, col)]
			}
			c[idx4(row, col)] = sum
		}
	}
	return c
}

// MulAssign sets m to m * b. b is received by value, so m.MulAssign(*m) squares m.
func (m *Mat4[T]) MulAssign(b Mat4[T]) *Mat4[T] {
	*m = m.Mul(b)
	return m
}

func (m Mat4[T]) MulVec4(v Vec4[T]) Vec4[T] {
	var res Vec4[T]
	for row := 0; row < 4; row++ {
		res[row] = m.Row(row).Dot(v)
	}
	return res
}

// MapPoint transforms p as (p, 1) and divides by the resulting w unless it is 0 or 1.
func (m Mat4[T]) MapPoint(p Vec3[T]) Vec3[T] {
	res := m.MulVec4(p.Vec4(1))
	if res[3] == 0 || res[3] == 1 {
		return res.Vec3()
	}
	return res.Vec3().ScalarDiv(res[3])
}

// MapVector transforms v as a direction, ignoring the translation column.
func (m Mat4[T]) MapVector(v Vec3[T]) Vec3[T] {
	return m.MulVec4(v.Vec4(0)).Vec3()
}

func (m Mat4[T]) Transposed() Mat4[T] {
	var t Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[idx4(c, r)] = m[idx4(r, c)]
		}
	}
	return t
}

// Mat3 returns the upper left 3x3 block, the linear part of an affine transform.
func (m Mat4[T]) Mat3() Mat3[T] {
	var n Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			n.Set(r, c, m.At(r, c))
		}
	}
	return n
}

func (m Mat4[T]) CloseTo(b Mat4[T]) bool {
	return closeToAll(m[:], b[:])
}

func (m Mat4[T]) ByteSize() int {
	return int(unsafe.Sizeof(m))
}

func (m Mat4[T]) String() string {
	mStr := strings.Builder{}
	for r := 0; r < 4; r++ {
		if r > 0 {
			mStr.WriteString("\n")
		}
		mStr.WriteString(fmt.Sprintf("%v", [4]T(m.Row(r))))
	}
	return mStr.String()
}
