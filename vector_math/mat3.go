package vector_math

import (
	"fmt"
	"strings"
)

// Mat3 is a 3x3 matrix in column-major order.
//
// m[3*c + r] is the element in the r'th row and c'th column.
type Mat3[T Float] [9]T

func idx3(row, col int) int {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		panic(fmt.Sprintf("vector_math: Mat3 index (%d, %d) out of range", row, col))
	}
	return col*3 + row
}

func NewMat3[T Float]() Mat3[T] {
	var m Mat3[T]
	m.SetToIdentity()
	return m
}

// Mat3FromRows builds a matrix from 9 values given row by row.
func Mat3FromRows[T Float](vals ...T) Mat3[T] {
	mustLen(len(vals), 9, "Mat3FromRows")
	var m Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[idx3(r, c)] = vals[r*3+c]
		}
	}
	return m
}

func Mat3FromColumns[T Float](vals ...T) Mat3[T] {
	mustLen(len(vals), 9, "Mat3FromColumns")
	var m Mat3[T]
	copy(m[:], vals)
	return m
}

func (m *Mat3[T]) SetToIdentity() {
	*m = Mat3[T]{}
	for i := 0; i < 3; i++ {
		m[idx3(i, i)] = 1
	}
}

func (m Mat3[T]) At(row, col int) T {
	return m[idx3(row, col)]
}

func (m *Mat3[T]) Set(row, col int, v T) {
	m[idx3(row, col)] = v
}

func (m *Mat3[T]) Data() *[9]T {
	return (*[9]T)(m)
}

func (m Mat3[T]) Row(row int) Vec3[T] {
	return Vec3[T]{m.At(row, 0), m.At(row, 1), m.At(row, 2)}
}

func (m Mat3[T]) Col(col int) Vec3[T] {
	return Vec3[T]{m.At(0, col), m.At(1, col), m.At(2, col)}
}

func (m Mat3[T]) Mul(b Mat3[T]) Mat3[T] {
	var c Mat3[T]
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			var sum T
			for k := 0; k < 3; k++ {
				sum += m[idx3(row, k)] * b[idx3(k, col)]
			}
			c[idx3(row, col)] = sum
		}
	}
	return c
}

func (m *Mat3[T]) MulAssign(b Mat3[T]) *Mat3[T] {
	*m = m.Mul(b)
	return m
}

func (m Mat3[T]) MulVec3(v Vec3[T]) Vec3[T] {
	return Vec3[T]{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v)}
}

func (m Mat3[T]) Transposed() Mat3[T] {
	var t Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t[idx3(c, r)] = m[idx3(r, c)]
		}
	}
	return t
}

// Mat4 embeds m into the upper left block of an identity Mat4.
func (m Mat3[T]) Mat4() Mat4[T] {
	n := NewMat4[T]()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			n.Set(r, c, m.At(r, c))
		}
	}
	return n
}

func (m Mat3[T]) CloseTo(b Mat3[T]) bool {
	return closeToAll(m[:], b[:])
}

func (m Mat3[T]) String() string {
	mStr := strings.Builder{}
	for r := 0; r < 3; r++ {
		if r > 0 {
			mStr.WriteString("\n")
		}
		mStr.WriteString(fmt.Sprintf("%v", [3]T(m.Row(r))))
	}
	return mStr.String()
}
