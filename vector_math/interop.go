package vector_math

import "golang.org/x/image/math/f32"

// F32 converts m to the row-major float32 layout of golang.org/x/image/math/f32.
func (m Mat4[T]) F32() f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = float32(m.At(r, c))
		}
	}
	return out
}

func (m Mat3[T]) F32() f32.Mat3 {
	var out f32.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = float32(m.At(r, c))
		}
	}
	return out
}

// Aff3 returns the first two rows of m, treating it as a 2D homogeneous
// transform, in the form golang.org/x/image/draw transformers take.
func (m Mat3[T]) Aff3() f32.Aff3 {
	return f32.Aff3{
		float32(m.At(0, 0)), float32(m.At(0, 1)), float32(m.At(0, 2)),
		float32(m.At(1, 0)), float32(m.At(1, 1)), float32(m.At(1, 2)),
	}
}

func Mat4FromF32[T Float](in f32.Mat4) Mat4[T] {
	var m Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, T(in[4*r+c]))
		}
	}
	return m
}
