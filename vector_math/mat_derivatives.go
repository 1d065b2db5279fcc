package vector_math

// Translate sets m to m * T(t). Only the last column changes.
func (m *Mat4[T]) Translate(t Vec3[T]) *Mat4[T] {
	for row := 0; row < 4; row++ {
		sum := m[idx4(row, 3)]
		for k := 0; k < 3; k++ {
			sum += m[idx4(row, k)] * t[k]
		}
		m[idx4(row, 3)] = sum
	}
	return m
}

// Scale sets m to m * S(s). The first three columns are scaled, the last one
// is left alone.
func (m *Mat4[T]) Scale(s Vec3[T]) *Mat4[T] {
	for col := 0; col < 3; col++ {
		for row := 0; row < 4; row++ {
			m[idx4(row, col)] *= s[col]
		}
	}
	return m
}

func (m *Mat4[T]) ScaleUniform(factor T) *Mat4[T] {
	return m.Scale(Vec3[T]{factor, factor, factor})
}

// Rotate sets m to m * R(deg, axis), a right handed rotation of deg degrees
// around axis. Axes along a single coordinate axis only touch two columns. A
// zero axis leaves m unchanged.
func (m *Mat4[T]) Rotate(deg T, axis Vec3[T]) *Mat4[T] {
	x, y, z := axis[0], axis[1], axis[2]
	switch {
	case x == 0 && y == 0 && z == 0:
		return m
	case y == 0 && z == 0:
		return m.rotatePlane(1, 2, ToRad(deg), x < 0)
	case x == 0 && z == 0:
		return m.rotatePlane(2, 0, ToRad(deg), y < 0)
	case x == 0 && y == 0:
		return m.rotatePlane(0, 1, ToRad(deg), z < 0)
	}
	lenSq := axis.LenSquared()
	if !CloseToZero(lenSq-1) && !CloseToZero(lenSq) {
		axis = axis.ScalarDiv(sqrt(lenSq))
	}
	return m.MulAssign(rodrigues(ToRad(deg), axis))
}

func (m *Mat4[T]) RotateX(deg T) *Mat4[T] {
	return m.rotatePlane(1, 2, ToRad(deg), false)
}

func (m *Mat4[T]) RotateY(deg T) *Mat4[T] {
	return m.rotatePlane(2, 0, ToRad(deg), false)
}

func (m *Mat4[T]) RotateZ(deg T) *Mat4[T] {
	return m.rotatePlane(0, 1, ToRad(deg), false)
}

// rotatePlane right-multiplies m by the rotation taking basis column i towards
// column j: col_i' = c*col_i + s*col_j, col_j' = c*col_j - s*col_i.
// (i, j) is (1, 2) for x, (2, 0) for y and (0, 1) for z.
func (m *Mat4[T]) rotatePlane(i, j int, rad T, negative bool) *Mat4[T] {
	s, c := sin(rad), cos(rad)
	if negative {
		s = -s
	}
	for row := 0; row < 4; row++ {
		a, b := m[idx4(row, i)], m[idx4(row, j)]
		m[idx4(row, i)] = a*c + b*s
		m[idx4(row, j)] = b*c - a*s
	}
	return m
}

// rodrigues builds a*a^T*(1-c) + I*c + [a]x*s for a unit axis a.
func rodrigues[T Float](rad T, a Vec3[T]) Mat4[T] {
	s, c := sin(rad), cos(rad)
	ic := 1 - c
	x, y, z := a[0], a[1], a[2]

	var rm Mat4[T]
	rm.Set(0, 0, (x*x)*ic+c)
	rm.Set(0, 1, (x*y)*ic-(z*s))
	rm.Set(0, 2, (x*z)*ic+(y*s))

	rm.Set(1, 0, (y*x)*ic+(z*s))
	rm.Set(1, 1, (y*y)*ic+c)
	rm.Set(1, 2, (y*z)*ic-(x*s))

	rm.Set(2, 0, (z*x)*ic-(y*s))
	rm.Set(2, 1, (z*y)*ic+(x*s))
	rm.Set(2, 2, (z*z)*ic+c)

	rm.Set(3, 3, 1)
	return rm
}

func Translation[T Float](t Vec3[T]) Mat4[T] {
	m := NewMat4[T]()
	m.Translate(t)
	return m
}

func Scaling[T Float](s Vec3[T]) Mat4[T] {
	m := NewMat4[T]()
	m.Scale(s)
	return m
}

func Rotation[T Float](deg T, axis Vec3[T]) Mat4[T] {
	m := NewMat4[T]()
	m.Rotate(deg, axis)
	return m
}
