package vector_math

// The builders in this file overwrite the receiver instead of multiplying into
// it. Degenerate input leaves the receiver untouched.

// Perspective sets m to an OpenGL style perspective projection (clip z in [-1, 1])
// implemented after: https://registry.khronos.org/OpenGL-Refpages/gl2.1/xhtml/gluPerspective.xml
func (m *Mat4[T]) Perspective(fovyDeg, aspect, near, far T) *Mat4[T] {
	if near == far || aspect == 0 {
		return m
	}
	half := ToRad(fovyDeg) / 2
	sine := sin(half)
	if sine == 0 {
		return m
	}
	cotan := cos(half) / sine
	clip := far - near

	*m = Mat4[T]{}
	m.Set(0, 0, cotan/aspect)
	m.Set(1, 1, cotan)
	m.Set(2, 2, -(near+far)/clip)
	m.Set(2, 3, -(2*near*far)/clip)
	m.Set(3, 2, -1)
	return m
}

// Ortho sets m to an orthographic projection of the box spanned by the given planes.
func (m *Mat4[T]) Ortho(left, right, bottom, top, near, far T) *Mat4[T] {
	if left == right || bottom == top || near == far {
		return m
	}
	width := right - left
	height := top - bottom
	clip := far - near

	m.SetToIdentity()
	m.Set(0, 0, 2/width)
	m.Set(1, 1, 2/height)
	m.Set(2, 2, -2/clip)
	m.Set(0, 3, -(left+right)/width)
	m.Set(1, 3, -(top+bottom)/height)
	m.Set(2, 3, -(near+far)/clip)
	return m
}

// Frustum sets m to a perspective projection of the frustum whose near plane
// spans from (left, bottom) to (right, top).
// implemented after: https://registry.khronos.org/OpenGL-Refpages/gl2.1/xhtml/glFrustum.xml
func (m *Mat4[T]) Frustum(left, right, bottom, top, near, far T) *Mat4[T] {
	if left == right || bottom == top || near == far {
		return m
	}
	width := right - left
	height := top - bottom
	clip := far - near

	*m = Mat4[T]{}
	m.Set(0, 0, 2*near/width)
	m.Set(0, 2, (left+right)/width)
	m.Set(1, 1, 2*near/height)
	m.Set(1, 2, (top+bottom)/height)
	m.Set(2, 2, -(near+far)/clip)
	m.Set(2, 3, -(2*near*far)/clip)
	m.Set(3, 2, -1)
	return m
}

// LookAt sets m to a right handed view matrix for a camera at eye looking at center.
// implemented after http://www.opengl.org/sdk/docs/man2/xhtml/gluLookAt.xml
func (m *Mat4[T]) LookAt(eye, center, up Vec3[T]) *Mat4[T] {
	forward := center.Sub(eye)
	if forward == (Vec3[T]{}) {
		return m
	}
	f := forward.Norm()
	s := f.Cross(up).Norm()
	u := s.Cross(f)

	m.SetToIdentity()
	for col := 0; col < 3; col++ {
		m.Set(0, col, s[col])
		m.Set(1, col, u[col])
		m.Set(2, col, -f[col])
	}
	m.Set(0, 3, -s.Dot(eye))
	m.Set(1, 3, -u.Dot(eye))
	m.Set(2, 3, f.Dot(eye))
	return m
}
