package vector_math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewPerspective(t *testing.T) {
	var m Mat4f
	m.Perspective(60, 1.0, 0.1, 1000.0)

	half := ToRad(float32(60)) / 2
	cotan := math32.Cos(half) / math32.Sin(half)
	near, far := float32(0.1), float32(1000.0)
	clip := far - near
	expected := Mat4FromRows[float32](
		cotan/1.0, 0, 0, 0,
		0, cotan, 0, 0,
		0, 0, -(near+far)/clip, -(2*near*far)/clip,
		0, 0, -1, 0,
	)
	assert.Equal(t, expected, m)

	assertMatEqualsMgl(t, mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 1000), m, 1e-4)
	assertMatEqualsMgl(t, mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.5, 50),
		*new(Mat4f).Perspective(45, 16.0/9.0, 0.5, 50), 1e-4)
}

func TestPerspectiveOverwrites(t *testing.T) {
	m := sequenceMat4()
	m.Perspective(90, 2, 1, 10)
	var fresh Mat4f
	fresh.Perspective(90, 2, 1, 10)
	assert.Equal(t, fresh, m)
}

func TestPerspectiveDegenerateInput(t *testing.T) {
	for _, tc := range []struct {
		name                    string
		fovy, aspect, near, far float32
	}{
		{"near equals far", 60, 1, 5, 5},
		{"zero aspect", 60, 0, 0.1, 100},
		{"zero field of view", 0, 1, 0.1, 100},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := sequenceMat4()
			m.Perspective(tc.fovy, tc.aspect, tc.near, tc.far)
			assert.Equal(t, sequenceMat4(), m)
		})
	}
}

func TestPerspectiveMapsNearAndFarPlanes(t *testing.T) {
	var p Mat4f
	p.Perspective(60, 1, 0.1, 100)
	assert.InDelta(t, -1, p.MapPoint(Vec3f{0, 0, -0.1}).Z(), 1e-4)
	assert.InDelta(t, 1, p.MapPoint(Vec3f{0, 0, -100}).Z(), 1e-4)
}

func TestOrtho(t *testing.T) {
	var m Mat4f
	m.Ortho(-2, 2, -1, 1, 0.1, 100)
	assertMatEqualsMgl(t, mgl32.Ortho(-2, 2, -1, 1, 0.1, 100), m, matTol)

	s := sequenceMat4()
	s.Ortho(1, 1, -1, 1, 0.1, 100)
	assert.Equal(t, sequenceMat4(), s)
	s.Ortho(-1, 1, -1, 1, 3, 3)
	assert.Equal(t, sequenceMat4(), s)
}

func TestFrustum(t *testing.T) {
	var m Mat4f
	m.Frustum(-1, 1, -0.5, 0.75, 0.5, 20)
	assertMatEqualsMgl(t, mgl32.Frustum(-1, 1, -0.5, 0.75, 0.5, 20), m, matTol)

	s := sequenceMat4()
	s.Frustum(-1, 1, 2, 2, 0.5, 20)
	assert.Equal(t, sequenceMat4(), s)
}

func TestLookAt(t *testing.T) {
	eye := Vec3f{3, 4, 5}
	center := Vec3f{0, 1, -2}
	up := Vec3f{0, 1, 0}
	var m Mat4f
	m.LookAt(eye, center, up)
	ref := mgl32.LookAtV(mgl32.Vec3(eye), mgl32.Vec3(center), mgl32.Vec3(up))
	assertMatEqualsMgl(t, ref, m, matTol)

	// the eye ends up in the origin looking down -z
	assert.True(t, m.MapPoint(eye).CloseTo(Vec3f{}))
	assert.Less(t, m.MapPoint(center).Z(), float32(0))

	s := sequenceMat4()
	s.LookAt(eye, eye, up)
	assert.Equal(t, sequenceMat4(), s)
}
