package vector_math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec4FromSlice(t *testing.T) {
	vals := []float32{0.0, 0.1, 0.2, 0.3}
	v := Vec4FromSlice(vals)
	for i := range vals {
		assert.InDelta(t, vals[i], v[i], 1e-7)
	}
	assert.Equal(t, NewVec4[float32](0.0, 0.1, 0.2, 0.3), v)

	assert.Panics(t, func() { Vec4FromSlice([]float32{1, 2, 3}) })
	assert.Panics(t, func() { Vec3FromSlice([]float32{1, 2, 3, 4}) })
	assert.Panics(t, func() { Vec2FromSlice([]float64{1}) })
	assert.NotPanics(t, func() { Vec2FromSlice([]float64{1, 2}) })
}

func TestVec4ComponentAccess(t *testing.T) {
	v := Vec4f{0.0, 0.1, 0.2, 0.3}
	assert.Equal(t, float32(0.0), v.X())
	assert.Equal(t, float32(0.1), v.Y())
	assert.Equal(t, float32(0.2), v.Z())
	assert.Equal(t, float32(0.3), v.W())

	assert.Equal(t, v.X(), v.R())
	assert.Equal(t, v.Y(), v.G())
	assert.Equal(t, v.Z(), v.B())
	assert.Equal(t, v.W(), v.A())

	assert.Equal(t, v.X(), v.S())
	assert.Equal(t, v.Y(), v.T())
	assert.Equal(t, v.Z(), v.P())
	assert.Equal(t, v.W(), v.Q())
}

func TestVecAliasesShareStorage(t *testing.T) {
	v := Vec3f{}
	v.SetR(1)
	v.SetT(2)
	v.SetZ(3)
	assert.Equal(t, Vec3f{1, 2, 3}, v)
	assert.Equal(t, float32(1), v.S())
	assert.Equal(t, float32(2), v.G())
	assert.Equal(t, float32(3), v.P())

	v.Data()[0] = 7
	assert.Equal(t, float32(7), v.X())

	w := Vec4f{}
	w.SetQ(4)
	w.SetS(5)
	assert.Equal(t, float32(4), w.A())
	assert.Equal(t, float32(5), w.R())

	u := Vec2d{}
	u.SetY(9)
	assert.Equal(t, 9.0, u.T())
}

func TestVecOutOfRangeIndexPanics(t *testing.T) {
	v := Vec3f{1, 2, 3}
	i := 3
	assert.Panics(t, func() { _ = v[i] })
}

func TestVecArithmetic(t *testing.T) {
	a := Vec3f{1, 2, 3}
	b := Vec3f{4, 5, 6}

	assert.Equal(t, Vec3f{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3f{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vec3f{4, 10, 18}, a.Mul(b))
	assert.Equal(t, Vec3f{4, 2.5, 2}, b.Div(a))
	assert.Equal(t, Vec3f{2, 4, 6}, a.ScalarMul(2))
	assert.Equal(t, Vec3f{0.5, 1, 1.5}, a.ScalarDiv(2))
	assert.Equal(t, Vec3f{-1, -2, -3}, a.Neg())

	// operands are untouched
	assert.Equal(t, Vec3f{1, 2, 3}, a)
	assert.Equal(t, Vec3f{4, 5, 6}, b)

	assert.Equal(t, Vec2f{4, 6}, Vec2f{1, 2}.Add(Vec2f{3, 4}))
	assert.Equal(t, Vec4f{2, 2, 2, 2}, Vec4f{3, 4, 5, 6}.Sub(Vec4f{1, 2, 3, 4}))
	assert.Equal(t, Vec4f{1, 2, 3, 4}, Vec4f{2, 4, 6, 8}.ScalarDiv(2))
}

func TestVecDivisionByZero(t *testing.T) {
	v := Vec2f{1, 0}.ScalarDiv(0)
	assert.True(t, math.IsInf(float64(v.X()), 1))
	assert.True(t, math.IsNaN(float64(v.Y())))

	w := Vec3f{-1, 1, 1}.Div(Vec3f{0, 0, 1})
	assert.True(t, math.IsInf(float64(w.X()), -1))
	assert.True(t, math.IsInf(float64(w.Y()), 1))
	assert.Equal(t, float32(1), w.Z())
}

func TestVecDot(t *testing.T) {
	a := Vec4f{1, -2, 3, 0.5}
	b := Vec4f{-4, 5, 6, 2}
	assert.Equal(t, float32(-4-10+18+1), a.Dot(b))
	assert.Equal(t, a.Dot(b), b.Dot(a))
	assert.Equal(t, a.Dot(b), Dot4(a, b))
	assert.Equal(t, a.Dot(a), a.LenSquared())

	c := Vec3f{1, 2, 3}
	d := Vec3f{-1, 0.5, 2}
	assert.Equal(t, Dot3(c, d), Dot3(d, c))
	assert.Equal(t, Dot2(Vec2f{1, 2}, Vec2f{3, 4}), float32(11))
}

func TestVecLen(t *testing.T) {
	assert.Equal(t, float32(5), Vec2f{3, 4}.Len())
	assert.Equal(t, float32(25), Vec2f{3, 4}.LenSquared())
	assert.Equal(t, float32(3), Vec3f{1, 2, 2}.Len())
	assert.Equal(t, 2.0, Vec4d{1, 1, 1, 1}.Len())
}

func TestVecNorm(t *testing.T) {
	zero := Vec3f{}
	assert.Equal(t, zero, zero.Norm())

	unit := Vec3f{0, 1, 0}
	assert.Equal(t, unit, unit.Norm())

	// already unit length within tolerance, returned bit for bit
	almost := Vec2f{0.6, 0.8}
	assert.Equal(t, almost, almost.Norm())

	n := Vec2f{3, 4}.Norm()
	assert.InDelta(t, 0.6, n.X(), 1e-6)
	assert.InDelta(t, 0.8, n.Y(), 1e-6)
	assert.InDelta(t, 1, n.Len(), 1e-6)

	v := Vec4f{2, 0, 0, 0}
	v.Normalize()
	assert.Equal(t, Vec4f{1, 0, 0, 0}, v)

	w := Vec3d{0, 0, 0}
	w.Normalize()
	assert.Equal(t, Vec3d{}, w)

	d := Vec3f{1, 1, 1}.Norm()
	require.InDelta(t, 1, d.Len(), 1e-6)
	assert.True(t, d.CloseTo(Vec3f{d.X(), d.X(), d.X()}))
}

func TestVecCross(t *testing.T) {
	x := Vec3f{1, 0, 0}
	y := Vec3f{0, 1, 0}
	assert.Equal(t, Vec3f{0, 0, 1}, x.Cross(y))
	assert.Equal(t, Vec3f{0, 0, -1}, y.Cross(x))
}

func TestVecConversions(t *testing.T) {
	assert.Equal(t, Vec3f{1, 2, 3}, Vec2f{1, 2}.Vec3(3))
	assert.Equal(t, Vec4f{1, 2, 3, 1}, Vec3f{1, 2, 3}.Vec4(1))
	assert.Equal(t, Vec3f{1, 2, 3}, Vec4f{1, 2, 3, 4}.Vec3())
	assert.Equal(t, "[1 2 3]", Vec3f{1, 2, 3}.String())
}

func TestVecCloseTo(t *testing.T) {
	assert.True(t, Vec3f{1, 2, 3}.CloseTo(Vec3f{1, 2, 3.000001}))
	assert.False(t, Vec3f{1, 2, 3}.CloseTo(Vec3f{1, 2, 3.001}))
	assert.True(t, Vec2d{1, 2}.CloseTo(Vec2d{1, 2 + 1e-13}))
	assert.False(t, Vec2d{1, 2}.CloseTo(Vec2d{1, 2 + 1e-9}))
}
