package vector_math

type Vec2f = Vec2[float32]
type Vec3f = Vec3[float32]
type Vec4f = Vec4[float32]

type Vec2d = Vec2[float64]
type Vec3d = Vec3[float64]
type Vec4d = Vec4[float64]

type Mat3f = Mat3[float32]
type Mat4f = Mat4[float32]

type Mat3d = Mat3[float64]
type Mat4d = Mat4[float64]
