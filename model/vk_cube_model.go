package model

import vm "tinygl/vector_math"

// NewCubeModel returns a unit cube centered in the origin with one color per corner.
func NewCubeModel(name string) *Model {
	v := []Vertex{ // 8 * 32 = 256 Byte
		{Pos: vm.Vec3f{-0.5, -0.5, -0.5}, Color: vm.Vec3f{1, 0, 0}, TexCoord: vm.Vec2f{1, 1}},     // [0]
		{Pos: vm.Vec3f{0.5, -0.5, -0.5}, Color: vm.Vec3f{0, 1, 0}, TexCoord: vm.Vec2f{0, 1}},      // [1]
		{Pos: vm.Vec3f{0.5, 0.5, -0.5}, Color: vm.Vec3f{0, 0, 1}, TexCoord: vm.Vec2f{0, 0}},       // [2]
		{Pos: vm.Vec3f{-0.5, 0.5, -0.5}, Color: vm.Vec3f{1, 0.5, 1}, TexCoord: vm.Vec2f{1, 0}},    // [3]
		{Pos: vm.Vec3f{-0.5, -0.5, 0.5}, Color: vm.Vec3f{1, 0.5, 0.5}, TexCoord: vm.Vec2f{1, 1}},  // [4]
		{Pos: vm.Vec3f{0.5, -0.5, 0.5}, Color: vm.Vec3f{0.5, 1, 0.5}, TexCoord: vm.Vec2f{0, 1}},   // [5]
		{Pos: vm.Vec3f{0.5, 0.5, 0.5}, Color: vm.Vec3f{0.5, 0.5, 1}, TexCoord: vm.Vec2f{0, 0}},    // [6]
		{Pos: vm.Vec3f{-0.5, 0.5, 0.5}, Color: vm.Vec3f{0, 0.5, 0}, TexCoord: vm.Vec2f{1, 0}},     // [7]
	}

	id := []uint32{
		2, 1, 0, 0, 3, 2, // front
		5, 1, 6, 1, 2, 6, // right
		4, 5, 6, 7, 4, 6, // back
		4, 7, 0, 0, 7, 3, // left
		0, 1, 5, 5, 4, 0, // top
		3, 7, 6, 2, 3, 6, // bottom
	}

	return NewModel(NewMesh(v, id), name)
}
