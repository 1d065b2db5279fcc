package model

import vm "tinygl/vector_math"

// NewGridPlane returns a 2x2 quad in the xy plane.
func NewGridPlane(name string) *Model {
	v := []Vertex{
		{Pos: vm.Vec3f{-1, -1, 0}, Color: vm.Vec3f{1, 0, 0}, TexCoord: vm.Vec2f{0, 0}},
		{Pos: vm.Vec3f{-1, 1, 0}, Color: vm.Vec3f{0, 1, 0}, TexCoord: vm.Vec2f{0, 1}},
		{Pos: vm.Vec3f{1, 1, 0}, Color: vm.Vec3f{0, 0, 1}, TexCoord: vm.Vec2f{1, 1}},
		{Pos: vm.Vec3f{1, -1, 0}, Color: vm.Vec3f{1, 0.5, 1}, TexCoord: vm.Vec2f{1, 0}},
	}

	id := []uint32{
		0, 1, 2,
		2, 3, 0,
	}

	return NewModel(NewMesh(v, id), name)
}
