package model

import vm "tinygl/vector_math"

type Mesh struct {
	Vertices []Vertex
	VIndices []uint32
	ModelMat vm.Mat4f
}

func NewMesh(v []Vertex, id []uint32) *Mesh {
	return &Mesh{
		Vertices: v,
		VIndices: id,
		ModelMat: vm.NewMat4[float32](),
	}
}

// Bounds returns the axis aligned box spanned by all vertex positions in model space.
func (m *Mesh) Bounds() (lo vm.Vec3f, hi vm.Vec3f) {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi = m.Vertices[0].Pos, m.Vertices[0].Pos
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Pos[i] < lo[i] {
				lo[i] = v.Pos[i]
			}
			if v.Pos[i] > hi[i] {
				hi[i] = v.Pos[i]
			}
		}
	}
	return lo, hi
}
