package model

import (
	"unsafe"

	vk "github.com/goki/vulkan"

	vm "tinygl/vector_math"
)

// Vertex is the per vertex input of the default pipeline. All members are plain float32 arrays, so the struct is
// tightly packed (32 Byte) and can be copied into a vertex buffer as is.
type Vertex struct {
	Pos      vm.Vec3f // 12 Byte
	Color    vm.Vec3f // 12 Byte
	TexCoord vm.Vec2f // 8 Byte
}

func GetVertexBindingDescription() vk.VertexInputBindingDescription {
	return vk.VertexInputBindingDescription{
		Binding:   0,
		Stride:    uint32(unsafe.Sizeof(Vertex{})),
		InputRate: vk.VertexInputRateVertex,
	}
}

func GetVertexAttributeDescriptions() []vk.VertexInputAttributeDescription {
	return []vk.VertexInputAttributeDescription{
		{
			Location: 0,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Pos)),
		},
		{
			Location: 1,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Color)),
		},
		{
			Location: 2,
			Binding:  0,
			Format:   vk.FormatR32g32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.TexCoord)),
		},
	}
}
