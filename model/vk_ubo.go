package model

import (
	"unsafe"

	vk "github.com/goki/vulkan"

	"tinygl/tooling"
	vm "tinygl/vector_math"
)

// UniformBufferObject is the per frame uniform block shared by all models. Both matrices are column-major
// float32, so the struct is tightly packed (128 Byte) and matches a std140 block of two mat4.
type UniformBufferObject struct {
	View       vm.Mat4f
	Projection vm.Mat4f
}

// SizeOfUbo returns size of the UniformBufferObject struct.
func SizeOfUbo() vk.DeviceSize {
	return vk.DeviceSize(unsafe.Sizeof(UniformBufferObject{}))
}

func (u *UniformBufferObject) Bytes() []byte {
	b := make([]byte, 0, SizeOfUbo())
	b = append(b, tooling.FloatBytes(u.View.Data()[:])...)
	return append(b, tooling.FloatBytes(u.Projection.Data()[:])...)
}
