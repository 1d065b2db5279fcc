package model

import (
	"unsafe"

	vk "github.com/goki/vulkan"

	"tinygl/tooling"
	vm "tinygl/vector_math"
)

type Model struct {
	Mesh *Mesh
	Name string
}

func NewModel(m *Mesh, n string) *Model {
	return &Model{
		Name: n,
		Mesh: m,
	}
}

// ModelPushConstantsSize reports the memory size required for all push constants that the Model expects to
// get bound. For now only the Mesh.ModelMat (4x4) needs to be provided.
func ModelPushConstantsSize() uint32 {
	mat := vm.NewMat4[float32]()
	return uint32(mat.ByteSize())
}

// ModelPushConstantRange describes where the model matrix sits in the pipeline layout's push constant block.
func ModelPushConstantRange() vk.PushConstantRange {
	return vk.PushConstantRange{
		StageFlags: vk.ShaderStageFlags(vk.ShaderStageVertexBit),
		Offset:     0,
		Size:       ModelPushConstantsSize(),
	}
}

// PushConstants returns the column-major model matrix bytes, as vk.CmdPushConstants expects them.
func (m *Model) PushConstants() []byte {
	return tooling.FloatBytes(m.Mesh.ModelMat.Data()[:])
}

// GetVBufferSize returns the size required for keeping this model's vertices in device memory.
func (m *Model) GetVBufferSize() vk.DeviceSize {
	return vk.DeviceSize(int(unsafe.Sizeof(Vertex{})) * len(m.Mesh.Vertices))
}

// GetVBufferBytes returns the raw bytes representing all vertices for this model.
// Mainly used to execute vk.Memcopy(..., src []byte) to move memory from CPU to GPU
func (m *Model) GetVBufferBytes() ([]byte, error) {
	return tooling.RawBytes(m.Mesh.Vertices)
}

// GetIdxBufferSize returns the size required for keeping this model's indices in device memory.
func (m *Model) GetIdxBufferSize() vk.DeviceSize {
	return vk.DeviceSize(int(unsafe.Sizeof(uint32(0))) * len(m.Mesh.VIndices))
}

// GetIdxBufferBytes returns the raw bytes representing the indices used to address vertex data for this model.
func (m *Model) GetIdxBufferBytes() ([]byte, error) {
	return tooling.RawBytes(m.Mesh.VIndices)
}
