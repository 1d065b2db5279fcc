package model

import (
	"log"

	vm "tinygl/vector_math"
)

const (
	CAM_PERSPECTIVE_PROJECTION  = iota
	CAM_ORTHOGRAPHIC_PROJECTION = iota
)

// vulkanClip maps OpenGL clip space (y up, z in [-1, 1]) to Vulkan's (y down, z in [0, 1]).
var vulkanClip = vm.Mat4FromRows[float32](
	1, 0, 0, 0,
	0, -1, 0, 0,
	0, 0, 0.5, 0.5,
	0, 0, 0, 1,
)

type Camera struct {
	ProjectionType int

	// Projection matrix precursors, Fov in degree
	Fov    float32
	Aspect float32
	Near   float32
	Far    float32

	// VulkanClip corrects the OpenGL style projections for Vulkan's canonical view volume.
	VulkanClip bool

	Pos        vm.Vec3f
	LookDir    vm.Vec3f
	LookTarget *vm.Vec3f
	Up         vm.Vec3f
}

func NewCamera(fov float32, near float32, far float32) *Camera {
	return &Camera{
		Fov:        fov,
		Aspect:     1,
		Near:       near,
		Far:        far,
		VulkanClip: true,
		LookDir:    vm.Vec3f{0, 0, 1},
		LookTarget: nil,
		Up:         vm.Vec3f{0, 1, 0},
	}
}

func (c *Camera) Move(v vm.Vec3f) {
	c.Pos = c.Pos.Add(v)
}

// Turn rotates the look direction by deg degree around axis.
func (c *Camera) Turn(deg float32, axis vm.Vec3f) {
	rm := vm.Rotation(deg, axis)
	c.LookDir = rm.MapVector(c.LookDir)
}

func (c *Camera) SetTarget(v vm.Vec3f) {
	c.LookTarget = &v
}

func (c *Camera) GetProjection() vm.Mat4f {
	var p vm.Mat4f
	switch c.ProjectionType {
	case CAM_PERSPECTIVE_PROJECTION:
		p.Perspective(c.Fov, c.Aspect, c.Near, c.Far)
	case CAM_ORTHOGRAPHIC_PROJECTION:
		p.Ortho(-c.Aspect, c.Aspect, -1, 1, c.Near, c.Far)
	default:
		log.Printf("Failed to select projection type, returning identity.")
		return vm.NewMat4[float32]()
	}
	if c.VulkanClip {
		return vulkanClip.Mul(p)
	}
	return p
}

func (c *Camera) GetView() vm.Mat4f {
	target := c.Pos.Add(c.LookDir)
	if c.LookTarget != nil {
		target = *c.LookTarget
	}
	if target == c.Pos {
		log.Printf("Failed to calculate view direction, target - position = [0,0,0]. Looking along the z-axis.")
		target = c.Pos.Add(vm.Vec3f{0, 0, 1})
	}
	view := vm.NewMat4[float32]()
	view.LookAt(c.Pos, target, c.Up)
	return view
}

// GetViewProjection returns projection * view, the matrix taking world space into clip space.
func (c *Camera) GetViewProjection() vm.Mat4f {
	return c.GetProjection().Mul(c.GetView())
}

// UniformBufferObject packs the current view and projection for upload.
func (c *Camera) UniformBufferObject() UniformBufferObject {
	return UniformBufferObject{
		View:       c.GetView(),
		Projection: c.GetProjection(),
	}
}
