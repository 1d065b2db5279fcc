package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vm "tinygl/vector_math"
)

func TestCameraDefaultView(t *testing.T) {
	cam := NewCamera(45, 0.1, 100)
	view := cam.GetView()
	// looking along +z, a point in front of the camera ends up on -z in view space
	assert.True(t, view.MapPoint(vm.Vec3f{0, 0, 5}).CloseTo(vm.Vec3f{0, 0, -5}), "got %v", view.MapPoint(vm.Vec3f{0, 0, 5}))

	cam.Move(vm.Vec3f{0, 0, -2})
	assert.Equal(t, vm.Vec3f{0, 0, -2}, cam.Pos)
	assert.True(t, cam.GetView().MapPoint(vm.Vec3f{}).CloseTo(vm.Vec3f{0, 0, -2}))
}

func TestCameraTarget(t *testing.T) {
	cam := NewCamera(45, 0.1, 100)
	cam.Move(vm.Vec3f{0, 0, -3})
	cam.SetTarget(vm.Vec3f{0, 0, 10})
	assert.True(t, cam.GetView().CloseTo(NewCamera(45, 0.1, 100).GetView().Mul(vm.Translation(vm.Vec3f{0, 0, 3}))))

	// degenerate target falls back to looking along z
	cam.SetTarget(cam.Pos)
	withoutTarget := *cam
	withoutTarget.LookTarget = nil
	assert.Equal(t, withoutTarget.GetView(), cam.GetView())
}

func TestCameraTurn(t *testing.T) {
	cam := NewCamera(45, 0.1, 100)
	cam.Turn(90, vm.Vec3f{0, 1, 0})
	assert.True(t, cam.LookDir.CloseTo(vm.Vec3f{1, 0, 0}), "got %v", cam.LookDir)
}

func TestCameraProjection(t *testing.T) {
	cam := NewCamera(60, 0.1, 100)
	cam.Aspect = 16.0 / 9.0

	cam.VulkanClip = false
	var gl vm.Mat4f
	gl.Perspective(60, 16.0/9.0, 0.1, 100)
	assert.Equal(t, gl, cam.GetProjection())

	cam.VulkanClip = true
	p := cam.GetProjection()
	assert.InDelta(t, 0, p.MapPoint(vm.Vec3f{0, 0, -0.1}).Z(), 1e-4)
	assert.InDelta(t, 1, p.MapPoint(vm.Vec3f{0, 0, -100}).Z(), 1e-4)
	// y points down in Vulkan's clip space
	assert.Less(t, p.MapPoint(vm.Vec3f{0, 1, -5}).Y(), float32(0))

	cam.ProjectionType = CAM_ORTHOGRAPHIC_PROJECTION
	cam.VulkanClip = false
	var ortho vm.Mat4f
	ortho.Ortho(-16.0/9.0, 16.0/9.0, -1, 1, 0.1, 100)
	assert.Equal(t, ortho, cam.GetProjection())

	cam.ProjectionType = 7
	assert.Equal(t, vm.NewMat4[float32](), cam.GetProjection())
}

func TestCameraViewProjection(t *testing.T) {
	cam := NewCamera(45, 0.1, 100)
	cam.Move(vm.Vec3f{0, 0, -5})
	vp := cam.GetViewProjection()
	ndc := vp.MapPoint(vm.Vec3f{})
	assert.InDelta(t, 0, ndc.X(), 1e-6)
	assert.InDelta(t, 0, ndc.Y(), 1e-6)
	assert.Greater(t, ndc.Z(), float32(0))
	assert.Less(t, ndc.Z(), float32(1))

	ubo := cam.UniformBufferObject()
	assert.Equal(t, cam.GetView(), ubo.View)
	assert.Equal(t, cam.GetProjection(), ubo.Projection)
}
