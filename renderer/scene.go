package renderer

import (
	"fmt"
	"log"

	"tinygl/model"
	vm "tinygl/vector_math"
)

// Scene holds the camera and the models shown in the 3D world. Per frame it hands out the uniform block and the
// per model push constants a draw call binds, without owning any device memory itself.
type Scene struct {
	Cam    *model.Camera
	models []*model.Model
}

func NewScene(aspect float32) *Scene {
	s := &Scene{}
	s.DefaultCam(aspect)
	return s
}

func (s *Scene) DefaultCam(aspect float32) {
	cam := model.NewCamera(45, 0.1, 100)
	cam.ProjectionType = model.CAM_PERSPECTIVE_PROJECTION
	cam.Aspect = aspect
	cam.Move(vm.Vec3f{0, 0, -2})
	s.Cam = cam
}

func (s *Scene) Models() []*model.Model {
	return s.models
}

func (s *Scene) FindInScene(name string) (*model.Model, error) {
	for i, v := range s.models {
		if v.Name == name {
			return s.models[i], nil
		}
	}
	return nil, fmt.Errorf("model '%s' not found", name)
}

func (s *Scene) AddToScene(m *model.Model) {
	s.models = append(s.models, m)
}

// RemoveFromScene drops the reference to a model found in the scene.
// Comparison is done naively by name until more sophisticated methods are required.
func (s *Scene) RemoveFromScene(m *model.Model) {
	kept := s.models[:0]
	for _, v := range s.models {
		if v.Name != m.Name {
			kept = append(kept, v)
		}
	}
	s.models = kept
}

func (s *Scene) ClearScene() {
	s.models = nil
}

// DrawCall is what a single indexed draw needs on top of the bound vertex and index buffers.
type DrawCall struct {
	Model         *model.Model
	PushConstants []byte
	// MVP is projection * view * model, only used for culling and debugging on the CPU side.
	MVP vm.Mat4f
}

// Frame collects the uniform block and one DrawCall per model.
func (s *Scene) Frame() (model.UniformBufferObject, []DrawCall) {
	ubo := s.Cam.UniformBufferObject()
	vp := ubo.Projection.Mul(ubo.View)
	calls := make([]DrawCall, 0, len(s.models))
	for _, m := range s.models {
		if m.Mesh == nil {
			log.Printf("Skipping model '%s' without mesh", m.Name)
			continue
		}
		calls = append(calls, DrawCall{
			Model:         m,
			PushConstants: m.PushConstants(),
			MVP:           vp.Mul(m.Mesh.ModelMat),
		})
	}
	return ubo, calls
}

// VisibleVertices counts the vertices of c that land inside Vulkan's canonical view volume.
func (c DrawCall) VisibleVertices() int {
	visible := 0
	for _, v := range c.Model.Mesh.Vertices {
		clip := c.MVP.MulVec4(v.Pos.Vec4(1))
		if clip.W() <= 0 {
			continue
		}
		ndc := clip.Vec3().ScalarDiv(clip.W())
		if ndc.X() >= -1 && ndc.X() <= 1 && ndc.Y() >= -1 && ndc.Y() <= 1 && ndc.Z() >= 0 && ndc.Z() <= 1 {
			visible++
		}
	}
	return visible
}
