package main

import (
	"log"
	"os"
	"runtime"

	"tinygl/model"
	"tinygl/renderer"
	"tinygl/stl"
	vm "tinygl/vector_math"
)

const PROGRAM_NAME = "tinygl transform preview"
const WINDOW_WIDTH, WINDOW_HEIGHT int32 = 1280, 720

const FIELD_OF_VIEW, Z_NEAR, Z_FAR float32 = 45, 0.1, 100
const FRAME_COUNT = 4
const FRAME_TIME float32 = 1.0 / 60
const DEGREES_PER_SECOND float32 = 45

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)
	log.Printf("Starting %s", PROGRAM_NAME)
	log.Printf("Using GoLang: [%s]", runtime.Version())
}

// onDraw spins the model around the (1, 1, 0) diagonal.
func onDraw(elapsed float32, m *model.Model) {
	mat := vm.NewMat4[float32]()
	mat.Translate(vm.Vec3f{0, 0, 2}).Rotate(elapsed*DEGREES_PER_SECOND, vm.Vec3f{1, 1, 0})
	m.Mesh.ModelMat = mat
}

func loadModel() *model.Model {
	if len(os.Args) < 2 {
		return model.NewCubeModel("cube")
	}
	mesh, err := stl.ReadStlFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	return model.NewModel(mesh, os.Args[1])
}

func main() {
	m := loadModel()

	scene := renderer.NewScene(float32(WINDOW_WIDTH) / float32(WINDOW_HEIGHT))
	scene.Cam.Fov, scene.Cam.Near, scene.Cam.Far = FIELD_OF_VIEW, Z_NEAR, Z_FAR
	scene.Cam.Move(vm.Vec3f{0, 0, -1})
	scene.AddToScene(m)

	for frame := 0; frame < FRAME_COUNT; frame++ {
		elapsed := float32(frame) * FRAME_TIME * 15
		onDraw(elapsed, m)

		ubo, calls := scene.Frame()
		if frame == 0 {
			log.Printf("UBO: %d Byte, push constants: %d Byte, vertex buffer: %d Byte",
				len(ubo.Bytes()), len(m.PushConstants()), m.GetVBufferSize())
		}
		for _, c := range calls {
			log.Printf("Frame %d (%.2fs) '%s': %d/%d vertices inside the view volume, model matrix:\n%s",
				frame, elapsed, c.Model.Name, c.VisibleVertices(), len(c.Model.Mesh.Vertices), c.Model.Mesh.ModelMat.String())
		}
	}
}
