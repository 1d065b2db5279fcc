// Package stl reads binary STL files into meshes.
//
// Layout: 80 Byte header, little endian uint32 triangle count, then per
// triangle a normal and three corners (12 float32) plus 2 attribute bytes.
package stl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"tinygl/model"
	vm "tinygl/vector_math"
)

const (
	headerSize   = 80
	preambleSize = headerSize + 4
	stride       = 50
)

var (
	ErrTruncated     = errors.New("stl: file shorter than header and triangle count")
	ErrTriangleCount = errors.New("stl: triangle count exceeds file size")
)

func ReadStlFile(path string) (*model.Mesh, error) {
	log.Printf("Reading stl file %s", path)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stl file %s: %w", path, err)
	}
	mesh, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("decode stl file %s: %w", path, err)
	}
	return mesh, nil
}

// Decode turns the contents of a binary STL file into a mesh. Each corner becomes its own vertex, colored with
// the facet normal so shading differences are visible without lighting.
func Decode(b []byte) (*model.Mesh, error) {
	if len(b) < preambleSize {
		return nil, ErrTruncated
	}
	header := b[:headerSize]
	tCnt := binary.LittleEndian.Uint32(b[headerSize:preambleSize])
	body := b[preambleSize:]
	if uint64(tCnt)*stride > uint64(len(body)) {
		return nil, fmt.Errorf("%w: %d triangles need %d Byte, got %d", ErrTriangleCount, tCnt, uint64(tCnt)*stride, len(body))
	}
	log.Printf("Decoding stl, Header: '%s', Triangle Count: %d, Triangle memory size: %d KiB", trimHeader(header), tCnt, len(body)/1024)
	return toMesh(body, tCnt), nil
}

func toMesh(bytes []byte, triangleCnt uint32) *model.Mesh {
	v := make([]model.Vertex, 0, triangleCnt*3)
	id := make([]uint32, 0, triangleCnt*3)

	for t := 0; t < int(triangleCnt); t++ {
		facet := bytes[t*stride : (t+1)*stride]
		normal := toVec3(facet[0:12])
		for corner := 0; corner < 3; corner++ {
			off := 12 + corner*12
			id = append(id, uint32(len(v)))
			v = append(v, model.Vertex{
				Pos:   toVec3(facet[off : off+12]),
				Color: normal,
			})
		}
		// facet[48:50] is the attribute byte count, unused
	}

	return model.NewMesh(v, id)
}

// Encode writes mesh as binary STL. Triangles are taken from the index buffer, normals are recomputed from the
// corner positions.
func Encode(header string, mesh *model.Mesh) []byte {
	tCnt := len(mesh.VIndices) / 3
	b := make([]byte, preambleSize+tCnt*stride)
	copy(b[:headerSize], header)
	binary.LittleEndian.PutUint32(b[headerSize:preambleSize], uint32(tCnt))

	for t := 0; t < tCnt; t++ {
		facet := b[preambleSize+t*stride:]
		p0 := mesh.Vertices[mesh.VIndices[t*3]].Pos
		p1 := mesh.Vertices[mesh.VIndices[t*3+1]].Pos
		p2 := mesh.Vertices[mesh.VIndices[t*3+2]].Pos
		putVec3(facet[0:12], p1.Sub(p0).Cross(p2.Sub(p0)).Norm())
		putVec3(facet[12:24], p0)
		putVec3(facet[24:36], p1)
		putVec3(facet[36:48], p2)
	}
	return b
}

func trimHeader(header []byte) string {
	end := len(header)
	for end > 0 && (header[end-1] == 0 || header[end-1] == ' ') {
		end--
	}
	return string(header[:end])
}

func toVec3(bytes []byte) vm.Vec3f {
	return vm.Vec3f{
		toFloat32(bytes[:4]),
		toFloat32(bytes[4:8]),
		toFloat32(bytes[8:12]),
	}
}

func toFloat32(bytes []byte) float32 {
	bits := binary.LittleEndian.Uint32(bytes)
	return math.Float32frombits(bits)
}

func putVec3(bytes []byte, v vm.Vec3f) {
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(bytes[i*4:], math.Float32bits(v[i]))
	}
}
