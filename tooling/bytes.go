package tooling

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unsafe"

	vm "tinygl/vector_math"
)

// Provides conversions from typed CPU side data to the untyped bytes Vulkan copies into device memory.

// RawBytes writes a given object as its little endian byte representation voiding all type information in the
// process. p has to be a fixed size value or a slice of those, as accepted by binary.Write.
func RawBytes(p any) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, p); err != nil {
		return nil, fmt.Errorf("raw bytes of %T: %w", p, err)
	}
	return buf.Bytes(), nil
}

// FloatBytes drops type reference from a float slice without copying, to allow passing matrix and vector data
// (see vector_math.Mat4.Data) straight to vk.Memcopy. The result aliases in.
func FloatBytes[T vm.Float](in []T) []byte {
	if len(in) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&in[0])), len(in)*int(unsafe.Sizeof(in[0])))
}
