package material

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUMaterialUniform is the GPU-aligned representation of the material uniform buffer.
// Matches the WGSL MaterialUniform struct layout exactly.
// Size: 32 bytes (std430 / WGSL aligned).
type GPUMaterialUniform struct {
	BaseColor [4]float32 // offset  0: albedo RGBA (vec4<f32>)
	Metallic  float32    // offset 16: metallic factor
	Roughness float32    // offset 20: roughness factor
	_pad      [2]float32 // offset 24: padding to 32 bytes
}

// Size returns the size of the GPUMaterialUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPUMaterialUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterialUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUMaterialUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.BaseColor[i]))
	}
	binary.LittleEndian.PutUint32(buf[16:], math.Float32bits(g.Metallic))
	binary.LittleEndian.PutUint32(buf[20:], math.Float32bits(g.Roughness))
	return buf
}

// FromMaterial populates the uniform fields from a Material's surface properties.
//
// Parameters:
//   - m: the material to read surface properties from
func (g *GPUMaterialUniform) FromMaterial(m Material) {
	g.BaseColor = m.BaseColor()
	g.Metallic = m.Metallic()
	g.Roughness = m.Roughness()
}
