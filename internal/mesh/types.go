// Package mesh turns flat surface buffers into renderer-ready vertex data
// and summary statistics.
package mesh

// Vertex is one interleaved mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// VertexSize is the size of a Vertex in bytes.
const VertexSize = 6 * 4

// Mesh holds a non-indexed triangle list ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the midpoint of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{
		b.Max[0] - b.Min[0],
		b.Max[1] - b.Min[1],
		b.Max[2] - b.Min[2],
	}
}

// Stats summarizes a generated surface.
type Stats struct {
	Vertices  int
	Triangles int
	Bounds    Bounds
	// Checksum is an FNV-1a hash over the raw bits of both buffers.
	Checksum uint64
	// MinNormalLen and MaxNormalLen bound the raw normal magnitudes.
	MinNormalLen float32
	MaxNormalLen float32
}
