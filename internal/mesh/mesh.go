package mesh

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
)

// ErrBufferMismatch is returned when position and normal buffers disagree.
var ErrBufferMismatch = errors.New("position and normal buffers do not match")

// checkBuffers verifies both buffers hold the same whole number of vertices.
func checkBuffers(positions, normals []float32) error {
	if len(positions) != len(normals) {
		return fmt.Errorf("%w: %d positions, %d normals", ErrBufferMismatch, len(positions), len(normals))
	}
	if len(positions)%9 != 0 {
		return fmt.Errorf("%w: %d floats is not a whole number of triangles", ErrBufferMismatch, len(positions))
	}
	return nil
}

// Build interleaves position and normal buffers into a triangle-list mesh.
// Normals are normalized; a zero-length normal becomes straight up.
func Build(positions, normals []float32) (*Mesh, error) {
	if err := checkBuffers(positions, normals); err != nil {
		return nil, err
	}

	count := len(positions) / 3
	vertices := make([]Vertex, count)

	bounds := emptyBounds()
	for i := range count {
		o := i * 3
		pos := [3]float32{positions[o], positions[o+1], positions[o+2]}
		nor := [3]float32{normals[o], normals[o+1], normals[o+2]}

		vertices[i] = Vertex{Position: pos, Normal: normalize(nor)}
		updateBounds(&bounds, pos)
	}

	return &Mesh{
		Vertices: vertices,
		Bounds:   bounds,
	}, nil
}

// ComputeBounds returns the bounding box of a flat position buffer.
func ComputeBounds(positions []float32) Bounds {
	bounds := emptyBounds()
	for o := 0; o+2 < len(positions); o += 3 {
		updateBounds(&bounds, [3]float32{positions[o], positions[o+1], positions[o+2]})
	}
	return bounds
}

// NormalizeNormals returns a copy of a flat normal buffer with unit-length normals.
func NormalizeNormals(normals []float32) []float32 {
	out := make([]float32, len(normals))
	for o := 0; o+2 < len(normals); o += 3 {
		n := normalize([3]float32{normals[o], normals[o+1], normals[o+2]})
		out[o], out[o+1], out[o+2] = n[0], n[1], n[2]
	}
	return out
}

// Interleave returns position and normal floats packed per vertex,
// the layout expected by the viewer's vertex buffer.
func (m *Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2], v.Normal[0], v.Normal[1], v.Normal[2])
	}
	return out
}

// ComputeStats summarizes a pair of raw surface buffers.
func ComputeStats(positions, normals []float32) (Stats, error) {
	if err := checkBuffers(positions, normals); err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Vertices:  len(positions) / 3,
		Triangles: len(positions) / 9,
		Bounds:    ComputeBounds(positions),
		Checksum:  Checksum(positions, normals),
	}

	if len(normals) > 0 {
		stats.MinNormalLen = float32(math.Inf(1))
	}
	for o := 0; o+2 < len(normals); o += 3 {
		l := length([3]float32{normals[o], normals[o+1], normals[o+2]})
		stats.MinNormalLen = min(stats.MinNormalLen, l)
		stats.MaxNormalLen = max(stats.MaxNormalLen, l)
	}

	return stats, nil
}

// Checksum hashes the IEEE-754 bits of every float in the given buffers.
func Checksum(buffers ...[]float32) uint64 {
	h := fnv.New64a()
	var word [4]byte
	for _, buf := range buffers {
		for _, f := range buf {
			binary.LittleEndian.PutUint32(word[:], math.Float32bits(f))
			h.Write(word[:])
		}
	}
	return h.Sum64()
}

// Helper functions

func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}

func length(v [3]float32) float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

func normalize(v [3]float32) [3]float32 {
	l := length(v)
	if l < 1e-12 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
