// Package surface generates smooth height-field meshes from a randomly
// perturbed lattice of control points using uniform bicubic B-spline patches.
//
// The output is a pair of flat, non-indexed triangle-list buffers: every 3
// floats form one vertex and every 18 floats form one tessellated cell (two
// triangles sharing a diagonal).
package surface

import (
	"errors"
	"fmt"

	"github.com/Faultbox/splinefield/pkg/linalg"
)

// Surface errors.
var (
	ErrInvalidArgument = errors.New("invalid surface argument")
	ErrPatchOutOfRange = errors.New("patch index out of range")
)

// Minimum values that out-of-range parameters are clamped up to.
const (
	minSideCps   = 4
	minPatchLen  = 1.0
	minMaxHeight = 1.0
	minSegments  = 1
)

// Params holds the surface construction parameters.
type Params struct {
	NumSideCps     int         // Control points per lattice side
	SinglePatchLen float64     // Spacing scale between control points
	MaxHeight      float64     // Upper bound of the random height
	Center         linalg.Vec3 // World-space offset of the lattice
	Seed           int64       // Height generator seed
	Segments       int         // Subdivisions per patch per axis
}

// Clamped returns a copy with every scalar raised to its documented minimum.
func (p Params) Clamped() Params {
	p.NumSideCps = max(p.NumSideCps, minSideCps)
	p.SinglePatchLen = max(p.SinglePatchLen, minPatchLen)
	p.MaxHeight = max(p.MaxHeight, minMaxHeight)
	p.Segments = max(p.Segments, minSegments)
	return p
}

// Validate rejects non-finite values, which clamping cannot sanitize.
func (p Params) Validate() error {
	if !linalg.IsFinite(p.SinglePatchLen) {
		return fmt.Errorf("%w: single patch length is %v", ErrInvalidArgument, p.SinglePatchLen)
	}
	if !linalg.IsFinite(p.MaxHeight) {
		return fmt.Errorf("%w: max height is %v", ErrInvalidArgument, p.MaxHeight)
	}
	if !p.Center.IsFinite() {
		return fmt.Errorf("%w: center is %v", ErrInvalidArgument, p.Center)
	}
	return nil
}

// Option configures surface generation.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers tessellates patches on n goroutines. The output does not
// depend on n.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Surface is a fully tessellated B-spline surface. Its buffers are read-only.
type Surface struct {
	params  Params
	lattice *Lattice
	posBuf  []float32
	norBuf  []float32
}

// New validates and clamps p, builds the control lattice and tessellates
// every patch.
func New(p Params, opts ...Option) (*Surface, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p = p.Clamped()

	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	lattice := NewLattice(p)
	t := newTessellator(lattice, p.Segments)
	t.run(o.workers)

	return &Surface{
		params:  p,
		lattice: lattice,
		posBuf:  t.pos,
		norBuf:  t.nor,
	}, nil
}

// Params returns the clamped parameters the surface was built from.
func (s *Surface) Params() Params {
	return s.params
}

// Lattice returns the control lattice.
func (s *Surface) Lattice() *Lattice {
	return s.lattice
}

// PosBuf returns the vertex positions, three floats per vertex.
// Callers must not modify the returned slice.
func (s *Surface) PosBuf() []float32 {
	return s.posBuf
}

// NorBuf returns the unnormalized vertex normals, three floats per vertex.
// Callers must not modify the returned slice.
func (s *Surface) NorBuf() []float32 {
	return s.norBuf
}

// VertexCount returns the number of vertices in each buffer.
func (s *Surface) VertexCount() int {
	return len(s.posBuf) / 3
}

// PatchCount returns the number of patches, (N-3)².
func (s *Surface) PatchCount() int {
	return s.lattice.PatchCount()
}

// Patch returns the geometry of patch k.
func (s *Surface) Patch(k int) (Patch, error) {
	if k < 0 || k >= s.lattice.PatchCount() {
		return Patch{}, fmt.Errorf("%w: %d not in [0, %d)", ErrPatchOutOfRange, k, s.lattice.PatchCount())
	}
	gx, gy, gz := s.lattice.geometry(k)
	return Patch{Index: k, Gx: gx, Gy: gy, Gz: gz}, nil
}
