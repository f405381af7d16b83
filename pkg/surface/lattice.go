package surface

import (
	"math/rand"

	"github.com/Faultbox/splinefield/pkg/linalg"
)

// Lattice is a square grid of control points, indexed [row][col].
// It is never modified after construction.
type Lattice struct {
	n        int
	interval float64
	points   [][]linalg.Vec3
}

// NewLattice builds the control lattice for already clamped parameters.
// Heights are drawn from a generator seeded with p.Seed, one value per cell
// in row-major order, and scaled to [0, p.MaxHeight).
func NewLattice(p Params) *Lattice {
	n := p.NumSideCps
	sideLength := p.SinglePatchLen * float64(n-1)
	halfSide := sideLength / 2.0
	interval := sideLength / float64(n)

	// Control points form a square around the center
	topLeft := linalg.Vec3{X: -halfSide, Y: 0, Z: halfSide}
	rng := rand.New(rand.NewSource(p.Seed))

	points := make([][]linalg.Vec3, n)
	for row := range n {
		points[row] = make([]linalg.Vec3, n)
		zSub := interval * float64(row)
		for col := range n {
			xAdd := interval * float64(col)
			y := rng.Float64() * p.MaxHeight

			points[row][col] = linalg.Vec3{
				X: topLeft.X + xAdd,
				Y: y,
				Z: topLeft.Z - zSub,
			}.Add(p.Center)
		}
	}

	return &Lattice{
		n:        n,
		interval: interval,
		points:   points,
	}
}

// Size returns the number of control points per side.
func (l *Lattice) Size() int {
	return l.n
}

// Interval returns the spacing between adjacent control points.
func (l *Lattice) Interval() float64 {
	return l.interval
}

// At returns the control point at the given row and column.
func (l *Lattice) At(row, col int) linalg.Vec3 {
	return l.points[row][col]
}

// PatchesPerSide returns how many 4x4 windows fit along one side.
func (l *Lattice) PatchesPerSide() int {
	return l.n - 3
}

// PatchCount returns the total number of patches.
func (l *Lattice) PatchCount() int {
	return l.PatchesPerSide() * l.PatchesPerSide()
}

// patchOrigin maps a patch index to the lattice position of its first control point.
func (l *Lattice) patchOrigin(k int) (firstRow, firstCol int) {
	side := l.PatchesPerSide()
	return k / side, k % side
}

// geometry fills the per-axis geometry matrices for patch k.
func (l *Lattice) geometry(k int) (gx, gy, gz linalg.Mat4) {
	firstRow, firstCol := l.patchOrigin(k)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			p := l.points[firstRow+i][firstCol+j]
			gx[i][j] = p.X
			gy[i][j] = p.Y
			gz[i][j] = p.Z
		}
	}
	return gx, gy, gz
}
