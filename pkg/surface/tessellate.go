package surface

import "sync"

const (
	verticesPerCell = 6
	floatsPerCell   = verticesPerCell * 3
)

// BufferLen returns the length of each output buffer for the given
// parameters. Inputs are clamped the same way New clamps them.
func BufferLen(numSideCps, segments int) int {
	numSideCps = max(numSideCps, minSideCps)
	segments = max(segments, minSegments)
	side := numSideCps - 3
	return side * side * segments * segments * floatsPerCell
}

// tessellator writes every patch of a lattice into pre-sized buffers.
// Patch k owns the range [k*stride, (k+1)*stride) of both buffers.
type tessellator struct {
	lattice  *Lattice
	segments int
	stride   int
	pos      []float32
	nor      []float32
}

func newTessellator(l *Lattice, segments int) *tessellator {
	stride := segments * segments * floatsPerCell
	size := l.PatchCount() * stride
	return &tessellator{
		lattice:  l,
		segments: segments,
		stride:   stride,
		pos:      make([]float32, size),
		nor:      make([]float32, size),
	}
}

// run tessellates all patches using up to workers goroutines.
func (t *tessellator) run(workers int) {
	total := t.lattice.PatchCount()
	workers = min(max(workers, 1), total)

	if workers == 1 {
		for k := range total {
			t.patch(k)
		}
		return
	}

	jobs := make(chan int, total)
	for k := range total {
		jobs <- k
	}
	close(jobs)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range jobs {
				t.patch(k)
			}
		}()
	}
	wg.Wait()
}

// patch emits segments² cells for patch k, two triangles per cell:
// (u,v) (u',v) (u,v') then (u',v) (u',v') (u,v').
func (t *tessellator) patch(k int) {
	gx, gy, gz := t.lattice.geometry(k)
	p := Patch{Index: k, Gx: gx, Gy: gy, Gz: gz}

	seg := float64(t.segments)
	off := k * t.stride
	for i := range t.segments {
		u := float64(i) / seg
		uRight := float64(i+1) / seg
		for j := range t.segments {
			v := float64(j) / seg
			vTop := float64(j+1) / seg

			off = t.emit(&p, off, u, v)
			off = t.emit(&p, off, uRight, v)
			off = t.emit(&p, off, u, vTop)

			off = t.emit(&p, off, uRight, v)
			off = t.emit(&p, off, uRight, vTop)
			off = t.emit(&p, off, u, vTop)
		}
	}
}

// emit evaluates one vertex and stores it at off, returning the next offset.
func (t *tessellator) emit(p *Patch, off int, u, v float64) int {
	pt := p.Point(u, v)
	t.pos[off] = float32(pt.X)
	t.pos[off+1] = float32(pt.Y)
	t.pos[off+2] = float32(pt.Z)

	n := p.Normal(u, v)
	t.nor[off] = float32(n.X)
	t.nor[off+1] = float32(n.Y)
	t.nor[off+2] = float32(n.Z)

	return off + 3
}
