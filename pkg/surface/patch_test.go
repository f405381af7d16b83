package surface

import (
	"math"
	"testing"

	"github.com/Faultbox/splinefield/pkg/linalg"
)

const tolerance = 1e-9

// blend returns the closed-form uniform cubic B-spline weights at t.
func blend(t float64) [4]float64 {
	it := 1 - t
	return [4]float64{
		it * it * it / 6,
		(3*t*t*t - 6*t*t + 4) / 6,
		(-3*t*t*t + 3*t*t + 3*t + 1) / 6,
		t * t * t / 6,
	}
}

func TestBasisCoefficients(t *testing.T) {
	b := Basis()
	want := [4][4]float64{
		{1, -3, 3, -1},
		{4, 0, -6, 3},
		{1, 3, 3, -3},
		{0, 0, 0, 1},
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !near(b[row][col]*6, want[row][col]) {
				t.Errorf("Basis[%d][%d]*6 = %f, want %f", row, col, b[row][col]*6, want[row][col])
			}
		}
	}
	if BasisTranspose() != b.Transpose() {
		t.Error("BasisTranspose should equal Basis().Transpose()")
	}
}

func TestBasisPartitionOfUnity(t *testing.T) {
	for _, u := range []float64{0, 0.1, 0.25, 0.5, 0.8, 1} {
		w := Basis().MulVec4(powers(u))
		sum := w[0] + w[1] + w[2] + w[3]
		if !near(sum, 1) {
			t.Errorf("weights at %v sum to %v, want 1", u, sum)
		}

		want := blend(u)
		for i := range w {
			if !near(w[i], want[i]) {
				t.Errorf("weight %d at %v = %v, want %v", i, u, w[i], want[i])
			}
		}
	}
}

func TestEvaluateAxisMatchesBlending(t *testing.T) {
	g := linalg.FromRows([16]float64{
		0.3, 1.2, -0.4, 2.0,
		1.1, 0.0, 0.7, -1.5,
		2.2, 0.9, 1.4, 0.1,
		-0.6, 1.8, 0.2, 0.5,
	})

	for _, uv := range [][2]float64{{0, 0}, {0.3, 0.7}, {1, 0.5}, {0.25, 1}} {
		u, v := uv[0], uv[1]
		bu, bv := blend(u), blend(v)

		// Rows are weighted by v, columns by u
		var want float64
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				want += bv[i] * bu[j] * g[i][j]
			}
		}

		got := EvaluateAxis(powers(u), powers(v), g)
		if !near(got, want) {
			t.Errorf("EvaluateAxis(%v, %v) = %v, want %v", u, v, got, want)
		}
	}
}

func TestPatchFlatLattice(t *testing.T) {
	var gx, gy, gz linalg.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			gx[i][j] = float64(j)
			gy[i][j] = 2.5
			gz[i][j] = -float64(i)
		}
	}
	p := Patch{Gx: gx, Gy: gy, Gz: gz}

	for _, uv := range [][2]float64{{0, 0}, {0.5, 0.5}, {1, 1}, {0.2, 0.9}} {
		u, v := uv[0], uv[1]
		pt := p.Point(u, v)

		// Linear data is reproduced exactly, offset by one control point
		if !near(pt.X, 1+u) || !near(pt.Y, 2.5) || !near(pt.Z, -(1+v)) {
			t.Errorf("Point(%v, %v) = %v, want (%v, 2.5, %v)", u, v, pt, 1+u, -(1 + v))
		}

		n := p.Normal(u, v)
		if !near(n.X, 0) || !near(n.Y, 1) || !near(n.Z, 0) {
			t.Errorf("Normal(%v, %v) = %v, want (0, 1, 0)", u, v, n)
		}
	}
}

func TestPatchNormalIsCrossOfTangents(t *testing.T) {
	s := mustNew(t, Params{NumSideCps: 6, SinglePatchLen: 2, MaxHeight: 4, Seed: 7, Segments: 2})
	p, err := s.Patch(3)
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}

	dU, dV := p.Tangents(0.4, 0.6)
	n := p.Normal(0.4, 0.6)
	if n != dU.Cross(dV) {
		t.Errorf("Normal = %v, want %v", n, dU.Cross(dV))
	}

	// Normals are raw cross products, not unit vectors
	if near(n.Length(), 1) {
		t.Errorf("Normal length = %v, expected unnormalized", n.Length())
	}
}

func TestPatchExtrapolation(t *testing.T) {
	var gy linalg.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			gy[i][j] = float64(j * j)
		}
	}
	p := Patch{Gy: gy}

	// Outside the unit domain the polynomial is evaluated as-is
	got := p.Point(1.5, 0.5).Y
	uVec := linalg.Vec4{1, 1.5, 2.25, 3.375}
	want := EvaluateAxis(uVec, powers(0.5), gy)
	if !near(got, want) {
		t.Errorf("Point(1.5, 0.5).Y = %v, want %v", got, want)
	}
	if near(got, p.Point(1, 0.5).Y) {
		t.Error("u=1.5 should not be clamped to u=1")
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Abs(b))
}
