package surface

import "github.com/Faultbox/splinefield/pkg/linalg"

// basis is the uniform cubic B-spline blending matrix.
// Multiplying it by (1, t, t², t³) yields the four blending weights at t.
var basis = linalg.FromRows([16]float64{
	1, -3, 3, -1,
	4, 0, -6, 3,
	1, 3, 3, -3,
	0, 0, 0, 1,
}).Scale(1.0 / 6.0)

var basisT = basis.Transpose()

// Basis returns the uniform cubic B-spline basis matrix.
func Basis() linalg.Mat4 {
	return basis
}

// BasisTranspose returns the transpose of Basis.
func BasisTranspose() linalg.Mat4 {
	return basisT
}

// powers returns (1, t, t², t³).
func powers(t float64) linalg.Vec4 {
	return linalg.Vec4{1, t, t * t, t * t * t}
}

// derivPowers returns d/dt of (1, t, t², t³).
func derivPowers(t float64) linalg.Vec4 {
	return linalg.Vec4{0, 1, 2 * t, 3 * t * t}
}
