package surface

import "github.com/Faultbox/splinefield/pkg/linalg"

// Patch is one bicubic piece of the surface, defined by the x, y and z
// coordinates of a 4x4 window of control points. u runs along lattice
// columns and v along lattice rows.
type Patch struct {
	Index      int
	Gx, Gy, Gz linalg.Mat4
}

// EvaluateAxis blends one coordinate of the patch's control points:
// vVec · (Bᵗ · G · B · uVec).
func EvaluateAxis(uVec, vVec linalg.Vec4, g linalg.Mat4) float64 {
	w := basis.MulVec4(uVec)
	w = g.MulVec4(w)
	w = basisT.MulVec4(w)
	return w.Dot(vVec)
}

// Point returns the surface point at (u, v). Parameters outside [0, 1] are
// extrapolated, not clamped.
func (p *Patch) Point(u, v float64) linalg.Vec3 {
	uVec := powers(u)
	vVec := powers(v)

	return linalg.Vec3{
		X: EvaluateAxis(uVec, vVec, p.Gx),
		Y: EvaluateAxis(uVec, vVec, p.Gy),
		Z: EvaluateAxis(uVec, vVec, p.Gz),
	}
}

// Tangents returns the partial derivatives of the surface at (u, v).
func (p *Patch) Tangents(u, v float64) (dU, dV linalg.Vec3) {
	uVec := powers(u)
	vVec := powers(v)
	uPrime := derivPowers(u)
	vPrime := derivPowers(v)

	dU = linalg.Vec3{
		X: EvaluateAxis(uPrime, vVec, p.Gx),
		Y: EvaluateAxis(uPrime, vVec, p.Gy),
		Z: EvaluateAxis(uPrime, vVec, p.Gz),
	}
	dV = linalg.Vec3{
		X: EvaluateAxis(uVec, vPrime, p.Gx),
		Y: EvaluateAxis(uVec, vPrime, p.Gy),
		Z: EvaluateAxis(uVec, vPrime, p.Gz),
	}
	return dU, dV
}

// Normal returns dU × dV at (u, v). The result is not normalized.
func (p *Patch) Normal(u, v float64) linalg.Vec3 {
	dU, dV := p.Tangents(u, v)
	return dU.Cross(dV)
}
