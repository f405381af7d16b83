package linalg

// Mat4 is a 4x4 matrix indexed as m[row][col].
// Layout: [m00 m01 m02 m03]
//
//	[m10 m11 m12 m13]
//	[m20 m21 m22 m23]
//	[m30 m31 m32 m33]
type Mat4 [4][4]float64

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// FromRows builds a matrix from 16 values given in row-major order.
func FromRows(v [16]float64) Mat4 {
	var m Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[row][col] = v[row*4+col]
		}
	}
	return m
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] =
				m[row][0]*other[0][col] +
					m[row][1]*other[1][col] +
					m[row][2]*other[2][col] +
					m[row][3]*other[3][col]
		}
	}
	return result
}

// MulVec4 multiplies the matrix by a column vector (m * v).
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2] + m[0][3]*v[3],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2] + m[1][3]*v[3],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2] + m[2][3]*v[3],
		m[3][0]*v[0] + m[3][1]*v[1] + m[3][2]*v[2] + m[3][3]*v[3],
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Scale returns every element multiplied by s.
func (m Mat4) Scale(s float64) Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][col] * s
		}
	}
	return result
}

// Row returns row i as a vector.
func (m Mat4) Row(i int) Vec4 {
	return Vec4(m[i])
}

// Col returns column j as a vector.
func (m Mat4) Col(j int) Vec4 {
	return Vec4{m[0][j], m[1][j], m[2][j], m[3][j]}
}
