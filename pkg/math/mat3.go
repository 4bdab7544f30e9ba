package math

// Mat3 is a 3x3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
type Mat3 [9]float64

// Mat3Identity returns the 3x3 identity.
func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Mul returns m × other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3+0]*other[0*3+c] + m[r*3+1]*other[1*3+c] + m[r*3+2]*other[2*3+c]
		}
	}
	return out
}

// MulVec returns m × v.
func (m Mat3) MulVec(v [3]float64) [3]float64 {
	return [3]float64{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Inverse returns the inverse, or ErrSingular.
func (m Mat3) Inverse() (Mat3, error) {
	var inv Mat3
	if err := invertSquare(3, m[:], inv[:]); err != nil {
		return Mat3{}, err
	}
	return inv, nil
}

// ApproxEqual reports whether every element is within tol of other.
func (m Mat3) ApproxEqual(other Mat3, tol float64) bool {
	return approxEqual(m[:], other[:], tol)
}
