package math

// Vec5 holds the five coefficients of a band-2 SH projection.
type Vec5 [5]float64

// Mat5 is a 5x5 matrix stored row-major.
type Mat5 [25]float64

// Mat5Identity returns the 5x5 identity.
func Mat5Identity() Mat5 {
	var m Mat5
	for i := 0; i < 5; i++ {
		m[i*5+i] = 1
	}
	return m
}

// Mul returns m × other.
func (m Mat5) Mul(other Mat5) Mat5 {
	var out Mat5
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			var sum float64
			for k := 0; k < 5; k++ {
				sum += m[r*5+k] * other[k*5+c]
			}
			out[r*5+c] = sum
		}
	}
	return out
}

// MulVec returns m × v.
func (m Mat5) MulVec(v Vec5) Vec5 {
	var out Vec5
	for r := 0; r < 5; r++ {
		var sum float64
		for k := 0; k < 5; k++ {
			sum += m[r*5+k] * v[k]
		}
		out[r] = sum
	}
	return out
}

// Transpose returns the transposed matrix.
func (m Mat5) Transpose() Mat5 {
	var t Mat5
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			t[c*5+r] = m[r*5+c]
		}
	}
	return t
}

// Inverse returns the inverse, or ErrSingular.
func (m Mat5) Inverse() (Mat5, error) {
	var inv Mat5
	if err := invertSquare(5, m[:], inv[:]); err != nil {
		return Mat5{}, err
	}
	return inv, nil
}

// ApproxEqual reports whether every element is within tol of other.
func (m Mat5) ApproxEqual(other Mat5, tol float64) bool {
	return approxEqual(m[:], other[:], tol)
}
