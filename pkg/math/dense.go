package math

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when a matrix has no usable inverse.
var ErrSingular = errors.New("matrix is singular")

// invertSquare inverts the n×n row-major matrix in src into dst.
// Near-singular input is rejected as well as exactly singular input.
func invertSquare(n int, src, dst []float64) error {
	a := mat.NewDense(n, n, append([]float64(nil), src...))

	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return fmt.Errorf("%w: %v", ErrSingular, err)
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			dst[r*n+c] = inv.At(r, c)
		}
	}
	return nil
}

func approxEqual(a, b []float64, tol float64) bool {
	return floats.EqualApprox(a, b, tol)
}
