// Package sh rotates spherical harmonics lighting for precomputed radiance
// transfer.
//
// Only bands 0 to 2 are handled: nine coefficients per color channel. Band 1
// and band 2 are rotated with small dense operators derived from fixed probe
// directions, and each channel is packed into a 3x3 matrix that a shader can
// take as a mat3 uniform.
package sh

import (
	"fmt"

	"github.com/Faultbox/midgard-prt/pkg/math"
)

const (
	// MaxOrder is the number of bands evaluated (0, 1 and 2).
	MaxOrder = 3

	// NumCoeffs is the number of basis functions for MaxOrder bands.
	NumCoeffs = MaxOrder * MaxOrder
)

// Normalization constants of the real SH basis, degrees 0-2.
const (
	k00  = 0.2820947917738781
	k1   = 0.4886025119029199
	k20a = 0.9461746957575601
	k20b = 0.3153915652525201
	k21  = 1.092548430592079
	k22  = 0.5462742152960395
)

// Coeffs holds one value per basis function, indexed l*(l+1)+m.
type Coeffs [NumCoeffs]float64

// Band1 returns coefficients 1..3.
func (c Coeffs) Band1() [3]float64 {
	return [3]float64{c[1], c[2], c[3]}
}

// Band2 returns coefficients 4..8.
func (c Coeffs) Band2() math.Vec5 {
	return math.Vec5{c[4], c[5], c[6], c[7], c[8]}
}

// Eval evaluates the SH basis for bands 0-2 at direction (x, y, z).
// The direction should be unit length.
func Eval(x, y, z float64) Coeffs {
	var p Coeffs

	p[0] = k00

	p[2] = k1 * z
	p[6] = k20a*z*z - k20b

	p[3] = -k1 * x
	p[1] = -k1 * y

	t := -k21 * z
	p[7] = t * x
	p[5] = t * y

	p[8] = k22 * (x*x - y*y)
	p[4] = k22 * (2 * x * y)

	return p
}

// EvalDir is Eval for a vector.
func EvalDir(d math.Vec3) Coeffs {
	return Eval(d.X, d.Y, d.Z)
}

// EvalOrder returns the first order² basis values at (x, y, z).
// order must be between 1 and MaxOrder.
func EvalOrder(x, y, z float64, order int) ([]float64, error) {
	if order < 1 || order > MaxOrder {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrUnsupportedOrder, order, MaxOrder)
	}
	c := Eval(x, y, z)
	out := make([]float64, order*order)
	copy(out, c[:])
	return out, nil
}
