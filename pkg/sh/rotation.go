package sh

import (
	"fmt"
	gomath "math"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-prt/pkg/math"
)

// Probe directions must stay linearly independent in their band's basis.
// Changing any of them requires re-checking that the probe matrix inverts.
var (
	band1Probes = []math.Vec4{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	}

	band2Probes = []math.Vec4{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{gomath.Sqrt2 / 2, gomath.Sqrt2 / 2, 0, 0},
		{gomath.Sqrt2 / 2, 0, gomath.Sqrt2 / 2, 0},
		{0, gomath.Sqrt2 / 2, gomath.Sqrt2 / 2, 0},
	}
)

// The probe matrices depend only on the probes, so their inverses are
// computed once.
var (
	band1ProbeInverse = sync.OnceValues(func() (math.Mat3, error) {
		var a math.Mat3
		probeMatrix(band1Probes, math.Identity(), 1, a[:])
		return a.Inverse()
	})

	band2ProbeInverse = sync.OnceValues(func() (math.Mat5, error) {
		var a math.Mat5
		probeMatrix(band2Probes, math.Identity(), 4, a[:])
		return a.Inverse()
	})
)

// Operators holds the band rotation operators for one rotation.
type Operators struct {
	Band1 math.Mat3
	Band2 math.Mat5
}

// Rotator builds SH rotation operators. It holds no mutable state and is
// safe for concurrent use.
type Rotator struct {
	log *zap.Logger
}

// NewRotator returns a Rotator that logs computed operators at debug level.
// A nil logger disables logging.
func NewRotator(log *zap.Logger) *Rotator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Rotator{log: log}
}

var defaultRotator = NewRotator(nil)

// Band1Rotation returns the 3x3 operator that rotates band-1 coefficients
// by rot. See Rotator.Band1.
func Band1Rotation(rot math.Mat4) (math.Mat3, error) {
	return defaultRotator.Band1(rot)
}

// Band2Rotation returns the 5x5 operator that rotates band-2 coefficients
// by rot. See Rotator.Band2.
func Band2Rotation(rot math.Mat4) (math.Mat5, error) {
	return defaultRotator.Band2(rot)
}

// Band1 builds the band-1 operator for rot.
//
// With A the basis values at the probes and S the values at the rotated
// probes, the operator is transpose(S * A^-1). Operators compose like the
// matrices they come from: Band1(R2*R1) = Band1(R2) * Band1(R1).
func (r *Rotator) Band1(rot math.Mat4) (math.Mat3, error) {
	aInv, err := band1ProbeInverse()
	if err != nil {
		return math.Mat3{}, fmt.Errorf("%w: band 1: %w", ErrSingularProbeMatrix, err)
	}

	var s math.Mat3
	probeMatrix(band1Probes, probeFrame(rot), 1, s[:])
	m := s.Mul(aInv).Transpose()

	r.log.Debug("band 1 rotation", zap.Float64s("operator", m[:]))
	return m, nil
}

// Band2 builds the band-2 operator for rot, the same way as Band1 with five
// probes.
func (r *Rotator) Band2(rot math.Mat4) (math.Mat5, error) {
	aInv, err := band2ProbeInverse()
	if err != nil {
		return math.Mat5{}, fmt.Errorf("%w: band 2: %w", ErrSingularProbeMatrix, err)
	}

	var s math.Mat5
	probeMatrix(band2Probes, probeFrame(rot), 4, s[:])
	m := s.Mul(aInv).Transpose()

	r.log.Debug("band 2 rotation", zap.Float64s("operator", m[:]))
	return m, nil
}

// Operators builds both band operators for rot.
func (r *Rotator) Operators(rot math.Mat4) (Operators, error) {
	b1, err := r.Band1(rot)
	if err != nil {
		return Operators{}, err
	}
	b2, err := r.Band2(rot)
	if err != nil {
		return Operators{}, err
	}
	return Operators{Band1: b1, Band2: b2}, nil
}

// probeFrame returns the transform applied to probe directions. The 16
// values are read row-major, i.e. the transpose of the column-major
// rotation. For a rigid rotation that is its inverse.
func probeFrame(rot math.Mat4) math.Mat4 {
	return rot.Transpose()
}

// probeMatrix fills dst (n×n, row-major, n = len(probes)) with basis values
// first..first+n-1 at each transformed probe. Column j belongs to probe j.
func probeMatrix(probes []math.Vec4, xf math.Mat4, first int, dst []float64) {
	n := len(probes)
	for j, p := range probes {
		c := EvalDir(xf.MulVec4(p).XYZ())
		for i := 0; i < n; i++ {
			dst[i*n+j] = c[first+i]
		}
	}
}
