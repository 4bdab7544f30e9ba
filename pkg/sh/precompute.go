package sh

import "github.com/Faultbox/midgard-prt/pkg/math"

// Packed holds one 3x3 matrix per color channel, in R, G, B order. Each
// matrix lists the channel's coefficients in row-major order.
type Packed [Channels]math.Mat3

// RotatePrecomputeL rotates t by rot and packs each channel.
// See Rotator.RotatePrecomputeL.
func RotatePrecomputeL(t Table, rot math.Mat4) (Packed, error) {
	return defaultRotator.RotatePrecomputeL(t, rot)
}

// RotatePrecomputeLRows validates rows as a Table and rotates it.
func RotatePrecomputeLRows(rows [][]float64, rot math.Mat4) (Packed, error) {
	t, err := NewTable(rows)
	if err != nil {
		return Packed{}, err
	}
	return RotatePrecomputeL(t, rot)
}

// RotatePrecomputeL rotates the band-1 and band-2 coefficients of every
// channel by rot and packs the result as
//
//	[L0, b1[0], b1[1], b1[2], b2[0], b2[1], b2[2], b2[3], 0]
//
// The fifth rotated band-2 coefficient does not fit the packed layout and
// is dropped; the last slot is always zero.
func (r *Rotator) RotatePrecomputeL(t Table, rot math.Mat4) (Packed, error) {
	ops, err := r.Operators(rot)
	if err != nil {
		return Packed{}, err
	}

	var out Packed
	for i := 0; i < Channels; i++ {
		c := t.Channel(i)
		b1 := ops.Band1.MulVec(c.Band1())
		b2 := ops.Band2.MulVec(c.Band2())

		out[i] = math.Mat3{
			c[0], b1[0], b1[1],
			b1[2], b2[0], b2[1],
			b2[2], b2[3], 0,
		}
	}
	return out, nil
}

// PackPrecomputeL packs each channel of t into a 3x3 matrix without
// rotation. All nine coefficients are kept.
func PackPrecomputeL(t Table) Packed {
	var out Packed
	for i := 0; i < Channels; i++ {
		out[i] = math.Mat3(t.Channel(i))
	}
	return out
}

// PackPrecomputeLRows validates rows as a Table and packs it.
func PackPrecomputeLRows(rows [][]float64) (Packed, error) {
	t, err := NewTable(rows)
	if err != nil {
		return Packed{}, err
	}
	return PackPrecomputeL(t), nil
}

// Float32 returns the packed matrices in float32, flat order unchanged, as
// uploaded to mat3 uniforms without transposition.
func (p Packed) Float32() [Channels][9]float32 {
	var out [Channels][9]float32
	for ch := range p {
		for i, v := range p[ch] {
			out[ch][i] = float32(v)
		}
	}
	return out
}
