// Package lighting builds SH lighting tables from simple light setups.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/midgard-prt/pkg/math"
	"github.com/Faultbox/midgard-prt/pkg/sh"
)

// Sun is a directional light plus a constant ambient term.
type Sun struct {
	Longitude float64    // degrees around Y
	Latitude  float64    // degrees of elevation above the horizon
	Color     [3]float64 // linear RGB radiance
	Ambient   [3]float64 // linear RGB, uniform over the sphere
}

// SunDirection converts longitude/latitude angles to a unit direction
// pointing towards the sun.
func SunDirection(longitude, latitude float64) math.Vec3 {
	lonRad := longitude * gomath.Pi / 180.0
	latRad := latitude * gomath.Pi / 180.0

	// Longitude is around Y axis, latitude is elevation from horizon
	return math.Vec3{
		X: gomath.Cos(latRad) * gomath.Sin(lonRad),
		Y: gomath.Sin(latRad),
		Z: gomath.Cos(latRad) * gomath.Cos(lonRad),
	}
}

// Table projects the sun onto the SH basis. The directional part is the
// basis evaluated at the sun direction scaled by its color; the ambient
// part only feeds the DC coefficient.
func (s Sun) Table() sh.Table {
	y := sh.EvalDir(SunDirection(s.Longitude, s.Latitude))

	var t sh.Table
	for i := range t {
		for ch := 0; ch < sh.Channels; ch++ {
			t[i][ch] = s.Color[ch] * y[i]
		}
	}

	// A constant a over the sphere has DC coefficient a*sqrt(4*pi).
	dc := gomath.Sqrt(4 * gomath.Pi)
	for ch := 0; ch < sh.Channels; ch++ {
		t[0][ch] += s.Ambient[ch] * dc
	}
	return t
}
