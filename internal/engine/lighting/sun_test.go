package lighting

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/midgard-prt/pkg/math"
	"github.com/Faultbox/midgard-prt/pkg/sh"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		want     math.Vec3
	}{
		{"zenith", 0, 90, math.Vec3{X: 0, Y: 1, Z: 0}},
		{"horizon south", 0, 0, math.Vec3{X: 0, Y: 0, Z: 1}},
		{"horizon east", 90, 0, math.Vec3{X: 1, Y: 0, Z: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.lon, tt.lat)
			d := math.Vec3{X: got.X - tt.want.X, Y: got.Y - tt.want.Y, Z: got.Z - tt.want.Z}
			if d.Length() > 1e-12 {
				t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
		})
	}
}

func TestSunTableAmbientOnly(t *testing.T) {
	s := Sun{Ambient: [3]float64{1, 0.5, 0.25}}
	tbl := s.Table()

	// Reconstructing a constant ambient must give it back anywhere.
	y := sh.Eval(0.6, 0, 0.8)
	for ch := 0; ch < sh.Channels; ch++ {
		c := tbl.Channel(ch)
		var v float64
		for i := range c {
			v += c[i] * y[i]
		}
		if gomath.Abs(v-s.Ambient[ch]) > 1e-12 {
			t.Errorf("channel %d radiance = %v, want %v", ch, v, s.Ambient[ch])
		}
	}
}

// Rotating the sun's table must match projecting the rotated sun.
func TestSunTableRotation(t *testing.T) {
	s := Sun{Longitude: 30, Latitude: 40, Color: [3]float64{1, 0.9, 0.7}}
	rotated := s
	rotated.Longitude += 90

	got, err := sh.RotatePrecomputeL(s.Table(), math.RotateY(gomath.Pi/2))
	if err != nil {
		t.Fatal(err)
	}
	want := sh.PackPrecomputeL(rotated.Table())

	for ch := 0; ch < sh.Channels; ch++ {
		for i := 0; i < 8; i++ {
			if gomath.Abs(got[ch][i]-want[ch][i]) > 1e-9 {
				t.Errorf("channel %d slot %d = %v, want %v", ch, i, got[ch][i], want[ch][i])
			}
		}
	}
}
