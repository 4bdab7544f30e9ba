package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/midgard-prt/pkg/sh"
)

// PrecomputeLUniform is the mat3 array uniform holding packed SH lighting,
// one element per color channel.
const PrecomputeLUniform = "uPrecomputeL"

// PrecomputeL caches the uniform locations of uPrecomputeL[0..2].
type PrecomputeL struct {
	locs [sh.Channels]int32
}

// LookupPrecomputeL resolves the uniform locations in program.
func LookupPrecomputeL(program uint32) (*PrecomputeL, error) {
	u := &PrecomputeL{}
	for ch := range u.locs {
		name := fmt.Sprintf("%s[%d]", PrecomputeLUniform, ch)
		loc := GetUniform(program, name)
		if loc < 0 {
			return nil, fmt.Errorf("uniform %q not found in program %d", name, program)
		}
		u.locs[ch] = loc
	}
	return u, nil
}

// Set uploads the packed matrices. The program must be in use.
func (u *PrecomputeL) Set(p sh.Packed) {
	data := p.Float32()
	for ch, loc := range u.locs {
		gl.UniformMatrix3fv(loc, 1, false, &data[ch][0])
	}
}
