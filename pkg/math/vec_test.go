package math

import (
	"testing"
)

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	l := v.Normalize().Length()
	if l < 0.999999 || l > 1.000001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Vec3.Normalize() = %v, want zero", got)
	}
}

func TestVec4XYZ(t *testing.T) {
	if back := (Vec4{1, 2, 3, 0}).XYZ(); back != (Vec3{1, 2, 3}) {
		t.Errorf("Vec4.XYZ() = %v, want (1, 2, 3)", back)
	}
}
