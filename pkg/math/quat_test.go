package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)
	if math.Abs(length-1.0) > 1e-12 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatToMat4(t *testing.T) {
	tests := []struct {
		name string
		q    Quat
		want Mat4
	}{
		{"identity", QuatIdentity(), Identity()},
		{"x axis", QuatFromAxisAngle(Vec3{1, 0, 0}, 0.7), RotateX(0.7)},
		{"y axis", QuatFromAxisAngle(Vec3{0, 2, 0}, -1.3), RotateY(-1.3)},
		{"z axis", QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi/2), RotateZ(math.Pi / 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.q.ToMat4()
			if !got.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("ToMat4() = %v, want %v", got, tt.want)
			}
		})
	}
}
