package math

import (
	"errors"
	"testing"
)

func TestMat3Inverse(t *testing.T) {
	m := Mat3{
		2, 0, 1,
		1, 3, 0,
		0, 1, 4,
	}

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}
	if got := m.Mul(inv); !got.ApproxEqual(Mat3Identity(), 1e-12) {
		t.Errorf("M * M^-1 = %v, want identity", got)
	}
}

func TestMat3InverseSingular(t *testing.T) {
	m := Mat3{
		1, 2, 3,
		2, 4, 6,
		0, 1, 1,
	}
	_, err := m.Inverse()
	if !errors.Is(err, ErrSingular) {
		t.Errorf("Inverse() error = %v, want ErrSingular", err)
	}
}

func TestMat3TransposeAndMulVec(t *testing.T) {
	m := Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}

	if got := m.Transpose()[0*3+2]; got != 7 {
		t.Errorf("Transpose()[0][2] = %v, want 7", got)
	}

	got := m.MulVec([3]float64{1, 0, -1})
	want := [3]float64{-2, -2, -2}
	if got != want {
		t.Errorf("MulVec() = %v, want %v", got, want)
	}
}

func TestMat5Inverse(t *testing.T) {
	var m Mat5
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			m[r*5+c] = 1 / float64(r+c+1) // Hilbert matrix, invertible
		}
	}

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}
	if got := m.Mul(inv); !got.ApproxEqual(Mat5Identity(), 1e-6) {
		t.Errorf("M * M^-1 = %v, want identity", got)
	}
}

func TestMat5InverseSingular(t *testing.T) {
	m := Mat5Identity()
	m[3*5+3] = 0

	if _, err := m.Inverse(); !errors.Is(err, ErrSingular) {
		t.Errorf("Inverse() error = %v, want ErrSingular", err)
	}
}

func TestMat5MulVecAndTranspose(t *testing.T) {
	m := Mat5Identity()
	m[0*5+4] = 2

	got := m.MulVec(Vec5{1, 1, 1, 1, 1})
	want := Vec5{3, 1, 1, 1, 1}
	if got != want {
		t.Errorf("MulVec() = %v, want %v", got, want)
	}

	if tr := m.Transpose(); tr[4*5+0] != 2 || tr[0*5+4] != 0 {
		t.Errorf("Transpose() = %v, want element moved to (4, 0)", tr)
	}
}
