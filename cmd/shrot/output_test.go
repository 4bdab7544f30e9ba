package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-prt/internal/config"
	"github.com/Faultbox/midgard-prt/pkg/math"
	"github.com/Faultbox/midgard-prt/pkg/sh"
)

func testPacked() sh.Packed {
	var t sh.Table
	for i := range t {
		t[i] = [3]float64{1, 2, 3}
	}
	return sh.PackPrecomputeL(t)
}

func TestWritePackedText(t *testing.T) {
	var buf bytes.Buffer
	out := config.OutputConfig{Format: config.FormatText, Precision: 2}
	if err := writePacked(&buf, out, testPacked()); err != nil {
		t.Fatalf("writePacked() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{"r:\n  1.00 1.00 1.00\n", "g:\n  2.00 2.00 2.00\n", "b:\n  3.00 3.00 3.00\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("writePacked() output missing %q:\n%s", want, got)
		}
	}
	if lines := strings.Count(got, "\n"); lines != 12 {
		t.Errorf("writePacked() wrote %d lines, want 12", lines)
	}
}

func TestWritePackedYAML(t *testing.T) {
	var buf bytes.Buffer
	out := config.OutputConfig{Format: config.FormatYAML}
	if err := writePacked(&buf, out, testPacked()); err != nil {
		t.Fatalf("writePacked() error = %v", err)
	}

	var doc packedDoc
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid yaml: %v\n%s", err, buf.String())
	}
	if len(doc.B) != 3 || doc.B[2][2] != 3 {
		t.Errorf("b channel = %v, want 3x3 of 3", doc.B)
	}
}

func TestWriteOperatorsIdentity(t *testing.T) {
	ops, err := sh.NewRotator(nil).Operators(math.Identity())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeOperators(&buf, config.OutputConfig{Format: config.FormatText, Precision: 3}, ops); err != nil {
		t.Fatalf("writeOperators() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "band1:\n  1.000 0.000 0.000\n") {
		t.Errorf("band 1 identity not printed:\n%s", got)
	}
	if !strings.Contains(got, "band2:\n  1.000 0.000 0.000 0.000 0.000\n") {
		t.Errorf("band 2 identity not printed:\n%s", got)
	}
}

func TestWriteBasisNormalizes(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBasis(&buf, config.OutputConfig{Format: config.FormatYAML}, [3]float64{0, 0, 5}); err != nil {
		t.Fatalf("writeBasis() error = %v", err)
	}

	var doc basisDoc
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid yaml: %v", err)
	}
	if len(doc.Direction) != 3 || doc.Direction[2] != 1 {
		t.Errorf("direction = %v, want (0, 0, 1)", doc.Direction)
	}
	if len(doc.Values) != sh.NumCoeffs {
		t.Errorf("got %d values, want %d", len(doc.Values), sh.NumCoeffs)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    float64
		prec int
		want string
	}{
		{1.23456, 3, "1.235"},
		{-0.5, 1, "-0.5"},
		{-1e-17, 3, "0.000"},
		{-0.0004, 3, "0.000"},
		{-0.0006, 3, "-0.001"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.v, tt.prec); got != tt.want {
			t.Errorf("formatFloat(%v, %d) = %q, want %q", tt.v, tt.prec, got, tt.want)
		}
	}
}

func TestWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prt.yaml")

	cfg := config.Default()
	cfg.Rotation.AngleDeg = 30
	got, err := writeConfig(cfg, path, false)
	if err != nil {
		t.Fatalf("writeConfig() error = %v", err)
	}
	if got != path {
		t.Errorf("writeConfig() path = %s, want %s", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	loaded := config.Default()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		t.Fatalf("written config is not valid yaml: %v", err)
	}
	if loaded.Rotation.AngleDeg != 30 {
		t.Errorf("angle_deg = %v, want 30", loaded.Rotation.AngleDeg)
	}

	if _, err := writeConfig(cfg, path, false); !errors.Is(err, config.ErrConfigExists) {
		t.Errorf("second writeConfig() error = %v, want ErrConfigExists", err)
	}
	if _, err := writeConfig(cfg, path, true); err != nil {
		t.Errorf("writeConfig(force) error = %v", err)
	}
}

func TestWriteConfigDefaultPath(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := writeConfig(config.Default(), "", false)
	if err != nil {
		t.Fatalf("writeConfig() error = %v", err)
	}
	if got != config.UserPath() {
		t.Errorf("writeConfig() path = %s, want %s", got, config.UserPath())
	}
	if _, err := os.Stat(got); err != nil {
		t.Errorf("config not written: %v", err)
	}
}
