// Package config handles configuration loading for the PRT lighting tools.
package config

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/midgard-prt/pkg/math"
)

// Config holds all tool settings.
type Config struct {
	Lighting LightingConfig `yaml:"lighting"`
	Rotation RotationConfig `yaml:"rotation"`
	Output   OutputConfig   `yaml:"output"`
	View     ViewConfig     `yaml:"view"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LightingConfig holds the precomputed lighting input.
type LightingConfig struct {
	PrecomputePath string    `yaml:"precompute_path"` // light.txt with 9 rows of R G B
	Sun            SunConfig `yaml:"sun"`             // used by the preview when the file is missing
}

// SunConfig describes a directional light with ambient fill.
type SunConfig struct {
	Longitude float64    `yaml:"longitude"`
	Latitude  float64    `yaml:"latitude"`
	Color     [3]float64 `yaml:"color"`
	Ambient   [3]float64 `yaml:"ambient"`
}

// RotationConfig describes the lighting rotation as axis and angle.
type RotationConfig struct {
	Axis     [3]float64 `yaml:"axis"`
	AngleDeg float64    `yaml:"angle_deg"`
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	Format    string `yaml:"format"` // "text" or "yaml"
	Precision int    `yaml:"precision"`
}

// ViewConfig holds preview window settings.
type ViewConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	VSync         bool    `yaml:"vsync"`
	SpinDegPerSec float64 `yaml:"spin_deg_per_sec"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Lighting: LightingConfig{
			PrecomputePath: "light.txt",
			Sun: SunConfig{
				Longitude: 35,
				Latitude:  50,
				Color:     [3]float64{2.0, 1.7, 1.3},
				Ambient:   [3]float64{0.25, 0.3, 0.4},
			},
		},
		Rotation: RotationConfig{
			Axis:     [3]float64{0, 1, 0},
			AngleDeg: 0,
		},
		Output: OutputConfig{
			Format:    FormatText,
			Precision: 6,
		},
		View: ViewConfig{
			Width:         800,
			Height:        800,
			VSync:         true,
			SpinDegPerSec: 30,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Matrix returns the rotation as a column-major 4x4 matrix.
func (r RotationConfig) Matrix() math.Mat4 {
	axis := math.Vec3{X: r.Axis[0], Y: r.Axis[1], Z: r.Axis[2]}
	return math.QuatFromAxisAngle(axis, r.AngleDeg*gomath.Pi/180).ToMat4()
}

// Validate checks settings that have no usable fallback.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Output.Format, FormatText, FormatYAML)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("output precision %d out of range 0..17", c.Output.Precision)
	}
	a := c.Rotation.Axis
	if c.Rotation.AngleDeg != 0 && a[0] == 0 && a[1] == 0 && a[2] == 0 {
		return fmt.Errorf("rotation axis is zero")
	}
	return nil
}
