package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Flags holds CLI overrides bound to a flag set. Zero values mean "not set".
type Flags struct {
	Config string
	Debug  bool
	Light  string
	Axis   axisFlag
	Angle  float64
	Format string
	Width  int
	Height int

	fs *flag.FlagSet
}

// RegisterFlags binds the config overrides to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Light, "light", "", "Path to precomputed lighting (light.txt)")
	fs.Var(&f.Axis, "axis", "Rotation axis as x,y,z")
	fs.Float64Var(&f.Angle, "angle", 0, "Rotation angle in degrees")
	fs.StringVar(&f.Format, "format", "", "Output format: text or yaml")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	return f
}

// ConfigPath returns the explicit config path if provided via --config flag.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return f.Config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Light != "" {
		cfg.Lighting.PrecomputePath = f.Light
	}
	if f.Axis.set {
		cfg.Rotation.Axis = f.Axis.v
	}
	if f.angleSet() {
		cfg.Rotation.AngleDeg = f.Angle
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
	if f.Width > 0 {
		cfg.View.Width = f.Width
	}
	if f.Height > 0 {
		cfg.View.Height = f.Height
	}
}

// angleSet reports whether -angle was given. An explicit -angle 0 must
// still override the file.
func (f *Flags) angleSet() bool {
	if f.fs == nil {
		return f.Angle != 0
	}
	set := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "angle" {
			set = true
		}
	})
	return set
}

// axisFlag parses "x,y,z".
type axisFlag struct {
	v   [3]float64
	set bool
}

func (a *axisFlag) String() string {
	if a == nil || !a.set {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", a.v[0], a.v[1], a.v[2])
}

func (a *axisFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("axis %q: want x,y,z", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("axis %q: %w", s, err)
		}
		a.v[i] = v
	}
	a.set = true
	return nil
}
