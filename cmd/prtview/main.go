// prtview previews rotated SH lighting on a sphere.
package main

import (
	"errors"
	"flag"
	"fmt"
	gomath "math"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-prt/internal/config"
	"github.com/Faultbox/midgard-prt/internal/engine/lighting"
	"github.com/Faultbox/midgard-prt/internal/engine/shader"
	"github.com/Faultbox/midgard-prt/internal/engine/window"
	"github.com/Faultbox/midgard-prt/internal/logger"
	"github.com/Faultbox/midgard-prt/pkg/math"
	"github.com/Faultbox/midgard-prt/pkg/sh"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("prtview failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	table, err := loadLighting(cfg.Lighting)
	if err != nil {
		return err
	}

	win, err := window.New(window.Config{
		Title:  "PRT lighting preview",
		Width:  cfg.View.Width,
		Height: cfg.View.Height,
		VSync:  cfg.View.VSync,
	}, logger.Named("window"))
	if err != nil {
		return err
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Info("OpenGL ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	program, err := shader.CompileProgram(vertexShader, fragmentShader)
	if err != nil {
		return fmt.Errorf("compiling PRT shader: %w", err)
	}
	defer gl.DeleteProgram(program)

	uniforms, err := shader.LookupPrecomputeL(program)
	if err != nil {
		return err
	}
	aspectLoc := shader.GetUniform(program, "uAspect")

	// Core profile needs a bound VAO even without attributes.
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	defer gl.DeleteVertexArrays(1, &vao)

	rotator := sh.NewRotator(logger.Named("sh"))
	base := cfg.Rotation.Matrix()
	spin := cfg.View.SpinDegPerSec * gomath.Pi / 180

	start := time.Now()
	for !win.PollQuit() {
		angle := time.Since(start).Seconds() * spin
		packed, err := rotator.RotatePrecomputeL(table, math.RotateY(angle).Mul(base))
		if err != nil {
			return err
		}

		w, h := win.Size()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(program)
		uniforms.Set(packed)
		if h > 0 {
			gl.Uniform1f(aspectLoc, float32(w)/float32(h))
		}
		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)

		win.SwapBuffers()
	}

	return nil
}

// loadLighting reads the precompute table, falling back to the configured
// sun when the file does not exist.
func loadLighting(cfg config.LightingConfig) (sh.Table, error) {
	table, err := sh.LoadTable(cfg.PrecomputePath)
	if err == nil {
		logger.Info("loaded precomputed lighting", zap.String("path", cfg.PrecomputePath))
		return table, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return sh.Table{}, err
	}

	logger.Warn("precomputed lighting not found, projecting sun",
		zap.String("path", cfg.PrecomputePath),
		zap.Float64("longitude", cfg.Sun.Longitude),
		zap.Float64("latitude", cfg.Sun.Latitude),
	)
	sun := lighting.Sun{
		Longitude: cfg.Sun.Longitude,
		Latitude:  cfg.Sun.Latitude,
		Color:     cfg.Sun.Color,
		Ambient:   cfg.Sun.Ambient,
	}
	return sun.Table(), nil
}
