package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-prt/internal/config"
	"github.com/Faultbox/midgard-prt/pkg/math"
	"github.com/Faultbox/midgard-prt/pkg/sh"
)

var channelNames = [sh.Channels]string{"r", "g", "b"}

// packedDoc is the YAML shape of a packed result: channel -> 3 rows.
type packedDoc struct {
	R [][]float64 `yaml:"r"`
	G [][]float64 `yaml:"g"`
	B [][]float64 `yaml:"b"`
}

type operatorsDoc struct {
	Band1 [][]float64 `yaml:"band1"`
	Band2 [][]float64 `yaml:"band2"`
}

type basisDoc struct {
	Direction []float64 `yaml:"direction"`
	Values    []float64 `yaml:"values"`
}

func writePacked(w io.Writer, out config.OutputConfig, p sh.Packed) error {
	if out.Format == config.FormatYAML {
		return writeYAML(w, packedDoc{
			R: rows(p[0][:], 3),
			G: rows(p[1][:], 3),
			B: rows(p[2][:], 3),
		})
	}

	for ch, m := range p {
		fmt.Fprintf(w, "%s:\n", channelNames[ch])
		writeMatrix(w, m[:], 3, out.Precision)
	}
	return nil
}

func writeOperators(w io.Writer, out config.OutputConfig, ops sh.Operators) error {
	if out.Format == config.FormatYAML {
		return writeYAML(w, operatorsDoc{
			Band1: rows(ops.Band1[:], 3),
			Band2: rows(ops.Band2[:], 5),
		})
	}

	fmt.Fprintln(w, "band1:")
	writeMatrix(w, ops.Band1[:], 3, out.Precision)
	fmt.Fprintln(w, "band2:")
	writeMatrix(w, ops.Band2[:], 5, out.Precision)
	return nil
}

func writeBasis(w io.Writer, out config.OutputConfig, dir [3]float64) error {
	d := math.Vec3{X: dir[0], Y: dir[1], Z: dir[2]}.Normalize()
	c := sh.EvalDir(d)

	if out.Format == config.FormatYAML {
		return writeYAML(w, basisDoc{
			Direction: []float64{d.X, d.Y, d.Z},
			Values:    c[:],
		})
	}

	for i, v := range c {
		fmt.Fprintf(w, "%d %s\n", i, formatFloat(v, out.Precision))
	}
	return nil
}

func writeMatrix(w io.Writer, flat []float64, n, prec int) {
	for r := 0; r < n; r++ {
		fmt.Fprint(w, " ")
		for c := 0; c < n; c++ {
			fmt.Fprintf(w, " %s", formatFloat(flat[r*n+c], prec))
		}
		fmt.Fprintln(w)
	}
}

// formatFloat prints v with prec decimals. Values that round to zero are
// printed without a sign.
func formatFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s, "-0.") == "" {
		return s[1:]
	}
	return s
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func rows(flat []float64, n int) [][]float64 {
	out := make([][]float64, n)
	for r := range out {
		out[r] = append([]float64(nil), flat[r*n:(r+1)*n]...)
	}
	return out
}

// writeConfig saves cfg to path, or to the user config file when path is
// empty, and returns where it was written.
func writeConfig(cfg *config.Config, path string, force bool) (string, error) {
	if path == "" {
		path = config.UserPath()
	}
	if err := cfg.SaveTo(path, force); err != nil {
		return "", err
	}
	return path, nil
}
