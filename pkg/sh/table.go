package sh

import (
	"bufio"
	"fmt"
	"io"
	gomath "math"
	"os"
	"strconv"
	"strings"
)

// Channels is the number of color channels in a precompute table.
const Channels = 3

// Table holds precomputed SH lighting: one row per coefficient, one column
// per color channel (R, G, B).
type Table [NumCoeffs][Channels]float64

// NewTable validates rows and copies them into a Table. rows must be exactly
// NumCoeffs rows of Channels finite values.
func NewTable(rows [][]float64) (Table, error) {
	var t Table
	if len(rows) != NumCoeffs {
		return Table{}, fmt.Errorf("%w: got %d rows, want %d", ErrMalformedPrecomputeTable, len(rows), NumCoeffs)
	}
	for i, row := range rows {
		if len(row) != Channels {
			return Table{}, fmt.Errorf("%w: row %d has %d values, want %d", ErrMalformedPrecomputeTable, i, len(row), Channels)
		}
		for j, v := range row {
			if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
				return Table{}, fmt.Errorf("%w: row %d value %d is %v", ErrMalformedPrecomputeTable, i, j, v)
			}
		}
		copy(t[i][:], row)
	}
	return t, nil
}

// Channel returns the nine coefficients of channel i.
func (t Table) Channel(i int) Coeffs {
	var c Coeffs
	for k := range t {
		c[k] = t[k][i]
	}
	return c
}

// Rows returns the table as a slice of rows.
func (t Table) Rows() [][]float64 {
	rows := make([][]float64, NumCoeffs)
	for i := range t {
		rows[i] = []float64{t[i][0], t[i][1], t[i][2]}
	}
	return rows
}

// ParseTable reads a precompute table in the light.txt format: one line per
// coefficient with three whitespace-separated channel values. Blank lines
// and lines starting with '#' are skipped.
func ParseTable(r io.Reader) (Table, error) {
	var rows [][]float64

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		row := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Table{}, fmt.Errorf("%w: line %d: %w", ErrMalformedPrecomputeTable, lineNo, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return Table{}, fmt.Errorf("reading precompute table: %w", err)
	}

	return NewTable(rows)
}

// LoadTable reads a precompute table from a file.
func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	t, err := ParseTable(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
