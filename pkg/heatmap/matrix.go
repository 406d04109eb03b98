package heatmap

import (
	"fmt"
	"math"
)

// NotFound labels the placeholder rows drawn when a query matched nothing.
const NotFound = "not found"

// Matrix is a row-major grid of expression values. It keeps its column
// count so that a matrix without rows still knows its width.
type Matrix struct {
	cols int
	data [][]float64
}

// NewMatrix copies rows into a Matrix of cols columns. Every row must have
// exactly cols values.
func NewMatrix(cols int, rows [][]float64) (*Matrix, error) {
	if cols < 1 {
		return nil, &ConfigurationError{Columns: cols, Reason: "matrix needs at least one column"}
	}
	var m = &Matrix{cols: cols, data: make([][]float64, len(rows))}
	for i, row := range rows {
		if len(row) != cols {
			return nil, &ConfigurationError{
				Columns: cols,
				Reason:  fmt.Sprintf("row %d has %d values, want %d", i, len(row), cols),
			}
		}
		m.data[i] = append([]float64(nil), row...)
	}
	return m, nil
}

// Ones returns a rows×cols matrix filled with 1.
func Ones(rows, cols int) *Matrix {
	var m = &Matrix{cols: cols, data: make([][]float64, rows)}
	for i := range m.data {
		m.data[i] = make([]float64, cols)
		for j := range m.data[i] {
			m.data[i][j] = 1
		}
	}
	return m
}

// Placeholder is drawn instead of an empty query result: two rows of ones
// labelled NotFound.
func Placeholder(cols int) (*Matrix, []string) {
	return Ones(2, cols), []string{NotFound, NotFound}
}

func (m *Matrix) Rows() int {
	return len(m.data)
}

func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the value at row r, column c.
func (m *Matrix) At(r, c int) float64 {
	return m.data[r][c]
}

// Row returns a copy of row r.
func (m *Matrix) Row(r int) []float64 {
	return append([]float64(nil), m.data[r]...)
}

// Range returns the smallest and largest finite values. ok is false when
// the matrix holds no finite value.
func (m *Matrix) Range() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range m.data {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
			ok = true
		}
	}
	return
}

// NormalizeRows divides every row by its own maximum. Rows whose maximum is
// zero or negative are divided all the same: 0/0 gives NaN, x/0 gives ±Inf
// and a negative maximum flips signs.
func NormalizeRows(m *Matrix) *Matrix {
	var n = &Matrix{cols: m.cols, data: make([][]float64, len(m.data))}
	for i, row := range m.data {
		var max = math.Inf(-1)
		for _, v := range row {
			if v > max {
				max = v
			}
		}
		n.data[i] = make([]float64, len(row))
		for j, v := range row {
			n.data[i][j] = v / max
		}
	}
	return n
}

// grid adapts a Matrix to plotter.GridXYZ, column c at x = c and row r at
// y = r.
type grid struct {
	m        *Matrix
	min, max float64
}

func (g grid) Dims() (c, r int) {
	return g.m.Cols(), g.m.Rows()
}

func (g grid) Z(c, r int) float64 {
	return g.m.At(r, c)
}

func (g grid) X(c int) float64 {
	return float64(c)
}

func (g grid) Y(r int) float64 {
	return float64(r)
}

func (g grid) Min() float64 {
	return g.min
}

func (g grid) Max() float64 {
	return g.max
}

// strip is the one-row colorbar grid: n cells spanning min to max, each
// valued at its own center.
type strip struct {
	n        int
	min, max float64
}

func (s strip) Dims() (c, r int) {
	return s.n, 1
}

func (s strip) Z(c, _ int) float64 {
	return s.X(c)
}

func (s strip) X(c int) float64 {
	return s.min + (float64(c)+0.5)*(s.max-s.min)/float64(s.n)
}

func (s strip) Y(int) float64 {
	return 0
}

func (s strip) Min() float64 {
	return s.min
}

func (s strip) Max() float64 {
	return s.max
}
