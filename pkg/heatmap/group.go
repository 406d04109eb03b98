package heatmap

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrConfiguration is matched by every *ConfigurationError.
var ErrConfiguration = errors.New("heatmap: configuration error")

// ConfigurationError reports inputs that cannot be drawn consistently, most
// often a partition whose counts do not cover the matrix columns.
type ConfigurationError struct {
	Columns int
	Sum     int
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("heatmap: %s", e.Reason)
	}
	return fmt.Sprintf("heatmap: group counts sum to %d, matrix has %d columns", e.Sum, e.Columns)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// Group is a contiguous run of columns sharing one category.
type Group struct {
	N     int
	Color color.Color
	Label string
}

// Partition splits the matrix columns left to right into groups.
type Partition []Group

// Sum returns the number of columns covered by p.
func (p Partition) Sum() int {
	var sum = 0
	for _, g := range p {
		sum += g.N
	}
	return sum
}

// Validate checks that p covers exactly cols columns with non-empty groups.
func (p Partition) Validate(cols int) error {
	if len(p) == 0 {
		return &ConfigurationError{Columns: cols, Reason: "empty group partition"}
	}
	for i, g := range p {
		if g.N < 1 {
			return &ConfigurationError{
				Columns: cols,
				Sum:     p.Sum(),
				Reason:  fmt.Sprintf("group %d (%s) has %d columns", i, g.Label, g.N),
			}
		}
	}
	if sum := p.Sum(); sum != cols {
		return &ConfigurationError{Columns: cols, Sum: sum}
	}
	return nil
}

// Boundaries returns the cumulative column offsets of p: b[0] = 0,
// b[i+1] = b[i] + p[i].N, so b[len(p)] is the column count.
func Boundaries(p Partition) []int {
	var b = make([]int, len(p)+1)
	for i, g := range p {
		b[i+1] = b[i] + g.N
	}
	return b
}

// SeparatorX is the x coordinate of the line closing group i.
func SeparatorX(b []int, i int) float64 {
	return float64(b[i+1]) - 0.5
}

// LabelX is the x coordinate of the centre of group i.
func LabelX(b []int, i int) float64 {
	return float64(b[i]+b[i+1])/2 - 0.5
}
