// Package dataset knows the column layout of each published expression table
// and turns queried rows into grouped heatmaps and bar charts.
package dataset

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/plot"

	"RNAseqPlot/pkg/barplot"
	"RNAseqPlot/pkg/heatmap"
	"RNAseqPlot/pkg/palette"
)

var (
	// ErrUnknown is returned by Lookup for unregistered variants.
	ErrUnknown = errors.New("dataset: unknown variant")
	// ErrNoPct is returned when percent-expressing columns are asked of a
	// variant that has none.
	ErrNoPct = errors.New("dataset: no percent-expressing columns")
	// ErrGeneNotFound is returned by Bars when the symbol is not in the table.
	ErrGeneNotFound = errors.New("dataset: gene not found")
)

// GroupSpec is one colored group of sample columns.
type GroupSpec struct {
	N        int
	Category palette.Category
	Label    string
}

// Units label the colorbar and the bar chart y axis.
type Units struct {
	Heatmap string
	Bar     string
}

// Dataset describes the value columns of one expression table variant.
// Columns are zero-based and half-open, counting the symbol column.
type Dataset struct {
	Name   string
	Source string

	Start, End int
	// PctOffset shifts Start and End to the percent-expressing block; zero
	// when the variant has none.
	PctOffset int

	Unit Units
	Pct  Units

	Groups []GroupSpec

	// Positions holds one x position per value column, Ticks the group
	// labels under the bars.
	Positions []float64
	Ticks     []plot.Tick

	Palette func() palette.Palette
}

// Columns returns the value column range, or the percent-expressing range
// when pct is set.
func (d *Dataset) Columns(pct bool) (start, end int, err error) {
	if !pct {
		return d.Start, d.End, nil
	}
	if d.PctOffset == 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrNoPct, d.Name)
	}
	return d.Start + d.PctOffset, d.End + d.PctOffset, nil
}

// Units returns the labels matching pct.
func (d *Dataset) Units(pct bool) Units {
	if pct {
		return d.Pct
	}
	return d.Unit
}

// Width is the number of value columns.
func (d *Dataset) Width() int {
	return d.End - d.Start
}

// Partition resolves the groups against d's default palette overlaid with
// overrides.
func (d *Dataset) Partition(overrides palette.Palette) heatmap.Partition {
	var (
		pal    = palette.Palette{}
		groups = make(heatmap.Partition, len(d.Groups))
	)
	if d.Palette != nil {
		pal = d.Palette()
	}
	pal = pal.Merge(overrides)
	for i, g := range d.Groups {
		groups[i] = heatmap.Group{N: g.N, Color: pal.Get(g.Category), Label: g.Label}
	}
	return groups
}

// ColumnColors gives every value column the color of its group.
func (d *Dataset) ColumnColors(overrides palette.Palette) []color.Color {
	var colors []color.Color
	for _, g := range d.Partition(overrides) {
		for j := 0; j < g.N; j++ {
			colors = append(colors, g.Color)
		}
	}
	return colors
}

// Extract reads the value columns of every row of t. Empty cells and "NA"
// become NaN.
func (d *Dataset) Extract(t *Table, pct bool) (*heatmap.Matrix, []string, error) {
	start, end, err := d.Columns(pct)
	if err != nil {
		return nil, nil, err
	}
	if len(t.Header) < end {
		return nil, nil, fmt.Errorf("dataset: %s needs %d columns, table has %d", d.Name, end, len(t.Header))
	}
	var (
		labels = t.Symbols()
		rows   = make([][]float64, len(t.Rows))
	)
	for i, row := range t.Rows {
		rows[i] = make([]float64, end-start)
		for j := start; j < end; j++ {
			v, err := parseValue(row[j])
			if err != nil {
				return nil, nil, fmt.Errorf("dataset: %s row %d column %q: %w", labels[i], i+1, t.Header[j], err)
			}
			rows[i][j-start] = v
		}
	}
	m, err := heatmap.NewMatrix(end-start, rows)
	if err != nil {
		return nil, nil, err
	}
	return m, labels, nil
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "", "NA", "NAN":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// Heatmap renders the rows of t as a grouped heatmap.
func (d *Dataset) Heatmap(t *Table, overrides palette.Palette, pct, norm bool, cfg *heatmap.Config) (*heatmap.Chart, error) {
	m, labels, err := d.Extract(t, pct)
	if err != nil {
		return nil, err
	}
	return heatmap.Render(m, labels, d.Partition(overrides), d.Units(pct).Heatmap, norm, cfg)
}

// Bars renders the first row of t matching symbol as a bar chart titled
// with the symbol.
func (d *Dataset) Bars(t *Table, symbol string, overrides palette.Palette, pct bool) (*plot.Plot, error) {
	var hit = t.Query(symbol)
	if len(hit.Rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrGeneNotFound, symbol)
	}
	hit.Rows = hit.Rows[:1]
	m, _, err := d.Extract(hit, pct)
	if err != nil {
		return nil, err
	}
	return barplot.Render(m.Row(0), d.Positions, d.ColumnColors(overrides), d.Ticks, d.Units(pct).Bar, symbol)
}

var registry = make(map[string]*Dataset)

func register(d *Dataset) {
	registry[strings.ToLower(d.Name)] = d
}

// Lookup finds a variant by name, ignoring case. The result is a copy and
// may be adjusted freely.
func Lookup(name string) (*Dataset, error) {
	if d, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		var c = *d
		c.Groups = append([]GroupSpec(nil), d.Groups...)
		c.Positions = append([]float64(nil), d.Positions...)
		c.Ticks = append([]plot.Tick(nil), d.Ticks...)
		return &c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Names lists the registered variants.
func Names() []string {
	var names []string
	for _, d := range registry {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}
