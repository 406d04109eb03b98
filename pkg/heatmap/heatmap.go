// Package heatmap draws expression matrices as image heatmaps whose columns
// are split into colored, labelled groups of samples.
package heatmap

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// NormPrefix is put in front of the colorbar label of normalized charts.
const NormPrefix = "norm. "

// Segment is a straight line in data coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Color          color.Color
}

// Label is a group label in data coordinates.
type Label struct {
	X, Y  float64
	Text  string
	Color color.Color
}

// Chart is a rendered heatmap. Plot carries the image and the group
// annotations, ColorBar the horizontal legend drawn by Bar; both may be
// customised before saving.
type Chart struct {
	Plot     *plot.Plot
	Image    *plotter.HeatMap
	ColorBar *plot.Plot
	Bar      *plotter.HeatMap

	// Matrix and RowLabels are the values drawn, after placeholder
	// substitution and normalization.
	Matrix        *Matrix
	RowLabels     []string
	Groups        Partition
	ColorbarLabel string

	Boundaries []int
	Grid       []Segment
	Edges      []Segment
	Separators []Segment
	Brackets   []Segment
	Labels     []Label
}

// Render draws m with one row label per row and its columns split by
// groups. The colorbar reads colorbarLabel, prefixed with NormPrefix when
// normalize is set, in which case every row is divided by its maximum.
//
// A matrix without rows is replaced by Placeholder. Render returns a
// *ConfigurationError when groups do not cover the columns of m or the
// labels do not match its rows.
func Render(m *Matrix, rowLabels []string, groups Partition, colorbarLabel string, normalize bool, cfg *Config) (*Chart, error) {
	if m == nil {
		return nil, &ConfigurationError{Reason: "nil matrix"}
	}
	var c = cfg.resolve()
	if err := groups.Validate(m.Cols()); err != nil {
		return nil, err
	}
	if m.Rows() == 0 {
		m, rowLabels = Placeholder(m.Cols())
	} else if len(rowLabels) != m.Rows() {
		return nil, &ConfigurationError{
			Columns: m.Cols(),
			Reason:  fmt.Sprintf("%d row labels for %d rows", len(rowLabels), m.Rows()),
		}
	}
	if len(c.ColumnLabels) != 0 && len(c.ColumnLabels) != m.Cols() {
		return nil, &ConfigurationError{
			Columns: m.Cols(),
			Reason:  fmt.Sprintf("%d column labels for %d columns", len(c.ColumnLabels), m.Cols()),
		}
	}
	if normalize {
		m = NormalizeRows(m)
		colorbarLabel = NormPrefix + colorbarLabel
	}

	var chart = &Chart{
		Matrix:        m,
		RowLabels:     append([]string(nil), rowLabels...),
		Groups:        groups,
		ColorbarLabel: colorbarLabel,
	}
	chart.layout(c)
	if err := chart.draw(c); err != nil {
		return nil, err
	}
	return chart, nil
}

// layout computes the grid, edges, separators, brackets and labels.
func (chart *Chart) layout(c *Config) {
	var (
		rows = float64(chart.Matrix.Rows())
		cols = float64(chart.Matrix.Cols())
		b    = Boundaries(chart.Groups)
	)
	chart.Boundaries = b

	for h := -0.5; h <= rows-0.5; h++ {
		chart.Grid = append(chart.Grid, Segment{X0: -0.5, Y0: h, X1: cols - 0.5, Y1: h, Color: c.GridColor})
	}
	for v := -0.5; v <= cols-0.5; v++ {
		chart.Grid = append(chart.Grid, Segment{X0: v, Y0: -0.5, X1: v, Y1: rows - 0.5, Color: c.GridColor})
	}

	chart.Edges = []Segment{
		{X0: -0.5, Y0: -0.5, X1: -0.5, Y1: rows - 0.5, Color: c.EdgeColor},
		{X0: cols - 0.5, Y0: -0.5, X1: cols - 0.5, Y1: rows - 0.5, Color: c.EdgeColor},
	}

	for i, g := range chart.Groups {
		var (
			left  = float64(b[i]) - 0.5
			right = SeparatorX(b, i)
			gc    = groupColor(g)
			sep   = gc
		)
		if c.SeparatorColor != nil {
			sep = c.SeparatorColor
		}
		chart.Separators = append(chart.Separators, Segment{X0: right, Y0: -0.5, X1: right, Y1: rows - 0.5, Color: sep})
		chart.Brackets = append(chart.Brackets,
			Segment{X0: left, Y0: -0.5, X1: right, Y1: -0.5, Color: gc},
			Segment{X0: left, Y0: rows - 0.5, X1: right, Y1: rows - 0.5, Color: gc},
		)
		chart.Labels = append(chart.Labels, Label{X: LabelX(b, i), Y: -1, Text: g.Label, Color: gc})
	}
}

func groupColor(g Group) color.Color {
	if g.Color == nil {
		return color.Black
	}
	return g.Color
}

func (chart *Chart) draw(c *Config) error {
	var (
		m = chart.Matrix
		p = plot.New()
	)
	p.Title.Text = c.Title
	p.X.Padding, p.Y.Padding = 0, 0
	p.X.LineStyle.Width, p.Y.LineStyle.Width = 0, 0
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Y.Tick.Label.Font.Size = c.TickFontSize
	p.X.Tick.Label.Font.Size = c.TickFontSize

	var rowTicks = make(plot.ConstantTicks, len(chart.RowLabels))
	for i, label := range chart.RowLabels {
		rowTicks[i] = plot.Tick{Value: float64(i), Label: label}
	}
	p.Y.Tick.Marker = rowTicks
	var colTicks = make(plot.ConstantTicks, len(c.ColumnLabels))
	for i, label := range c.ColumnLabels {
		colTicks[i] = plot.Tick{Value: float64(i), Label: label}
	}
	p.X.Tick.Marker = colTicks

	var lo, hi, ok = m.Range()
	if !ok {
		lo, hi = 0, 1
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	var cm = c.NewColorMap()
	cm.SetMin(lo)
	cm.SetMax(hi)
	var pal = cm.Palette(c.Colors)

	var hm = plotter.NewHeatMap(grid{m: m, min: lo, max: hi}, pal)
	hm.NaN, hm.Underflow, hm.Overflow = c.NaNColor, c.NaNColor, c.NaNColor
	p.Add(hm)

	for _, set := range []struct {
		segments []Segment
		width    vg.Length
	}{
		{chart.Grid, c.GridWidth},
		{chart.Edges, c.EdgeWidth},
		{chart.Separators, c.SeparatorWidth},
		{chart.Brackets, c.BracketWidth},
	} {
		for _, s := range set.segments {
			line, err := plotter.NewLine(plotter.XYs{{X: s.X0, Y: s.Y0}, {X: s.X1, Y: s.Y1}})
			if err != nil {
				return err
			}
			line.Color = s.Color
			line.Width = set.width
			p.Add(line)
		}
	}

	var xyl = plotter.XYLabels{XYs: make(plotter.XYs, len(chart.Labels)), Labels: make([]string, len(chart.Labels))}
	for i, l := range chart.Labels {
		xyl.XYs[i] = plotter.XY{X: l.X, Y: l.Y}
		xyl.Labels[i] = l.Text
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return err
	}
	for i, l := range chart.Labels {
		labels.TextStyle[i].Color = l.Color
		labels.TextStyle[i].Font.Size = c.LabelFontSize
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
	}
	p.Add(labels)

	var (
		bar = plotter.NewHeatMap(strip{n: c.Colors, min: lo, max: hi}, pal)
		cb  = plot.New()
	)
	cb.Add(bar)
	cb.HideY()
	cb.X.Min, cb.X.Max = lo, hi
	cb.X.Padding = 0
	cb.X.Label.Text = chart.ColorbarLabel
	cb.X.Label.TextStyle.Font.Size = c.TickFontSize
	cb.X.Tick.Label.Font.Size = c.TickFontSize

	chart.Plot, chart.Image = p, hm
	chart.ColorBar, chart.Bar = cb, bar
	return nil
}
