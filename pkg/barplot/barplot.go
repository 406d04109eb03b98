// Package barplot draws the expression of one gene across samples as
// colored bars.
package barplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// Width is the bar width in data units.
const Width = 0.8

// font sizes shared by every bar chart
var (
	TickFontSize  = vg.Points(24)
	LabelFontSize = vg.Points(28)
	TitleFontSize = vg.Points(28)
)

// DefaultFonts applies the shared font sizes to p.
func DefaultFonts(p *plot.Plot) {
	p.X.Tick.Label.Font.Size = TickFontSize
	p.Y.Tick.Label.Font.Size = TickFontSize
	p.X.Label.TextStyle.Font.Size = LabelFontSize
	p.Y.Label.TextStyle.Font.Size = LabelFontSize
	p.Title.TextStyle.Font.Size = TitleFontSize
}

// Render draws one bar per value, centred on the matching position and
// filled with the matching color. ticks label the x axis. Values that are
// not finite leave a gap.
func Render(values, positions []float64, colors []color.Color, ticks []plot.Tick, ylabel, title string) (*plot.Plot, error) {
	if len(values) != len(positions) || len(values) != len(colors) {
		return nil, fmt.Errorf("barplot: %d values, %d positions, %d colors", len(values), len(positions), len(colors))
	}
	var p = plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel
	p.Y.Min = 0
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	DefaultFonts(p)

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		var (
			x0 = positions[i] - Width/2
			x1 = positions[i] + Width/2
		)
		bar, err := plotter.NewPolygon(plotter.XYs{{X: x0, Y: 0}, {X: x1, Y: 0}, {X: x1, Y: v}, {X: x0, Y: v}})
		if err != nil {
			return nil, err
		}
		bar.Color = colors[i]
		bar.LineStyle.Width = 0
		p.Add(bar)
	}
	for _, x := range positions {
		p.X.Min = math.Min(p.X.Min, x-Width/2)
		p.X.Max = math.Max(p.X.Max, x+Width/2)
	}
	// nothing finite to draw
	if p.Y.Max < p.Y.Min {
		p.Y.Max = 1
	}
	return p, nil
}

// Ticks pairs positions with labels.
func Ticks(positions []float64, labels []string) []plot.Tick {
	var ticks = make([]plot.Tick, 0, len(labels))
	for i, label := range labels {
		if i >= len(positions) {
			break
		}
		ticks = append(ticks, plot.Tick{Value: positions[i], Label: label})
	}
	return ticks
}
