package heatmap

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/plot/palette"
)

// ColumnNames names every column after its group: "Rods1", "Rods2", ...;
// groups of one column keep the bare label.
func ColumnNames(groups Partition) []string {
	var names []string
	for _, g := range groups {
		for j := 0; j < g.N; j++ {
			if g.N == 1 {
				names = append(names, g.Label)
			} else {
				names = append(names, fmt.Sprintf("%s%d", g.Label, j+1))
			}
		}
	}
	return names
}

// HTML builds an interactive echarts heatmap of the drawn matrix. Cells that
// are not finite are left out.
func (chart *Chart) HTML() *charts.HeatMap {
	var (
		m      = chart.Matrix
		hm     = charts.NewHeatMap()
		xaxis  = ColumnNames(chart.Groups)
		items  = make([]opts.HeatMapData, 0, m.Rows()*m.Cols())
		lo, hi = chart.Image.Min, chart.Image.Max
	)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			var v = m.At(r, c)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			items = append(items, opts.HeatMapData{Value: [3]interface{}{c, r, v}})
		}
	}

	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    chart.Plot.Title.Text,
			Subtitle: chart.ColorbarLabel,
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xaxis}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: chart.RowLabels, Inverse: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			InRange:    &opts.VisualMapInRange{Color: rampHex(chart.Image.Palette)},
		}),
	)
	hm.SetXAxis(xaxis).AddSeries(chart.ColorbarLabel, items)
	return hm
}

// WriteHTML renders HTML to w.
func (chart *Chart) WriteHTML(w io.Writer) error {
	return chart.HTML().Render(w)
}

// rampHex samples the image palette at a few stops for the visual map.
func rampHex(p palette.Palette) []string {
	var (
		colors = p.Colors()
		stops  = 5
		out    = make([]string, 0, stops)
	)
	if len(colors) == 0 {
		return nil
	}
	for i := 0; i < stops; i++ {
		var r, g, b, _ = colors[i*(len(colors)-1)/(stops-1)].RGBA()
		out = append(out, fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
	}
	return out
}
