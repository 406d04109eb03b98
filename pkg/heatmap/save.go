package heatmap

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

const (
	// ColorBarHeight is the share of the figure height given to the colorbar.
	ColorBarHeight = 0.12
	// ColorBarShrink is the share of the figure width spanned by the colorbar.
	ColorBarShrink = 0.75
)

// Draw lays the heatmap out above the colorbar on dc.
func (chart *Chart) Draw(dc draw.Canvas) {
	var (
		w    = dc.Max.X - dc.Min.X
		h    = dc.Max.Y - dc.Min.Y
		barH = h * ColorBarHeight
		side = w * (1 - ColorBarShrink) / 2
	)
	chart.Plot.Draw(draw.Crop(dc, 0, 0, barH, 0))
	chart.ColorBar.Draw(draw.Crop(dc, side, -side, 0, barH-h))
}

// WriterTo renders the chart in format (png, svg, pdf, eps, jpg, tiff).
func (chart *Chart) WriterTo(w, h vg.Length, format string) (io.WriterTo, error) {
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, err
	}
	chart.Draw(draw.New(c))
	return c, nil
}

// Save writes the chart to path, the format following its extension.
func (chart *Chart) Save(w, h vg.Length, path string) (err error) {
	var format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	wt, err := chart.WriterTo(w, h, format)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	_, err = wt.WriteTo(f)
	return err
}
