package heatmap

import (
	"image/color"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
)

// Config holds the presentation knobs of Render. A nil *Config or any zero
// field takes the value from DefaultConfig.
type Config struct {
	// NewColorMap builds the color map of each render, Bone by default.
	NewColorMap func() palette.ColorMap
	// Colors is the number of palette steps of the image, 256.
	Colors int
	// NaNColor fills cells that are NaN or infinite, light red.
	NaNColor color.Color

	// GridColor and GridWidth style the cell grid, black 1pt.
	GridColor color.Color
	GridWidth vg.Length
	// EdgeColor and EdgeWidth style the outer left and right edges,
	// white 1pt.
	EdgeColor color.Color
	EdgeWidth vg.Length
	// SeparatorColor overrides the group color of group separators.
	SeparatorColor color.Color
	// SeparatorWidth is 1.5pt.
	SeparatorWidth vg.Length
	// BracketWidth styles the group brackets, 4pt.
	BracketWidth vg.Length

	// LabelFontSize is the group label size, 18pt.
	LabelFontSize vg.Length
	// TickFontSize is the row label and colorbar size, 11pt.
	TickFontSize vg.Length

	// ColumnLabels is optional, one per column.
	ColumnLabels []string
	Title        string
}

// DefaultConfig returns the defaults.
func DefaultConfig() *Config {
	return &Config{
		NewColorMap:    Bone,
		Colors:         256,
		NaNColor:       color.RGBA{R: 0xff, G: 0xcc, B: 0xcc, A: 0xff},
		GridColor:      color.Black,
		GridWidth:      vg.Points(1),
		EdgeColor:      color.White,
		EdgeWidth:      vg.Points(1),
		SeparatorWidth: vg.Points(1.5),
		BracketWidth:   vg.Points(4),
		LabelFontSize:  vg.Points(18),
		TickFontSize:   vg.Points(11),
	}
}

// resolve fills zero fields of cfg from DefaultConfig.
func (cfg *Config) resolve() *Config {
	var d = DefaultConfig()
	if cfg == nil {
		return d
	}
	var c = *cfg
	if c.NewColorMap == nil {
		c.NewColorMap = d.NewColorMap
	}
	if c.Colors < 2 {
		c.Colors = d.Colors
	}
	if c.NaNColor == nil {
		c.NaNColor = d.NaNColor
	}
	if c.GridColor == nil {
		c.GridColor = d.GridColor
	}
	if c.GridWidth == 0 {
		c.GridWidth = d.GridWidth
	}
	if c.EdgeColor == nil {
		c.EdgeColor = d.EdgeColor
	}
	if c.EdgeWidth == 0 {
		c.EdgeWidth = d.EdgeWidth
	}
	if c.SeparatorWidth == 0 {
		c.SeparatorWidth = d.SeparatorWidth
	}
	if c.BracketWidth == 0 {
		c.BracketWidth = d.BracketWidth
	}
	if c.LabelFontSize == 0 {
		c.LabelFontSize = d.LabelFontSize
	}
	if c.TickFontSize == 0 {
		c.TickFontSize = d.TickFontSize
	}
	return &c
}

// Bone is a black to white ramp with a blue tint, after matplotlib "bone".
func Bone() palette.ColorMap {
	return simpleUtil.HandleError(moreland.NewLuminance([]color.Color{
		color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		color.NRGBA{R: 0x54, G: 0x54, B: 0x74, A: 0xff},
		color.NRGBA{R: 0xa7, G: 0xc7, B: 0xc7, A: 0xff},
		color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}))
}
