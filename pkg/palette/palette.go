package palette

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/lucasb-eyer/go-colorful"
)

// Category is a cell type or cell class that carries a display color.
type Category string

// photoreceptors and bipolar cells
const (
	Rods  Category = "r"
	UV    Category = "u"
	S     Category = "s"
	M     Category = "m"
	L     Category = "l"
	M4    Category = "m4"
	OnBC  Category = "onBC"
	OffBC Category = "offBC"
)

// whole retina, Hoang et al. 2020
const (
	RPC         Category = "RPC"
	PRPC        Category = "PRPC"
	ConesLarval Category = "Cones_larval"
	ConesAdult  Category = "Cones_adult"
	RodsAdult   Category = "Rods"
	HC          Category = "HC"
	BCLarval    Category = "BC_larval"
	BCAdult     Category = "BC_adult"
	ACLarval    Category = "AC_larval"
	ACGaba      Category = "ACgaba"
	ACGly       Category = "ACgly"
	RGCLarval   Category = "RGC_larval"
	RGCAdult    Category = "RGC_adult"
	MGi         Category = "MGi"
	MG1         Category = "MG1"
	MG2         Category = "MG2"
	MG3         Category = "MG3"
)

// photoreceptor development, Hoang et al. 2020
const (
	PRP   Category = "PRP"
	EslPR Category = "eslPR"
	MslPR Category = "mslPR"
	LslPR Category = "lslPR"
	AdPR  Category = "adPR"
	LslR  Category = "lslR"
)

// Nerli et al. 2022
const (
	PR   Category = "PR"
	HCAC Category = "HC_AC"
	RGC  Category = "RGC"
)

// Unknown is returned by Get for categories missing from a Palette.
var Unknown color.Color = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// Palette maps categories to display colors.
type Palette map[Category]color.Color

// Get returns the color of c, or Unknown.
func (p Palette) Get(c Category) color.Color {
	if v, ok := p[c]; ok && v != nil {
		return v
	}
	return Unknown
}

// Colors resolves a list of categories in order.
func (p Palette) Colors(cs ...Category) []color.Color {
	var colors = make([]color.Color, len(cs))
	for i, c := range cs {
		colors[i] = p.Get(c)
	}
	return colors
}

// Merge returns a new Palette holding p overlaid with other.
func (p Palette) Merge(other Palette) Palette {
	var merged = make(Palette, len(p)+len(other))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Hex parses #RRGGBB.
func Hex(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("palette: bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHex is Hex for literals, it panics on malformed input.
func MustHex(s string) color.Color {
	return simpleUtil.HandleError(Hex(s))
}

func fromHex(m map[Category]string) Palette {
	var p = make(Palette, len(m))
	for k, v := range m {
		p[k] = MustHex(v)
	}
	return p
}

// FromMapArray builds a Palette from rows with Category and Color keys, as
// produced by textUtil.File2MapArray or osUtil.FS2MapArray.
func FromMapArray(rows []map[string]string) (Palette, error) {
	var p = make(Palette, len(rows))
	for i, row := range rows {
		var name = strings.TrimSpace(row["Category"])
		if name == "" {
			return nil, fmt.Errorf("palette: row %d has no Category", i+1)
		}
		c, err := Hex(row["Color"])
		if err != nil {
			return nil, err
		}
		p[Category(name)] = c
	}
	return p, nil
}

// Load reads a tab separated file with a Category and a Color column.
func Load(path string) (Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var rows, _ = osUtil.FS2MapArray(f, "\t", nil)
	return FromMapArray(rows)
}
