package heatmap

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"
)

var (
	grey   = color.RGBA{R: 0x74, G: 0x74, B: 0x74, A: 0xff}
	purple = color.RGBA{R: 0xb5, G: 0x40, B: 0xb7, A: 0xff}
	blue   = color.RGBA{R: 0x46, G: 0x69, B: 0xf2, A: 0xff}
	green  = color.RGBA{R: 0x04, G: 0xcd, B: 0x22, A: 0xff}
	red    = color.RGBA{R: 0xcc, G: 0x2c, B: 0x2a, A: 0xff}
	yellow = color.RGBA{R: 0xcd, G: 0xcd, B: 0x04, A: 0xff}
)

func photoreceptors() Partition {
	return Partition{
		{N: 6, Color: grey, Label: "Rods"},
		{N: 5, Color: purple, Label: "UV"},
		{N: 6, Color: blue, Label: "S"},
		{N: 7, Color: green, Label: "M"},
		{N: 6, Color: red, Label: "L"},
	}
}

func rodsNotRods() Partition {
	return Partition{
		{N: 4, Color: grey, Label: "Rods"},
		{N: 4, Color: yellow, Label: "notRods"},
	}
}

func ramp(rows, cols int) [][]float64 {
	var data = make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
		for j := range data[i] {
			data[i][j] = float64(i*cols + j)
		}
	}
	return data
}

func TestBoundaries(t *testing.T) {
	var b = Boundaries(photoreceptors())
	var want = []int{0, 6, 11, 17, 24, 30}
	if !reflect.DeepEqual(b, want) {
		t.Errorf("Boundaries() = %v; want %v", b, want)
	}
	if got := SeparatorX(b, 2); got != 16.5 {
		t.Errorf("SeparatorX(2) = %v; want 16.5", got)
	}

	for _, p := range []Partition{photoreceptors(), rodsNotRods(), {{N: 1}}, {{N: 1}, {N: 1}, {N: 1}}} {
		var b = Boundaries(p)
		if b[0] != 0 || b[len(b)-1] != p.Sum() {
			t.Errorf("Boundaries(%v) = %v", p, b)
		}
	}
}

func TestLabelX(t *testing.T) {
	var b = Boundaries(rodsNotRods())
	if got := LabelX(b, 0); got != 1.5 {
		t.Errorf("LabelX(0) = %v; want 1.5", got)
	}
	if got := LabelX(b, 1); got != 5.5 {
		t.Errorf("LabelX(1) = %v; want 5.5", got)
	}
}

func TestPartition_Validate(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		if err := photoreceptors().Validate(30); err != nil {
			t.Errorf("Expected no error, but got: %v", err)
		}
	})

	t.Run("short by one", func(t *testing.T) {
		var err = photoreceptors().Validate(31)
		var ce *ConfigurationError
		if !errors.As(err, &ce) {
			t.Fatalf("Expected *ConfigurationError, but got: %v", err)
		}
		if ce.Sum != 30 || ce.Columns != 31 {
			t.Errorf("ConfigurationError = %+v", ce)
		}
		if !errors.Is(err, ErrConfiguration) {
			t.Error("errors.Is(err, ErrConfiguration) = false")
		}
	})

	t.Run("empty group", func(t *testing.T) {
		if err := (Partition{{N: 0}, {N: 2}}).Validate(2); !errors.Is(err, ErrConfiguration) {
			t.Errorf("Expected a configuration error, but got: %v", err)
		}
	})

	t.Run("no groups", func(t *testing.T) {
		if err := (Partition{}).Validate(2); !errors.Is(err, ErrConfiguration) {
			t.Errorf("Expected a configuration error, but got: %v", err)
		}
	})
}

func TestNewMatrix(t *testing.T) {
	if _, err := NewMatrix(3, [][]float64{{1, 2, 3}, {1, 2}}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("ragged rows: got %v", err)
	}
	if _, err := NewMatrix(0, nil); !errors.Is(err, ErrConfiguration) {
		t.Errorf("zero columns: got %v", err)
	}

	var src = [][]float64{{1, 2}}
	m, err := NewMatrix(2, src)
	if err != nil {
		t.Fatal(err)
	}
	src[0][0] = 9
	if m.At(0, 0) != 1 {
		t.Error("NewMatrix did not copy its input")
	}
}

func TestNormalizeRows(t *testing.T) {
	m, err := NewMatrix(3, [][]float64{{2, 4, 8}, {1, 1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	var n = NormalizeRows(m)
	if got, want := n.Row(0), []float64{0.25, 0.5, 1.0}; !reflect.DeepEqual(got, want) {
		t.Errorf("row 0 = %v; want %v", got, want)
	}
	if got, want := n.Row(1), []float64{0.5, 0.5, 1.0}; !reflect.DeepEqual(got, want) {
		t.Errorf("row 1 = %v; want %v", got, want)
	}

	var twice = NormalizeRows(n)
	for r := 0; r < n.Rows(); r++ {
		if !reflect.DeepEqual(twice.Row(r), n.Row(r)) {
			t.Errorf("normalizing twice changed row %d: %v != %v", r, twice.Row(r), n.Row(r))
		}
	}
	if !reflect.DeepEqual(m.Row(0), []float64{2, 4, 8}) {
		t.Error("NormalizeRows modified its input")
	}
}

func TestNormalizeRows_NonPositiveMax(t *testing.T) {
	m, err := NewMatrix(2, [][]float64{{0, 0}, {-1, -2}})
	if err != nil {
		t.Fatal(err)
	}
	var n = NormalizeRows(m)
	if !math.IsNaN(n.At(0, 0)) || !math.IsNaN(n.At(0, 1)) {
		t.Errorf("zero row = %v; want NaN", n.Row(0))
	}
	if got, want := n.Row(1), []float64{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("negative row = %v; want %v", got, want)
	}
}

func TestRender(t *testing.T) {
	m, err := NewMatrix(30, ramp(3, 30))
	if err != nil {
		t.Fatal(err)
	}
	chart, err := Render(m, []string{"rho", "opn1sw1", "gnat2"}, photoreceptors(), "FPKM", false, nil)
	if err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}

	if chart.Plot == nil || chart.Image == nil || chart.ColorBar == nil || chart.Bar == nil {
		t.Fatal("Render returned a chart without handles")
	}
	if chart.ColorbarLabel != "FPKM" {
		t.Errorf("ColorbarLabel = %q", chart.ColorbarLabel)
	}
	if got, want := len(chart.Grid), (3+1)+(30+1); got != want {
		t.Errorf("len(Grid) = %d; want %d", got, want)
	}
	if chart.Grid[0].Y0 != -0.5 || chart.Grid[3].Y0 != 2.5 {
		t.Errorf("horizontal grid = %+v .. %+v", chart.Grid[0], chart.Grid[3])
	}

	var wantEdges = []Segment{
		{X0: -0.5, Y0: -0.5, X1: -0.5, Y1: 2.5, Color: color.White},
		{X0: 29.5, Y0: -0.5, X1: 29.5, Y1: 2.5, Color: color.White},
	}
	if !reflect.DeepEqual(chart.Edges, wantEdges) {
		t.Errorf("Edges = %+v; want %+v", chart.Edges, wantEdges)
	}

	var sep = chart.Separators[2]
	if sep.X0 != 16.5 || sep.X1 != 16.5 || sep.Color != blue {
		t.Errorf("third separator = %+v", sep)
	}

	if got := len(chart.Brackets); got != 10 {
		t.Fatalf("len(Brackets) = %d; want 10", got)
	}
	var top, bottom = chart.Brackets[4], chart.Brackets[5]
	if top.X0 != 10.5 || top.X1 != 16.5 || top.Y0 != -0.5 || top.Y1 != -0.5 || top.Color != blue {
		t.Errorf("top bracket of S = %+v", top)
	}
	if bottom.Y0 != 2.5 || bottom.Y1 != 2.5 {
		t.Errorf("bottom bracket of S = %+v", bottom)
	}

	var label = chart.Labels[4]
	if label.Text != "L" || label.X != 26.5 || label.Y != -1 || label.Color != red {
		t.Errorf("label of L = %+v", label)
	}
	if chart.Image.Min != 0 || chart.Image.Max != 89 {
		t.Errorf("image range = [%v, %v]; want [0, 89]", chart.Image.Min, chart.Image.Max)
	}
}

func TestRender_SharedConfig(t *testing.T) {
	var cfg = DefaultConfig()
	a, err := NewMatrix(8, [][]float64{{0, 1, 2, 3, 4, 5, 6, 7}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewMatrix(8, [][]float64{{100, 200, 300, 400, 500, 600, 700, 1000}})
	if err != nil {
		t.Fatal(err)
	}
	first, err := Render(a, []string{"a"}, rodsNotRods(), "cpm", false, cfg)
	if err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}
	second, err := Render(b, []string{"b"}, rodsNotRods(), "cpm", false, cfg)
	if err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}

	for _, tt := range []struct {
		name     string
		chart    *Chart
		min, max float64
	}{
		{"first", first, 0, 7},
		{"second", second, 100, 1000},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if tt.chart.Bar.Min != tt.min || tt.chart.Bar.Max != tt.max {
				t.Errorf("colorbar range = [%v, %v]; want [%v, %v]", tt.chart.Bar.Min, tt.chart.Bar.Max, tt.min, tt.max)
			}
			if tt.chart.ColorBar.X.Min != tt.min || tt.chart.ColorBar.X.Max != tt.max {
				t.Errorf("colorbar axis = [%v, %v]; want [%v, %v]", tt.chart.ColorBar.X.Min, tt.chart.ColorBar.X.Max, tt.min, tt.max)
			}
			if tt.chart.Image.Min != tt.min || tt.chart.Image.Max != tt.max {
				t.Errorf("image range = [%v, %v]; want [%v, %v]", tt.chart.Image.Min, tt.chart.Image.Max, tt.min, tt.max)
			}
		})
	}
}

func TestRender_SeparatorColor(t *testing.T) {
	var cfg = &Config{SeparatorColor: color.White}
	m, err := NewMatrix(8, ramp(1, 8))
	if err != nil {
		t.Fatal(err)
	}
	chart, err := Render(m, []string{"rho"}, rodsNotRods(), "cpm", false, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range chart.Separators {
		if s.Color != color.White {
			t.Errorf("separator color = %v; want white", s.Color)
		}
	}
	if chart.Brackets[0].Color != grey {
		t.Errorf("bracket color = %v; want group color", chart.Brackets[0].Color)
	}
}

func TestRender_Normalize(t *testing.T) {
	m, err := NewMatrix(8, ramp(2, 8))
	if err != nil {
		t.Fatal(err)
	}
	chart, err := Render(m, []string{"a", "b"}, rodsNotRods(), "cpm", true, nil)
	if err != nil {
		t.Fatal(err)
	}
	if chart.ColorbarLabel != "norm. cpm" {
		t.Errorf("ColorbarLabel = %q; want %q", chart.ColorbarLabel, "norm. cpm")
	}
	if got := chart.Matrix.At(1, 7); got != 1 {
		t.Errorf("row max after normalization = %v; want 1", got)
	}
}

func TestRender_Placeholder(t *testing.T) {
	for _, cols := range []int{1, 8, 30} {
		var groups = Partition{{N: cols, Color: grey, Label: "all"}}
		m, err := NewMatrix(cols, nil)
		if err != nil {
			t.Fatal(err)
		}
		chart, err := Render(m, nil, groups, "FPKM", false, nil)
		if err != nil {
			t.Fatalf("C=%d: Expected no error, but got: %v", cols, err)
		}
		if chart.Matrix.Rows() != 2 || chart.Matrix.Cols() != cols {
			t.Errorf("C=%d: placeholder is %dx%d", cols, chart.Matrix.Rows(), chart.Matrix.Cols())
		}
		for r := 0; r < 2; r++ {
			for c := 0; c < cols; c++ {
				if chart.Matrix.At(r, c) != 1 {
					t.Errorf("C=%d: placeholder[%d][%d] = %v", cols, r, c, chart.Matrix.At(r, c))
				}
			}
		}
		if !reflect.DeepEqual(chart.RowLabels, []string{NotFound, NotFound}) {
			t.Errorf("C=%d: RowLabels = %v", cols, chart.RowLabels)
		}
		var path = filepath.Join(t.TempDir(), "placeholder.png")
		if err := chart.Save(4*vg.Inch, 3*vg.Inch, path); err != nil {
			t.Errorf("C=%d: Save: %v", cols, err)
		}
	}
}

func TestRender_ConfigurationError(t *testing.T) {
	m, err := NewMatrix(30, ramp(2, 30))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("counts sum to C-1", func(t *testing.T) {
		var groups = photoreceptors()
		groups[4].N = 5
		chart, err := Render(m, []string{"a", "b"}, groups, "FPKM", false, nil)
		if chart != nil {
			t.Error("Expected no chart")
		}
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("Expected a configuration error, but got: %v", err)
		}
	})

	t.Run("row labels", func(t *testing.T) {
		if _, err := Render(m, []string{"a"}, photoreceptors(), "FPKM", false, nil); !errors.Is(err, ErrConfiguration) {
			t.Errorf("Expected a configuration error, but got: %v", err)
		}
	})

	t.Run("column labels", func(t *testing.T) {
		var cfg = &Config{ColumnLabels: []string{"x"}}
		if _, err := Render(m, []string{"a", "b"}, photoreceptors(), "FPKM", false, cfg); !errors.Is(err, ErrConfiguration) {
			t.Errorf("Expected a configuration error, but got: %v", err)
		}
	})

	t.Run("nil matrix", func(t *testing.T) {
		if _, err := Render(nil, nil, photoreceptors(), "FPKM", false, nil); !errors.Is(err, ErrConfiguration) {
			t.Errorf("Expected a configuration error, but got: %v", err)
		}
	})
}

func TestChart_Save(t *testing.T) {
	m, err := NewMatrix(8, [][]float64{{0, 0, 0, 0, 0, 0, 0, 0}, {1, 2, 3, 4, 5, 6, 7, 8}})
	if err != nil {
		t.Fatal(err)
	}
	chart, err := Render(m, []string{"zero", "ramp"}, rodsNotRods(), "cpm", true, nil)
	if err != nil {
		t.Fatal(err)
	}
	var dir = t.TempDir()
	for _, name := range []string{
		"heatmap.png", "heatmap.svg", "heatmap.pdf", "heatmap.eps", "heatmap.jpg", "heatmap.tiff",
	} {
		var path = filepath.Join(dir, name)
		if err := chart.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
			t.Errorf("Save(%s): %v", name, err)
			continue
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Errorf("Save(%s) wrote nothing", name)
		}
	}
	if err := chart.Save(6*vg.Inch, 4*vg.Inch, filepath.Join(dir, "heatmap.xyz")); err == nil {
		t.Error("Expected an error for an unknown format, but got nil")
	}
}

func TestColumnNames(t *testing.T) {
	var groups = Partition{{N: 2, Label: "Rods"}, {N: 1, Label: "UV"}}
	var want = []string{"Rods1", "Rods2", "UV"}
	if got := ColumnNames(groups); !reflect.DeepEqual(got, want) {
		t.Errorf("ColumnNames() = %v; want %v", got, want)
	}
}

func TestChart_WriteHTML(t *testing.T) {
	m, err := NewMatrix(8, ramp(2, 8))
	if err != nil {
		t.Fatal(err)
	}
	chart, err := Render(m, []string{"rho", "gnat1"}, rodsNotRods(), "cpm", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := chart.WriteHTML(&buf); err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}
	var out = buf.String()
	for _, s := range []string{"notRods4", "gnat1", "heatmap"} {
		if !strings.Contains(out, s) {
			t.Errorf("HTML output lacks %q", s)
		}
	}
}
