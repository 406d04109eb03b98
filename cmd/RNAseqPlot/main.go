package main

import (
	"embed"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"
	"gonum.org/v1/plot/vg"

	"RNAseqPlot/pkg/dataset"
	"RNAseqPlot/pkg/heatmap"
	"RNAseqPlot/pkg/palette"
)

// os
var (
	ex, _  = os.Executable()
	exPath = filepath.Dir(ex)
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"expression table, .xlsx/.tsv/.tsv.gz",
	)
	name = flag.String(
		"d",
		dataset.Angueyra2021,
		"dataset variant, see -list",
	)
	genes = flag.String(
		"g",
		"",
		"genes to plot, comma separated",
	)
	geneList = flag.String(
		"gl",
		"",
		"gene list file, one symbol per line",
	)
	search = flag.String(
		"s",
		"",
		"gene family patterns, comma separated, matched as substrings",
	)
	prefix = flag.String(
		"o",
		"RNAseqPlot",
		"output prefix",
	)
	norm = flag.Bool(
		"norm",
		false,
		"normalize every gene by its maximum",
	)
	pct = flag.Bool(
		"pct",
		false,
		"plot percent expressing instead of average counts",
	)
	bar = flag.Bool(
		"bar",
		false,
		"also draw one bar chart per gene",
	)
	html = flag.Bool(
		"html",
		false,
		"also write an interactive html heatmap",
	)
	xlsx = flag.Bool(
		"xlsx",
		false,
		"also write the plotted matrix to xlsx",
	)
	format = flag.String(
		"fmt",
		"png",
		"image format: png, svg, pdf, eps, jpg, tiff",
	)
	width = flag.Float64(
		"W",
		10,
		"figure width in inches",
	)
	height = flag.Float64(
		"H",
		8,
		"figure height in inches",
	)
	paletteFile = flag.String(
		"palette",
		"",
		"palette overrides, tab separated with Dataset, Category and Color columns",
	)
	thread = flag.Int(
		"t",
		4,
		"bar charts drawn in parallel",
	)
	list = flag.Bool(
		"list",
		false,
		"list dataset variants and exit",
	)
)

// embed etc
//
//go:embed etc/*.txt
var etcEMFS embed.FS

func init() {
	PaletteRows, _ = osUtil.FS2MapArray(osUtil.OpenFS("etc/palette.txt", exPath, etcEMFS), "\t", nil)
}

func main() {
	flag.Parse()
	now := time.Now()

	if *list {
		ListDatasets(os.Stdout)
		return
	}
	if *input == "" {
		flag.Usage()
		log.Fatal("-i required")
	}
	if *genes == "" && *geneList == "" && *search == "" {
		flag.Usage()
		log.Fatal("one of -g, -gl or -s required")
	}
	if *thread < 1 {
		log.Fatalf("-t must be positive, got %d", *thread)
	}
	simpleUtil.CheckErr(os.MkdirAll(filepath.Dir(*prefix), 0755))

	var d = simpleUtil.HandleError(dataset.Lookup(*name))
	if _, _, err := d.Columns(*pct); err != nil {
		log.Fatal(err)
	}

	var rows = PaletteRows
	if *paletteFile != "" {
		var custom, _ = textUtil.File2MapArray(*paletteFile, "\t", nil)
		rows = append(rows, custom...)
	}
	var overrides = simpleUtil.HandleError(palette.FromMapArray(DatasetRows(rows, d.Name)))

	var table = simpleUtil.HandleError(dataset.LoadTable(*input))
	slog.Info("LoadTable", "input", *input, "genes", len(table.Rows))

	var symbols = SplitList(*genes)
	if *geneList != "" {
		symbols = append(symbols, textUtil.File2Array(*geneList)...)
	}
	var selected = SelectRows(table, symbols, SplitList(*search))
	slog.Info("SelectRows", "dataset", d.Name, "query", len(symbols), "found", len(selected.Rows))

	var (
		w   = vg.Length(*width) * vg.Inch
		h   = vg.Length(*height) * vg.Inch
		cfg = heatmap.DefaultConfig()
	)
	cfg.Title = d.Name
	var chart = simpleUtil.HandleError(d.Heatmap(selected, overrides, *pct, *norm, cfg))
	var out = OutputName(*prefix, d.Name, "heatmap", *format)
	simpleUtil.CheckErr(chart.Save(w, h, out))
	slog.Info("Heatmap", "output", out, "rows", chart.Matrix.Rows())

	if *html {
		WriteHTML(chart, OutputName(*prefix, d.Name, "heatmap", "html"))
	}
	if *xlsx {
		var path = OutputName(*prefix, d.Name, "heatmap", "xlsx")
		simpleUtil.CheckErr(
			dataset.WriteXlsx(path, d.Name, chart.RowLabels, heatmap.ColumnNames(chart.Groups), chart.Matrix),
		)
		slog.Info("WriteXlsx", "output", path)
	}
	if *bar {
		DrawBars(d, selected, overrides, w, h)
	}

	slog.Info("Done", "dataset", d.Name, "time", time.Since(now))
}

// SplitList splits a comma separated flag value, dropping blanks.
func SplitList(s string) (items []string) {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return
}
