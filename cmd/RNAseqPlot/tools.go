package main

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"gonum.org/v1/plot/vg"

	"RNAseqPlot/pkg/dataset"
	"RNAseqPlot/pkg/heatmap"
	"RNAseqPlot/pkg/palette"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ListDatasets prints one line per variant.
func ListDatasets(w io.Writer) {
	fmtUtil.FprintStringArray(w, []string{"name", "columns", "pct", "unit", "source"}, "\t")
	for _, name := range dataset.Names() {
		var d = simpleUtil.HandleError(dataset.Lookup(name))
		var pctCols = "-"
		if start, end, err := d.Columns(true); err == nil {
			pctCols = fmt.Sprintf("%d:%d", start, end)
		}
		fmtUtil.Fprintf(w, "%s\t%d:%d\t%s\t%s\t%s\n", d.Name, d.Start, d.End, pctCols, d.Unit.Bar, d.Source)
	}
}

// DatasetRows keeps the palette rows that apply to name: rows for that
// dataset and rows without a Dataset.
func DatasetRows(rows []map[string]string, name string) (kept []map[string]string) {
	for _, row := range rows {
		var target = strings.TrimSpace(row["Dataset"])
		if target == "" || strings.EqualFold(target, name) {
			kept = append(kept, row)
		}
	}
	return
}

// SelectRows queries symbols in the order given, then appends family search
// hits that are not already selected.
func SelectRows(table *dataset.Table, symbols, patterns []string) *dataset.Table {
	var selected = table.Query(symbols...)
	if len(patterns) == 0 {
		return selected
	}
	var seen = make(map[string]bool)
	for _, symbol := range selected.Symbols() {
		seen[strings.ToLower(symbol)] = true
	}
	var (
		hits       = table.Search(patterns...)
		hitSymbols = hits.Symbols()
	)
	for i, row := range hits.Rows {
		if !seen[strings.ToLower(hitSymbols[i])] {
			selected.Rows = append(selected.Rows, row)
		}
	}
	return selected
}

// OutputName joins prefix, dataset, kind and extension with dots.
func OutputName(prefix, name, kind, ext string) string {
	return strings.Join([]string{prefix, name, unsafeName.ReplaceAllString(kind, "_"), ext}, ".")
}

// WriteHTML writes the interactive heatmap to path.
func WriteHTML(chart *heatmap.Chart, path string) {
	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)
	simpleUtil.CheckErr(chart.WriteHTML(out))
	slog.Info("WriteHTML", "output", path)
}

// DrawBars saves one bar chart per selected gene, *thread at a time.
func DrawBars(d *dataset.Dataset, selected *dataset.Table, overrides palette.Palette, w, h vg.Length) {
	chanList = make(chan bool, *thread)
	var (
		wg   sync.WaitGroup
		seen = make(map[string]bool)
	)
	for _, symbol := range selected.Symbols() {
		if symbol == "" || seen[strings.ToLower(symbol)] {
			continue
		}
		seen[strings.ToLower(symbol)] = true

		chanList <- true
		wg.Add(1)
		go func(symbol string) {
			defer func() {
				wg.Done()
				<-chanList
			}()
			var p = simpleUtil.HandleError(d.Bars(selected, symbol, overrides, *pct))
			var out = OutputName(*prefix, d.Name, symbol+".bar", *format)
			simpleUtil.CheckErr(p.Save(w, h, out))
			slog.Info("Bars", "gene", symbol, "output", out)
		}(symbol)
	}
	wg.Wait()
}
