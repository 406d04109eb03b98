package dataset

import (
	"RNAseqPlot/pkg/barplot"
	"RNAseqPlot/pkg/palette"
)

// variant names
const (
	Angueyra2021   = "Angueyra2021"
	Ogawa2021      = "Ogawa2021"
	Hoang2020      = "Hoang2020"
	Hoang2020Ret   = "Hoang2020Ret"
	Hoang2020PRDev = "Hoang2020PRDev"
	Sun2018        = "Sun2018"
	Nerli2022      = "Nerli2022"
)

var (
	avgCounts = Units{Heatmap: "avg.", Bar: "avg. counts"}
	pctExpr   = Units{Heatmap: "%", Bar: "% expressing"}
)

// span returns n consecutive positions starting at from.
func span(from float64, n int) []float64 {
	var xs = make([]float64, n)
	for i := range xs {
		xs[i] = from + float64(i)
	}
	return xs
}

func concat(parts ...[]float64) []float64 {
	var xs []float64
	for _, p := range parts {
		xs = append(xs, p...)
	}
	return xs
}

// singles gives every category its own one-column group.
func singles(cs []palette.Category, labels []string) []GroupSpec {
	var groups = make([]GroupSpec, len(cs))
	for i, c := range cs {
		groups[i] = GroupSpec{N: 1, Category: c, Label: labels[i]}
	}
	return groups
}

func init() {
	register(&Dataset{
		Name:   Angueyra2021,
		Source: "Angueyra et al. 2021, bulk RNA-seq of zebrafish photoreceptor subtypes",
		Start:  7,
		End:    37,
		Unit:   Units{Heatmap: "FPKM", Bar: "FPKM"},
		Groups: []GroupSpec{
			{6, palette.Rods, "Rods"},
			{5, palette.UV, "UV"},
			{6, palette.S, "S"},
			{7, palette.M, "M"},
			{6, palette.L, "L"},
		},
		Positions: concat(span(1, 6), span(8, 5), span(14, 6), span(21, 7), span(29, 6)),
		Ticks:     barplot.Ticks([]float64{3.5, 10, 16.5, 24, 31.5}, []string{"Rods", "UV", "S", "M", "L"}),
		Palette:   palette.Photoreceptor,
	})

	var ogawa = []string{"Rods", "UV", "S", "M", "L", "M4", "BC on", "BC off"}
	register(&Dataset{
		Name:      Ogawa2021,
		Source:    "Ogawa et al. 2021, single-cell RNA-seq of zebrafish photoreceptors and bipolar cells",
		Start:     2,
		End:       10,
		PctOffset: 9,
		Unit:      avgCounts,
		Pct:       pctExpr,
		Groups: singles(
			[]palette.Category{palette.Rods, palette.UV, palette.S, palette.M, palette.L, palette.M4, palette.OnBC, palette.OffBC},
			ogawa,
		),
		Positions: span(1, 8),
		Ticks:     barplot.Ticks(span(1, 8), ogawa),
		Palette:   palette.Photoreceptor,
	})

	register(&Dataset{
		Name:      Hoang2020,
		Source:    "Hoang et al. 2020, photoreceptor clusters of the zebrafish retina atlas",
		Start:     2,
		End:       9,
		PctOffset: 8,
		Unit:      avgCounts,
		Pct:       pctExpr,
		Groups: singles(
			[]palette.Category{palette.Rods, palette.UV, palette.S, palette.M, palette.M, palette.M4, palette.L},
			[]string{"Rods", "UV", "S", "M", "M3", "M4", "L"},
		),
		Positions: span(1, 7),
		Ticks:     barplot.Ticks(span(1, 7), []string{"Rods", "UV", "S", "M1", "M3", "M4", "L"}),
		Palette:   palette.Photoreceptor,
	})

	var retina = []string{
		"RPC", "PRPC", "C larval", "C adult", "Rods", "HC", "BC larval", "BC adult",
		"AC larval", "AC GABA", "AC Gly", "RGC larval", "RGC adult", "MGi", "MG1", "MG2", "MG3",
	}
	register(&Dataset{
		Name:      Hoang2020Ret,
		Source:    "Hoang et al. 2020, zebrafish retina atlas",
		Start:     2,
		End:       19,
		PctOffset: 19,
		Unit:      avgCounts,
		Pct:       pctExpr,
		Groups: singles(
			[]palette.Category{
				palette.RPC, palette.PRPC, palette.ConesLarval, palette.ConesAdult, palette.RodsAdult,
				palette.HC, palette.BCLarval, palette.BCAdult, palette.ACLarval, palette.ACGaba,
				palette.ACGly, palette.RGCLarval, palette.RGCAdult, palette.MGi, palette.MG1,
				palette.MG2, palette.MG3,
			},
			retina,
		),
		Positions: span(1, 17),
		Ticks:     barplot.Ticks(span(1, 17), retina),
		Palette:   palette.Retina,
	})

	var prDev = []string{
		"PRPC", "PR early", "PR mid", "PR late", "PR adult", "Rod late",
		"Rod adult", "UV adult", "S adult", "M adult", "L adult",
	}
	register(&Dataset{
		Name:   Hoang2020PRDev,
		Source: "Hoang et al. 2020, photoreceptor development trajectory",
		Start:  14,
		End:    25,
		Unit:   avgCounts,
		Groups: singles(
			[]palette.Category{
				palette.PRP, palette.EslPR, palette.MslPR, palette.LslPR, palette.AdPR, palette.LslR,
				palette.Rods, palette.UV, palette.S, palette.M, palette.L,
			},
			prDev,
		),
		Positions: span(1, 11),
		Ticks:     barplot.Ticks(span(1, 11), prDev),
		Palette:   palette.PRDev,
	})

	register(&Dataset{
		Name:   Sun2018,
		Source: "Sun, Galicia & Stenkamp 2018, sorted GFP+ rods against GFP- retina",
		Start:  7,
		End:    15,
		Unit:   Units{Heatmap: "cpm", Bar: "cpm"},
		Groups: []GroupSpec{
			{4, palette.Rods, "Rods"},
			{4, palette.M4, "notRods"},
		},
		Positions: concat(span(1, 4), span(6, 4)),
		Ticks:     barplot.Ticks([]float64{2.5, 7.5}, []string{"Rods", "notRods"}),
		Palette:   palette.Photoreceptor,
	})

	register(&Dataset{
		Name:   Nerli2022,
		Source: "Nerli et al. 2022, zebrafish retinal lineages",
		Start:  1,
		End:    21,
		Unit:   Units{Heatmap: "counts (norm.)", Bar: "counts (norm.)"},
		Groups: []GroupSpec{
			{5, palette.RPC, "RPC"},
			{5, palette.PR, "Photo"},
			{5, palette.HCAC, "HC/AC"},
			{5, palette.RGC, "RGC"},
		},
		Positions: concat(span(0, 5), span(5.5, 5), span(11, 5), span(16.5, 5)),
		Ticks:     barplot.Ticks([]float64{2, 7.5, 13, 18.5}, []string{"RPC", "Photo", "HC/AC", "RGC"}),
		Palette:   palette.Nerli,
	})
}
