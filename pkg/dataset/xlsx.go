package dataset

import (
	"math"

	"github.com/xuri/excelize/v2"

	"RNAseqPlot/pkg/heatmap"
)

// SetRow writes value starting at (col, row), both 1-based.
func SetRow(xlsx *excelize.File, sheet string, col, row int, value []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return xlsx.SetSheetRow(sheet, cell, &value)
}

// MatrixFile lays m out on sheet: a header row of "symbol" and colLabels,
// then one row per gene. Cells that are not finite stay empty.
func MatrixFile(sheet string, rowLabels, colLabels []string, m *heatmap.Matrix) (*excelize.File, error) {
	var xlsx = excelize.NewFile()
	if sheet != "Sheet1" {
		if err := xlsx.SetSheetName("Sheet1", sheet); err != nil {
			return nil, err
		}
	}
	var header = []interface{}{SymbolColumn}
	for _, label := range colLabels {
		header = append(header, label)
	}
	if err := SetRow(xlsx, sheet, 1, 1, header); err != nil {
		return nil, err
	}
	for r := 0; r < m.Rows(); r++ {
		var line = make([]interface{}, 1, m.Cols()+1)
		if r < len(rowLabels) {
			line[0] = rowLabels[r]
		}
		for _, v := range m.Row(r) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				line = append(line, nil)
			} else {
				line = append(line, v)
			}
		}
		if err := SetRow(xlsx, sheet, 1, r+2, line); err != nil {
			return nil, err
		}
	}
	if err := xlsx.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return nil, err
	}
	return xlsx, nil
}

// WriteXlsx saves the plotted matrix to path.
func WriteXlsx(path, sheet string, rowLabels, colLabels []string, m *heatmap.Matrix) error {
	xlsx, err := MatrixFile(sheet, rowLabels, colLabels, m)
	if err != nil {
		return err
	}
	defer xlsx.Close()
	return xlsx.SaveAs(path)
}
