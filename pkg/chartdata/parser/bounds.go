package parser

import (
	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
	"github.com/xuri/excelize/v2"
)

// DetectionParams bounds how sparse a sheet's data region may be.
type DetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

func DefaultDetectionParams() DetectionParams {
	return DetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 2,
	}
}

// DetectDataRange returns the A1 range holding the data of a sheet, such as
// "A1:D10", or "" when the sheet is empty or too sparse to hold a series.
func DetectDataRange(f *excelize.File, sheetName string, params DetectionParams) (string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", err
	}

	r, ok := detectRegion(rows, params)
	if !ok {
		return "", nil
	}
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return start + ":" + end, nil
}

// detectRegion returns the 1-based bounding box of the non-empty cells.
func detectRegion(rows [][]string, params DetectionParams) (models.CellRange, bool) {
	var r models.CellRange
	filled := 0
	for i, row := range rows {
		for j, cell := range row {
			if cell == "" {
				continue
			}
			rowNum, colNum := i+1, j+1
			if filled == 0 {
				r = models.CellRange{R1: rowNum, C1: colNum, R2: rowNum, C2: colNum}
			}
			r.R1, r.R2 = min(r.R1, rowNum), max(r.R2, rowNum)
			r.C1, r.C2 = min(r.C1, colNum), max(r.C2, colNum)
			filled++
		}
	}

	if filled == 0 || filled < params.MinNonemptyCells {
		return models.CellRange{}, false
	}
	area := (r.R2 - r.R1 + 1) * (r.C2 - r.C1 + 1)
	if float64(filled)/float64(area) < params.DensityMin {
		return models.CellRange{}, false
	}
	return r, true
}
