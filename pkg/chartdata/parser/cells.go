package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
	"github.com/xuri/excelize/v2"
)

// ColumnParams controls how a worksheet region is read into data sets.
type ColumnParams struct {
	// Layout is the arrangement of the region.
	Layout models.Layout
	// HeaderRows is the number of leading rows holding labels. Only the last one is used.
	HeaderRows int
	// Range restricts reading to a region such as "B2:E20". Empty means the detected data region.
	Range string
	// Kind is the data set kind for the columns layout (line, bar, scatter, radar).
	Kind string
}

// DefaultColumnParams returns params for a line chart laid out in columns with one header row.
func DefaultColumnParams() ColumnParams {
	return ColumnParams{
		Layout:     models.LayoutColumns,
		HeaderRows: 1,
		Kind:       "line",
	}
}

// grid is a rectangular region of raw cell values.
type grid struct {
	header []string
	rows   [][]string
}

func (g grid) label(col int, fallback string) string {
	if col < len(g.header) && strings.TrimSpace(g.header[col]) != "" {
		return strings.TrimSpace(g.header[col])
	}
	return fallback
}

func (g grid) cols() int {
	n := len(g.header)
	for _, row := range g.rows {
		n = max(n, len(row))
	}
	return n
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

// ReadSeries reads the data sets laid out on a sheet.
func ReadSeries(f *excelize.File, sheetName string, params ColumnParams) ([]models.DataSetDoc, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	g, err := regionOf(rows, params)
	if err != nil {
		return nil, err
	}

	switch params.Layout {
	case models.LayoutColumns, "":
		return readColumns(g, params.Kind)
	case models.LayoutStacked:
		return readStacked(g, sheetName), nil
	case models.LayoutOHLC:
		return readOHLC(g, sheetName)
	case models.LayoutBubble:
		return readBubble(g)
	case models.LayoutPie:
		return readPie(g, sheetName)
	}
	return nil, fmt.Errorf("unknown layout %q", params.Layout)
}

// regionOf cuts the requested region out of rows and splits off the header.
func regionOf(rows [][]string, params ColumnParams) (grid, error) {
	var r models.CellRange
	if params.Range != "" {
		var err error
		if r, err = ParseRange(params.Range); err != nil {
			return grid{}, err
		}
	} else {
		var ok bool
		if r, ok = detectRegion(rows, DetectionParams{}); !ok {
			return grid{}, nil
		}
	}

	var region [][]string
	for rowIdx := r.R1 - 1; rowIdx < r.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cut := make([]string, 0, r.Cols())
		for colIdx := r.C1 - 1; colIdx < r.C2; colIdx++ {
			cut = append(cut, cellAt(row, colIdx))
		}
		region = append(region, cut)
	}

	var g grid
	if params.HeaderRows > 0 && len(region) > 0 {
		n := min(params.HeaderRows, len(region))
		g.header = region[n-1]
		region = region[n:]
	}
	g.rows = region
	return g, nil
}

// parseNumber parses a raw cell value as a number.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// xValue returns the x of a data row. Text in the x column falls back to
// the row index and becomes the entry label.
func xValue(cell string, index int) (float64, string) {
	if v, ok := parseNumber(cell); ok {
		return v, ""
	}
	return float64(index), strings.TrimSpace(cell)
}

func readColumns(g grid, kind string) ([]models.DataSetDoc, error) {
	if kind == "" {
		kind = "line"
	}
	switch kind {
	case "candle", "bubble", "pie":
		return nil, fmt.Errorf("layout %q cannot hold %s data sets", models.LayoutColumns, kind)
	}

	var sets []models.DataSetDoc
	for col := 1; col < g.cols(); col++ {
		set := models.DataSetDoc{
			Label:   g.label(col, fmt.Sprintf("Series %d", col)),
			Kind:    kind,
			Entries: []models.EntryDoc{},
		}
		for i, row := range g.rows {
			y, ok := parseNumber(cellAt(row, col))
			if !ok {
				continue
			}
			x, label := xValue(cellAt(row, 0), i)
			set.Entries = append(set.Entries, models.EntryDoc{X: x, Y: &y, Label: label})
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func readStacked(g grid, sheetName string) []models.DataSetDoc {
	set := models.DataSetDoc{
		Label:   g.label(0, sheetName),
		Kind:    "bar",
		Entries: []models.EntryDoc{},
	}
	segments := g.cols() - 1
	for col := 1; col <= segments; col++ {
		set.StackLabels = append(set.StackLabels, g.label(col, fmt.Sprintf("Stack %d", col)))
	}

	for i, row := range g.rows {
		values := make([]float64, segments)
		found := false
		var sum float64
		for col := 1; col <= segments; col++ {
			if v, ok := parseNumber(cellAt(row, col)); ok {
				values[col-1] = v
				sum += v
				found = true
			}
		}
		if !found {
			continue
		}
		x, label := xValue(cellAt(row, 0), i)
		set.Entries = append(set.Entries, models.EntryDoc{X: x, Y: &sum, YValues: values, Label: label})
	}
	return []models.DataSetDoc{set}
}

func readOHLC(g grid, sheetName string) ([]models.DataSetDoc, error) {
	if g.cols() < 5 && len(g.rows) > 0 {
		return nil, fmt.Errorf("layout %q needs 5 columns (x, open, high, low, close), got %d", models.LayoutOHLC, g.cols())
	}
	set := models.DataSetDoc{
		Label:   sheetName,
		Kind:    "candle",
		Entries: []models.EntryDoc{},
	}
	for i, row := range g.rows {
		var prices [4]float64
		complete := true
		for col := 1; col <= 4; col++ {
			v, ok := parseNumber(cellAt(row, col))
			if !ok {
				complete = false
				break
			}
			prices[col-1] = v
		}
		if !complete {
			continue
		}
		x, label := xValue(cellAt(row, 0), i)
		open, high, low, closing := prices[0], prices[1], prices[2], prices[3]
		y := (high + low) / 2
		set.Entries = append(set.Entries, models.EntryDoc{
			X:     x,
			Y:     &y,
			OHLC:  &models.OHLCDoc{High: high, Low: low, Open: open, Close: closing},
			Label: label,
		})
	}
	return []models.DataSetDoc{set}, nil
}

func readBubble(g grid) ([]models.DataSetDoc, error) {
	if g.cols() > 0 && (g.cols()-1)%2 != 0 {
		return nil, fmt.Errorf("layout %q needs x followed by (y, size) column pairs, got %d columns", models.LayoutBubble, g.cols())
	}

	var sets []models.DataSetDoc
	for col := 1; col+1 < g.cols(); col += 2 {
		set := models.DataSetDoc{
			Label:   g.label(col, fmt.Sprintf("Series %d", col/2+1)),
			Kind:    "bubble",
			Entries: []models.EntryDoc{},
		}
		for i, row := range g.rows {
			y, ok := parseNumber(cellAt(row, col))
			if !ok {
				continue
			}
			size, ok := parseNumber(cellAt(row, col+1))
			if !ok {
				continue
			}
			x, label := xValue(cellAt(row, 0), i)
			set.Entries = append(set.Entries, models.EntryDoc{X: x, Y: &y, Size: &size, Label: label})
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func readPie(g grid, sheetName string) ([]models.DataSetDoc, error) {
	if g.cols() < 2 && len(g.rows) > 0 {
		return nil, fmt.Errorf("layout %q needs a label and a value column", models.LayoutPie)
	}
	set := models.DataSetDoc{
		Label:   g.label(1, sheetName),
		Kind:    "pie",
		Entries: []models.EntryDoc{},
	}
	for _, row := range g.rows {
		v, ok := parseNumber(cellAt(row, 1))
		if !ok {
			continue
		}
		set.Entries = append(set.Entries, models.EntryDoc{
			X:     float64(len(set.Entries)),
			Y:     &v,
			Label: strings.TrimSpace(cellAt(row, 0)),
		})
	}
	return []models.DataSetDoc{set}, nil
}
