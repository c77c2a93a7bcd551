package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
	"github.com/xuri/excelize/v2"
)

// ExtractNamedRanges returns the workbook's defined names that refer to a
// single cell range. Built-in names such as print areas are skipped.
func ExtractNamedRanges(f *excelize.File) (map[string]models.CellRange, error) {
	result := make(map[string]models.CellRange)

	for _, dn := range f.GetDefinedName() {
		if strings.HasPrefix(strings.ToLower(dn.Name), "_xlnm.") {
			continue
		}
		// Names referring to several areas or to formulas are not ranges
		if strings.Contains(dn.RefersTo, ",") {
			continue
		}
		r, err := ParseRange(dn.RefersTo)
		if err != nil {
			continue
		}
		result[dn.Name] = r
	}

	return result, nil
}

// ParseRange parses a range reference such as 'Sheet 1'!$A$1:$D$10,
// Sheet1!B2 or A1:C3.
func ParseRange(ref string) (models.CellRange, error) {
	var r models.CellRange
	rangeStr := strings.TrimPrefix(strings.TrimSpace(ref), "=")

	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		sheet := rangeStr[:idx]
		if len(sheet) >= 2 && strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") {
			sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
		}
		r.Sheet = sheet
		rangeStr = rangeStr[idx+1:]
	}

	rangeStr = strings.ReplaceAll(rangeStr, "$", "")
	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 || parts[0] == "" {
		return r, fmt.Errorf("invalid range reference %q", ref)
	}

	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return r, fmt.Errorf("invalid range reference %q: %w", ref, err)
	}
	c2, r2 := c1, r1
	if len(parts) == 2 {
		if c2, r2, err = excelize.CellNameToCoordinates(parts[1]); err != nil {
			return r, fmt.Errorf("invalid range reference %q: %w", ref, err)
		}
	}

	r.R1, r.R2 = min(r1, r2), max(r1, r2)
	r.C1, r.C2 = min(c1, c2), max(c1, c2)
	return r, nil
}

// FormatRange renders r as an absolute reference, quoting the sheet name.
func FormatRange(r models.CellRange) string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1, true)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2, true)

	ref := start
	if end != start {
		ref += ":" + end
	}
	if r.Sheet != "" {
		ref = "'" + strings.ReplaceAll(r.Sheet, "'", "''") + "'!" + ref
	}
	return ref
}

// ReadRangeValues returns the raw values of the cells in r, row by row.
// sheet is used when r names no sheet.
func ReadRangeValues(f *excelize.File, sheet string, r models.CellRange) ([]string, error) {
	if r.Sheet != "" {
		sheet = r.Sheet
	}

	values := make([]string, 0, r.Rows()*r.Cols())
	for row := r.R1; row <= r.R2; row++ {
		for col := r.C1; col <= r.C2; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}

	return values, nil
}
