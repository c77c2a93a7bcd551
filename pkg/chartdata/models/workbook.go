package models

// CellRange is a block of cells, optionally on a named sheet. Rows and
// columns are 1-based and inclusive.
type CellRange struct {
	Sheet string `json:"sheet,omitempty"`
	R1    int    `json:"r1"`
	C1    int    `json:"c1"`
	R2    int    `json:"r2"`
	C2    int    `json:"c2"`
}

// Rows returns the number of rows covered.
func (r CellRange) Rows() int { return r.R2 - r.R1 + 1 }

// Cols returns the number of columns covered.
func (r CellRange) Cols() int { return r.C2 - r.C1 + 1 }

// SheetData represents the chart-related content of one sheet.
type SheetData struct {
	// DataRange is the detected data region (e.g., "A1:D10").
	DataRange string `json:"data_range,omitempty"`
	// Charts contains embedded charts found on the sheet.
	Charts []ChartRef `json:"charts,omitempty"`
	// Resolved holds the data of Charts, in the same order.
	Resolved []ChartDoc `json:"resolved,omitempty"`
}

// WorkbookData represents workbook-level container with per-sheet data.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to SheetData.
	Sheets map[string]SheetData `json:"sheets"`
	// Ranges maps defined names to the ranges they refer to.
	Ranges map[string]CellRange `json:"ranges,omitempty"`
}
