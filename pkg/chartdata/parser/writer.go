package parser

import (
	"fmt"
	"slices"

	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
	"github.com/xuri/excelize/v2"
)

// columnChartTypes maps the kind of the first data set to the workbook
// chart type used for the columns layout.
var columnChartTypes = map[string]excelize.ChartType{
	"line":    excelize.Line,
	"bar":     excelize.Col,
	"scatter": excelize.Scatter,
	"radar":   excelize.Radar,
}

// LayoutFor picks the layout that can hold the data sets of doc.
func LayoutFor(doc models.ChartDoc) models.Layout {
	if len(doc.DataSets) == 0 {
		return models.LayoutColumns
	}
	first := doc.DataSets[0]
	switch first.Kind {
	case "candle":
		return models.LayoutOHLC
	case "pie":
		return models.LayoutPie
	case "bubble":
		return models.LayoutBubble
	case "bar":
		for _, e := range first.Entries {
			if len(e.YValues) > 0 {
				return models.LayoutStacked
			}
		}
	}
	return models.LayoutColumns
}

// WriteChart writes the data sets of doc to a sheet starting at A1, creating
// the sheet when needed. With addChart a native workbook chart over the
// written cells is placed to the right of the data.
func WriteChart(f *excelize.File, sheet string, doc models.ChartDoc, addChart bool) error {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	layout := LayoutFor(doc)
	switch layout {
	case models.LayoutStacked, models.LayoutOHLC, models.LayoutPie:
		if len(doc.DataSets) > 1 {
			return fmt.Errorf("layout %q holds one data set, got %d", layout, len(doc.DataSets))
		}
	}

	w := sheetWriter{f: f, sheet: sheet}
	var chart *excelize.Chart
	switch layout {
	case models.LayoutStacked:
		chart, err = w.writeStacked(doc.DataSets[0])
	case models.LayoutOHLC:
		chart, err = w.writeOHLC(doc.DataSets[0])
	case models.LayoutPie:
		chart, err = w.writePie(doc.DataSets[0])
	case models.LayoutBubble:
		chart, err = w.writeBubble(doc.DataSets)
	default:
		chart, err = w.writeColumns(doc.DataSets)
	}
	if err != nil || !addChart || chart == nil || len(chart.Series) == 0 {
		return err
	}

	if doc.Name != "" {
		chart.Title = []excelize.RichTextRun{{Text: doc.Name}}
	}
	cell, err := excelize.CoordinatesToCellName(w.cols+2, 1)
	if err != nil {
		return err
	}
	return f.AddChart(sheet, cell, chart)
}

// sheetWriter writes rows from A1 downwards and remembers the extent written.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	rows  int
	cols  int
}

func (w *sheetWriter) writeRow(values []any) error {
	w.rows++
	w.cols = max(w.cols, len(values))
	cell, err := excelize.CoordinatesToCellName(1, w.rows)
	if err != nil {
		return err
	}
	return w.f.SetSheetRow(w.sheet, cell, &values)
}

// ref returns an absolute reference to rows 2..w.rows of col, or the header cell when header is set.
func (w *sheetWriter) ref(col int, header bool) string {
	if header {
		return FormatRange(models.CellRange{Sheet: w.sheet, R1: 1, C1: col, R2: 1, C2: col})
	}
	return FormatRange(models.CellRange{Sheet: w.sheet, R1: 2, C1: col, R2: max(w.rows, 2), C2: col})
}

// unionX returns the distinct x values of sets in ascending order.
func unionX(sets []models.DataSetDoc) []float64 {
	var xs []float64
	for _, s := range sets {
		for _, e := range s.Entries {
			xs = append(xs, e.X)
		}
	}
	slices.Sort(xs)
	return slices.Compact(xs)
}

func entryAt(s models.DataSetDoc, x float64) *models.EntryDoc {
	for i := range s.Entries {
		if s.Entries[i].X == x {
			return &s.Entries[i]
		}
	}
	return nil
}

// xCell writes category text when an entry at x carries a label, otherwise the number.
func xCell(sets []models.DataSetDoc, x float64) any {
	for _, s := range sets {
		if e := entryAt(s, x); e != nil && e.Label != "" {
			return e.Label
		}
	}
	return x
}

func yCell(e *models.EntryDoc) any {
	if e == nil || e.Y == nil {
		return nil
	}
	return *e.Y
}

func (w *sheetWriter) writeColumns(sets []models.DataSetDoc) (*excelize.Chart, error) {
	header := []any{"x"}
	for _, s := range sets {
		header = append(header, s.Label)
	}
	if err := w.writeRow(header); err != nil {
		return nil, err
	}
	for _, x := range unionX(sets) {
		row := []any{xCell(sets, x)}
		for _, s := range sets {
			row = append(row, yCell(entryAt(s, x)))
		}
		if err := w.writeRow(row); err != nil {
			return nil, err
		}
	}

	if len(sets) == 0 {
		return nil, nil
	}
	chartType, ok := columnChartTypes[sets[0].Kind]
	if !ok {
		chartType = excelize.Line
	}
	chart := &excelize.Chart{Type: chartType}
	for i := range sets {
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       w.ref(i+2, true),
			Categories: w.ref(1, false),
			Values:     w.ref(i+2, false),
		})
	}
	return chart, nil
}

func (w *sheetWriter) writeStacked(set models.DataSetDoc) (*excelize.Chart, error) {
	segments := len(set.StackLabels)
	for _, e := range set.Entries {
		segments = max(segments, len(e.YValues))
	}

	header := []any{set.Label}
	for i := range segments {
		label := fmt.Sprintf("Stack %d", i+1)
		if i < len(set.StackLabels) && set.StackLabels[i] != "" {
			label = set.StackLabels[i]
		}
		header = append(header, label)
	}
	if err := w.writeRow(header); err != nil {
		return nil, err
	}

	for _, e := range set.Entries {
		row := []any{xCell([]models.DataSetDoc{set}, e.X)}
		for i := range segments {
			if i < len(e.YValues) {
				row = append(row, e.YValues[i])
			} else {
				row = append(row, nil)
			}
		}
		if err := w.writeRow(row); err != nil {
			return nil, err
		}
	}

	chart := &excelize.Chart{Type: excelize.ColStacked}
	for i := range segments {
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       w.ref(i+2, true),
			Categories: w.ref(1, false),
			Values:     w.ref(i+2, false),
		})
	}
	return chart, nil
}

func (w *sheetWriter) writeOHLC(set models.DataSetDoc) (*excelize.Chart, error) {
	if err := w.writeRow([]any{"x", "open", "high", "low", "close"}); err != nil {
		return nil, err
	}
	for _, e := range set.Entries {
		if e.OHLC == nil {
			continue
		}
		row := []any{xCell([]models.DataSetDoc{set}, e.X), e.OHLC.Open, e.OHLC.High, e.OHLC.Low, e.OHLC.Close}
		if err := w.writeRow(row); err != nil {
			return nil, err
		}
	}

	chart := &excelize.Chart{Type: excelize.StockOpenHighLowClose}
	for col := 2; col <= 5; col++ {
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       w.ref(col, true),
			Categories: w.ref(1, false),
			Values:     w.ref(col, false),
		})
	}
	return chart, nil
}

func (w *sheetWriter) writeBubble(sets []models.DataSetDoc) (*excelize.Chart, error) {
	header := []any{"x"}
	for _, s := range sets {
		header = append(header, s.Label, s.Label+" size")
	}
	if err := w.writeRow(header); err != nil {
		return nil, err
	}
	for _, x := range unionX(sets) {
		row := []any{xCell(sets, x)}
		for _, s := range sets {
			e := entryAt(s, x)
			var size any
			if e != nil && e.Size != nil {
				size = *e.Size
			}
			row = append(row, yCell(e), size)
		}
		if err := w.writeRow(row); err != nil {
			return nil, err
		}
	}

	chart := &excelize.Chart{Type: excelize.Bubble}
	for i := range sets {
		col := 2 + 2*i
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       w.ref(col, true),
			Categories: w.ref(1, false),
			Values:     w.ref(col, false),
			Sizes:      w.ref(col+1, false),
		})
	}
	return chart, nil
}

func (w *sheetWriter) writePie(set models.DataSetDoc) (*excelize.Chart, error) {
	if err := w.writeRow([]any{"label", set.Label}); err != nil {
		return nil, err
	}
	for i, e := range set.Entries {
		label := e.Label
		if label == "" {
			label = fmt.Sprintf("Slice %d", i+1)
		}
		if err := w.writeRow([]any{label, yCell(&e)}); err != nil {
			return nil, err
		}
	}

	chart := &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       w.ref(2, true),
			Categories: w.ref(1, false),
			Values:     w.ref(2, false),
		}},
	}
	return chart, nil
}
