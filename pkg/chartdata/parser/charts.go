package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
	"github.com/xuri/excelize/v2"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// ChartKindMap maps OOXML chart element tags to data set kinds.
// Surface charts have no data set kind and are skipped.
var ChartKindMap = map[string]string{
	"lineChart":     "line",
	"line3DChart":   "line",
	"areaChart":     "line",
	"area3DChart":   "line",
	"barChart":      "bar",
	"bar3DChart":    "bar",
	"pieChart":      "pie",
	"pie3DChart":    "pie",
	"doughnutChart": "pie",
	"ofPieChart":    "pie",
	"scatterChart":  "scatter",
	"bubbleChart":   "bubble",
	"radarChart":    "radar",
	"stockChart":    "candle",
}

// chartInfo is a chart placed on a sheet, with its size in pixels.
type chartInfo struct {
	name      string
	chartPath string
	width     int
	height    int
}

// DiscoverCharts finds the charts embedded in an xlsx file, keyed by sheet name.
func DiscoverCharts(xlsxPath string) (map[string][]models.ChartRef, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	pkg := newOPCPackage(&r.Reader)
	placed, err := sheetCharts(pkg)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.ChartRef)
	for sheetName, infos := range placed {
		var charts []models.ChartRef
		for _, ci := range infos {
			chartXML, err := pkg.part(ci.chartPath)
			if err != nil || chartXML == nil {
				continue
			}
			if chart := parseChartXML(chartXML, ci.name, ci.width, ci.height); chart != nil {
				charts = append(charts, *chart)
			}
		}
		if len(charts) > 0 {
			result[sheetName] = charts
		}
	}

	return result, nil
}

// sheetCharts maps sheet names to the charts placed on their drawings.
// Sheets whose drawing cannot be read are skipped.
func sheetCharts(pkg *opcPackage) (map[string][]chartInfo, error) {
	sheets, err := pkg.sheetParts()
	if err != nil {
		return nil, err
	}

	result := make(map[string][]chartInfo)
	for sheetName, sheetPath := range sheets {
		drawings, err := pkg.rels(sheetPath, "drawing")
		if err != nil {
			continue
		}
		for _, drawing := range drawings {
			result[sheetName] = append(result[sheetName], drawingCharts(pkg, drawing)...)
		}
	}
	return result, nil
}

// drawingCharts resolves the chart frames of a drawing part to chart parts.
func drawingCharts(pkg *opcPackage, drawing string) []chartInfo {
	frames, err := pkg.chartFrames(drawing)
	if err != nil || len(frames) == 0 {
		return nil
	}
	targets, err := pkg.rels(drawing, "chart")
	if err != nil {
		return nil
	}

	var result []chartInfo
	for _, fr := range frames {
		target, ok := targets[fr.Chart.RID]
		if !ok {
			continue
		}
		result = append(result, chartInfo{
			name:      fr.Props.Name,
			chartPath: target,
			width:     int(fr.Ext.Cx / emuPerPixel),
			height:    int(fr.Ext.Cy / emuPerPixel),
		})
	}
	return result
}

// parseChartXML parses chart XML content.
func parseChartXML(data []byte, name string, width, height int) *models.ChartRef {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	chart := &models.ChartRef{Name: name, W: width, H: height}
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, chart)
		}
	}

	if chart.ChartType == "" {
		chart.ChartType = "unknown"
	}
	return chart
}

// parseChartElement parses c:chart element.
func parseChartElement(decoder *xml.Decoder, chart *models.ChartRef) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				chart.Title = parseChartTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, chart)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle parses chart title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var title strings.Builder
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					title.WriteString(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(title.String())
}

// parsePlotArea parses the chart groups of a plot area. A combined chart
// holds several groups; the first one names the chart type.
func parsePlotArea(decoder *xml.Decoder, chart *models.ChartRef) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			ct, ok := ChartTypeMap[t.Name.Local]
			if !ok {
				continue
			}
			grouping, series := parseChartGroup(decoder)
			depth--
			kind, supported := ChartKindMap[t.Name.Local]
			if !supported {
				continue
			}
			if chart.ChartType == "" {
				chart.ChartType = ct
				chart.Grouping = grouping
			}
			for _, s := range series {
				s.Kind = kind
				chart.Series = append(chart.Series, s)
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartGroup parses the grouping and series elements within a chart type.
func parseChartGroup(decoder *xml.Decoder) (string, []models.SeriesRef) {
	var grouping string
	var series []models.SeriesRef
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "grouping":
				grouping = attrValue(t, "val")
			case "ser":
				series = append(series, parseSingleSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return grouping, series
}

// parseSingleSeries parses a single series element.
func parseSingleSeries(decoder *xml.Decoder) models.SeriesRef {
	var s models.SeriesRef
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
				depth--
			case "cat", "xVal":
				s.XRange = parseSeriesRange(decoder)
				depth--
			case "val", "yVal":
				s.YRange = parseSeriesRange(decoder)
				depth--
			case "bubbleSize":
				s.SizeRange = parseSeriesRange(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseSeriesName parses series name from tx element.
func parseSeriesName(decoder *xml.Decoder) (name, nameRange string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRange = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					name = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSeriesRange parses the range reference of a cat, val, xVal, yVal or bubbleSize element.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && ref == "" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}

// ResolveChart reads the cells a chart refers to. Stock charts become one
// candle data set and stacked bar groupings one stacked bar data set; every
// other series becomes a data set of its own.
func ResolveChart(f *excelize.File, ref models.ChartRef) (models.ChartDoc, error) {
	doc := models.ChartDoc{Name: ref.Name, DataSets: []models.DataSetDoc{}}
	if len(ref.Series) == 0 {
		return doc, nil
	}

	first := ref.Series[0].Kind
	switch {
	case first == "candle":
		set, err := resolveStock(f, ref)
		if err != nil {
			return doc, err
		}
		doc.DataSets = append(doc.DataSets, set)
		return doc, nil
	case first == "bar" && strings.Contains(strings.ToLower(ref.Grouping), "stacked"):
		set, err := resolveStacked(f, ref)
		if err != nil {
			return doc, err
		}
		doc.DataSets = append(doc.DataSets, set)
		return doc, nil
	}

	for i, s := range ref.Series {
		set, err := resolveSeries(f, s, i)
		if err != nil {
			return doc, err
		}
		doc.DataSets = append(doc.DataSets, set)
	}
	return doc, nil
}

// readRef reads the values of a range reference; an empty reference reads nothing.
func readRef(f *excelize.File, ref string) ([]string, error) {
	if ref == "" {
		return nil, nil
	}
	r, err := ParseRange(ref)
	if err != nil {
		return nil, err
	}
	if r.Sheet == "" {
		return nil, fmt.Errorf("range reference %q names no sheet", ref)
	}
	return ReadRangeValues(f, "", r)
}

func seriesName(f *excelize.File, s models.SeriesRef, index int) string {
	if s.NameRange != "" {
		if values, err := readRef(f, s.NameRange); err == nil && len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("Series %d", index+1)
}

func resolveSeries(f *excelize.File, s models.SeriesRef, index int) (models.DataSetDoc, error) {
	set := models.DataSetDoc{
		Label:   seriesName(f, s, index),
		Kind:    s.Kind,
		Entries: []models.EntryDoc{},
	}

	xs, err := readRef(f, s.XRange)
	if err != nil {
		return set, err
	}
	ys, err := readRef(f, s.YRange)
	if err != nil {
		return set, err
	}
	sizes, err := readRef(f, s.SizeRange)
	if err != nil {
		return set, err
	}

	for i, cell := range ys {
		y, ok := parseNumber(cell)
		if !ok {
			continue
		}
		var label string
		if i < len(xs) {
			label = strings.TrimSpace(xs[i])
		}
		e := models.EntryDoc{X: float64(i), Y: &y}
		if s.Kind == "pie" {
			e.X = float64(len(set.Entries))
			e.Label = label
		} else if i < len(xs) {
			e.X, e.Label = xValue(xs[i], i)
		}
		if s.Kind == "bubble" {
			size := y
			if i < len(sizes) {
				if v, ok := parseNumber(sizes[i]); ok {
					size = v
				}
			}
			e.Size = &size
		}
		set.Entries = append(set.Entries, e)
	}
	return set, nil
}

func resolveStacked(f *excelize.File, ref models.ChartRef) (models.DataSetDoc, error) {
	set := models.DataSetDoc{
		Label:   ref.Name,
		Kind:    "bar",
		Entries: []models.EntryDoc{},
	}

	var xs []string
	var columns [][]string
	for i, s := range ref.Series {
		if s.Kind != "bar" {
			continue
		}
		ys, err := readRef(f, s.YRange)
		if err != nil {
			return set, err
		}
		if xs == nil {
			if xs, err = readRef(f, s.XRange); err != nil {
				return set, err
			}
		}
		set.StackLabels = append(set.StackLabels, seriesName(f, s, i))
		columns = append(columns, ys)
	}

	rows := 0
	for _, c := range columns {
		rows = max(rows, len(c))
	}
	for i := range rows {
		values := make([]float64, len(columns))
		var sum float64
		for j, c := range columns {
			if i < len(c) {
				if v, ok := parseNumber(c[i]); ok {
					values[j] = v
					sum += v
				}
			}
		}
		e := models.EntryDoc{X: float64(i), Y: &sum, YValues: values}
		if i < len(xs) {
			e.X, e.Label = xValue(xs[i], i)
		}
		set.Entries = append(set.Entries, e)
	}
	return set, nil
}

// resolveStock reads a stock chart, whose series are open, high, low and
// close, or high, low and close. Without an open series the body is flat at the close.
func resolveStock(f *excelize.File, ref models.ChartRef) (models.DataSetDoc, error) {
	set := models.DataSetDoc{
		Label:   ref.Name,
		Kind:    "candle",
		Entries: []models.EntryDoc{},
	}

	var columns [][]string
	for _, s := range ref.Series {
		ys, err := readRef(f, s.YRange)
		if err != nil {
			return set, err
		}
		columns = append(columns, ys)
	}
	if len(columns) != 3 && len(columns) != 4 {
		return set, fmt.Errorf("stock chart %q has %d series, expected 3 or 4", ref.Name, len(columns))
	}
	xs, err := readRef(f, ref.Series[0].XRange)
	if err != nil {
		return set, err
	}

	for i := range columns[0] {
		prices := make([]float64, len(columns))
		complete := true
		for j, c := range columns {
			v, ok := 0.0, false
			if i < len(c) {
				v, ok = parseNumber(c[i])
			}
			if !ok {
				complete = false
				break
			}
			prices[j] = v
		}
		if !complete {
			continue
		}

		var ohlc models.OHLCDoc
		if len(prices) == 4 {
			ohlc = models.OHLCDoc{Open: prices[0], High: prices[1], Low: prices[2], Close: prices[3]}
		} else {
			ohlc = models.OHLCDoc{Open: prices[2], High: prices[0], Low: prices[1], Close: prices[2]}
		}
		y := (ohlc.High + ohlc.Low) / 2
		e := models.EntryDoc{X: float64(i), Y: &y, OHLC: &ohlc}
		if i < len(xs) {
			e.X, e.Label = xValue(xs[i], i)
		}
		set.Entries = append(set.Entries, e)
	}
	return set, nil
}
