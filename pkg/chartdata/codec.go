package chartdata

import (
	"fmt"
	"math"

	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
)

// Data is the read surface shared by ChartData, BarData, PieData and CombinedData.
type Data interface {
	DataSets() []*DataSet
	DataSetCount() int
	EntryCount() int
	Bounds() Bounds
	YMinAxis(axis AxisDependency) float64
	YMaxAxis(axis AxisDependency) float64
	CalcMinMax()
}

// FromDoc builds chart data from a document. A single kind gives ChartData,
// BarData or PieData; mixed kinds give CombinedData.
func FromDoc(doc models.ChartDoc, opts Options) (Data, error) {
	sets := make([]*DataSet, 0, len(doc.DataSets))
	for i, d := range doc.DataSets {
		s, err := DataSetFromDoc(d)
		if err != nil {
			return nil, fmt.Errorf("data set %d: %w", i, err)
		}
		sets = append(sets, s)
	}

	all := NewChartData(sets...)
	decimals := opts.Decimals
	if decimals < 0 {
		decimals = all.SuggestedDecimals()
	}
	for _, s := range sets {
		s.SetValueFormatter(NewDefaultValueFormatter(decimals))
	}

	kinds := make(map[Kind]bool)
	for _, s := range sets {
		kinds[s.kind] = true
	}

	switch {
	case len(kinds) == 0:
		return all, nil
	case len(kinds) == 1 && kinds[KindPie]:
		if len(sets) != 1 {
			return nil, fmt.Errorf("a pie chart holds one data set, got %d", len(sets))
		}
		return NewPieData(sets[0]), nil
	case len(kinds) == 1 && kinds[KindBar]:
		bars := NewBarData(sets...)
		if doc.BarWidth != nil {
			bars.BarWidth = *doc.BarWidth
		}
		return bars, nil
	case len(kinds) == 1:
		return all, nil
	}

	if kinds[KindPie] || kinds[KindRadar] {
		return nil, fmt.Errorf("pie and radar data sets cannot be combined with other kinds")
	}
	combined := NewCombinedData()
	parts := make(map[Kind][]*DataSet)
	for _, s := range sets {
		parts[s.kind] = append(parts[s.kind], s)
	}
	if p := parts[KindLine]; p != nil {
		combined.SetLineData(NewChartData(p...))
	}
	if p := parts[KindBar]; p != nil {
		bars := NewBarData(p...)
		if doc.BarWidth != nil {
			bars.BarWidth = *doc.BarWidth
		}
		combined.SetBarData(bars)
	}
	if p := parts[KindScatter]; p != nil {
		combined.SetScatterData(NewChartData(p...))
	}
	if p := parts[KindCandle]; p != nil {
		combined.SetCandleData(NewChartData(p...))
	}
	if p := parts[KindBubble]; p != nil {
		combined.SetBubbleData(NewChartData(p...))
	}
	return combined, nil
}

// DataSetFromDoc builds one data set from its document form.
func DataSetFromDoc(d models.DataSetDoc) (*DataSet, error) {
	kind, err := ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}
	axis, err := ParseAxisDependency(d.Axis)
	if err != nil {
		return nil, err
	}

	style := DefaultStyle(kind)
	if len(d.Colors) > 0 {
		style.Colors = style.Colors[:0]
		for _, c := range d.Colors {
			rgba, err := ParseColor(c)
			if err != nil {
				return nil, err
			}
			style.Colors = append(style.Colors, rgba)
		}
	}
	if d.StackLabels != nil {
		style.StackLabels = d.StackLabels
	}

	entries := make([]*Entry, 0, len(d.Entries))
	for i, ed := range d.Entries {
		e, err := entryFromDoc(kind, ed)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	return NewDataSetWithOptions(d.Label, kind, DataSetOptions{Axis: axis, Style: &style}, entries...), nil
}

func entryFromDoc(kind Kind, d models.EntryDoc) (*Entry, error) {
	y := math.NaN()
	if d.Y != nil {
		y = *d.Y
	}

	var e *Entry
	switch {
	case kind == KindCandle:
		if d.OHLC == nil {
			return nil, fmt.Errorf("candle entry at x=%v has no ohlc prices", d.X)
		}
		e = NewCandleEntry(d.X, d.OHLC.High, d.OHLC.Low, d.OHLC.Open, d.OHLC.Close)
	case kind == KindBar && d.YValues != nil:
		e = NewStackedEntry(d.X, d.YValues)
	case kind == KindBubble:
		var size float64
		if d.Size != nil {
			size = *d.Size
		}
		e = NewBubbleEntry(d.X, y, size)
	case kind == KindPie:
		e = NewPieEntry(y, d.Label)
	case kind == KindRadar:
		e = NewRadarEntry(y)
	default:
		e = NewEntry(d.X, y)
	}

	e.Label = d.Label
	e.Icon = d.Icon
	e.Data = d.Data
	return e, nil
}

// ToDoc converts chart data into its document form.
func ToDoc(name string, data Data) models.ChartDoc {
	doc := models.ChartDoc{Name: name, DataSets: []models.DataSetDoc{}}
	if bars, ok := data.(*BarData); ok {
		w := bars.BarWidth
		doc.BarWidth = &w
	}
	for _, s := range data.DataSets() {
		doc.DataSets = append(doc.DataSets, DataSetToDoc(s))
	}
	return doc
}

// DataSetToDoc converts one data set into its document form. Missing y
// values become null.
func DataSetToDoc(s *DataSet) models.DataSetDoc {
	d := models.DataSetDoc{
		Label:   s.label,
		Kind:    string(s.kind),
		Axis:    s.axis.String(),
		Entries: make([]models.EntryDoc, 0, s.EntryCount()),
	}
	for _, c := range s.style.Colors {
		d.Colors = append(d.Colors, FormatColor(c))
	}
	if len(s.style.StackLabels) > 0 {
		d.StackLabels = append([]string(nil), s.style.StackLabels...)
	}

	for _, e := range s.All() {
		ed := models.EntryDoc{
			X:       e.x,
			YValues: e.YValues(),
			Label:   e.Label,
			Icon:    e.Icon,
			Data:    e.Data,
		}
		if !math.IsNaN(e.y) {
			y := e.y
			ed.Y = &y
		}
		if o, ok := e.OHLC(); ok {
			ed.OHLC = &models.OHLCDoc{High: o.High, Low: o.Low, Open: o.Open, Close: o.Close}
		}
		if s.kind == KindBubble {
			size := e.size
			ed.Size = &size
		}
		d.Entries = append(d.Entries, ed)
	}
	return d
}
