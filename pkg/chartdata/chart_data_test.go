package chartdata

import (
	"errors"
	"math"
	"testing"
)

func TestChartDataFold(t *testing.T) {
	left := NewDataSet("left", KindLine, NewEntry(0, 1), NewEntry(4, 3))
	right := NewDataSetWithOptions("right", KindLine, DataSetOptions{Axis: AxisRight}, NewEntry(-2, 100), NewEntry(2, 50))
	d := NewChartData(left, right)

	expected := Bounds{XMin: -2, XMax: 4, YMin: 1, YMax: 100}
	if got := d.Bounds(); got != expected {
		t.Errorf("Bounds() = %+v, expected %+v", got, expected)
	}

	axes := []struct {
		axis     AxisDependency
		min, max float64
	}{
		{AxisLeft, 1, 3},
		{AxisRight, 50, 100},
	}
	for _, tt := range axes {
		if d.YMinAxis(tt.axis) != tt.min || d.YMaxAxis(tt.axis) != tt.max {
			t.Errorf("axis %v = [%v, %v], expected [%v, %v]",
				tt.axis, d.YMinAxis(tt.axis), d.YMaxAxis(tt.axis), tt.min, tt.max)
		}
	}
}

func TestChartDataAxisFallback(t *testing.T) {
	d := NewChartData(NewDataSet("left", KindLine, NewEntry(0, 2), NewEntry(1, 6)))

	if d.YMinAxis(AxisRight) != 2 || d.YMaxAxis(AxisRight) != 6 {
		t.Errorf("right axis = [%v, %v], expected the left axis [2, 6]", d.YMinAxis(AxisRight), d.YMaxAxis(AxisRight))
	}
}

func TestChartDataEmpty(t *testing.T) {
	tests := []struct {
		name string
		data *ChartData
	}{
		{"no sets", NewChartData()},
		{"empty set", NewChartData(NewDataSet("e", KindLine))},
	}

	for _, tt := range tests {
		if got := tt.data.Bounds(); got != (Bounds{}) {
			t.Errorf("%s: Bounds() = %+v, expected zero bounds", tt.name, got)
		}
		if tt.data.YMinAxis(AxisLeft) != 0 || tt.data.YMaxAxis(AxisRight) != 0 {
			t.Errorf("%s: axis extrema should be 0", tt.name)
		}
	}
}

func TestChartDataSkipsEmptySets(t *testing.T) {
	d := NewChartData(NewDataSet("e", KindLine), NewDataSet("s", KindLine, NewEntry(5, 10), NewEntry(6, 20)))

	expected := Bounds{XMin: 5, XMax: 6, YMin: 10, YMax: 20}
	if got := d.Bounds(); got != expected {
		t.Errorf("Bounds() = %+v, expected %+v", got, expected)
	}
}

func TestChartDataSkipsMissingY(t *testing.T) {
	d := NewChartData(
		NewDataSet("a", KindLine, NewEntry(1, math.NaN()), NewEntry(2, 7)),
		NewDataSetWithOptions("b", KindLine, DataSetOptions{Axis: AxisRight}, NewEntry(0, math.NaN())),
	)

	expected := Bounds{XMin: 0, XMax: 2, YMin: 7, YMax: 7}
	if got := d.Bounds(); got != expected {
		t.Errorf("Bounds() = %+v, expected %+v", got, expected)
	}
	// the right axis has no y values, so it falls back to the left one
	if d.YMinAxis(AxisRight) != 7 || d.YMaxAxis(AxisRight) != 7 {
		t.Errorf("right axis = [%v, %v], expected [7, 7]", d.YMinAxis(AxisRight), d.YMaxAxis(AxisRight))
	}

	missing := NewChartData(NewDataSet("m", KindLine, NewEntry(3, math.NaN())))
	if got := missing.Bounds(); got != (Bounds{XMin: 3, XMax: 3}) {
		t.Errorf("Bounds() without y values = %+v, expected x 3 and y 0", got)
	}
}

func TestChartDataRefoldsMutatedSet(t *testing.T) {
	s := NewDataSet("s", KindLine, NewEntry(0, 1), NewEntry(1, 2))
	d := NewChartData(s)
	if d.YMax() != 2 {
		t.Fatalf("YMax() = %v, expected 2", d.YMax())
	}

	s.AddEntry(NewEntry(2, 30))
	if d.YMax() != 30 || d.XMax() != 2 {
		t.Errorf("after AddEntry YMax(), XMax() = %v, %v, expected 30, 2", d.YMax(), d.XMax())
	}

	d.AddEntry(NewEntry(3, -5), 0)
	if d.YMin() != -5 {
		t.Errorf("after ChartData.AddEntry YMin() = %v, expected -5", d.YMin())
	}

	d.CalcMinMaxY(0, 1)
	if d.YMin() != 1 || d.YMax() != 2 {
		t.Errorf("after CalcMinMaxY(0, 1) y = [%v, %v], expected [1, 2]", d.YMin(), d.YMax())
	}
}

func TestChartDataSets(t *testing.T) {
	a := NewDataSet("Alpha", KindLine, NewEntry(0, 1))
	b := NewDataSet("Beta", KindLine, NewEntry(0, 2), NewEntry(1, 3))
	d := NewChartData(a, nil, b)

	if d.DataSetCount() != 2 {
		t.Fatalf("DataSetCount() = %d, expected 2", d.DataSetCount())
	}

	lookups := []struct {
		label      string
		ignoreCase bool
		expected   int
	}{
		{"Beta", false, 1},
		{"beta", false, -1},
		{"beta", true, 1},
		{"Gamma", true, -1},
	}
	for _, tt := range lookups {
		if got := d.IndexOfDataSetByLabel(tt.label, tt.ignoreCase); got != tt.expected {
			t.Errorf("IndexOfDataSetByLabel(%q, %v) = %d, expected %d", tt.label, tt.ignoreCase, got, tt.expected)
		}
	}

	if d.DataSetByLabel("alpha", true) != a {
		t.Error("DataSetByLabel(alpha) did not return the first set")
	}
	if d.MaxEntryCountSet() != b {
		t.Error("MaxEntryCountSet() did not return the larger set")
	}
	if d.EntryCount() != 3 {
		t.Errorf("EntryCount() = %d, expected 3", d.EntryCount())
	}
	if labels := d.DataSetLabels(); len(labels) != 2 || labels[0] != "Alpha" {
		t.Errorf("DataSetLabels() = %v", labels)
	}

	e := b.EntryForIndex(1)
	if d.DataSetForEntry(e) != b {
		t.Error("DataSetForEntry() did not find the owning set")
	}

	if !d.RemoveDataSet(a) || d.Contains(a) || d.DataSetCount() != 1 {
		t.Error("RemoveDataSet(a) did not remove the set")
	}
	if d.YMin() != 2 {
		t.Errorf("after RemoveDataSet YMin() = %v, expected 2", d.YMin())
	}
	if d.RemoveDataSetByIndex(5) || d.AddDataSet(nil) {
		t.Error("invalid add or remove succeeded")
	}
}

func TestChartDataEntryForHighlight(t *testing.T) {
	s := NewDataSet("s", KindLine, NewEntry(1, 5), NewEntry(3, 2), NewEntry(3, 7), NewEntry(5, 8))
	d := NewChartData(s)

	tests := []struct {
		h     Highlight
		x, y  float64
		found bool
	}{
		{NewHighlight(3, 0), 3, 2, true},
		{Highlight{X: 3, Y: 6, DataSetIndex: 0}, 3, 7, true},
		{NewHighlight(4.2, 0), 5, 8, true},
		{NewHighlight(3, 1), 0, 0, false},
	}

	for _, tt := range tests {
		e := d.EntryForHighlight(tt.h)
		if !tt.found {
			if e != nil {
				t.Errorf("EntryForHighlight(%v) = %v, expected nil", tt.h, e)
			}
			continue
		}
		if e == nil || e.X() != tt.x || e.Y() != tt.y {
			t.Errorf("EntryForHighlight(%v) = %v, expected (%v, %v)", tt.h, e, tt.x, tt.y)
		}
	}
}

func TestChartDataSettings(t *testing.T) {
	a := NewDataSet("a", KindLine, NewEntry(0, 0.01), NewEntry(1, 0.05))
	b := NewDataSet("b", KindLine)
	d := NewChartData(a, b)

	d.SetDrawValues(false)
	d.SetHighlightEnabled(false)
	if a.Style().DrawValues || d.HighlightEnabled() {
		t.Error("settings were not applied to every data set")
	}

	f := NewDefaultValueFormatter(3)
	d.SetValueFormatter(f)
	if b.ValueFormatter() != ValueFormatter(f) {
		t.Error("SetValueFormatter() did not reach every data set")
	}

	if got := d.SuggestedDecimals(); got != 4 {
		t.Errorf("SuggestedDecimals() = %d, expected 4", got)
	}
	if got := len(d.Colors()); got != 2 {
		t.Errorf("Colors() returned %d colors, expected 2", got)
	}

	d.ClearValues()
	if d.DataSetCount() != 0 {
		t.Errorf("ClearValues() left %d data sets", d.DataSetCount())
	}
}

func TestChartDataCopy(t *testing.T) {
	d := NewChartData(NewDataSet("s", KindLine, NewEntry(0, 1)))
	c, err := d.Copy()
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	c.AddEntry(NewEntry(1, 50), 0)

	if d.YMax() != 1 || c.YMax() != 50 {
		t.Errorf("YMax() original, copy = %v, %v, expected 1, 50", d.YMax(), c.YMax())
	}
}

func TestBarDataGroupBars(t *testing.T) {
	a := NewDataSet("a", KindBar, NewEntry(0, 1), NewEntry(1, 2), NewEntry(2, 3))
	b := NewDataSet("b", KindBar, NewEntry(0, 4), NewEntry(1, 5))
	bars := NewBarData(a, b)
	bars.BarWidth = 0.4

	if got := bars.GroupWidth(0.2, 0); math.Abs(got-1) > 1e-9 {
		t.Errorf("GroupWidth(0.2, 0) = %v, expected 1", got)
	}
	if err := bars.GroupBars(0, 0.2, 0); err != nil {
		t.Fatalf("GroupBars failed: %v", err)
	}

	expectedA := []float64{0.3, 1.3, 2.3}
	for i, x := range expectedA {
		if got := a.EntryForIndex(i).X(); math.Abs(got-x) > 1e-9 {
			t.Errorf("a[%d].X() = %v, expected %v", i, got, x)
		}
	}
	expectedB := []float64{0.7, 1.7}
	for i, x := range expectedB {
		if got := b.EntryForIndex(i).X(); math.Abs(got-x) > 1e-9 {
			t.Errorf("b[%d].X() = %v, expected %v", i, got, x)
		}
	}
	if math.Abs(bars.XMax()-2.3) > 1e-9 {
		t.Errorf("XMax() = %v, expected 2.3", bars.XMax())
	}
}

func TestBarDataGroupBarsNeedsTwoSets(t *testing.T) {
	bars := NewBarData(NewDataSet("a", KindBar, NewEntry(0, 1)))
	if err := bars.GroupBars(0, 0.2, 0); !errors.Is(err, ErrTooFewDataSets) {
		t.Errorf("GroupBars() = %v, expected %v", err, ErrTooFewDataSets)
	}
}

func TestPieData(t *testing.T) {
	p := NewPieData(NewDataSet("share", KindPie, NewPieEntry(3, "a"), NewPieEntry(5, "b")))

	if p.YValueSum() != 8 {
		t.Errorf("YValueSum() = %v, expected 8", p.YValueSum())
	}
	if e := p.EntryForHighlight(NewHighlight(1, 0)); e == nil || e.Label != "b" {
		t.Errorf("EntryForHighlight(1) = %v, expected slice b", e)
	}
	if p.DataSetByIndex(1) != nil {
		t.Error("DataSetByIndex(1) should be nil for pie data")
	}
	if p.DataSetByLabel("share", false) == nil {
		t.Error("DataSetByLabel(share) should find the pie set")
	}

	replacement := NewDataSet("other", KindPie, NewPieEntry(1, "x"))
	p.AddDataSet(replacement)
	if p.DataSetCount() != 1 || p.DataSet() != replacement {
		t.Error("AddDataSet() should replace the pie data set")
	}
	if p.XMin() != 0 || p.XMax() != 0 {
		t.Errorf("pie x extrema = [%v, %v], expected [0, 0]", p.XMin(), p.XMax())
	}
}

func TestPieDataEntriesUseFirstSet(t *testing.T) {
	first := NewDataSet("first", KindPie, NewPieEntry(1, "x"))
	second := NewDataSet("second", KindPie, NewPieEntry(4, "z"))
	p := NewPieData(first)
	p.SetDataSets([]*DataSet{first, second})

	added := NewPieEntry(2, "y")
	if p.AddEntry(NewPieEntry(9, "w"), 1) {
		t.Error("AddEntry(_, 1) = true, expected only set 0 to accept entries")
	}
	if !p.AddEntry(added, 0) || added.X() != 1 || p.YValueSum() != 3 {
		t.Errorf("AddEntry(_, 0): x %v, sum %v, expected 1, 3", added.X(), p.YValueSum())
	}
	if p.RemoveEntry(second.EntryForIndex(0), 1) || second.EntryCount() != 1 {
		t.Error("RemoveEntry(_, 1) removed from the second set")
	}
	if p.RemoveEntryByXValue(0, 1) || second.EntryCount() != 1 {
		t.Error("RemoveEntryByXValue(_, 1) removed from the second set")
	}
	if !p.RemoveEntry(added, 0) || first.EntryCount() != 1 {
		t.Errorf("RemoveEntry(_, 0) left %d entries, expected 1", first.EntryCount())
	}
	if e := p.EntryForHighlight(NewHighlight(0, 1)); e == nil || e.Label != "x" {
		t.Errorf("EntryForHighlight(0, set 1) = %v, expected slice x", e)
	}
}

func TestCombinedData(t *testing.T) {
	line := NewDataSet("line", KindLine, NewEntry(0, 1), NewEntry(10, 2))
	bar := NewDataSet("bar", KindBar, NewEntry(2, -4), NewEntry(2, 6))
	candle := NewDataSet("candle", KindCandle, NewCandleEntry(5, 40, 30, 31, 39))

	c := NewCombinedData()
	c.SetLineData(NewChartData(line))
	c.SetBarData(NewBarData(bar))
	c.SetCandleData(NewChartData(candle))

	if c.DataSetCount() != 3 || len(c.AllData()) != 3 {
		t.Fatalf("DataSetCount(), AllData() = %d, %d, expected 3, 3", c.DataSetCount(), len(c.AllData()))
	}
	expected := Bounds{XMin: 0, XMax: 10, YMin: -4, YMax: 40}
	if got := c.Bounds(); got != expected {
		t.Errorf("Bounds() = %+v, expected %+v", got, expected)
	}

	if c.DataIndex(c.CandleData()) != 2 || c.DataByIndex(3) != nil {
		t.Error("DataIndex() or DataByIndex() resolved the wrong part")
	}

	h := Highlight{X: 2, Y: 6, DataSetIndex: 0, DataIndex: 1, StackIndex: -1}
	if c.DataSetByHighlight(h) != bar {
		t.Error("DataSetByHighlight() did not resolve the bar set")
	}
	if e := c.EntryForHighlight(h); e == nil || e.Y() != 6 {
		t.Errorf("EntryForHighlight() = %v, expected the entry with y 6", e)
	}
	h.Y = math.NaN()
	if e := c.EntryForHighlight(h); e == nil || e.Y() != -4 {
		t.Errorf("EntryForHighlight(NaN y) = %v, expected the first entry at x 2", e)
	}
	h.Y = 7
	if e := c.EntryForHighlight(h); e != nil {
		t.Errorf("EntryForHighlight(y 7) = %v, expected nil", e)
	}

	c.LineData().AddDataSet(NewDataSet("more", KindLine, NewEntry(20, 100)))
	if c.DataSetCount() != 4 || c.XMax() != 20 || c.YMax() != 100 {
		t.Errorf("after adding a part data set: count %d, XMax %v, YMax %v", c.DataSetCount(), c.XMax(), c.YMax())
	}
	line.AddEntry(NewEntry(30, -50))
	if c.YMin() != -50 {
		t.Errorf("after mutating a part data set YMin() = %v, expected -50", c.YMin())
	}
}

func TestHighlight(t *testing.T) {
	h := NewHighlight(2, 1)
	if !math.IsNaN(h.Y) || h.IsStacked() || h.DataIndex != -1 {
		t.Errorf("NewHighlight() = %v", h)
	}
	if !h.Equal(NewHighlight(2, 1)) {
		t.Error("highlights with unknown y should be equal")
	}
	s := NewStackedHighlight(2, 1, 0)
	if !s.IsStacked() || s.Equal(h) {
		t.Errorf("NewStackedHighlight() = %v", s)
	}
}
