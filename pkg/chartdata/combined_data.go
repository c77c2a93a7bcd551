package chartdata

import (
	"math"
	"slices"
)

// CombinedData overlays line, bar, scatter, candle and bubble chart data in
// one chart. Its extrema cover the data sets of every part.
type CombinedData struct {
	line    *ChartData
	bar     *BarData
	scatter *ChartData
	candle  *ChartData
	bubble  *ChartData

	merged *ChartData
}

// NewCombinedData creates empty combined data.
func NewCombinedData() *CombinedData {
	return &CombinedData{merged: NewChartData()}
}

func (c *CombinedData) LineData() *ChartData    { return c.line }
func (c *CombinedData) BarData() *BarData       { return c.bar }
func (c *CombinedData) ScatterData() *ChartData { return c.scatter }
func (c *CombinedData) CandleData() *ChartData  { return c.candle }
func (c *CombinedData) BubbleData() *ChartData  { return c.bubble }

func (c *CombinedData) SetLineData(d *ChartData)    { c.line = d }
func (c *CombinedData) SetBarData(d *BarData)       { c.bar = d }
func (c *CombinedData) SetScatterData(d *ChartData) { c.scatter = d }
func (c *CombinedData) SetCandleData(d *ChartData)  { c.candle = d }
func (c *CombinedData) SetBubbleData(d *ChartData)  { c.bubble = d }

// AllData returns the parts that are set, in line, bar, scatter, candle, bubble order.
func (c *CombinedData) AllData() []*ChartData {
	var out []*ChartData
	if c.line != nil {
		out = append(out, c.line)
	}
	if c.bar != nil {
		out = append(out, c.bar.ChartData)
	}
	for _, d := range []*ChartData{c.scatter, c.candle, c.bubble} {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}

// DataByIndex returns the part at index i of AllData, or nil.
func (c *CombinedData) DataByIndex(i int) *ChartData {
	all := c.AllData()
	if i < 0 || i >= len(all) {
		return nil
	}
	return all[i]
}

// DataIndex returns the index of d within AllData, or -1.
func (c *CombinedData) DataIndex(d *ChartData) int {
	return slices.Index(c.AllData(), d)
}

// data returns chart data over the data sets of every part. The parts may
// gain or lose data sets at any time, so the set list is compared on every call.
func (c *CombinedData) data() *ChartData {
	var sets []*DataSet
	for _, d := range c.AllData() {
		sets = append(sets, d.dataSets...)
	}
	if !slices.Equal(sets, c.merged.dataSets) {
		c.merged.SetDataSets(sets)
	}
	return c.merged
}

// DataSets returns the data sets of every part.
func (c *CombinedData) DataSets() []*DataSet { return c.data().DataSets() }

func (c *CombinedData) DataSetCount() int { return c.data().DataSetCount() }
func (c *CombinedData) EntryCount() int   { return c.data().EntryCount() }
func (c *CombinedData) Bounds() Bounds    { return c.data().Bounds() }
func (c *CombinedData) YMin() float64     { return c.Bounds().YMin }
func (c *CombinedData) YMax() float64     { return c.Bounds().YMax }
func (c *CombinedData) XMin() float64     { return c.Bounds().XMin }
func (c *CombinedData) XMax() float64     { return c.Bounds().XMax }

func (c *CombinedData) YMinAxis(axis AxisDependency) float64 { return c.data().YMinAxis(axis) }
func (c *CombinedData) YMaxAxis(axis AxisDependency) float64 { return c.data().YMaxAxis(axis) }

// CalcMinMax refreshes every part and the combined extrema.
func (c *CombinedData) CalcMinMax() {
	for _, d := range c.AllData() {
		d.CalcMinMax()
	}
	c.data().CalcMinMax()
}

// DataSetByHighlight resolves h.DataIndex and h.DataSetIndex to a data set, or nil.
func (c *CombinedData) DataSetByHighlight(h Highlight) *DataSet {
	d := c.DataByIndex(h.DataIndex)
	if d == nil {
		return nil
	}
	return d.DataSetByIndex(h.DataSetIndex)
}

// EntryForHighlight returns the entry at h.X whose y equals h.Y, or the first
// entry at h.X when h.Y is NaN.
func (c *CombinedData) EntryForHighlight(h Highlight) *Entry {
	s := c.DataSetByHighlight(h)
	if s == nil {
		return nil
	}
	for _, e := range s.EntriesForXValue(h.X) {
		if math.IsNaN(h.Y) || e.y == h.Y {
			return e
		}
	}
	return nil
}
