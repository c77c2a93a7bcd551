package chartdata

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"
)

// axisBounds holds the y extrema of the data sets attached to one axis.
type axisBounds struct {
	min, max float64
	ok       bool
}

// ChartData aggregates the data sets of one chart.
//
// Its extrema are folded from the data sets' own extrema. The fold remembers
// the version of every data set it read and is redone as soon as one of them
// changes, so a mutated data set is never folded stale.
type ChartData struct {
	dataSets []*DataSet

	bounds     Bounds
	left       axisBounds
	right      axisBounds
	valid      bool
	foldedSets []*DataSet
	versions   []uint64
}

// NewChartData creates chart data holding sets. Nil sets are dropped.
func NewChartData(sets ...*DataSet) *ChartData {
	d := &ChartData{}
	d.SetDataSets(sets)
	return d
}

// DataSets returns the data sets in order.
func (d *ChartData) DataSets() []*DataSet {
	return slices.Clone(d.dataSets)
}

// SetDataSets replaces every data set.
func (d *ChartData) SetDataSets(sets []*DataSet) {
	d.dataSets = make([]*DataSet, 0, len(sets))
	for _, s := range sets {
		if s != nil {
			d.dataSets = append(d.dataSets, s)
		}
	}
	d.valid = false
}

// DataSetCount returns the number of data sets.
func (d *ChartData) DataSetCount() int {
	return len(d.dataSets)
}

// stale reports whether the fold no longer matches the data sets.
func (d *ChartData) stale() bool {
	if !d.valid || len(d.foldedSets) != len(d.dataSets) {
		return true
	}
	for i, s := range d.dataSets {
		if d.foldedSets[i] != s || s.dirty || d.versions[i] != s.version {
			return true
		}
	}
	return false
}

func (d *ChartData) refresh() {
	if d.stale() {
		d.CalcMinMax()
	}
}

// CalcMinMax folds the extrema of every data set. Empty data sets do not
// contribute, and sets without any y value contribute only their x range;
// an extremum nothing contributed to is 0.
func (d *ChartData) CalcMinMax() {
	d.bounds = Bounds{}
	d.left, d.right = axisBounds{}, axisBounds{}
	d.foldedSets = slices.Clone(d.dataSets)
	d.versions = make([]uint64, len(d.dataSets))

	b := Bounds{XMin: math.Inf(1), XMax: math.Inf(-1), YMin: math.Inf(1), YMax: math.Inf(-1)}
	foundX, foundY := false, false
	for i, s := range d.dataSets {
		sb := s.Bounds()
		d.versions[i] = s.version
		if s.EntryCount() == 0 {
			continue
		}
		foundX = true
		b.XMin, b.XMax = min(b.XMin, sb.XMin), max(b.XMax, sb.XMax)
		if !s.hasY {
			continue
		}
		foundY = true
		b.YMin, b.YMax = min(b.YMin, sb.YMin), max(b.YMax, sb.YMax)

		ab := &d.left
		if s.axis == AxisRight {
			ab = &d.right
		}
		if !ab.ok {
			*ab = axisBounds{min: sb.YMin, max: sb.YMax, ok: true}
		} else {
			ab.min, ab.max = min(ab.min, sb.YMin), max(ab.max, sb.YMax)
		}
	}
	if foundX {
		d.bounds.XMin, d.bounds.XMax = b.XMin, b.XMax
	}
	if foundY {
		d.bounds.YMin, d.bounds.YMax = b.YMin, b.YMax
	}
	d.valid = true
}

// CalcMinMaxY narrows every data set to the visible window [fromX, toX] and refolds.
func (d *ChartData) CalcMinMaxY(fromX, toX float64) {
	for _, s := range d.dataSets {
		s.CalcMinMaxY(fromX, toX)
	}
	d.CalcMinMax()
}

// Bounds returns the global extrema.
func (d *ChartData) Bounds() Bounds {
	d.refresh()
	return d.bounds
}

func (d *ChartData) YMin() float64 { return d.Bounds().YMin }
func (d *ChartData) YMax() float64 { return d.Bounds().YMax }
func (d *ChartData) XMin() float64 { return d.Bounds().XMin }
func (d *ChartData) XMax() float64 { return d.Bounds().XMax }

// axis returns the bounds of axis, falling back to the other axis when no
// non-empty data set is attached to it.
func (d *ChartData) axis(axis AxisDependency) axisBounds {
	d.refresh()
	primary, other := d.left, d.right
	if axis == AxisRight {
		primary, other = d.right, d.left
	}
	if primary.ok {
		return primary
	}
	return other
}

// YMinAxis returns the smallest y of the data sets plotted against axis.
func (d *ChartData) YMinAxis(axis AxisDependency) float64 { return d.axis(axis).min }

// YMaxAxis returns the largest y of the data sets plotted against axis.
func (d *ChartData) YMaxAxis(axis AxisDependency) float64 { return d.axis(axis).max }

// DataSetByIndex returns the data set at i, or nil when i is out of range.
func (d *ChartData) DataSetByIndex(i int) *DataSet {
	if i < 0 || i >= len(d.dataSets) {
		return nil
	}
	return d.dataSets[i]
}

// IndexOfDataSetByLabel returns the index of the first data set labelled
// label, or -1.
func (d *ChartData) IndexOfDataSetByLabel(label string, ignoreCase bool) int {
	for i, s := range d.dataSets {
		if s.label == label || (ignoreCase && strings.EqualFold(s.label, label)) {
			return i
		}
	}
	return -1
}

// DataSetByLabel returns the first data set labelled label, or nil.
func (d *ChartData) DataSetByLabel(label string, ignoreCase bool) *DataSet {
	return d.DataSetByIndex(d.IndexOfDataSetByLabel(label, ignoreCase))
}

// DataSetLabels returns the label of every data set.
func (d *ChartData) DataSetLabels() []string {
	labels := make([]string, len(d.dataSets))
	for i, s := range d.dataSets {
		labels[i] = s.label
	}
	return labels
}

// IndexOfDataSet returns the index of set by identity, or -1.
func (d *ChartData) IndexOfDataSet(set *DataSet) int {
	return slices.Index(d.dataSets, set)
}

// Contains reports whether set belongs to the chart.
func (d *ChartData) Contains(set *DataSet) bool {
	return d.IndexOfDataSet(set) >= 0
}

// AddDataSet appends set. It returns false for nil.
func (d *ChartData) AddDataSet(set *DataSet) bool {
	if set == nil {
		return false
	}
	d.dataSets = append(d.dataSets, set)
	d.valid = false
	return true
}

// RemoveDataSet removes set by identity.
func (d *ChartData) RemoveDataSet(set *DataSet) bool {
	return d.RemoveDataSetByIndex(d.IndexOfDataSet(set))
}

// RemoveDataSetByIndex removes the data set at i. It returns false when i is out of range.
func (d *ChartData) RemoveDataSetByIndex(i int) bool {
	if i < 0 || i >= len(d.dataSets) {
		return false
	}
	d.dataSets = slices.Delete(d.dataSets, i, i+1)
	d.valid = false
	return true
}

// AddEntry adds e to the data set at setIndex.
func (d *ChartData) AddEntry(e *Entry, setIndex int) bool {
	s := d.DataSetByIndex(setIndex)
	if s == nil {
		return false
	}
	return s.AddEntry(e)
}

// RemoveEntry removes e from the data set at setIndex.
func (d *ChartData) RemoveEntry(e *Entry, setIndex int) bool {
	s := d.DataSetByIndex(setIndex)
	if s == nil {
		return false
	}
	return s.RemoveEntry(e)
}

// RemoveEntryByXValue removes the entry closest to x from the data set at setIndex.
func (d *ChartData) RemoveEntryByXValue(x float64, setIndex int) bool {
	s := d.DataSetByIndex(setIndex)
	if s == nil {
		return false
	}
	return s.RemoveEntryByXValue(x)
}

// DataSetForEntry returns the data set holding e, or nil.
func (d *ChartData) DataSetForEntry(e *Entry) *DataSet {
	for _, s := range d.dataSets {
		if s.Contains(e) {
			return s
		}
	}
	return nil
}

// EntryForHighlight resolves h to an entry, or nil when h points nowhere.
func (d *ChartData) EntryForHighlight(h Highlight) *Entry {
	s := d.DataSetByIndex(h.DataSetIndex)
	if s == nil {
		return nil
	}
	return s.EntryForXValue(h.X, h.Y, RoundClosest)
}

// EntryCount sums the entries of every data set.
func (d *ChartData) EntryCount() int {
	n := 0
	for _, s := range d.dataSets {
		n += s.EntryCount()
	}
	return n
}

// MaxEntryCountSet returns the data set with the most entries, the first one on ties.
func (d *ChartData) MaxEntryCountSet() *DataSet {
	var best *DataSet
	for _, s := range d.dataSets {
		if best == nil || s.EntryCount() > best.EntryCount() {
			best = s
		}
	}
	return best
}

// Colors concatenates the palettes of every data set.
func (d *ChartData) Colors() []color.RGBA {
	var out []color.RGBA
	for _, s := range d.dataSets {
		out = append(out, s.style.Colors...)
	}
	return out
}

// SetValueFormatter installs f on every data set.
func (d *ChartData) SetValueFormatter(f ValueFormatter) {
	for _, s := range d.dataSets {
		s.SetValueFormatter(f)
	}
}

// SetDrawValues toggles value labels on every data set.
func (d *ChartData) SetDrawValues(enabled bool) {
	for _, s := range d.dataSets {
		s.style.DrawValues = enabled
	}
}

// HighlightEnabled reports whether every data set allows highlighting.
func (d *ChartData) HighlightEnabled() bool {
	for _, s := range d.dataSets {
		if !s.style.HighlightEnabled {
			return false
		}
	}
	return true
}

// SetHighlightEnabled toggles highlighting on every data set.
func (d *ChartData) SetHighlightEnabled(enabled bool) {
	for _, s := range d.dataSets {
		s.style.HighlightEnabled = enabled
	}
}

// ClearValues removes every data set.
func (d *ChartData) ClearValues() {
	d.SetDataSets(nil)
}

// SuggestedDecimals returns the precision that shows the y values of the
// chart with two significant digits.
func (d *ChartData) SuggestedDecimals() int {
	b := d.Bounds()
	reference := math.Abs(b.YMax - b.YMin)
	if d.EntryCount() < 2 {
		reference = max(math.Abs(b.YMin), math.Abs(b.YMax))
	}
	return max(Decimals(reference), 0)
}

// Copy returns a deep copy holding copies of every data set.
func (d *ChartData) Copy() (*ChartData, error) {
	sets := make([]*DataSet, 0, len(d.dataSets))
	for i, s := range d.dataSets {
		c, err := s.Copy()
		if err != nil {
			return nil, fmt.Errorf("copy data set %d: %w", i, err)
		}
		sets = append(sets, c)
	}
	return NewChartData(sets...), nil
}
