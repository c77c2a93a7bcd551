package chartdata

import (
	"fmt"
	"iter"
	"math"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/chartdata-go/pkg/chartdata/sorted"
)

// Bounds holds the extrema of a data set or chart.
type Bounds struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// DataSetOptions configures a new data set. The zero value is usable.
type DataSetOptions struct {
	// Axis is the y axis the set is plotted against.
	Axis AxisDependency
	// Formatter renders value labels. Nil gives the set its own
	// DefaultValueFormatter with DefaultDecimals.
	Formatter ValueFormatter
	// Style overrides DefaultStyle(kind) when non-nil.
	Style *Style
}

// DataSet is one named series of entries kept in ascending x order.
//
// Extrema are cached and refreshed lazily: every mutation marks them stale
// and the next read recomputes them.
type DataSet struct {
	label     string
	kind      Kind
	axis      AxisDependency
	entries   *sorted.Array[*Entry]
	style     Style
	formatter ValueFormatter

	bounds           Bounds
	// hasY is false when no entry has a y value, so bounds' y part is a placeholder.
	hasY             bool
	maxSize          float64
	stackSize        int
	entryCountStacks int

	dirty bool
	// version changes whenever the cached extrema may have changed.
	version uint64
}

func byX(a, b *Entry) bool { return a.x < b.x }

// NewDataSet creates a data set with default options.
func NewDataSet(label string, kind Kind, entries ...*Entry) *DataSet {
	return NewDataSetWithOptions(label, kind, DataSetOptions{}, entries...)
}

// NewDataSetWithOptions creates a data set. Entries are sorted by x; entries
// of positional kinds (pie, radar) keep their order and get their index as x.
func NewDataSetWithOptions(label string, kind Kind, opts DataSetOptions, entries ...*Entry) *DataSet {
	s := &DataSet{
		label:     label,
		kind:      kind,
		axis:      opts.Axis,
		formatter: opts.Formatter,
	}
	if s.formatter == nil {
		s.formatter = NewDefaultValueFormatter(DefaultDecimals)
	}
	if opts.Style != nil {
		s.style = *opts.Style
	} else {
		s.style = DefaultStyle(kind)
	}
	s.style.normalize()
	s.SetEntries(entries)
	return s
}

func (s *DataSet) Label() string         { return s.label }
func (s *DataSet) SetLabel(label string) { s.label = label }
func (s *DataSet) Kind() Kind            { return s.kind }
func (s *DataSet) Axis() AxisDependency  { return s.axis }

func (s *DataSet) SetAxis(axis AxisDependency) {
	if s.axis != axis {
		s.axis = axis
		s.version++
	}
}

// Style returns the presentation attributes for in-place edits.
func (s *DataSet) Style() *Style { return &s.style }

// SetStyle replaces the presentation attributes, clamping bounded values.
func (s *DataSet) SetStyle(style Style) {
	style.normalize()
	s.style = style
}

func (s *DataSet) ValueFormatter() ValueFormatter { return s.formatter }

// SetValueFormatter installs f. Nil restores a DefaultValueFormatter.
func (s *DataSet) SetValueFormatter(f ValueFormatter) {
	if f == nil {
		f = NewDefaultValueFormatter(DefaultDecimals)
	}
	s.formatter = f
}

// SetEntries replaces every entry. Nil entries are dropped.
func (s *DataSet) SetEntries(entries []*Entry) {
	list := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			list = append(list, e)
		}
	}
	if s.kind.positional() {
		for i, e := range list {
			e.x = float64(i)
		}
	}
	s.entries = sorted.FromUnsorted(list, byX)
	s.markDirty()
}

func (s *DataSet) markDirty() {
	s.dirty = true
	s.version++
}

func (s *DataSet) refresh() {
	if s.dirty {
		s.calcMinMax()
	}
}

// CalcMinMax recomputes every extremum from the current entries, dropping
// any visible-window y range set by CalcMinMaxY.
func (s *DataSet) CalcMinMax() {
	s.calcMinMax()
	s.version++
}

func (s *DataSet) calcMinMax() {
	s.dirty = false
	s.bounds = Bounds{}
	s.hasY = false
	s.maxSize = 0
	s.stackSize = 1
	s.entryCountStacks = 0

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, e := range s.entries.All() {
		s.entryCountStacks += e.StackSize()
		if e.yValues != nil && len(e.yValues) > s.stackSize {
			s.stackSize = len(e.yValues)
		}
		s.maxSize = max(s.maxSize, e.size)

		if lo, hi, ok := e.yBounds(); ok {
			yMin, yMax = min(yMin, lo), max(yMax, hi)
		}
		if s.kind != KindPie {
			xMin, xMax = min(xMin, e.x), max(xMax, e.x)
		}
	}

	if !math.IsInf(xMin, 1) {
		s.bounds.XMin, s.bounds.XMax = xMin, xMax
	}
	if !math.IsInf(yMin, 1) {
		s.bounds.YMin, s.bounds.YMax = yMin, yMax
		s.hasY = true
	}
}

// CalcMinMaxY narrows the y extrema to the entries visible in [fromX, toX].
// The window starts at the entry found by rounding fromX down and ends at the
// entry found by rounding toX up. The narrowed range holds until the next
// mutation or CalcMinMax. An inverted window (fromX > toX) leaves the
// extrema unchanged.
func (s *DataSet) CalcMinMaxY(fromX, toX float64) {
	s.refresh()
	if s.entries.Len() == 0 || fromX > toX {
		return
	}

	from := s.EntryIndex(fromX, math.NaN(), RoundDown)
	to := s.lastIndexAtX(s.EntryIndex(toX, math.NaN(), RoundUp))

	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i := from; i <= to; i++ {
		if lo, hi, ok := s.entries.At(i).yBounds(); ok {
			yMin, yMax = min(yMin, lo), max(yMax, hi)
		}
	}
	s.hasY = !math.IsInf(yMin, 1)
	if !s.hasY {
		yMin, yMax = 0, 0
	}
	s.bounds.YMin, s.bounds.YMax = yMin, yMax
	s.version++
}

// HasYValues reports whether any entry contributes to the y extrema. A set
// whose y values are all missing reports 0 for both and should be ignored.
func (s *DataSet) HasYValues() bool {
	s.refresh()
	return s.hasY
}

// Bounds returns all four extrema.
func (s *DataSet) Bounds() Bounds {
	s.refresh()
	return s.bounds
}

func (s *DataSet) YMin() float64 { return s.Bounds().YMin }
func (s *DataSet) YMax() float64 { return s.Bounds().YMax }
func (s *DataSet) XMin() float64 { return s.Bounds().XMin }
func (s *DataSet) XMax() float64 { return s.Bounds().XMax }

// MaxSize is the largest bubble size.
func (s *DataSet) MaxSize() float64 {
	s.refresh()
	return s.maxSize
}

// StackSize is the largest number of stacked values of any entry, at least 1.
func (s *DataSet) StackSize() int {
	s.refresh()
	return s.stackSize
}

// IsStacked reports whether any entry holds more than one stacked value.
func (s *DataSet) IsStacked() bool {
	return s.StackSize() > 1
}

// EntryCountStacks counts every stacked value as its own entry.
func (s *DataSet) EntryCountStacks() int {
	s.refresh()
	return s.entryCountStacks
}

// EntryCount returns the number of entries.
func (s *DataSet) EntryCount() int {
	return s.entries.Len()
}

// Entries returns the entries in ascending x order.
func (s *DataSet) Entries() []*Entry {
	return s.entries.Values()
}

// All iterates over the entries in ascending x order.
func (s *DataSet) All() iter.Seq2[int, *Entry] {
	return s.entries.All()
}

// EntryForIndex returns the entry at index i, or nil when i is out of range.
func (s *DataSet) EntryForIndex(i int) *Entry {
	if i < 0 || i >= s.entries.Len() {
		return nil
	}
	return s.entries.At(i)
}

// searchX returns the index of the first entry with an x not below x.
func (s *DataSet) searchX(x float64) int {
	return s.entries.Search(func(e *Entry) bool { return e.x >= x })
}

// lastIndexAtX returns the last index of the run of entries sharing the x of entry i.
func (s *DataSet) lastIndexAtX(i int) int {
	x := s.entries.At(i).x
	for i+1 < s.entries.Len() && s.entries.At(i+1).x == x {
		i++
	}
	return i
}

// EntryIndex returns the index of the entry matching x, or -1 when the set is empty.
//
// An exact match resolves to the first entry with that x. Otherwise rounding
// picks the next larger x (up, or the last entry past the end), the next
// smaller x (down, or the first entry before the start) or the nearer of the
// two (closest, ties go to the larger x). When closestToY is not NaN the
// entry with the nearest y among those sharing the resolved x wins.
func (s *DataSet) EntryIndex(x, closestToY float64, rounding Rounding) int {
	n := s.entries.Len()
	if n == 0 {
		return -1
	}

	i := s.searchX(x)
	var idx int
	switch {
	case i < n && s.entries.At(i).x == x:
		idx = i
	case rounding == RoundUp:
		idx = min(i, n-1)
	case rounding == RoundDown:
		idx = max(i-1, 0)
	case i == 0:
		idx = 0
	case i == n:
		idx = n - 1
	default:
		below := x - s.entries.At(i-1).x
		above := s.entries.At(i).x - x
		if above <= below {
			idx = i
		} else {
			idx = i - 1
		}
	}

	idx = s.searchX(s.entries.At(idx).x)
	if !math.IsNaN(closestToY) {
		idx = s.closestYInRun(idx, closestToY)
	}
	return idx
}

// closestYInRun scans the entries sharing the x of entry start for the y nearest to y.
func (s *DataSet) closestYInRun(start int, y float64) int {
	runX := s.entries.At(start).x
	best, bestDist := start, math.Inf(1)
	for i := start; i < s.entries.Len(); i++ {
		e := s.entries.At(i)
		if e.x != runX {
			break
		}
		if d := math.Abs(e.y - y); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// EntryForXValue resolves x like EntryIndex and returns the entry, or nil when the set is empty.
func (s *DataSet) EntryForXValue(x, closestToY float64, rounding Rounding) *Entry {
	return s.EntryForIndex(s.EntryIndex(x, closestToY, rounding))
}

// EntriesForXValue returns every entry whose x equals x.
func (s *DataSet) EntriesForXValue(x float64) []*Entry {
	var out []*Entry
	for i := s.searchX(x); i < s.entries.Len(); i++ {
		e := s.entries.At(i)
		if e.x != x {
			break
		}
		out = append(out, e)
	}
	return out
}

// IndexOfEntry returns the index of e by identity, or -1.
func (s *DataSet) IndexOfEntry(e *Entry) int {
	if e == nil {
		return -1
	}
	for i := s.searchX(e.x); i < s.entries.Len(); i++ {
		cur := s.entries.At(i)
		if cur == e {
			return i
		}
		if cur.x != e.x {
			break
		}
	}
	return -1
}

// Contains reports whether e belongs to the set.
func (s *DataSet) Contains(e *Entry) bool {
	return s.IndexOfEntry(e) >= 0
}

// AddEntry adds e after any entries with the same x and keeps the set
// sorted. Appending in ascending x order never shifts existing entries.
// It returns false for a nil entry.
func (s *DataSet) AddEntry(e *Entry) bool {
	if e == nil {
		return false
	}
	if s.kind.positional() {
		e.x = float64(s.entries.Len())
	}
	s.entries.Insert(e)
	s.markDirty()
	return true
}

// AddEntryOrdered inserts e at its sorted position by x.
func (s *DataSet) AddEntryOrdered(e *Entry) bool {
	return s.AddEntry(e)
}

// SetYValues replaces the stacked values of e, which must belong to the set,
// and recomputes its sums and ranges. A plain entry becomes stacked.
func (s *DataSet) SetYValues(e *Entry, values []float64) bool {
	if !s.Contains(e) {
		return false
	}
	e.setYValues(values)
	s.markDirty()
	return true
}

// RemoveEntry removes e by identity.
func (s *DataSet) RemoveEntry(e *Entry) bool {
	i := s.IndexOfEntry(e)
	if i < 0 {
		return false
	}
	return s.RemoveEntryAt(i)
}

// RemoveEntryAt removes the entry at index i. It returns false when i is out of range.
func (s *DataSet) RemoveEntryAt(i int) bool {
	if i < 0 || i >= s.entries.Len() {
		return false
	}
	s.entries.RemoveAt(i)
	if s.kind.positional() {
		s.reindex()
	}
	s.markDirty()
	return true
}

// RemoveEntryByXValue removes the entry closest to x.
func (s *DataSet) RemoveEntryByXValue(x float64) bool {
	return s.RemoveEntry(s.EntryForXValue(x, math.NaN(), RoundClosest))
}

// RemoveFirst removes the entry with the smallest x.
func (s *DataSet) RemoveFirst() bool {
	return s.RemoveEntryAt(0)
}

// RemoveLast removes the entry with the largest x.
func (s *DataSet) RemoveLast() bool {
	return s.RemoveEntryAt(s.entries.Len() - 1)
}

// Clear removes every entry.
func (s *DataSet) Clear() {
	s.entries.RemoveAll()
	s.markDirty()
}

func (s *DataSet) reindex() {
	for i, e := range s.entries.All() {
		e.x = float64(i)
	}
}

// setX moves entry i to x. Callers must keep the set ordered.
func (s *DataSet) setX(i int, x float64) {
	s.entries.At(i).x = x
	s.markDirty()
}

// Copy returns a deep copy. Entries and style are duplicated; the value
// formatter is shared.
func (s *DataSet) Copy() (*DataSet, error) {
	c := &DataSet{
		label:     s.label,
		kind:      s.kind,
		axis:      s.axis,
		formatter: s.formatter,
	}
	if err := deepcopy.Copy(&c.style, &s.style); err != nil {
		return nil, fmt.Errorf("copy style of %q: %w", s.label, err)
	}
	entries := make([]*Entry, 0, s.entries.Len())
	for _, e := range s.entries.All() {
		entries = append(entries, e.Copy())
	}
	c.entries = sorted.FromSorted(entries, byX)
	c.markDirty()
	return c, nil
}

func (s *DataSet) String() string {
	return fmt.Sprintf("DataSet{label: %q, kind: %s, entries: %d}", s.label, s.kind, s.entries.Len())
}
