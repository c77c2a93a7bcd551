package chartdata

import (
	"fmt"
	"math"
	"slices"
)

// Range is a half-open interval (From, To] covered by one segment of a stacked entry.
type Range struct {
	From float64
	To   float64
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v > r.From && v <= r.To
}

// IsLarger reports whether v lies above the range.
func (r Range) IsLarger(v float64) bool {
	return v > r.To
}

// IsSmaller reports whether v lies below the range.
func (r Range) IsSmaller(v float64) bool {
	return v < r.From
}

// OHLC holds the four prices of a candle.
type OHLC struct {
	High  float64
	Low   float64
	Open  float64
	Close float64
}

// Entry is one point of a data set.
//
// X and Y are read-only once the entry belongs to a data set so that the
// data set's cached extrema and ordering stay valid. Data, Icon and Label do
// not take part in either and may be changed freely.
type Entry struct {
	x float64
	y float64

	// Data is an opaque payload owned by the caller.
	Data any
	// Icon is an opaque icon reference such as a file name.
	Icon string
	// Label names the entry. Pie slices use it for their legend text.
	Label string

	size float64

	yValues     []float64
	ranges      []Range
	positiveSum float64
	negativeSum float64

	ohlc *OHLC
}

// NewEntry creates a plain x/y entry.
func NewEntry(x, y float64) *Entry {
	return &Entry{x: x, y: y}
}

// NewStackedEntry creates a bar entry whose y is the sum of the stacked values.
func NewStackedEntry(x float64, values []float64) *Entry {
	e := &Entry{x: x}
	e.setYValues(values)
	return e
}

// NewCandleEntry creates an OHLC entry. Its y is the middle of the shadow.
func NewCandleEntry(x, high, low, open, close float64) *Entry {
	return &Entry{
		x:    x,
		y:    (high + low) / 2,
		ohlc: &OHLC{High: high, Low: low, Open: open, Close: close},
	}
}

// NewBubbleEntry creates an entry with a bubble size.
func NewBubbleEntry(x, y, size float64) *Entry {
	return &Entry{x: x, y: y, size: size}
}

// NewPieEntry creates a pie slice. Its x is assigned by the data set it is added to.
func NewPieEntry(value float64, label string) *Entry {
	return &Entry{y: value, Label: label}
}

// NewRadarEntry creates a radar value. Its x is assigned by the data set it is added to.
func NewRadarEntry(value float64) *Entry {
	return &Entry{y: value}
}

// X returns the x value.
func (e *Entry) X() float64 { return e.x }

// Y returns the y value. Stacked entries report the sum of their values.
func (e *Entry) Y() float64 { return e.y }

// Size returns the bubble size.
func (e *Entry) Size() float64 { return e.size }

// IsStacked reports whether the entry carries stacked values.
func (e *Entry) IsStacked() bool { return e.yValues != nil }

// YValues returns a copy of the stacked values, or nil for a plain entry.
func (e *Entry) YValues() []float64 { return slices.Clone(e.yValues) }

// PositiveSum is the sum of all non-negative stacked values.
func (e *Entry) PositiveSum() float64 { return e.positiveSum }

// NegativeSum is the magnitude of the sum of all negative stacked values.
func (e *Entry) NegativeSum() float64 { return e.negativeSum }

// Ranges returns a copy of the per-segment ranges of a stacked entry.
func (e *Entry) Ranges() []Range { return slices.Clone(e.ranges) }

// StackSize is the number of stacked values, 1 for a plain entry.
func (e *Entry) StackSize() int {
	if e.yValues == nil {
		return 1
	}
	return len(e.yValues)
}

// SumBelow sums the stacked values that sit above stackIndex in the value slice.
func (e *Entry) SumBelow(stackIndex int) float64 {
	var sum float64
	for i := len(e.yValues) - 1; i > stackIndex && i >= 0; i-- {
		sum += e.yValues[i]
	}
	return sum
}

func (e *Entry) setYValues(values []float64) {
	e.yValues = slices.Clone(values)
	if e.yValues == nil {
		e.yValues = []float64{}
	}
	e.y, e.positiveSum, e.negativeSum = 0, 0, 0
	for _, v := range e.yValues {
		e.y += v
		if v < 0 {
			e.negativeSum += -v
		} else {
			e.positiveSum += v
		}
	}

	e.ranges = make([]Range, 0, len(e.yValues))
	negRemain := -e.negativeSum
	posRemain := 0.0
	for _, v := range e.yValues {
		if v < 0 {
			e.ranges = append(e.ranges, Range{From: negRemain, To: negRemain - v})
			negRemain -= v
		} else {
			e.ranges = append(e.ranges, Range{From: posRemain, To: posRemain + v})
			posRemain += v
		}
	}
}

// OHLC returns the candle prices of an OHLC entry.
func (e *Entry) OHLC() (OHLC, bool) {
	if e.ohlc == nil {
		return OHLC{}, false
	}
	return *e.ohlc, true
}

// IsOHLC reports whether the entry is a candle.
func (e *Entry) IsOHLC() bool { return e.ohlc != nil }

// ShadowRange is |high - low| of a candle, 0 otherwise.
func (e *Entry) ShadowRange() float64 {
	if e.ohlc == nil {
		return 0
	}
	return math.Abs(e.ohlc.High - e.ohlc.Low)
}

// BodyRange is |open - close| of a candle, 0 otherwise.
func (e *Entry) BodyRange() float64 {
	if e.ohlc == nil {
		return 0
	}
	return math.Abs(e.ohlc.Open - e.ohlc.Close)
}

// IsIncreasing reports whether a candle closed above its open.
func (e *Entry) IsIncreasing() bool {
	return e.ohlc != nil && e.ohlc.Close > e.ohlc.Open
}

// yBounds returns the y interval the entry occupies. An entry whose y is NaN
// occupies nothing; for stacks and candles that covers a NaN segment or price.
func (e *Entry) yBounds() (lo, hi float64, ok bool) {
	switch {
	case math.IsNaN(e.y):
		return 0, 0, false
	case e.ohlc != nil:
		return e.ohlc.Low, e.ohlc.High, true
	case e.yValues != nil:
		return -e.negativeSum, e.positiveSum, true
	default:
		return e.y, e.y, true
	}
}

// Copy returns an independent entry. Data is shared since it is opaque.
func (e *Entry) Copy() *Entry {
	c := *e
	c.yValues = slices.Clone(e.yValues)
	c.ranges = slices.Clone(e.ranges)
	if e.ohlc != nil {
		o := *e.ohlc
		c.ohlc = &o
	}
	return &c
}

func (e *Entry) String() string {
	switch {
	case e.ohlc != nil:
		return fmt.Sprintf("Entry{x: %g, high: %g, low: %g, open: %g, close: %g}",
			e.x, e.ohlc.High, e.ohlc.Low, e.ohlc.Open, e.ohlc.Close)
	case e.yValues != nil:
		return fmt.Sprintf("Entry{x: %g, y: %g, stack: %v}", e.x, e.y, e.yValues)
	default:
		return fmt.Sprintf("Entry{x: %g, y: %g}", e.x, e.y)
	}
}
