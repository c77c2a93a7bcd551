package chartdata

import (
	"fmt"
	"math"
)

// Highlight identifies one selected entry of a chart.
type Highlight struct {
	// X is the x value of the selected entry.
	X float64
	// Y is the y value, NaN when unknown.
	Y float64
	// DataSetIndex is the index of the data set within its chart data.
	DataSetIndex int
	// DataIndex is the index of the chart data within combined data, -1 otherwise.
	DataIndex int
	// StackIndex is the selected segment of a stacked entry, -1 when not stacked.
	StackIndex int
	// Axis is the axis the selected data set is plotted against.
	Axis AxisDependency
}

// NewHighlight selects the entry at x in the data set at dataSetIndex.
func NewHighlight(x float64, dataSetIndex int) Highlight {
	return Highlight{
		X:            x,
		Y:            math.NaN(),
		DataSetIndex: dataSetIndex,
		DataIndex:    -1,
		StackIndex:   -1,
	}
}

// NewStackedHighlight selects one segment of a stacked entry.
func NewStackedHighlight(x float64, dataSetIndex, stackIndex int) Highlight {
	h := NewHighlight(x, dataSetIndex)
	h.StackIndex = stackIndex
	return h
}

// IsStacked reports whether a stack segment is selected.
func (h Highlight) IsStacked() bool {
	return h.StackIndex >= 0
}

// Equal compares the identifying fields. Two unknown y values are equal.
func (h Highlight) Equal(o Highlight) bool {
	sameY := h.Y == o.Y || (math.IsNaN(h.Y) && math.IsNaN(o.Y))
	return h.X == o.X && sameY &&
		h.DataSetIndex == o.DataSetIndex &&
		h.DataIndex == o.DataIndex &&
		h.StackIndex == o.StackIndex
}

func (h Highlight) String() string {
	return fmt.Sprintf("Highlight{x: %g, y: %g, dataSetIndex: %d, stackIndex: %d}",
		h.X, h.Y, h.DataSetIndex, h.StackIndex)
}
