// Package models defines the documents exchanged with workbooks and JSON files.
package models

// Layout names how a worksheet region maps onto data sets.
type Layout string

const (
	// LayoutColumns reads a header row, x values in the first column and one series per further column.
	LayoutColumns Layout = "columns"
	// LayoutStacked reads one stacked bar series whose segments are the columns after x.
	LayoutStacked Layout = "stacked"
	// LayoutOHLC reads x, open, high, low and close columns into one candle series.
	LayoutOHLC Layout = "ohlc"
	// LayoutBubble reads x followed by a y and a size column per series.
	LayoutBubble Layout = "bubble"
	// LayoutPie reads a label column and a value column into one pie series.
	LayoutPie Layout = "pie"
)

// OHLCDoc holds the prices of a candle entry.
type OHLCDoc struct {
	// High is the highest price.
	High float64 `json:"high"`
	// Low is the lowest price.
	Low float64 `json:"low"`
	// Open is the opening price.
	Open float64 `json:"open"`
	// Close is the closing price.
	Close float64 `json:"close"`
}

// EntryDoc represents one entry of a data set.
type EntryDoc struct {
	// X is the x value. Pie and radar entries ignore it.
	X float64 `json:"x"`
	// Y is the y value (nil when the value is missing).
	Y *float64 `json:"y"`
	// YValues holds the segments of a stacked bar entry.
	YValues []float64 `json:"y_values,omitempty"`
	// OHLC holds the prices of a candle entry.
	OHLC *OHLCDoc `json:"ohlc,omitempty"`
	// Size is the bubble size.
	Size *float64 `json:"size,omitempty"`
	// Label is the entry label (category text or pie slice name).
	Label string `json:"label,omitempty"`
	// Icon is an opaque icon reference.
	Icon string `json:"icon,omitempty"`
	// Data is an opaque payload.
	Data any `json:"data,omitempty"`
}

// DataSetDoc represents one data set.
type DataSetDoc struct {
	// Label is the data set name.
	Label string `json:"label"`
	// Kind is the data set kind (line, bar, scatter, candle, bubble, pie, radar).
	Kind string `json:"kind"`
	// Axis is the y axis dependency ("left" or "right").
	Axis string `json:"axis,omitempty"`
	// Colors is the palette as #rrggbb strings.
	Colors []string `json:"colors,omitempty"`
	// StackLabels names the segments of stacked entries.
	StackLabels []string `json:"stack_labels,omitempty"`
	// Entries holds the entries in ascending x order.
	Entries []EntryDoc `json:"entries"`
}

// ChartDoc represents the data of one chart.
type ChartDoc struct {
	// Name is the chart name.
	Name string `json:"name"`
	// Source is where the chart was loaded from (file, sheet or chart part).
	Source string `json:"source,omitempty"`
	// BarWidth is the bar width in x units for bar charts.
	BarWidth *float64 `json:"bar_width,omitempty"`
	// DataSets holds the data sets in order.
	DataSets []DataSetDoc `json:"data_sets"`
}
