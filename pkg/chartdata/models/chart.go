package models

// SeriesRef represents the cell references of one series of an embedded workbook chart.
type SeriesRef struct {
	// Name is the cached series display name.
	Name string `json:"name"`
	// Kind is the data set kind of the chart group holding the series.
	Kind string `json:"kind"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for categories or x values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for the values.
	YRange string `json:"y_range,omitempty"`
	// SizeRange is the range reference for bubble sizes.
	SizeRange string `json:"size_range,omitempty"`
}

// ChartRef represents an embedded workbook chart and where its data lives.
type ChartRef struct {
	// Name is the chart name.
	Name string `json:"name"`
	// ChartType is the chart type of the first chart group (e.g., Line, Bar).
	ChartType string `json:"chart_type"`
	// Grouping is the bar or line grouping ("standard", "stacked", "clustered", ...).
	Grouping string `json:"grouping,omitempty"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// Series is the list of series included in the chart.
	Series []SeriesRef `json:"series"`
	// W is the chart width in pixels.
	W int `json:"w,omitempty"`
	// H is the chart height in pixels.
	H int `json:"h,omitempty"`
}
