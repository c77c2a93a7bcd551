// Package chartdata holds the data model of a chart: typed entries, data
// sets with cached extrema and sorted x lookup, and chart data aggregating
// several data sets. It also loads and saves that model from workbooks and
// JSON chart documents.
package chartdata

import (
	"log/slog"

	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
	"github.com/ukaji3/chartdata-go/pkg/chartdata/parser"
)

// Options configures loading and saving.
type Options struct {
	// Layout is the worksheet arrangement read by Load.
	Layout models.Layout
	// Sheet is the worksheet to read or write. Empty means the first sheet
	// when loading and "Sheet1" when saving.
	Sheet string
	// Range restricts reading to a region such as "B2:E20".
	Range string
	// HeaderRows is the number of label rows above the data.
	HeaderRows int
	// Kind is the data set kind for the columns layout.
	Kind Kind
	// Chart selects an embedded workbook chart by name instead of a sheet layout.
	Chart string
	// Decimals fixes the precision of value labels. Negative values use the
	// precision suggested by the loaded data.
	Decimals int
	// AddChart makes Save place a native workbook chart next to the data.
	AddChart bool
	// Logger receives warnings about parts of a workbook that were skipped.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default load and save options.
func DefaultOptions() Options {
	return Options{
		Layout:     models.LayoutColumns,
		HeaderRows: 1,
		Kind:       KindLine,
		Decimals:   -1,
		AddChart:   true,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (o Options) columnParams() parser.ColumnParams {
	return parser.ColumnParams{
		Layout:     o.Layout,
		HeaderRows: o.HeaderRows,
		Range:      o.Range,
		Kind:       string(o.Kind),
	}
}
