package chartdata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
	"github.com/ukaji3/chartdata-go/pkg/chartdata/output"
	"github.com/ukaji3/chartdata-go/pkg/chartdata/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads chart data from an xlsx workbook or a JSON chart document,
// chosen by file extension.
func Load(path string, opts Options) (Data, error) {
	doc, err := LoadDoc(path, opts)
	if err != nil {
		return nil, err
	}
	return FromDoc(*doc, opts)
}

// LoadDoc reads the document form of a workbook sheet, a workbook chart or a
// JSON chart document.
func LoadDoc(path string, opts Options) (*models.ChartDoc, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return loadWorkbookDoc(path, opts)
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		doc, err := output.FromJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		if doc.Source == "" {
			doc.Source = path
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidFormat, ext)
	}
}

func loadWorkbookDoc(path string, opts Options) (*models.ChartDoc, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	sheet, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}
	log := opts.logger().With("file", filepath.Base(path), "sheet", sheet)

	if opts.Chart != "" {
		charts, err := parser.DiscoverCharts(path)
		if err != nil {
			return nil, NewLoadError(sheet, "charts", err)
		}
		for _, ref := range charts[sheet] {
			if ref.Name != opts.Chart && ref.Title != opts.Chart {
				continue
			}
			doc, err := parser.ResolveChart(f, ref)
			if err != nil {
				return nil, NewLoadError(sheet, "charts", err)
			}
			doc.Source = fmt.Sprintf("%s#%s/%s", path, sheet, ref.Name)
			log.Debug("resolved chart", "chart", ref.Name, "data_sets", len(doc.DataSets))
			return &doc, nil
		}
		return nil, NewLoadError(sheet, "charts", fmt.Errorf("chart %q not found", opts.Chart))
	}

	sets, err := parser.ReadSeries(f, sheet, opts.columnParams())
	if err != nil {
		return nil, NewLoadError(sheet, "series", err)
	}
	log.Debug("read series", "layout", opts.Layout, "data_sets", len(sets))

	return &models.ChartDoc{
		Name:     sheet,
		Source:   path,
		DataSets: sets,
	}, nil
}

// resolveSheet returns sheet when the workbook has it, or the first sheet when sheet is empty.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
		}
		return list[0], nil
	}
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return "", err
	}
	if idx == -1 {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	return sheet, nil
}

// LoadWorkbookCharts lists the data region, embedded charts and defined
// names of every sheet, resolving each chart to its data. Parts that fail
// are logged and skipped.
func LoadWorkbookCharts(path string, opts Options) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	log := opts.logger().With("file", filepath.Base(path))
	bookName := filepath.Base(path)
	sheets := make(map[string]models.SheetData)

	for _, sheetName := range f.GetSheetList() {
		dataRange, err := parser.DetectDataRange(f, sheetName, parser.DefaultDetectionParams())
		if err != nil {
			log.Warn("skipping data range", "error", NewLoadError(sheetName, "range", err))
		}
		sheets[sheetName] = models.SheetData{DataRange: dataRange}
	}

	chartData, err := parser.DiscoverCharts(path)
	if err != nil {
		log.Warn("skipping charts", "error", err)
	}
	for sheetName, charts := range chartData {
		sheet, ok := sheets[sheetName]
		if !ok {
			continue
		}
		sheet.Charts = charts
		for _, ref := range charts {
			doc, err := parser.ResolveChart(f, ref)
			if err != nil {
				log.Warn("skipping chart data", "chart", ref.Name, "error", NewLoadError(sheetName, "charts", err))
				doc = models.ChartDoc{Name: ref.Name, DataSets: []models.DataSetDoc{}}
			}
			doc.Source = fmt.Sprintf("%s#%s/%s", bookName, sheetName, ref.Name)
			sheet.Resolved = append(sheet.Resolved, doc)
		}
		sheets[sheetName] = sheet
	}

	ranges, err := parser.ExtractNamedRanges(f)
	if err != nil {
		log.Warn("skipping defined names", "error", err)
	}
	if len(ranges) == 0 {
		ranges = nil
	}

	return &models.WorkbookData{
		BookName: bookName,
		Sheets:   sheets,
		Ranges:   ranges,
	}, nil
}

// Save writes chart data to an xlsx workbook or a JSON chart document,
// chosen by file extension. An existing workbook is updated in place.
func Save(path string, data Data, opts Options) error {
	ext := strings.ToLower(filepath.Ext(path))
	doc := ToDoc(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), data)

	switch ext {
	case ".json":
		out, err := output.ToJSON(&doc, true)
		if err != nil {
			return err
		}
		return os.WriteFile(path, out, 0644)
	case ".xlsx", ".xlsm":
		return saveWorkbook(path, doc, opts)
	}
	return fmt.Errorf("%w: unsupported extension %q", ErrInvalidFormat, ext)
}

func saveWorkbook(path string, doc models.ChartDoc, opts Options) error {
	sheet := opts.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}

	var f *excelize.File
	if _, err := os.Stat(path); err == nil {
		if f, err = excelize.OpenFile(path); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	} else {
		f = excelize.NewFile()
	}
	defer f.Close()

	if err := parser.WriteChart(f, sheet, doc, opts.AddChart); err != nil {
		return err
	}
	opts.logger().Debug("wrote chart", "file", filepath.Base(path), "sheet", sheet, "data_sets", len(doc.DataSets))
	return f.SaveAs(path)
}
