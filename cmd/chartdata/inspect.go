package main

import (
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/aclements/go-moremath/stats"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/ukaji3/chartdata-go/pkg/chartdata"
	"github.com/ukaji3/chartdata-go/pkg/chartdata/output"
)

var (
	setName  string
	xValue   float64
	yValue   string
	rounding string
)

var seriesPalette = []string{
	"#4477AA",
	"#EE6677",
	"#228833",
	"#CCBB44",
	"#66CCEE",
	"#AA3377",
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#BBBBBB"))
)

func seriesStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(seriesPalette[index%len(seriesPalette)]))
}

func containerName(data chartdata.Data) string {
	switch data.(type) {
	case *chartdata.BarData:
		return "bar chart"
	case *chartdata.PieData:
		return "pie chart"
	case *chartdata.CombinedData:
		return "combined chart"
	}
	return "chart"
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize the data sets of a chart",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	b := data.Bounds()
	fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("%s: %s", filepath.Base(args[0]), containerName(data))))
	fmt.Fprintf(out, "data sets %d, entries %d, x [%g, %g], y [%g, %g]\n",
		data.DataSetCount(), data.EntryCount(), b.XMin, b.XMax, b.YMin, b.YMax)
	fmt.Fprintf(out, "left axis [%g, %g], right axis [%g, %g]\n",
		data.YMinAxis(chartdata.AxisLeft), data.YMaxAxis(chartdata.AxisLeft),
		data.YMinAxis(chartdata.AxisRight), data.YMaxAxis(chartdata.AxisRight))
	if bars, ok := data.(*chartdata.BarData); ok {
		fmt.Fprintf(out, "bar width %g\n", bars.BarWidth)
	}
	if pie, ok := data.(*chartdata.PieData); ok {
		fmt.Fprintf(out, "slice total %g\n", pie.YValueSum())
	}

	for i, s := range data.DataSets() {
		writeDataSet(out, i, s)
	}
	return nil
}

func writeDataSet(out io.Writer, index int, s *chartdata.DataSet) {
	f := s.ValueFormatter()
	b := s.Bounds()
	fmt.Fprintf(out, "\n%s %s\n", seriesStyle(index).Render(s.Label()),
		mutedStyle.Render(fmt.Sprintf("(%s, %s axis)", s.Kind(), s.Axis())))
	fmt.Fprintf(out, "  entries %d, x [%g, %g], y [%s, %s]\n",
		s.EntryCount(), b.XMin, b.XMax, f.StringForValue(b.YMin, nil, index), f.StringForValue(b.YMax, nil, index))
	if s.IsStacked() {
		fmt.Fprintf(out, "  stacks %d of up to %d values, labels %v\n", s.EntryCountStacks(), s.StackSize(), s.Style().StackLabels)
	}
	if s.Kind() == chartdata.KindBubble {
		fmt.Fprintf(out, "  max size %g\n", s.MaxSize())
	}
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <file>",
		Short: "Find the entry of a data set at an x value",
		Args:  cobra.ExactArgs(1),
		RunE:  runLookup,
	}
	cmd.Flags().StringVar(&setName, "set", "", "Data set label or index (default: first)")
	cmd.Flags().Float64Var(&xValue, "x", 0, "X value to look up")
	cmd.Flags().StringVar(&yValue, "y", "", "Prefer the entry with the closest y among entries sharing x")
	cmd.Flags().StringVar(&rounding, "rounding", "", "Rounding when x is absent: up, down, closest (default: from config)")
	cmd.MarkFlagRequired("x")
	return cmd
}

func runLookup(cmd *cobra.Command, args []string) error {
	data, err := load(args[0])
	if err != nil {
		return err
	}
	s, setIndex, err := selectDataSet(data, setName)
	if err != nil {
		return err
	}

	mode := cfg.RoundingMode()
	if rounding != "" {
		if mode, err = chartdata.ParseRounding(rounding); err != nil {
			return err
		}
	}
	y := math.NaN()
	if yValue != "" {
		if _, err := fmt.Sscan(yValue, &y); err != nil {
			return fmt.Errorf("invalid --y %q: %w", yValue, err)
		}
	}

	out := cmd.OutOrStdout()
	i := s.EntryIndex(xValue, y, mode)
	if i < 0 {
		fmt.Fprintf(out, "%s: no entry\n", s.Label())
		return nil
	}
	e := s.EntryForIndex(i)
	h := chartdata.Highlight{X: e.X(), Y: e.Y(), DataSetIndex: setIndex, DataIndex: -1, StackIndex: -1, Axis: s.Axis()}
	fmt.Fprintf(out, "%s[%d] = %v\n", s.Label(), i, e)
	fmt.Fprintf(out, "label %q, value %s, %v\n", e.Label, s.ValueFormatter().StringForValue(e.Y(), e, setIndex), h)
	return nil
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Print summary statistics of every data set",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	data, err := load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headingStyle.Render(filepath.Base(args[0])))
	for i, s := range data.DataSets() {
		var ys []float64
		for _, e := range s.All() {
			if !math.IsNaN(e.Y()) {
				ys = append(ys, e.Y())
			}
		}
		fmt.Fprintln(out, seriesStyle(i).Render(s.Label()))
		if len(ys) == 0 {
			fmt.Fprintln(out, mutedStyle.Render("  no values"))
			continue
		}

		sample := stats.Sample{Xs: ys}
		lo, hi := sample.Bounds()
		fmt.Fprintf(out, "  n %d, min %g, max %g, mean %g, median %g, stddev %g\n",
			len(ys), lo, hi, sample.Mean(), sample.Quantile(0.5), sample.StdDev())
	}
	return nil
}

func newChartsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts <file.xlsx>",
		Short: "List the charts, data regions and named ranges of a workbook (or one --sheet) as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runCharts,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func runCharts(cmd *cobra.Command, args []string) error {
	wb, err := chartdata.LoadWorkbookCharts(args[0], options())
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	var jsonData []byte
	if sheet != "" {
		sd, ok := wb.Sheets[sheet]
		if !ok {
			return fmt.Errorf("%w: %q", chartdata.ErrSheetNotFound, sheet)
		}
		jsonData, err = output.SheetToJSON(&sd, pretty)
	} else {
		jsonData, err = output.WorkbookToJSON(wb, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd, jsonData, outputPath)
}
