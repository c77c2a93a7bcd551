package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/chartdata-go/pkg/chartdata"
	"github.com/ukaji3/chartdata-go/pkg/chartdata/filter"
	"github.com/ukaji3/chartdata-go/pkg/chartdata/indicator"
	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
	"golang.org/x/sync/errgroup"
)

var (
	chartName     string
	tolerance     float64
	filterType    string
	indicatorKind string
	period        int
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input> -o <output>",
		Short: "Convert between xlsx workbooks and JSON chart documents",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (.json, .xlsx)")
	cmd.Flags().StringVar(&chartName, "chart", "", "Read an embedded workbook chart by name or title instead of a sheet layout")
	cmd.MarkFlagRequired("output")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts := options()
	opts.Chart = chartName
	data, err := chartdata.Load(args[0], opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	logger.Debug("converting", "input", args[0], "output", outputPath, "data_sets", data.DataSetCount())
	return emit(cmd, baseName(outputPath), data, outputPath)
}

func newReduceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce <file>",
		Short: "Drop entries that do not change the shape of a line",
		Args:  cobra.ExactArgs(1),
		RunE:  runReduce,
	}
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "Angle in degrees an entry must deviate by to be kept (default: from config)")
	cmd.Flags().StringVar(&filterType, "type", "douglas_peucker", "Reduction algorithm: none, douglas_peucker")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: JSON to stdout)")
	return cmd
}

func runReduce(cmd *cobra.Command, args []string) error {
	data, err := load(args[0])
	if err != nil {
		return err
	}

	a := filter.NewApproximator(cfg.Tolerance)
	if cmd.Flags().Changed("tolerance") {
		a.Tolerance = tolerance
	}
	if a.Type, err = filter.ParseType(filterType); err != nil {
		return err
	}

	doc := chartdata.ToDoc(baseName(args[0]), data)
	for i, s := range data.DataSets() {
		reduced, err := filter.ReduceDataSet(s, a)
		if err != nil {
			return err
		}
		logger.Info("reduced data set", "set", s.Label(), "from", s.EntryCount(), "to", reduced.EntryCount())
		doc.DataSets[i] = chartdata.DataSetToDoc(reduced)
	}

	out, err := chartdata.FromDoc(doc, options())
	if err != nil {
		return err
	}
	return emit(cmd, doc.Name, out, outputPath)
}

func newIndicatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indicators <file>",
		Short: "Compute candle indicators as line data sets",
		Args:  cobra.ExactArgs(1),
		RunE:  runIndicators,
	}
	cmd.Flags().StringVar(&setName, "set", "", "Candle data set label or index (default: first)")
	cmd.Flags().StringVar(&indicatorKind, "kind", "ema", "Indicator: sma, ema, macd, kdj")
	cmd.Flags().IntVar(&period, "period", 0, "Indicator period (default: indicator specific)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: JSON to stdout)")
	return cmd
}

func runIndicators(cmd *cobra.Command, args []string) error {
	data, err := load(args[0])
	if err != nil {
		return err
	}
	set, _, err := selectDataSet(data, setName)
	if err != nil {
		return err
	}
	if set.Kind() != chartdata.KindCandle {
		return fmt.Errorf("data set %q is %s, indicators need candles", set.Label(), set.Kind())
	}

	lines, err := indicator.DataSets(set, indicatorKind, period)
	if err != nil {
		return err
	}

	combined := chartdata.NewCombinedData()
	combined.SetCandleData(chartdata.NewChartData(set))
	combined.SetLineData(chartdata.NewChartData(lines...))
	return emit(cmd, baseName(args[0]), combined, outputPath)
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <files...> -o <output>",
		Short: "Merge the data sets of several files into one chart",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runMerge,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: JSON to stdout)")
	return cmd
}

func runMerge(cmd *cobra.Command, args []string) error {
	docs := make([]*models.ChartDoc, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Workers)
	for i, path := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := chartdata.LoadDoc(path, options())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Debug("loaded", "file", path, "data_sets", len(doc.DataSets))
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	merged := models.ChartDoc{Name: "merged", DataSets: []models.DataSetDoc{}}
	if outputPath != "" {
		merged.Name = baseName(outputPath)
	}
	for _, doc := range docs {
		merged.DataSets = append(merged.DataSets, doc.DataSets...)
	}

	data, err := chartdata.FromDoc(merged, options())
	if err != nil {
		return err
	}
	return emit(cmd, merged.Name, data, outputPath)
}
