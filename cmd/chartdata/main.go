// Package main provides the CLI entry point for chartdata-go.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/chartdata-go/pkg/chartdata"
	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
	"github.com/ukaji3/chartdata-go/pkg/chartdata/output"
	"github.com/ukaji3/chartdata-go/pkg/config"
)

var (
	configPath string
	layout     string
	sheet      string
	pretty     bool
	verbose    bool
	outputPath string

	cfg    config.Config
	logger *slog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chartdata",
		Short: "Inspect and convert chart data",
		Long: `chartdata-go loads chart data sets from xlsx workbooks and JSON chart
documents, answers lookups over them and writes them back.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file path (default: $CHARTDATA_CONFIG or "+config.DefaultConfigPath+")")
	flags.StringVar(&layout, "layout", "", "Worksheet layout: columns, stacked, ohlc, bubble, pie")
	flags.StringVar(&sheet, "sheet", "", "Worksheet to read or write (default: first sheet)")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug messages to stderr")

	rootCmd.AddCommand(
		newInspectCmd(),
		newLookupCmd(),
		newStatsCmd(),
		newChartsCmd(),
		newConvertCmd(),
		newReduceCmd(),
		newIndicatorsCmd(),
		newMergeCmd(),
	)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.ResolveConfigPath()
	}

	var err error
	if cfg, err = config.LoadConfig(path); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if layout != "" {
		cfg.Layout = models.Layout(layout)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level, _ := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("loaded config", "path", path, "layout", cfg.Layout)
	return nil
}

func options() chartdata.Options {
	opts := cfg.Options()
	opts.Sheet = sheet
	opts.Logger = logger
	return opts
}

func load(path string) (chartdata.Data, error) {
	data, err := chartdata.Load(path, options())
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	return data, nil
}

func writeOutput(cmd *cobra.Command, data []byte, path string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// emit prints data as a JSON chart document, or saves it to path. Paths not
// ending in .json are saved as workbooks.
func emit(cmd *cobra.Command, name string, data chartdata.Data, path string) error {
	if path != "" && !strings.EqualFold(filepath.Ext(path), ".json") {
		if err := chartdata.Save(path, data, options()); err != nil {
			return fmt.Errorf("save failed: %w", err)
		}
		return nil
	}

	doc := chartdata.ToDoc(name, data)
	jsonData, err := output.ToJSON(&doc, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd, jsonData, path)
}

// baseName is the file name of path without its extension.
func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// selectDataSet finds a data set by label, ignoring case, or by index.
// An empty name selects the first data set.
func selectDataSet(data chartdata.Data, name string) (*chartdata.DataSet, int, error) {
	sets := data.DataSets()
	if len(sets) == 0 {
		return nil, -1, chartdata.ErrEmptyDataSet
	}
	if name == "" {
		return sets[0], 0, nil
	}
	for i, s := range sets {
		if strings.EqualFold(s.Label(), name) {
			return s, i, nil
		}
	}
	if i, err := strconv.Atoi(name); err == nil && i >= 0 && i < len(sets) {
		return sets[i], i, nil
	}
	return nil, -1, fmt.Errorf("data set %q not found", name)
}
