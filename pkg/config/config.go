// Package config loads the chartdata CLI configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ukaji3/chartdata-go/pkg/chartdata"
	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
)

const (
	DefaultConfigPath = "config/chartdata.json"
	defaultLayout     = models.LayoutColumns
	defaultKind       = "line"
	defaultRounding   = "closest"
	defaultLogLevel   = "warn"
	defaultWorkers    = 4
)

var layouts = []models.Layout{
	models.LayoutColumns,
	models.LayoutStacked,
	models.LayoutOHLC,
	models.LayoutBubble,
	models.LayoutPie,
}

type Config struct {
	Layout     models.Layout `json:"layout"`
	HeaderRows int           `json:"header_rows"`
	Kind       string        `json:"kind"`
	// Decimals fixes the value label precision; negative means suggested by the data.
	Decimals  int     `json:"decimals"`
	Rounding  string  `json:"rounding"`
	Tolerance float64 `json:"tolerance"`
	AddChart  bool    `json:"add_chart"`
	LogLevel  string  `json:"log_level"`
	// Workers bounds how many files merge loads at once.
	Workers int `json:"workers"`
}

func DefaultConfig() Config {
	return Config{
		Layout:     defaultLayout,
		HeaderRows: 1,
		Kind:       defaultKind,
		Decimals:   -1,
		Rounding:   defaultRounding,
		AddChart:   true,
		LogLevel:   defaultLogLevel,
		Workers:    defaultWorkers,
	}
}

func ResolveConfigPath() string {
	if fromEnv := os.Getenv("CHARTDATA_CONFIG"); fromEnv != "" {
		return fromEnv
	}
	return DefaultConfigPath
}

// LoadConfig reads path over the defaults. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Layout == "" {
		c.Layout = defaultLayout
	}
	if c.Kind == "" {
		c.Kind = defaultKind
	}
	if c.Rounding == "" {
		c.Rounding = defaultRounding
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Workers == 0 {
		c.Workers = defaultWorkers
	}
}

func (c Config) Validate() error {
	valid := false
	for _, l := range layouts {
		if c.Layout == l {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("invalid layout: %q", c.Layout)
	}
	if c.HeaderRows < 0 {
		return fmt.Errorf("header_rows must be >= 0")
	}
	if _, err := chartdata.ParseKind(c.Kind); err != nil {
		return err
	}
	if _, err := chartdata.ParseRounding(c.Rounding); err != nil {
		return err
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must be >= 0")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be > 0")
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log_level: %q", c.LogLevel)
	}
	return level, nil
}

// Options converts the configuration into load and save options.
func (c Config) Options() chartdata.Options {
	opts := chartdata.DefaultOptions()
	opts.Layout = c.Layout
	opts.HeaderRows = c.HeaderRows
	if kind, err := chartdata.ParseKind(c.Kind); err == nil {
		opts.Kind = kind
	}
	opts.Decimals = c.Decimals
	opts.AddChart = c.AddChart
	return opts
}

// RoundingMode returns the parsed Rounding, RoundClosest when it is invalid.
func (c Config) RoundingMode() chartdata.Rounding {
	r, _ := chartdata.ParseRounding(c.Rounding)
	return r
}
