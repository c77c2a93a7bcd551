package chartdata

import (
	"math"
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultValueFormatter(t *testing.T) {
	tests := []struct {
		decimals int
		tag      language.Tag
		value    float64
		expected string
	}{
		{2, language.English, 1234.5, "1,234.50"},
		{1, language.English, 1234.56, "1,234.6"},
		{0, language.English, 7, "7"},
		{-3, language.English, 7.4, "7"},
		{2, language.German, 1234.5, "1.234,50"},
		{2, language.English, math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		f := NewLocalizedValueFormatter(tt.decimals, tt.tag)
		if got := f.StringForValue(tt.value, nil, 0); got != tt.expected {
			t.Errorf("StringForValue(%v) with %d decimals (%v) = %q, expected %q",
				tt.value, tt.decimals, tt.tag, got, tt.expected)
		}
	}
}

func TestValueFormatterFunc(t *testing.T) {
	var f ValueFormatter = ValueFormatterFunc(func(v float64, e *Entry, _ int) string {
		return e.Label
	})
	if got := f.StringForValue(1, &Entry{Label: "x"}, 0); got != "x" {
		t.Errorf("StringForValue() = %q, expected %q", got, "x")
	}
}

func TestRoundToNextSignificant(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{1234, 1000},
		{0.0456, 0.05},
		{-87, -90},
		{0, 0},
	}

	for _, tt := range tests {
		if got := RoundToNextSignificant(tt.input); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("RoundToNextSignificant(%v) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestDecimals(t *testing.T) {
	tests := []struct {
		input    float64
		expected int
	}{
		{0.0456, 4},
		{1234, -1},
		{0, 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := Decimals(tt.input); got != tt.expected {
			t.Errorf("Decimals(%v) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}
