package chartdata

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultDecimals is the precision of the formatter a data set gets when none is configured.
const DefaultDecimals = 1

// ValueFormatter turns an entry value into its label text.
type ValueFormatter interface {
	StringForValue(value float64, entry *Entry, dataSetIndex int) string
}

// ValueFormatterFunc adapts a plain function to ValueFormatter.
type ValueFormatterFunc func(value float64, entry *Entry, dataSetIndex int) string

func (f ValueFormatterFunc) StringForValue(value float64, entry *Entry, dataSetIndex int) string {
	return f(value, entry, dataSetIndex)
}

// DefaultValueFormatter prints values with a fixed number of decimals and
// locale-aware digit grouping.
type DefaultValueFormatter struct {
	decimals int
	format   string
	printer  *message.Printer
}

// NewDefaultValueFormatter creates a formatter for the English locale.
func NewDefaultValueFormatter(decimals int) *DefaultValueFormatter {
	return NewLocalizedValueFormatter(decimals, language.English)
}

// NewLocalizedValueFormatter creates a formatter grouping digits the way tag does.
func NewLocalizedValueFormatter(decimals int, tag language.Tag) *DefaultValueFormatter {
	decimals = max(decimals, 0)
	return &DefaultValueFormatter{
		decimals: decimals,
		format:   "%." + strconv.Itoa(decimals) + "f",
		printer:  message.NewPrinter(tag),
	}
}

// Decimals returns the configured precision.
func (f *DefaultValueFormatter) Decimals() int {
	return f.decimals
}

func (f *DefaultValueFormatter) StringForValue(value float64, _ *Entry, _ int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return f.printer.Sprintf(f.format, value)
}

// RoundToNextSignificant rounds number to its leading significant digit.
func RoundToNextSignificant(number float64) float64 {
	if math.IsInf(number, 0) || math.IsNaN(number) || number == 0 {
		return number
	}
	d := math.Ceil(math.Log10(math.Abs(number)))
	pw := 1 - int(d)
	magnitude := math.Pow(10, float64(pw))
	shifted := math.Round(number * magnitude)
	return shifted / magnitude
}

// Decimals returns the number of decimals needed to show values of the
// magnitude of number with two significant digits after the leading one.
func Decimals(number float64) int {
	if math.IsNaN(number) || math.IsInf(number, 0) || number == 0 {
		return 0
	}
	i := RoundToNextSignificant(number)
	if math.IsInf(i, 0) || math.IsNaN(i) {
		return 0
	}
	return int(math.Ceil(-math.Log10(math.Abs(i)))) + 2
}
