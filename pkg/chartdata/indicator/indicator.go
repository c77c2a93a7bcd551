// Package indicator computes technical indicators over candle data sets.
//
// Every indicator is computed in one forward pass and returns one value per
// candle, aligned with the candles in ascending x order. Values that are not
// defined yet are NaN.
package indicator

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/ukaji3/chartdata-go/pkg/chartdata"
)

// Default periods.
const (
	MACDFast   = 12
	MACDSlow   = 26
	MACDSignal = 9
	KDJPeriod  = 9
)

// kdjSeed is the value K and D start from before the first candle.
const kdjSeed = 50.0

// candles returns the prices of the candle entries of set.
func candles(set *chartdata.DataSet) ([]chartdata.OHLC, error) {
	if set == nil || set.EntryCount() == 0 {
		return nil, chartdata.ErrEmptyDataSet
	}
	out := make([]chartdata.OHLC, 0, set.EntryCount())
	for i, e := range set.All() {
		o, ok := e.OHLC()
		if !ok {
			return nil, fmt.Errorf("entry %d of %q is not a candle", i, set.Label())
		}
		out = append(out, o)
	}
	return out, nil
}

// Closes returns the close prices of a candle data set.
func Closes(set *chartdata.DataSet) ([]float64, error) {
	cs, err := candles(set)
	if err != nil {
		return nil, err
	}
	closes := make([]float64, len(cs))
	for i, c := range cs {
		closes[i] = c.Close
	}
	return closes, nil
}

// SMA is the simple moving average over n values. The first n-1 values are NaN.
func SMA(values []float64, n int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		if n <= 0 || i < n-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = stats.Mean(values[i-n+1 : i+1])
	}
	return out
}

// EMA is the exponential moving average with alpha 2/(n+1). While fewer than
// n values are seen it is the running mean, so it is defined from the first value.
func EMA(values []float64, n int) []float64 {
	out := make([]float64, len(values))
	if n <= 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	alpha := 2 / float64(n+1)
	for i, v := range values {
		if i < n {
			out[i] = stats.Mean(values[:i+1])
			continue
		}
		out[i] = alpha*v + (1-alpha)*out[i-1]
	}
	return out
}

// MACDResult holds the three MACD lines.
type MACDResult struct {
	// DIF is the fast EMA minus the slow EMA of the closes.
	DIF []float64
	// DEA is the signal EMA of DIF.
	DEA []float64
	// Histogram is 2*(DIF-DEA).
	Histogram []float64
}

// MACD computes the moving average convergence divergence of a candle data set.
func MACD(set *chartdata.DataSet, fast, slow, signal int) (MACDResult, error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return MACDResult{}, fmt.Errorf("macd periods must be positive, got %d/%d/%d", fast, slow, signal)
	}
	closes, err := Closes(set)
	if err != nil {
		return MACDResult{}, err
	}

	fastEMA, slowEMA := EMA(closes, fast), EMA(closes, slow)
	r := MACDResult{
		DIF:       make([]float64, len(closes)),
		Histogram: make([]float64, len(closes)),
	}
	for i := range closes {
		r.DIF[i] = fastEMA[i] - slowEMA[i]
	}
	r.DEA = EMA(r.DIF, signal)
	for i := range closes {
		r.Histogram[i] = 2 * (r.DIF[i] - r.DEA[i])
	}
	return r, nil
}

// KDJResult holds the stochastic oscillator lines.
type KDJResult struct {
	RSV []float64
	K   []float64
	D   []float64
	J   []float64
}

// KDJ computes the stochastic oscillator over n-candle windows. RSV is the
// close's position within the window's low..high range in percent, 100 when
// the range is flat. K and D smooth RSV and K by 1/3 starting from 50, and
// J = 3K - 2D.
func KDJ(set *chartdata.DataSet, n int) (KDJResult, error) {
	if n <= 0 {
		return KDJResult{}, fmt.Errorf("kdj period must be positive, got %d", n)
	}
	cs, err := candles(set)
	if err != nil {
		return KDJResult{}, err
	}

	r := KDJResult{
		RSV: make([]float64, len(cs)),
		K:   make([]float64, len(cs)),
		D:   make([]float64, len(cs)),
		J:   make([]float64, len(cs)),
	}
	highs := make([]float64, len(cs))
	lows := make([]float64, len(cs))
	prevK, prevD := kdjSeed, kdjSeed
	for i, c := range cs {
		highs[i], lows[i] = c.High, c.Low
		start := max(0, i-n+1)
		_, high := stats.Bounds(highs[start : i+1])
		low, _ := stats.Bounds(lows[start : i+1])

		rsv := 100.0
		if high != low {
			rsv = (c.Close - low) / (high - low) * 100
		}
		k := (rsv + 2*prevK) / 3
		d := (k + 2*prevD) / 3

		r.RSV[i], r.K[i], r.D[i], r.J[i] = rsv, k, d, 3*k-2*d
		prevK, prevD = k, d
	}
	return r, nil
}

// LineDataSet builds a line data set plotting values at the x values of the
// entries of set. NaN values are left out.
func LineDataSet(label string, set *chartdata.DataSet, values []float64) (*chartdata.DataSet, error) {
	if len(values) != set.EntryCount() {
		return nil, fmt.Errorf("%d values for %d entries of %q", len(values), set.EntryCount(), set.Label())
	}
	style := chartdata.DefaultStyle(chartdata.KindLine)
	style.DrawCircles = false
	style.DrawValues = false
	style.HighlightEnabled = false
	style.LineMode = chartdata.LineCubicBezier

	entries := make([]*chartdata.Entry, 0, len(values))
	for i, e := range set.All() {
		if math.IsNaN(values[i]) {
			continue
		}
		entries = append(entries, chartdata.NewEntry(e.X(), values[i]))
	}
	return chartdata.NewDataSetWithOptions(label, chartdata.KindLine,
		chartdata.DataSetOptions{Axis: set.Axis(), Style: &style}, entries...), nil
}
