package indicator

import (
	"fmt"
	"strings"

	"github.com/ukaji3/chartdata-go/pkg/chartdata"
)

// DataSets computes the named indicator ("sma", "ema", "macd" or "kdj") over
// a candle data set and returns its lines as line data sets. A period of 0
// uses the indicator's default; MACD always uses the default periods.
func DataSets(set *chartdata.DataSet, name string, period int) ([]*chartdata.DataSet, error) {
	type line struct {
		label  string
		values []float64
	}
	var lines []line

	switch strings.ToLower(name) {
	case "sma", "ema":
		if period <= 0 {
			period = 5
		}
		closes, err := Closes(set)
		if err != nil {
			return nil, err
		}
		values := SMA(closes, period)
		if strings.EqualFold(name, "ema") {
			values = EMA(closes, period)
		}
		lines = append(lines, line{fmt.Sprintf("%s%d", strings.ToUpper(name), period), values})
	case "macd":
		r, err := MACD(set, MACDFast, MACDSlow, MACDSignal)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line{"DIF", r.DIF}, line{"DEA", r.DEA}, line{"MACD", r.Histogram})
	case "kdj":
		if period <= 0 {
			period = KDJPeriod
		}
		r, err := KDJ(set, period)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line{"K", r.K}, line{"D", r.D}, line{"J", r.J})
	default:
		return nil, fmt.Errorf("unknown indicator %q", name)
	}

	out := make([]*chartdata.DataSet, 0, len(lines))
	for _, l := range lines {
		s, err := LineDataSet(l.label, set, l.values)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
