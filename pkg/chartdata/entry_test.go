package chartdata

import (
	"reflect"
	"testing"
)

func TestStackedEntry(t *testing.T) {
	tests := []struct {
		values   []float64
		y        float64
		positive float64
		negative float64
	}{
		{[]float64{1, -2, 3}, 2, 4, 2},
		{[]float64{5, 5}, 10, 10, 0},
		{[]float64{-1, -4}, -5, 0, 5},
		{[]float64{}, 0, 0, 0},
	}

	for _, tt := range tests {
		e := NewStackedEntry(0, tt.values)
		var sum float64
		for _, v := range e.YValues() {
			sum += v
		}
		if e.Y() != tt.y || sum != e.Y() {
			t.Errorf("NewStackedEntry(%v).Y() = %v, expected %v", tt.values, e.Y(), tt.y)
		}
		if e.PositiveSum() != tt.positive || e.NegativeSum() != tt.negative {
			t.Errorf("NewStackedEntry(%v) sums = %v, %v, expected %v, %v",
				tt.values, e.PositiveSum(), e.NegativeSum(), tt.positive, tt.negative)
		}
		if e.PositiveSum()+(-e.NegativeSum()) != e.Y() {
			t.Errorf("NewStackedEntry(%v): positive + (-negative) = %v, expected %v",
				tt.values, e.PositiveSum()-e.NegativeSum(), e.Y())
		}
		if !e.IsStacked() {
			t.Errorf("NewStackedEntry(%v).IsStacked() = false, expected true", tt.values)
		}
	}
}

func TestStackedEntryRanges(t *testing.T) {
	e := NewStackedEntry(0, []float64{1, -2, 3})

	expected := []Range{{From: 0, To: 1}, {From: -2, To: 0}, {From: 1, To: 4}}
	if got := e.Ranges(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Ranges() = %v, expected %v", got, expected)
	}
	if e.StackSize() != 3 {
		t.Errorf("StackSize() = %d, expected 3", e.StackSize())
	}

	sums := []struct {
		index    int
		expected float64
	}{
		{0, 1},
		{1, 3},
		{2, 0},
	}
	for _, tt := range sums {
		if got := e.SumBelow(tt.index); got != tt.expected {
			t.Errorf("SumBelow(%d) = %v, expected %v", tt.index, got, tt.expected)
		}
	}
}

func TestRange(t *testing.T) {
	r := Range{From: -1, To: 2}
	if !r.Contains(0) || !r.Contains(2) || r.Contains(-1) {
		t.Errorf("Range%v.Contains gave unexpected results", r)
	}
	if !r.IsLarger(3) || r.IsLarger(2) {
		t.Errorf("Range%v.IsLarger gave unexpected results", r)
	}
	if !r.IsSmaller(-2) || r.IsSmaller(-1) {
		t.Errorf("Range%v.IsSmaller gave unexpected results", r)
	}
}

func TestCandleEntry(t *testing.T) {
	e := NewCandleEntry(1, 10, 4, 5, 8)

	if e.Y() != 7 {
		t.Errorf("Y() = %v, expected 7", e.Y())
	}
	if e.ShadowRange() != 6 || e.BodyRange() != 3 {
		t.Errorf("ShadowRange(), BodyRange() = %v, %v, expected 6, 3", e.ShadowRange(), e.BodyRange())
	}
	if !e.IsIncreasing() {
		t.Error("IsIncreasing() = false, expected true")
	}
	o, ok := e.OHLC()
	if !ok || o != (OHLC{High: 10, Low: 4, Open: 5, Close: 8}) {
		t.Errorf("OHLC() = %v, %v", o, ok)
	}

	plain := NewEntry(1, 2)
	if plain.IsOHLC() || plain.ShadowRange() != 0 || plain.IsIncreasing() {
		t.Error("plain entry reports candle properties")
	}
}

func TestEntryCopy(t *testing.T) {
	e := NewStackedEntry(2, []float64{1, 2})
	e.Label = "a"

	c := e.Copy()
	c.Label = "b"
	c.yValues[0] = 100

	if e.Label != "a" || e.YValues()[0] != 1 {
		t.Errorf("Copy shares state with the original: %v", e)
	}
	if c.X() != 2 || c.Y() != 3 {
		t.Errorf("Copy() = %v, expected x 2 y 3", c)
	}

	candle := NewCandleEntry(0, 3, 1, 2, 2)
	cc := candle.Copy()
	cc.ohlc.High = 50
	if o, _ := candle.OHLC(); o.High != 3 {
		t.Error("Copy shares candle prices with the original")
	}
}

func TestYValuesIsACopy(t *testing.T) {
	e := NewStackedEntry(0, []float64{1, 2})
	e.YValues()[0] = 9
	if e.YValues()[0] != 1 {
		t.Error("YValues() exposes internal state")
	}
	if NewEntry(0, 1).YValues() != nil {
		t.Error("YValues() of a plain entry should be nil")
	}
}

func TestDataSetSetYValues(t *testing.T) {
	e := NewStackedEntry(1, []float64{1, 2})
	s := NewDataSet("b", KindBar, e, NewEntry(2, 1))
	if s.YMin() != 0 || s.YMax() != 3 {
		t.Fatalf("y extrema = [%v, %v], expected [0, 3]", s.YMin(), s.YMax())
	}

	if !s.SetYValues(e, []float64{4, -5, 2}) {
		t.Fatal("SetYValues() = false for an entry of the set")
	}
	if e.Y() != 1 || e.PositiveSum() != 6 || e.NegativeSum() != 5 {
		t.Errorf("y, sums = %v, %v, %v, expected 1, 6, 5", e.Y(), e.PositiveSum(), e.NegativeSum())
	}
	expected := []Range{{From: 0, To: 4}, {From: -5, To: 0}, {From: 4, To: 6}}
	if got := e.Ranges(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Ranges() = %v, expected %v", got, expected)
	}
	if s.YMin() != -5 || s.YMax() != 6 || s.StackSize() != 3 {
		t.Errorf("y extrema, stack size = [%v, %v], %d, expected [-5, 6], 3", s.YMin(), s.YMax(), s.StackSize())
	}

	if s.SetYValues(NewStackedEntry(1, []float64{1}), []float64{9}) {
		t.Error("SetYValues() = true for an entry outside the set")
	}
}
