package chartdata

import (
	"math"
	"reflect"
	"testing"

	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
)

func ptr(v float64) *float64 { return &v }

func setDoc(label, kind string, entries ...models.EntryDoc) models.DataSetDoc {
	return models.DataSetDoc{Label: label, Kind: kind, Entries: entries}
}

func TestFromDocContainer(t *testing.T) {
	line := setDoc("l", "line", models.EntryDoc{X: 0, Y: ptr(1)})
	bar := setDoc("b", "bar", models.EntryDoc{X: 0, Y: ptr(2)})
	pie := setDoc("p", "pie", models.EntryDoc{Y: ptr(3), Label: "a"})
	radar := setDoc("r", "radar", models.EntryDoc{Y: ptr(4)})

	tests := []struct {
		name     string
		sets     []models.DataSetDoc
		expected string
		ok       bool
	}{
		{"empty", nil, "*chartdata.ChartData", true},
		{"line", []models.DataSetDoc{line, line}, "*chartdata.ChartData", true},
		{"bar", []models.DataSetDoc{bar}, "*chartdata.BarData", true},
		{"pie", []models.DataSetDoc{pie}, "*chartdata.PieData", true},
		{"radar", []models.DataSetDoc{radar}, "*chartdata.ChartData", true},
		{"line and bar", []models.DataSetDoc{line, bar}, "*chartdata.CombinedData", true},
		{"two pies", []models.DataSetDoc{pie, pie}, "", false},
		{"pie and line", []models.DataSetDoc{pie, line}, "", false},
		{"radar and bar", []models.DataSetDoc{radar, bar}, "", false},
	}

	for _, tt := range tests {
		data, err := FromDoc(models.ChartDoc{DataSets: tt.sets}, DefaultOptions())
		if !tt.ok {
			if err == nil {
				t.Errorf("%s: FromDoc succeeded, expected an error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: FromDoc failed: %v", tt.name, err)
			continue
		}
		if got := reflect.TypeOf(data).String(); got != tt.expected {
			t.Errorf("%s: FromDoc() type = %s, expected %s", tt.name, got, tt.expected)
		}
		if data.DataSetCount() != len(tt.sets) {
			t.Errorf("%s: DataSetCount() = %d, expected %d", tt.name, data.DataSetCount(), len(tt.sets))
		}
	}
}

func TestFromDocBarWidth(t *testing.T) {
	doc := models.ChartDoc{
		BarWidth: ptr(0.5),
		DataSets: []models.DataSetDoc{setDoc("b", "bar", models.EntryDoc{X: 0, Y: ptr(1)})},
	}
	data, err := FromDoc(doc, DefaultOptions())
	if err != nil {
		t.Fatalf("FromDoc failed: %v", err)
	}
	bars, ok := data.(*BarData)
	if !ok {
		t.Fatalf("FromDoc() = %T, expected *BarData", data)
	}
	if bars.BarWidth != 0.5 {
		t.Errorf("BarWidth = %v, expected 0.5", bars.BarWidth)
	}

	back := ToDoc("b", bars)
	if back.BarWidth == nil || *back.BarWidth != 0.5 {
		t.Errorf("ToDoc() bar width = %v, expected 0.5", back.BarWidth)
	}
}

func TestFromDocErrors(t *testing.T) {
	tests := []struct {
		name string
		set  models.DataSetDoc
	}{
		{"unknown kind", setDoc("x", "surface")},
		{"bad axis", models.DataSetDoc{Label: "x", Kind: "line", Axis: "top"}},
		{"bad color", models.DataSetDoc{Label: "x", Kind: "line", Colors: []string{"blue"}}},
		{"candle without prices", setDoc("c", "candle", models.EntryDoc{X: 0, Y: ptr(1)})},
	}

	for _, tt := range tests {
		if _, err := FromDoc(models.ChartDoc{DataSets: []models.DataSetDoc{tt.set}}, DefaultOptions()); err == nil {
			t.Errorf("%s: FromDoc succeeded, expected an error", tt.name)
		}
	}
}

func TestMissingValues(t *testing.T) {
	doc := setDoc("l", "line", models.EntryDoc{X: 0, Y: ptr(1)}, models.EntryDoc{X: 1}, models.EntryDoc{X: 2, Y: ptr(3)})
	s, err := DataSetFromDoc(doc)
	if err != nil {
		t.Fatalf("DataSetFromDoc failed: %v", err)
	}

	if !math.IsNaN(s.EntryForIndex(1).Y()) {
		t.Errorf("missing y = %v, expected NaN", s.EntryForIndex(1).Y())
	}
	if s.YMin() != 1 || s.YMax() != 3 {
		t.Errorf("y extrema = [%v, %v], expected [1, 3]", s.YMin(), s.YMax())
	}

	back := DataSetToDoc(s)
	if back.Entries[1].Y != nil {
		t.Errorf("missing y written as %v, expected nil", *back.Entries[1].Y)
	}
	if back.Entries[2].Y == nil || *back.Entries[2].Y != 3 {
		t.Errorf("entry 2 y = %v, expected 3", back.Entries[2].Y)
	}
}

func TestDataSetDocRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		doc  models.DataSetDoc
	}{
		{"stacked", models.DataSetDoc{
			Label:       "s",
			Kind:        "bar",
			Axis:        "right",
			Colors:      []string{"#ff0000", "#00ff0080"},
			StackLabels: []string{"a", "b"},
			Entries:     []models.EntryDoc{{X: 1, Y: ptr(3), YValues: []float64{1, 2}, Label: "Q1"}},
		}},
		{"candle", models.DataSetDoc{
			Label:   "c",
			Kind:    "candle",
			Axis:    "left",
			Colors:  []string{"#8ceaff"},
			Entries: []models.EntryDoc{{X: 0, Y: ptr(7), OHLC: &models.OHLCDoc{High: 10, Low: 4, Open: 5, Close: 8}}},
		}},
		{"bubble", models.DataSetDoc{
			Label:   "b",
			Kind:    "bubble",
			Axis:    "left",
			Colors:  []string{"#8ceaff"},
			Entries: []models.EntryDoc{{X: 2, Y: ptr(4), Size: ptr(9)}},
		}},
		{"pie", models.DataSetDoc{
			Label:   "p",
			Kind:    "pie",
			Axis:    "left",
			Colors:  []string{"#8ceaff"},
			Entries: []models.EntryDoc{{X: 0, Y: ptr(3), Label: "a"}, {X: 1, Y: ptr(5), Label: "b"}},
		}},
	}

	for _, tt := range tests {
		s, err := DataSetFromDoc(tt.doc)
		if err != nil {
			t.Errorf("%s: DataSetFromDoc failed: %v", tt.name, err)
			continue
		}
		if got := DataSetToDoc(s); !reflect.DeepEqual(got, tt.doc) {
			t.Errorf("%s: DataSetToDoc(DataSetFromDoc(doc)) = %+v, expected %+v", tt.name, got, tt.doc)
		}
	}
}

func TestFromDocDecimals(t *testing.T) {
	doc := models.ChartDoc{DataSets: []models.DataSetDoc{
		setDoc("l", "line", models.EntryDoc{X: 0, Y: ptr(0)}, models.EntryDoc{X: 1, Y: ptr(8)}),
	}}

	tests := []struct {
		decimals int
		expected int
	}{
		{-1, 2},
		{0, 0},
		{3, 3},
	}
	for _, tt := range tests {
		opts := DefaultOptions()
		opts.Decimals = tt.decimals
		data, err := FromDoc(doc, opts)
		if err != nil {
			t.Fatalf("FromDoc failed: %v", err)
		}
		f, ok := data.DataSets()[0].ValueFormatter().(*DefaultValueFormatter)
		if !ok || f.Decimals() != tt.expected {
			t.Errorf("Decimals %d: formatter = %v, expected %d decimals", tt.decimals, data.DataSets()[0].ValueFormatter(), tt.expected)
		}
	}
}
