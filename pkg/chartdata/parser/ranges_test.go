package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
	"github.com/xuri/excelize/v2"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected models.CellRange
	}{
		{"A1:C3", models.CellRange{R1: 1, C1: 1, R2: 3, C2: 3}},
		{"Sheet1!B2", models.CellRange{Sheet: "Sheet1", R1: 2, C1: 2, R2: 2, C2: 2}},
		{"'Sheet 1'!$A$1:$D$10", models.CellRange{Sheet: "Sheet 1", R1: 1, C1: 1, R2: 10, C2: 4}},
		{"'Bob''s data'!$B$5:$A$2", models.CellRange{Sheet: "Bob's data", R1: 2, C1: 1, R2: 5, C2: 2}},
		{"=Data!$AA$3:$AB$4", models.CellRange{Sheet: "Data", R1: 3, C1: 27, R2: 4, C2: 28}},
	}

	for _, tt := range tests {
		result, err := ParseRange(tt.input)
		if err != nil {
			t.Errorf("ParseRange(%q) failed: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, input := range []string{"", "Sheet1!", "A1:B2:C3", "not a range"} {
		if _, err := ParseRange(input); err == nil {
			t.Errorf("ParseRange(%q) = nil error, expected an error", input)
		}
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		input    models.CellRange
		expected string
	}{
		{models.CellRange{R1: 1, C1: 1, R2: 3, C2: 2}, "$A$1:$B$3"},
		{models.CellRange{Sheet: "Data", R1: 2, C1: 3, R2: 2, C2: 3}, "'Data'!$C$2"},
		{models.CellRange{Sheet: "Bob's", R1: 1, C1: 1, R2: 2, C2: 1}, "'Bob''s'!$A$1:$A$2"},
	}

	for _, tt := range tests {
		result := FormatRange(tt.input)
		if result != tt.expected {
			t.Errorf("FormatRange(%+v) = %q, expected %q", tt.input, result, tt.expected)
		}
		back, err := ParseRange(result)
		if err != nil || back != tt.input {
			t.Errorf("ParseRange(%q) = %+v, %v, expected %+v", result, back, err, tt.input)
		}
	}
}

func TestExtractNamedRanges(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	names := []*excelize.DefinedName{
		{Name: "Sales", RefersTo: "Sheet1!$A$1:$B$3"},
		{Name: "Pair", RefersTo: "Sheet1!$A$1,Sheet1!$C$1"},
	}
	for _, dn := range names {
		if err := f.SetDefinedName(dn); err != nil {
			t.Fatalf("SetDefinedName(%s) failed: %v", dn.Name, err)
		}
	}

	ranges, err := ExtractNamedRanges(f)
	if err != nil {
		t.Fatalf("ExtractNamedRanges failed: %v", err)
	}

	expected := map[string]models.CellRange{
		"Sales": {Sheet: "Sheet1", R1: 1, C1: 1, R2: 3, C2: 2},
	}
	if !reflect.DeepEqual(ranges, expected) {
		t.Errorf("ExtractNamedRanges() = %+v, expected %+v", ranges, expected)
	}
}

func TestReadRangeValues(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	setRows(t, f, "Sheet1", [][]any{
		{"a", 1},
		{"b", 2.5},
	})

	values, err := ReadRangeValues(f, "Sheet1", models.CellRange{R1: 1, C1: 1, R2: 2, C2: 2})
	if err != nil {
		t.Fatalf("ReadRangeValues failed: %v", err)
	}
	expected := []string{"a", "1", "b", "2.5"}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("ReadRangeValues() = %v, expected %v", values, expected)
	}
}
