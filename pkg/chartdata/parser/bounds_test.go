package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestDetectDataRange(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "B2", "x")
	f.SetCellValue("Sheet1", "C2", "y")
	f.SetCellValue("Sheet1", "B3", 1)
	f.SetCellValue("Sheet1", "D5", 4)

	result, err := DetectDataRange(f, "Sheet1", DefaultDetectionParams())
	if err != nil {
		t.Fatalf("DetectDataRange failed: %v", err)
	}
	if result != "B2:D5" {
		t.Errorf("DetectDataRange() = %q, expected %q", result, "B2:D5")
	}
}

func TestDetectRegionSparse(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		ok   bool
	}{
		{"empty", nil, false},
		{"single cell", [][]string{{"a"}}, false},
		{"dense", [][]string{{"a", "b"}, {"1", "2"}}, true},
		{"too sparse", [][]string{{"a"}, {}, {}, {}, {}, {}, {}, {}, {}, {}, {"", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "b"}}, false},
	}

	for _, tt := range tests {
		_, ok := detectRegion(tt.rows, DefaultDetectionParams())
		if ok != tt.ok {
			t.Errorf("detectRegion(%s) = %v, expected %v", tt.name, ok, tt.ok)
		}
	}
}
