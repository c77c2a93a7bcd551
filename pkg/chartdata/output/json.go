// Package output serializes chart documents to JSON.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ukaji3/chartdata-go/pkg/chartdata/models"
)

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToJSON serializes a chart document.
func ToJSON(doc *models.ChartDoc, pretty bool) ([]byte, error) {
	return marshal(doc, pretty)
}

// WorkbookToJSON serializes the charts found in a workbook.
func WorkbookToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes the charts of one sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// FromJSON parses a chart document. Unknown fields are rejected.
func FromJSON(data []byte) (*models.ChartDoc, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc models.ChartDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode chart document: %w", err)
	}
	if doc.DataSets == nil {
		return nil, fmt.Errorf("decode chart document: missing data_sets")
	}
	return &doc, nil
}
