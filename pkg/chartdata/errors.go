package chartdata

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is neither a valid xlsx workbook nor a chart document.
var ErrInvalidFormat = errors.New("invalid input format")

// ErrUnknownKind indicates a data set kind that is not supported.
var ErrUnknownKind = errors.New("unknown data set kind")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptyDataSet indicates an operation that needs at least one entry.
var ErrEmptyDataSet = errors.New("data set is empty")

// ErrTooFewDataSets indicates bar grouping was requested with fewer than two data sets.
var ErrTooFewDataSets = errors.New("bar grouping needs at least 2 data sets")

// LoadError represents an error while loading one part of a workbook.
type LoadError struct {
	SheetName string
	Component string // "series", "charts", "ranges"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName, component string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
