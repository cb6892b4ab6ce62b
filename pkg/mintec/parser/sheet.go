package parser

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheet indicates a workbook without any worksheet.
var ErrNoSheet = errors.New("workbook has no sheet")

// Grid is a 2-D grid of cells addressed by 1-based column and row.
type Grid interface {
	// CellAt returns the cell at the given address. Cells outside the used
	// range are blank.
	CellAt(col, row int) (Cell, error)
	// Date1904 reports whether serial dates count from 1904 instead of 1900.
	Date1904() bool
}

// Sheet is a Grid backed by one worksheet of an excelize workbook.
// Every access reads the workbook again; nothing is cached.
type Sheet struct {
	f        *excelize.File
	name     string
	date1904 bool
}

// NewSheet returns the named worksheet of f as a Grid.
func NewSheet(f *excelize.File, name string) *Sheet {
	s := &Sheet{f: f, name: name}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		s.date1904 = *props.Date1904
	}
	return s
}

// FirstSheet returns the first worksheet of f.
func FirstSheet(f *excelize.File) (*Sheet, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}
	return NewSheet(f, sheets[0]), nil
}

// Name returns the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Date1904 implements Grid.
func (s *Sheet) Date1904() bool {
	return s.date1904
}

// CellAt implements Grid.
func (s *Sheet) CellAt(col, row int) (Cell, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Cell{}, err
	}
	typ, err := s.f.GetCellType(s.name, cellName)
	if err != nil {
		return Cell{}, fmt.Errorf("cell type of %s: %w", cellName, err)
	}
	raw, err := s.f.GetCellValue(s.name, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		return Cell{}, fmt.Errorf("cell value of %s: %w", cellName, err)
	}
	return parseValue(typ, raw), nil
}
