// Package parser provides typed access to the cells of a spreadsheet.
package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrNotANumber indicates a cell that should hold a number holds something else.
var ErrNotANumber = errors.New("expected a number")

// ErrNotADate indicates a cell that should hold a date holds something else.
var ErrNotADate = errors.New("expected a date")

// CellKind tags the content of a Cell.
type CellKind int

const (
	// Blank is a cell without content.
	Blank CellKind = iota
	// Text is a cell holding a string.
	Text
	// Numeric is a cell holding a number (dates are stored as serial numbers).
	Numeric
)

// Cell is the normalized content of one spreadsheet cell.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
}

// TextCell returns a Text cell.
func TextCell(s string) Cell {
	return Cell{Kind: Text, Str: s}
}

// NumericCell returns a Numeric cell.
func NumericCell(v float64) Cell {
	return Cell{Kind: Numeric, Num: v}
}

// IsEmpty reports whether the cell is blank or holds only whitespace.
func (c Cell) IsEmpty() bool {
	switch c.Kind {
	case Blank:
		return true
	case Text:
		return strings.TrimSpace(c.Str) == ""
	}
	return false
}

// Text returns the trimmed string value of the cell. Whole numbers are
// rendered without decimals and zero is rendered as "".
func (c Cell) Text() string {
	switch c.Kind {
	case Text:
		return strings.TrimSpace(c.Str)
	case Numeric:
		if c.Num == 0 {
			return ""
		}
		if c.Num == math.Trunc(c.Num) {
			return strconv.FormatFloat(c.Num, 'f', 0, 64)
		}
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	}
	return ""
}

// Float returns the numeric value of the cell. Text is accepted with either
// a decimal point or a decimal comma. Blank and empty text yield 0.
func (c Cell) Float() (float64, error) {
	switch c.Kind {
	case Numeric:
		return c.Num, nil
	case Text:
		s := strings.ReplaceAll(strings.TrimSpace(c.Str), ",", ".")
		if s == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrNotANumber
		}
		return v, nil
	}
	return 0, nil
}

// Int returns the numeric value of the cell rounded to the nearest integer,
// ties away from zero. Values beyond the 32-bit range are clamped to it.
func (c Cell) Int() (int, error) {
	v, err := c.Float()
	if err != nil {
		return 0, err
	}
	v = math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Round(v)))
	return int(v), nil
}

// dateLayouts are the textual date formats accepted in text cells.
var dateLayouts = []string{
	"02.01.2006",
	"2.1.2006",
	"2006-01-02",
	time.RFC3339,
}

// Time returns the date held by the cell. Numeric cells are interpreted as
// Excel serial dates. It returns nil without error when the cell is empty.
func (c Cell) Time(date1904 bool) (*time.Time, error) {
	if c.IsEmpty() {
		return nil, nil
	}
	switch c.Kind {
	case Numeric:
		t, err := excelize.ExcelDateToTime(c.Num, date1904)
		if err != nil {
			return nil, ErrNotADate
		}
		return &t, nil
	case Text:
		s := c.Text()
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t, nil
			}
		}
	}
	return nil, ErrNotADate
}

// ColumnName returns the letter name of a 1-based column index (1 is "A").
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return "?"
	}
	return name
}

// parseValue normalizes a raw cell value read from a workbook.
// String-typed cells stay text; other non-empty values become numbers when
// they parse as one.
func parseValue(typ excelize.CellType, raw string) Cell {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError, excelize.CellTypeBool:
		return TextCell(raw)
	}
	if raw == "" {
		return Cell{}
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return NumericCell(v)
	}
	return TextCell(raw)
}
