package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Addr is a cell address with 1-based column and row.
type Addr struct {
	Col int
	Row int
}

// ParseAddr parses an A1-style reference such as "B7" or "$B$7".
func ParseAddr(ref string) (Addr, error) {
	col, row, err := excelize.CellNameToCoordinates(strings.ReplaceAll(ref, "$", ""))
	if err != nil {
		return Addr{}, err
	}
	return Addr{Col: col, Row: row}, nil
}

// MustAddr is like ParseAddr but panics on malformed references.
// It is meant for layout constants.
func MustAddr(ref string) Addr {
	a, err := ParseAddr(ref)
	if err != nil {
		panic(err)
	}
	return a
}

// Below returns the address n rows further down.
func (a Addr) Below(n int) Addr {
	return Addr{Col: a.Col, Row: a.Row + n}
}

// ColumnName returns the letter name of the column.
func (a Addr) ColumnName() string {
	return ColumnName(a.Col)
}

func (a Addr) String() string {
	return fmt.Sprintf("%s%d", a.ColumnName(), a.Row)
}

// Area is an inclusive rectangle of cells.
type Area struct {
	// C1 is the start column (1-based).
	C1 int
	// R1 is the start row (1-based).
	R1 int
	// C2 is the end column (1-based, inclusive).
	C2 int
	// R2 is the end row (1-based, inclusive).
	R2 int
}

// ParseArea parses a range reference such as "B28:B47". A single cell
// reference yields a one-cell area.
func ParseArea(ref string) (Area, error) {
	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return Area{}, fmt.Errorf("invalid range %q", ref)
	}
	start, err := ParseAddr(parts[0])
	if err != nil {
		return Area{}, err
	}
	end := start
	if len(parts) == 2 {
		if end, err = ParseAddr(parts[1]); err != nil {
			return Area{}, err
		}
	}
	if end.Col < start.Col || end.Row < start.Row {
		return Area{}, fmt.Errorf("invalid range %q: end before start", ref)
	}
	return Area{C1: start.Col, R1: start.Row, C2: end.Col, R2: end.Row}, nil
}

// MustArea is like ParseArea but panics on malformed references.
func MustArea(ref string) Area {
	a, err := ParseArea(ref)
	if err != nil {
		panic(err)
	}
	return a
}

// Start returns the top-left address.
func (a Area) Start() Addr {
	return Addr{Col: a.C1, Row: a.R1}
}

// Size returns the number of cells in the area.
func (a Area) Size() int {
	return (a.C2 - a.C1 + 1) * (a.R2 - a.R1 + 1)
}

// Addrs returns all addresses row by row, top to bottom.
func (a Area) Addrs() []Addr {
	addrs := make([]Addr, 0, a.Size())
	for row := a.R1; row <= a.R2; row++ {
		for col := a.C1; col <= a.C2; col++ {
			addrs = append(addrs, Addr{Col: col, Row: row})
		}
	}
	return addrs
}

// CountFilled counts the non-empty cells within the given areas.
func CountFilled(g Grid, areas ...Area) (int, error) {
	count := 0
	for _, area := range areas {
		for _, a := range area.Addrs() {
			c, err := g.CellAt(a.Col, a.Row)
			if err != nil {
				return count, err
			}
			if !c.IsEmpty() {
				count++
			}
		}
	}
	return count, nil
}
