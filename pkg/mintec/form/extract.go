// Package form reads the application form and validates it.
//
// Extraction never stops at the first problem. Every section is read and
// all problems found are returned together, in the order they were found.
// Only an unsupported form version ends extraction early.
package form

import (
	"fmt"

	"github.com/bennofs/mintec/pkg/mintec/models"
	"github.com/bennofs/mintec/pkg/mintec/parser"
)

// section reads one part of the form into the record. It returns false when
// no further section may run.
type section func(x *extraction) bool

// sections lists the parts of the form in reading order.
var sections = []section{
	(*extraction).checkVersion,
	(*extraction).readPerson,
	(*extraction).readSubjects,
	(*extraction).readProject,
	(*extraction).readActivities,
}

// Extract reads an application form from g.
//
// Validation problems are returned as data, never as error. The error is
// non-nil only when the grid itself could not be read; record and problems
// are then incomplete.
func Extract(g parser.Grid) (*models.Record, models.Problems, error) {
	x := &extraction{grid: g, record: &models.Record{}}
	for _, read := range sections {
		if !read(x) {
			break
		}
	}
	return x.record, x.problems, x.err
}

// extraction holds the state of a single Extract call.
type extraction struct {
	grid     parser.Grid
	record   *models.Record
	problems models.Problems
	err      error
}

func (x *extraction) cell(a parser.Addr) parser.Cell {
	c, err := x.grid.CellAt(a.Col, a.Row)
	if err != nil {
		x.fail(err)
		return parser.Cell{}
	}
	return c
}

// fail records the first grid read error.
func (x *extraction) fail(err error) {
	if x.err == nil {
		x.err = fmt.Errorf("read form: %w", err)
	}
}

func (x *extraction) text(a parser.Addr) string {
	return x.cell(a).Text()
}

// required reads a text cell that must not be empty.
func (x *extraction) required(a parser.Addr) string {
	s := x.text(a)
	if s == "" {
		x.fatal(a, models.KindMissingRequiredValue, "missing input")
	}
	return s
}

func (x *extraction) intAt(a parser.Addr) int {
	v, err := x.cell(a).Int()
	if err != nil {
		x.fatal(a, models.KindUnparsableNumber, err.Error())
	}
	return v
}

func (x *extraction) floatAt(a parser.Addr) float64 {
	v, err := x.cell(a).Float()
	if err != nil {
		x.fatal(a, models.KindUnparsableNumber, err.Error())
	}
	return v
}

func (x *extraction) fatal(a parser.Addr, kind models.ProblemKind, text string) {
	x.add(a, kind, text, true)
}

func (x *extraction) warn(a parser.Addr, kind models.ProblemKind, text string) {
	x.add(a, kind, text, false)
}

func (x *extraction) add(a parser.Addr, kind models.ProblemKind, text string, fatal bool) {
	x.problems = append(x.problems, models.Problem{
		Row:    a.Row,
		Column: a.ColumnName(),
		Text:   text,
		Fatal:  fatal,
		Kind:   kind,
	})
}

// checkVersion stops extraction unless the form has the expected version.
// All cell addresses below depend on it.
func (x *extraction) checkVersion() bool {
	version := x.text(versionAddr)
	if version != SchemaVersion {
		x.fatal(versionAddr, models.KindSchemaVersionMismatch,
			fmt.Sprintf("incompatible form version: version is %q, expected %q", version, SchemaVersion))
		return false
	}
	return true
}
