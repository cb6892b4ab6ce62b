package mintec

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/bennofs/mintec/pkg/mintec/form"
	"github.com/bennofs/mintec/pkg/mintec/models"
	"github.com/bennofs/mintec/pkg/mintec/parser"
)

// Extract reads an application form from an Excel workbook. Only the first
// sheet is consulted.
//
// Problems found in the form are returned as data. The error is non-nil only
// if the workbook could not be read.
func Extract(r io.Reader) (*models.Record, models.Problems, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, NewProcessError(StageOpen, err)
	}
	defer f.Close()
	return extractFile(f)
}

// ExtractFile reads an application form from an Excel file.
func ExtractFile(path string) (*models.Record, models.Problems, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, NewProcessError(StageOpen, err)
	}
	defer f.Close()
	return extractFile(f)
}

func extractFile(f *excelize.File) (*models.Record, models.Problems, error) {
	sheet, err := parser.FirstSheet(f)
	if err != nil {
		return nil, nil, NewProcessError(StageOpen, err)
	}
	return extractSheet(sheet.Name(), sheet)
}

func extractSheet(name string, g parser.Grid) (*models.Record, models.Problems, error) {
	record, problems, err := form.Extract(g)
	if err != nil {
		perr := NewProcessError(StageExtract, err)
		perr.Sheet = name
		return record, problems, perr
	}
	return record, problems, nil
}

// Render fills template with record and writes the sealed certificate to w.
// The record must come from an extraction whose status is not FAIL.
func Render(record *models.Record, template []byte, w io.Writer, opts Options) error {
	if err := opts.Renderer().Render(record, template, w); err != nil {
		return NewProcessError(StageRender, err)
	}
	return nil
}

// Outcome is the result of processing one form.
type Outcome struct {
	Record   *models.Record
	Problems models.Problems
	Status   models.Status
	// Rendered is true if a certificate was written.
	Rendered bool
}

// Process extracts a form and renders its certificate to w unless the form
// has fatal problems.
func Process(input io.Reader, template []byte, w io.Writer, opts Options) (*Outcome, error) {
	record, problems, err := Extract(input)
	if err != nil {
		return nil, err
	}
	out := &Outcome{Record: record, Problems: problems, Status: models.Classify(problems)}
	if out.Status == models.StatusFail {
		return out, nil
	}
	if err := Render(record, template, w, opts); err != nil {
		return out, err
	}
	out.Rendered = true
	return out, nil
}
