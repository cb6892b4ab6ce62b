// Package certificate fills the certificate template with the data of an
// application record.
package certificate

import (
	"errors"
	"fmt"
	"io"

	"github.com/goodsign/monday"
	"golang.org/x/text/unicode/norm"

	"github.com/bennofs/mintec/pkg/mintec/models"
)

// Form is an open template whose fields can be written once and then sealed.
type Form interface {
	// SetField writes a value into the named field.
	SetField(name, value string) error
	// Seal makes all fields read-only and writes the document to w.
	Seal(w io.Writer) error
	// Close releases the template.
	Close() error
}

// Filler opens templates.
type Filler interface {
	Open(template []byte) (Form, error)
}

// UnknownFieldError indicates a field the template does not define.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("template has no field %q", e.Field)
}

// Options configures rendering.
type Options struct {
	// Institution is written verbatim into the institution field.
	Institution string
	// Locale selects the month names of the birth date.
	Locale monday.Locale
	// Fields names the template fields.
	Fields Fields
}

// Renderer writes records into templates.
type Renderer struct {
	filler Filler
	opts   Options
}

// NewRenderer returns a Renderer using filler.
func NewRenderer(filler Filler, opts Options) *Renderer {
	return &Renderer{filler: filler, opts: opts}
}

// FieldValue is the content of one template field.
type FieldValue struct {
	Name  string
	Value string
}

// Values composes all field values for r, in the order they are written.
func (rd *Renderer) Values(r *models.Record) ([]FieldValue, error) {
	overall, err := OverallLabel(r)
	if err != nil {
		return nil, err
	}
	f := rd.opts.Fields
	return []FieldValue{
		{f.Name, r.Name},
		{f.BirthDate, BirthDateLine(r.BirthDate, rd.opts.Locale)},
		{f.Institution, rd.opts.Institution},
		{f.Overall, overall},
		{f.Subjects, SubjectsBlock(r)},
		{f.Project, r.ProjectDescription},
		{f.Activities, ActivitiesBlock(r)},
	}, nil
}

// Render fills the template with r and writes the sealed document to w.
// r must come from an extraction without fatal problems.
//
// The template is released exactly once, also when writing a field fails;
// nothing is written to w in that case.
func (rd *Renderer) Render(r *models.Record, template []byte, w io.Writer) (err error) {
	values, err := rd.Values(r)
	if err != nil {
		return err
	}

	form, err := rd.filler.Open(template)
	if err != nil {
		return fmt.Errorf("open template: %w", err)
	}
	defer func() {
		if cerr := form.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close template: %w", cerr))
		}
	}()

	for _, v := range values {
		if err := form.SetField(v.Name, norm.NFC.String(v.Value)); err != nil {
			return fmt.Errorf("set field %q: %w", v.Name, err)
		}
	}
	if err := form.Seal(w); err != nil {
		return fmt.Errorf("seal document: %w", err)
	}
	return nil
}
