package certificate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// formGroup mirrors the JSON form data exchanged with pdfcpu. Only text
// fields are used by the certificate.
type formGroup struct {
	Forms []formData `json:"forms"`
}

type formData struct {
	TextFields []*textField `json:"textfield,omitempty"`
}

type textField struct {
	Pages     []int  `json:"pages,omitempty"`
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Value     string `json:"value"`
	Multiline bool   `json:"multiline"`
	Locked    bool   `json:"locked"`
}

// PDFFiller fills AcroForm PDF templates using pdfcpu.
type PDFFiller struct {
	conf *model.Configuration
}

// NewPDFFiller returns a PDFFiller with pdfcpu's default configuration.
func NewPDFFiller() *PDFFiller {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFFiller{conf: conf}
}

// Open implements Filler. It reads the text fields the template defines.
func (p *PDFFiller) Open(template []byte) (Form, error) {
	var exported bytes.Buffer
	if err := api.ExportFormJSON(bytes.NewReader(template), &exported, "template", p.conf); err != nil {
		return nil, fmt.Errorf("read form fields: %w", err)
	}
	var group formGroup
	if err := json.Unmarshal(exported.Bytes(), &group); err != nil {
		return nil, fmt.Errorf("decode form fields: %w", err)
	}

	form := &pdfForm{
		conf:     p.conf,
		template: template,
		fields:   make(map[string]*textField),
	}
	for _, fd := range group.Forms {
		for _, tf := range fd.TextFields {
			form.fields[tf.Name] = tf
		}
	}
	return form, nil
}

// pdfForm collects field values and hands them to pdfcpu when sealed.
type pdfForm struct {
	conf     *model.Configuration
	template []byte
	fields   map[string]*textField
	filled   []*textField
	closed   bool
}

func (f *pdfForm) SetField(name, value string) error {
	tf, ok := f.fields[name]
	if !ok {
		return &UnknownFieldError{Field: name}
	}
	f.filled = append(f.filled, &textField{
		Pages:     tf.Pages,
		ID:        tf.ID,
		Name:      tf.Name,
		Value:     value,
		Multiline: tf.Multiline,
		Locked:    true,
	})
	return nil
}

// Seal fills the template and then locks every field of the result.
// pdfcpu cannot flatten forms, so locking stands in for flattening: the
// fields stay interactive widgets with their appearance streams but are
// read-only.
func (f *pdfForm) Seal(w io.Writer) error {
	data, err := json.Marshal(formGroup{Forms: []formData{{TextFields: f.filled}}})
	if err != nil {
		return err
	}
	var filled bytes.Buffer
	if err := api.FillForm(bytes.NewReader(f.template), bytes.NewReader(data), &filled, f.conf); err != nil {
		return fmt.Errorf("fill form: %w", err)
	}
	if err := api.LockFormFields(bytes.NewReader(filled.Bytes()), w, nil, f.conf); err != nil {
		return fmt.Errorf("lock form: %w", err)
	}
	return nil
}

func (f *pdfForm) Close() error {
	if f.closed {
		return errors.New("template already released")
	}
	f.closed = true
	f.template = nil
	f.fields = nil
	f.filled = nil
	return nil
}
