package certificate

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFFillerRejectsNonPDF(t *testing.T) {
	_, err := NewPDFFiller().Open([]byte("this is not a pdf"))
	require.Error(t, err)
}

func TestPDFFormFields(t *testing.T) {
	form := &pdfForm{
		template: []byte("%PDF"),
		fields: map[string]*textField{
			"Schulbezeichnung": {ID: "12", Name: "Schulbezeichnung", Pages: []int{1}, Multiline: true},
		},
	}

	require.NoError(t, form.SetField("Schulbezeichnung", "am Gymnasium"))
	require.Len(t, form.filled, 1)
	filled := form.filled[0]
	assert.Equal(t, "12", filled.ID)
	assert.Equal(t, "am Gymnasium", filled.Value)
	assert.True(t, filled.Multiline)
	assert.True(t, filled.Locked)

	var unknown *UnknownFieldError
	require.ErrorAs(t, form.SetField("Gesamteinstufung", "x"), &unknown)

	require.NoError(t, form.Close())
	assert.Error(t, form.Close())
}

func exportTextFields(t *testing.T, pdf []byte) map[string]*textField {
	t.Helper()
	var exported bytes.Buffer
	require.NoError(t, api.ExportFormJSON(bytes.NewReader(pdf), &exported, "certificate", NewPDFFiller().conf))

	var group formGroup
	require.NoError(t, json.Unmarshal(exported.Bytes(), &group))
	fields := make(map[string]*textField)
	for _, fd := range group.Forms {
		for _, tf := range fd.TextFields {
			fields[tf.Name] = tf
		}
	}
	return fields
}

func TestPDFFillerFillsAndLocksTemplate(t *testing.T) {
	template, err := os.ReadFile(filepath.Join("testdata", "form.pdf"))
	require.NoError(t, err)

	form, err := NewPDFFiller().Open(template)
	require.NoError(t, err)

	values := map[string]string{
		"firstName1": "Jörg",
		"lastName1":  "Müller-Lüdenscheidt",
		"note1":      "Zeile eins\n\nZusätzliche Ö",
	}
	for name, value := range values {
		require.NoError(t, form.SetField(name, value))
	}
	var out bytes.Buffer
	require.NoError(t, form.Seal(&out))
	require.NoError(t, form.Close())

	fields := exportTextFields(t, out.Bytes())
	for name, want := range values {
		tf, ok := fields[name]
		require.True(t, ok, "field %s missing from output", name)
		assert.Equal(t, want, tf.Value, name)
		assert.True(t, tf.Locked, "field %s not locked", name)
	}

	// Fields left empty are locked as well.
	require.Contains(t, fields, "firstName2")
	assert.True(t, fields["firstName2"].Locked)
}

func TestPDFFillerUnknownField(t *testing.T) {
	template, err := os.ReadFile(filepath.Join("testdata", "form.pdf"))
	require.NoError(t, err)

	form, err := NewPDFFiller().Open(template)
	require.NoError(t, err)
	defer form.Close()

	var unknown *UnknownFieldError
	require.ErrorAs(t, form.SetField("Gesamteinstufung", "with distinction"), &unknown)
	assert.Equal(t, "Gesamteinstufung", unknown.Field)
}
