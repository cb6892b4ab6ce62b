// Package mintec reads MINT-EC certificate applications from Excel files and
// renders certificates from them.
package mintec

import (
	"github.com/goodsign/monday"

	"github.com/bennofs/mintec/pkg/mintec/certificate"
)

// DefaultInstitution is written into certificates when no institution is configured.
const DefaultInstitution = "am Martin-Andersen-Nexö Gymnasium Dresden"

// Options configures rendering.
type Options struct {
	// Institution is written verbatim into the institution field.
	Institution string
	// Locale selects the month names of the birth date (e.g. "en_US", "de_DE").
	// If empty, defaults to en_US.
	Locale string
	// Fields names the template fields. Empty names fall back to the defaults.
	Fields certificate.Fields
	// Filler opens templates. If nil, PDF AcroForm templates are used.
	Filler certificate.Filler
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		Institution: DefaultInstitution,
		Locale:      string(monday.LocaleEnUS),
		Fields:      certificate.DefaultFields(),
	}
}

// ResolveLocale returns the locale to format dates with.
func (o Options) ResolveLocale() monday.Locale {
	if o.Locale == "" {
		return monday.LocaleEnUS
	}
	return monday.Locale(o.Locale)
}

// ResolveFields returns the field names, filling in defaults for empty ones.
func (o Options) ResolveFields() certificate.Fields {
	f, d := o.Fields, certificate.DefaultFields()
	return certificate.Fields{
		Name:        orDefault(f.Name, d.Name),
		BirthDate:   orDefault(f.BirthDate, d.BirthDate),
		Institution: orDefault(f.Institution, d.Institution),
		Overall:     orDefault(f.Overall, d.Overall),
		Subjects:    orDefault(f.Subjects, d.Subjects),
		Project:     orDefault(f.Project, d.Project),
		Activities:  orDefault(f.Activities, d.Activities),
	}
}

func orDefault(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

// ResolveFiller returns the template filler.
func (o Options) ResolveFiller() certificate.Filler {
	if o.Filler != nil {
		return o.Filler
	}
	return certificate.NewPDFFiller()
}

// Renderer builds the certificate renderer for these options.
func (o Options) Renderer() *certificate.Renderer {
	return certificate.NewRenderer(o.ResolveFiller(), certificate.Options{
		Institution: o.Institution,
		Locale:      o.ResolveLocale(),
		Fields:      o.ResolveFields(),
	})
}
