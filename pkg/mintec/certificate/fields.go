package certificate

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/shopspring/decimal"

	"github.com/bennofs/mintec/pkg/mintec/models"
)

// ErrClassificationOutOfRange indicates an overall level that has no label,
// e.g. when all section levels are 0.
var ErrClassificationOutOfRange = errors.New("overall classification out of range")

// Fields names the template fields written by the generator.
type Fields struct {
	Name        string `yaml:"name"`
	BirthDate   string `yaml:"birth_date"`
	Institution string `yaml:"institution"`
	Overall     string `yaml:"overall"`
	Subjects    string `yaml:"subjects"`
	Project     string `yaml:"project"`
	Activities  string `yaml:"activities"`
}

// DefaultFields returns the field names of the certificate template.
func DefaultFields() Fields {
	return Fields{
		Name:        "Vor- und Nachname",
		BirthDate:   "geboren am Tag / Monat / Jahr",
		Institution: "Schulbezeichnung",
		Overall:     "Gesamteinstufung",
		Subjects:    "Fachliche Kompetenz",
		Project:     "Fachwissenschaftliches Arbeiten",
		Activities:  "Zusätzliche MINT-Aktivitäten",
	}
}

// OverallLabels are the overall classifications, indexed by level-1.
var OverallLabels = []string{"with success", "with special success", "with distinction"}

// birthDateLayout is the long date layout, month names are localized.
const birthDateLayout = "02. January 2006"

// BirthDateLine returns the birth date line, "N/A" standing in for a missing date.
func BirthDateLine(date *time.Time, locale monday.Locale) string {
	if date == nil {
		return "born on N/A"
	}
	return "born on " + monday.Format(*date, birthDateLayout, locale)
}

// OverallLevel returns the mean of the three section levels, rounded half up.
func OverallLevel(r *models.Record) int {
	sum := float64(r.SubjectsLevel + r.ProjectLevel + r.ActivityLevel)
	return int(math.Floor(sum/3 + 0.5))
}

// OverallLabel returns the label for the overall level of r.
func OverallLabel(r *models.Record) (string, error) {
	level := OverallLevel(r)
	if level < 1 || level > len(OverallLabels) {
		return "", fmt.Errorf("%w: level %d", ErrClassificationOutOfRange, level)
	}
	return OverallLabels[level-1], nil
}

// FormatMean formats a mean grade with one decimal, rounding half up
// on the decimal value as written (13.05 becomes 13.1).
func FormatMean(mean float64) string {
	return decimal.NewFromFloat(mean).StringFixed(1)
}

var numberWords = map[int]string{2: "two", 3: "three"}

// SubjectsBlock lists the subjects, each in its own paragraph, followed by
// the mean over all of them.
func SubjectsBlock(r *models.Record) string {
	var b strings.Builder
	for _, subject := range r.Subjects {
		b.WriteString(subject)
		b.WriteString("\n\n")
	}
	count, ok := numberWords[len(r.Subjects)]
	if !ok {
		count = fmt.Sprint(len(r.Subjects))
	}
	fmt.Fprintf(&b, "\nAverage grade across all %s subjects: %s points", count, FormatMean(r.SubjectsMean))
	return b.String()
}

// ActivitiesBlock lists the activities of both school levels, one per line.
func ActivitiesBlock(r *models.Record) string {
	var b strings.Builder
	b.WriteString("In lower secondary:\n\n")
	for _, item := range r.ActivitiesLowerSecondary {
		b.WriteString(item)
		b.WriteByte('\n')
	}
	b.WriteString("\nIn upper secondary:\n\n")
	for _, item := range r.ActivitiesUpperSecondary {
		b.WriteString(item)
		b.WriteByte('\n')
	}
	return b.String()
}
