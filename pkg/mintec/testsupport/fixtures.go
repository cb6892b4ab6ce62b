// Package testsupport builds application form workbooks for tests.
package testsupport

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet is the sheet name fixtures are written to.
const Sheet = "Sheet1"

// BirthDate is the birth date of the fixture applicant.
var BirthDate = time.Date(2001, time.March, 15, 0, 0, 0, 0, time.UTC)

// Application is an application form fixture.
type Application struct {
	t *testing.T
	f *excelize.File
}

// NewApplication returns a form that extracts without problems: two
// subjects with mean 12.0, project variant A at level 2, ten lower and eight
// upper secondary activities, and activity level 2. Tests change single
// cells from there.
func NewApplication(t *testing.T) *Application {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	app := &Application{t: t, f: f}
	app.Set("A3", "1.0.0")
	app.Set("C1", "Erika Mustermann")
	app.Set("C2", BirthDate)

	app.Set("B7", "Mathematics")
	app.Set("D7", 12)
	app.Set("B8", "Physics")
	app.Set("D8", 12)
	app.Set("E7", 12.0)
	app.Set("H6", 2)

	app.Set("B15", "Computer Science")
	app.Set("D15", 13)
	app.Set("E15", 2)
	app.Set("E17", 0)
	app.Set("E20", 0)
	app.Set("E23", 0)

	for i, activity := range Activities("Lower", 10) {
		app.Set(fmt.Sprintf("B%d", 28+i), activity)
	}
	for i, activity := range Activities("Upper", 8) {
		app.Set(fmt.Sprintf("B%d", 49+i), activity)
	}
	app.Set("H72", 2)
	return app
}

// Activities returns the fixture activity names "<prefix> 1" .. "<prefix> n".
func Activities(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s %d", prefix, i+1)
	}
	return out
}

// File returns the underlying workbook.
func (a *Application) File() *excelize.File {
	return a.f
}

// Set writes a cell value.
func (a *Application) Set(ref string, value interface{}) *Application {
	a.t.Helper()
	if err := a.f.SetCellValue(Sheet, ref, value); err != nil {
		a.t.Fatalf("set %s: %v", ref, err)
	}
	return a
}

// Clear blanks cells.
func (a *Application) Clear(refs ...string) *Application {
	a.t.Helper()
	for _, ref := range refs {
		a.Set(ref, nil)
	}
	return a
}

// ClearActivities blanks both activity ranges.
func (a *Application) ClearActivities() *Application {
	a.t.Helper()
	for row := 28; row <= 68; row++ {
		a.Clear(fmt.Sprintf("B%d", row))
	}
	return a
}

// Bytes serializes the workbook.
func (a *Application) Bytes() []byte {
	a.t.Helper()
	buf, err := a.f.WriteToBuffer()
	if err != nil {
		a.t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// Save writes the workbook to path.
func (a *Application) Save(path string) {
	a.t.Helper()
	if err := os.WriteFile(path, a.Bytes(), 0644); err != nil {
		a.t.Fatalf("save workbook: %v", err)
	}
}
