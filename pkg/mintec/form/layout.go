package form

import "github.com/bennofs/mintec/pkg/mintec/parser"

// SchemaVersion is the only form version this package can read.
const SchemaVersion = "1.0.0"

// Cell layout of form version 1.0.0.
var (
	versionAddr = parser.MustAddr("A3")

	nameAddr      = parser.MustAddr("C1")
	birthDateAddr = parser.MustAddr("C2")

	subjectsMeanAddr    = parser.MustAddr("E7")
	subjectsLevelAddr   = parser.MustAddr("H6")
	subjectsMissingAddr = parser.MustAddr("A4")

	projectTextColumn  = parser.MustAddr("B1").Col
	projectGradeColumn = parser.MustAddr("D1").Col
	projectLevelColumn = parser.MustAddr("E1").Col

	activityLevelAddr   = parser.MustAddr("H72")
	activitiesLowerArea = parser.MustArea("B28:B47")
	activitiesUpperArea = parser.MustArea("B49:B68")
)

// subjectVariant is one layout of section I. A variant counts as filled in
// when every name and grade cell holds a value.
type subjectVariant struct {
	label  string
	names  parser.Area
	grades parser.Area
}

func (v subjectVariant) size() int {
	return v.names.Size() + v.grades.Size()
}

// subjectVariants lists the section I layouts in order of preference.
var subjectVariants = []subjectVariant{
	{
		label:  "two advanced subjects",
		names:  parser.MustArea("B7:B8"),
		grades: parser.MustArea("D7:D8"),
	},
	{
		label:  "one advanced subject and two further subjects",
		names:  parser.MustArea("B10:B12"),
		grades: parser.MustArea("D10:D12"),
	},
}

// subjectLevels maps the subjects mean to a level; the first matching
// threshold wins, below all thresholds the level is 0.
var subjectLevels = []struct {
	min   float64
	level int
}{
	{13, 3},
	{11, 2},
	{9, 1},
}

// projectVariant is one kind of project work in section II. The level is
// read from projectLevelColumn and the texts from projectTextColumn at row
// (name), row+1 (topic) and row+2 (result).
type projectVariant struct {
	name     string
	row      int
	heading  string
	topic    bool
	result   bool
	maxLevel int
}

// projectVariants lists the section II variants in order of preference.
// A maxLevel of 0 means the level is not range checked.
var projectVariants = []projectVariant{
	{name: "A", row: 15, heading: "Science-oriented subject: "},
	{name: "B", row: 17, heading: "Research paper\n\nSubject: ", topic: true},
	{name: "C", row: 20, heading: "Special learning achievement\n\nSubject: ", topic: true},
	{name: "D", row: 23, topic: true, result: true, maxLevel: 3},
}
