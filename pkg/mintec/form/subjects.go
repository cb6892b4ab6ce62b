package form

import (
	"fmt"

	"github.com/bennofs/mintec/pkg/mintec/models"
	"github.com/bennofs/mintec/pkg/mintec/parser"
)

// SubjectsLevel returns the section I level for a mean grade in points.
func SubjectsLevel(mean float64) int {
	for _, t := range subjectLevels {
		if mean >= t.min {
			return t.level
		}
	}
	return 0
}

// SelectSubjectVariant returns the index of the first variant whose filled
// cell count equals its size, or -1 if there is none.
func SelectSubjectVariant(filled []int) int {
	for i, v := range subjectVariants {
		if i < len(filled) && filled[i] == v.size() {
			return i
		}
	}
	return -1
}

// readSubjects reads section I. A variant is only used when it is filled in
// completely, so a partially filled second variant never hides a complete
// first one.
func (x *extraction) readSubjects() bool {
	filled := make([]int, len(subjectVariants))
	for i, v := range subjectVariants {
		n, err := parser.CountFilled(x.grid, v.names, v.grades)
		if err != nil {
			x.fail(err)
		}
		filled[i] = n
	}

	if selected := SelectSubjectVariant(filled); selected >= 0 {
		for _, a := range subjectVariants[selected].names.Addrs() {
			x.record.Subjects = append(x.record.Subjects, x.text(a))
		}
		for i, v := range subjectVariants {
			if i != selected && filled[i] > 0 {
				x.warn(v.names.Start(), models.KindRedundantVariantData,
					fmt.Sprintf("ignoring superfluous data for variant %q", v.label))
			}
		}
	} else {
		x.fatal(subjectsMissingAddr, models.KindIncompleteVariant,
			fmt.Sprintf("neither %q nor %q completely filled in",
				subjectVariants[0].label, subjectVariants[1].label))
	}

	x.record.SubjectsMean = x.floatAt(subjectsMeanAddr)
	x.record.SubjectsLevel = SubjectsLevel(x.record.SubjectsMean)

	if declared := x.intAt(subjectsLevelAddr); declared != x.record.SubjectsLevel {
		x.fatal(subjectsLevelAddr, models.KindLevelIntegrityMismatch,
			"level does not match computed level (possible tampering)")
	}
	return true
}
