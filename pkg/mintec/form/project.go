package form

import (
	"fmt"
	"strings"

	"github.com/bennofs/mintec/pkg/mintec/models"
	"github.com/bennofs/mintec/pkg/mintec/parser"
)

// SelectProject returns the index of the best level, preferring the
// earliest index on ties. It returns -1 for an empty slice.
func SelectProject(levels []int) int {
	best := -1
	for i, level := range levels {
		if best < 0 || level > levels[best] {
			best = i
		}
	}
	return best
}

// readProject reads section II. Only the best variant is described.
func (x *extraction) readProject() bool {
	levels := make([]int, len(projectVariants))
	for i, v := range projectVariants {
		levels[i] = x.intAt(parser.Addr{Col: projectLevelColumn, Row: v.row})
	}

	for i, v := range projectVariants {
		if v.maxLevel > 0 && levels[i] > v.maxLevel {
			x.fatal(parser.Addr{Col: projectLevelColumn, Row: v.row}, models.KindVariantOverflow,
				fmt.Sprintf("level of variant %s is greater than %d", v.name, v.maxLevel))
			// The remaining sections are still read.
			return true
		}
	}

	best := SelectProject(levels)
	v := projectVariants[best]
	nameAddr := parser.Addr{Col: projectTextColumn, Row: v.row}

	var b strings.Builder
	b.WriteString(v.heading)
	b.WriteString(x.required(nameAddr))
	if v.topic {
		b.WriteString("\n\nTopic:\n")
		b.WriteString(x.required(nameAddr.Below(1)))
	}
	if v.result {
		b.WriteString("\n\n")
		b.WriteString(x.required(nameAddr.Below(2)))
	} else {
		fmt.Fprintf(&b, "\n\nGrade: %d", x.intAt(parser.Addr{Col: projectGradeColumn, Row: v.row}))
	}

	x.record.ProjectLevel = levels[best]
	x.record.ProjectDescription = b.String()
	return true
}
