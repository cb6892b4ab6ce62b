package models

import (
	"fmt"
	"strings"
)

// ProblemKind classifies a Problem.
type ProblemKind string

const (
	// KindSchemaVersionMismatch means the form has an unsupported version. Extraction stops.
	KindSchemaVersionMismatch ProblemKind = "schema_version_mismatch"
	// KindMissingRequiredValue means a required cell is empty.
	KindMissingRequiredValue ProblemKind = "missing_required_value"
	// KindUnparsableDate means a date cell holds something that is not a date.
	KindUnparsableDate ProblemKind = "unparsable_date"
	// KindUnparsableNumber means a numeric cell holds something that is not a number.
	KindUnparsableNumber ProblemKind = "unparsable_number"
	// KindRedundantVariantData means data of a variant that was not selected is ignored.
	KindRedundantVariantData ProblemKind = "redundant_variant_data"
	// KindIncompleteVariant means no variant of a section is completely filled in.
	KindIncompleteVariant ProblemKind = "incomplete_variant"
	// KindLevelIntegrityMismatch means a declared level differs from the computed one.
	KindLevelIntegrityMismatch ProblemKind = "level_integrity_mismatch"
	// KindVariantOverflow means a variant level exceeds the allowed maximum.
	KindVariantOverflow ProblemKind = "variant_overflow"
)

// Problem is an error or warning found while reading a form.
type Problem struct {
	// Row is the row of the offending cell (1-based).
	Row int `json:"row"`
	// Column is the column letter of the offending cell.
	Column string `json:"column"`
	// Text describes the problem.
	Text string `json:"text"`
	// Fatal is true if the problem blocks certificate generation.
	Fatal bool `json:"fatal"`
	// Kind classifies the problem.
	Kind ProblemKind `json:"kind"`
}

// Cell returns the A1-style address of the offending cell.
func (p Problem) Cell() string {
	return fmt.Sprintf("%s%d", p.Column, p.Row)
}

func (p Problem) String() string {
	return p.Cell() + ": " + p.Text
}

// Problems is an ordered list of problems, first detected first.
type Problems []Problem

// HasFatal reports whether any problem is fatal.
func (ps Problems) HasFatal() bool {
	for _, p := range ps {
		if p.Fatal {
			return true
		}
	}
	return false
}

// Fatal returns the fatal problems in order.
func (ps Problems) Fatal() Problems {
	return ps.filter(true)
}

// Warnings returns the non-fatal problems in order.
func (ps Problems) Warnings() Problems {
	return ps.filter(false)
}

func (ps Problems) filter(fatal bool) Problems {
	var out Problems
	for _, p := range ps {
		if p.Fatal == fatal {
			out = append(out, p)
		}
	}
	return out
}

// Status classifies the list.
func (ps Problems) Status() Status {
	return Classify(ps)
}

// Message formats the list for humans: fatal problems first, then a blank
// line, then warnings, one "<column><row>: <text>" per line.
func (ps Problems) Message() string {
	if len(ps) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range ps.Fatal() {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	warnings := ps.Warnings()
	if len(warnings) > 0 {
		b.WriteByte('\n')
		for _, p := range warnings {
			b.WriteString(p.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}
