// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/bennofs/mintec/pkg/mintec/models"
)

// Report is the extraction result of one file.
type Report struct {
	// File is the input file name (no path).
	File string `json:"file"`
	// Status is the classification of the problems.
	Status models.Status `json:"status"`
	// Message is the human-readable problem list.
	Message string `json:"message,omitempty"`
	// Problems lists the problems in the order they were found.
	Problems models.Problems `json:"problems"`
	// Record is the extracted applicant data.
	Record *models.Record `json:"record"`
}

// NewReport builds the report of one extraction.
func NewReport(file string, record *models.Record, problems models.Problems) *Report {
	if problems == nil {
		problems = models.Problems{}
	}
	return &Report{
		File:     file,
		Status:   models.Classify(problems),
		Message:  problems.Message(),
		Problems: problems,
		Record:   record,
	}
}

// ToJSON serializes a report.
func ToJSON(r *Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}
