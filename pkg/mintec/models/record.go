// Package models defines data structures for application form extraction.
package models

import "time"

// Record represents the applicant data read from one application form.
type Record struct {
	// Name is the applicant's full name.
	Name string `json:"name"`
	// BirthDate is the applicant's date of birth (nil if missing or unparsable).
	BirthDate *time.Time `json:"birth_date,omitempty"`
	// Subjects contains the subject names of the selected section I variant (2 or 3 entries).
	Subjects []string `json:"subjects"`
	// SubjectsMean is the mean grade over all subjects, in points.
	SubjectsMean float64 `json:"subjects_mean"`
	// SubjectsLevel is the level (0-3) derived from SubjectsMean.
	SubjectsLevel int `json:"subjects_level"`
	// ProjectDescription is the multi-line text describing the selected project work.
	ProjectDescription string `json:"project_description"`
	// ProjectLevel is the best level (0-3) over all project variants.
	ProjectLevel int `json:"project_level"`
	// ActivitiesLowerSecondary lists the activities of lower secondary school in row order.
	ActivitiesLowerSecondary []string `json:"activities_lower_secondary"`
	// ActivitiesUpperSecondary lists the activities of upper secondary school in row order.
	ActivitiesUpperSecondary []string `json:"activities_upper_secondary"`
	// ActivityLevel is the declared level (0-3) for the activities section.
	ActivityLevel int `json:"activity_level"`
}
