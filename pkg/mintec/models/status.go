package models

// Status is the summary classification of an extraction run.
type Status string

const (
	// StatusOK means no problems were found.
	StatusOK Status = "OK"
	// StatusWarn means only non-fatal problems were found.
	StatusWarn Status = "WARN"
	// StatusFail means at least one fatal problem was found.
	StatusFail Status = "FAIL"
)

// Classify derives the status of a problem list. Any fatal problem wins,
// regardless of its position.
func Classify(problems Problems) Status {
	switch {
	case problems.HasFatal():
		return StatusFail
	case len(problems) > 0:
		return StatusWarn
	default:
		return StatusOK
	}
}
