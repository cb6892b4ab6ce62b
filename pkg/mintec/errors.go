package mintec

import (
	"errors"
	"fmt"
)

// ErrFatalProblems indicates a form that must not be rendered.
var ErrFatalProblems = errors.New("form has fatal problems")

// Stage names the step of processing a form.
type Stage string

const (
	// StageOpen is reading the workbook.
	StageOpen Stage = "open"
	// StageExtract is reading the form out of the first sheet.
	StageExtract Stage = "extract"
	// StageRender is filling the certificate template.
	StageRender Stage = "render"
)

// ProcessError represents an I/O or rendering error while processing a form.
// Validation problems are never reported this way.
type ProcessError struct {
	Stage Stage
	// Sheet is the worksheet being read, if known.
	Sheet string
	Err   error
}

func (e *ProcessError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("%s failed on sheet %q: %v", e.Stage, e.Sheet, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// NewProcessError creates a new ProcessError.
func NewProcessError(stage Stage, err error) *ProcessError {
	return &ProcessError{
		Stage: stage,
		Err:   err,
	}
}
