package xlprofile

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Profiling stages reported by ProfileError.
const (
	StageOpen     = "open"
	StageRead     = "read"
	StageMetadata = "metadata"
	StageQuality  = "quality"
	StageSamples  = "samples"
	StageChart    = "chart"
	StageDisplay  = "display"
)

// ProfileError represents an error while profiling a sheet.
type ProfileError struct {
	SheetName string
	Stage     string // one of the Stage constants
	Err       error
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("profile error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError.
func NewProfileError(sheetName, stage string, err error) *ProfileError {
	return &ProfileError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
