package lod

import (
	"errors"
	"fmt"

	"github.com/philipparndt/lodconv/pkg/mesh"
)

var (
	// ErrMalformedModel is returned for empty or structurally invalid input
	ErrMalformedModel = mesh.ErrMalformedModel

	ErrNoGroundSurface    = errors.New("no ground surface")
	ErrNoRoofSurface      = errors.New("no roof surface")
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrUnclassifiedFace means a face kept the Unknown label after classification
	ErrUnclassifiedFace = errors.New("face left unclassified")
)

// Pipeline steps reported in StepError
const (
	StepValidate = "validate"
	StepClassify = "classify"
	StepHeight   = "height"
	StepExtrude  = "extrude"
)

// StepError records which conversion step failed
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// FailedStep returns the step name carried by err, or "" if there is none
func FailedStep(err error) string {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step
	}
	return ""
}
