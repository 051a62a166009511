package common

import (
	"errors"
	"fmt"
)

var (
	// ErrorInvalidInput: malformed, empty or non-positive interval data, mismatched series lengths
	ErrorInvalidInput = errors.New("invalid input")
	// ErrorNonMonotonicTime: time axis is not strictly increasing
	ErrorNonMonotonicTime = errors.New("time axis is not strictly increasing")
	// ErrorInsufficientData: too few points for the chosen interpolation order
	ErrorInsufficientData = errors.New("insufficient data for interpolation")
	// ErrorInvalidWindow: window size or overlap gives a non-positive step
	ErrorInvalidWindow = errors.New("invalid window")
	// ErrorEmptySegment: a computed window holds zero samples
	ErrorEmptySegment = errors.New("empty segment")
	// ErrorInvalidValue: invalid analysis or configuration value
	ErrorInvalidValue = errors.New("invalid value")
	// ErrorAnalysisFailed: the external analysis stage failed or panicked
	ErrorAnalysisFailed = errors.New("analysis failed")
)

const (
	StageTimeAxis = "timeaxis"
	StageResample = "resample"
	StageSegment  = "segment"
	StageAnalysis = "analysis"
	StageReport   = "report"
)

// StageError tells which stage failed and which parameter caused it.
// The error kind is reachable through errors.Is on the wrapped sentinel.
type StageError struct {
	Stage string
	Param string
	Value interface{}
	Err   error
}

func NewStageError(stage, param string, value interface{}, err error) *StageError {
	return &StageError{
		Stage: stage,
		Param: param,
		Value: value,
		Err:   err,
	}
}

func (e *StageError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: %v (%s=%v)", e.Stage, e.Err, e.Param, e.Value)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Wrap adds detail to a sentinel while keeping it matchable with errors.Is.
func Wrap(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

// AsStageError returns the first StageError in err's chain.
func AsStageError(err error) (*StageError, bool) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr, true
	}
	return nil, false
}
