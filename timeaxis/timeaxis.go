// Package timeaxis derives a zero based cumulative time axis from interval durations.
package timeaxis

import (
	"math"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
	"gonum.org/v1/gonum/floats"
)

// Build returns the running sum of intervals shifted so that the axis starts at 0.
// intervals must already be in the unit of the axis (seconds).
//
// The first interval only sets the origin: axis[i] = sum(intervals[1..i]).
func Build(intervals []float64) ([]float64, error) {
	if len(intervals) == 0 {
		return nil, common.NewStageError(common.StageTimeAxis, "intervals", 0,
			common.Wrap(common.ErrorInvalidInput, "empty interval series"))
	}
	for i, v := range intervals {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, common.NewStageError(common.StageTimeAxis, "interval_index", i,
				common.Wrap(common.ErrorInvalidInput, "interval %v is not a positive duration", v))
		}
	}

	axis := make([]float64, len(intervals))
	floats.CumSum(axis, intervals)
	floats.AddConst(-axis[0], axis)
	axis[0] = 0

	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			return nil, common.NewStageError(common.StageTimeAxis, "interval_index", i,
				common.Wrap(common.ErrorInvalidInput, "interval %v too small to advance the axis", intervals[i]))
		}
	}
	return axis, nil
}
