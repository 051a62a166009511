package resample

import (
	"math"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
)

// gridTolerance absorbs rounding when last is an exact multiple of the step.
const gridTolerance = 1e-9

// Grid returns 0, 1/fs, 2/fs, ... covering [0, last]. The number of points is
// ceil((last + 1/fs) * fs), so the final point never passes last by a full step.
func Grid(last, fs float64) ([]float64, error) {
	if !(fs > 0) || math.IsInf(fs, 0) {
		return nil, common.Wrap(common.ErrorInvalidInput, "sampling rate %v must be positive", fs)
	}
	if !(last >= 0) || math.IsInf(last, 0) {
		return nil, common.Wrap(common.ErrorInvalidInput, "grid end %v must be a finite non-negative time", last)
	}

	n := int(math.Ceil(last*fs + 1 - gridTolerance))
	if n < 1 {
		n = 1
	}
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = float64(i) / fs
	}
	return grid, nil
}
