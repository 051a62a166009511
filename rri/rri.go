// Package rri adapts peak detectors and interval files to the resampling pipeline.
package rri

import (
	"math"
	"strings"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
)

type Unit int

const (
	Milliseconds Unit = 1
	Seconds      Unit = 2
)

func (u Unit) String() string {
	switch u {
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	}
	return "unknown"
}

func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ms", "millisecond", "milliseconds":
		return Milliseconds, nil
	case "s", "sec", "second", "seconds":
		return Seconds, nil
	}
	return 0, common.Wrap(common.ErrorInvalidValue, "unknown interval unit %q", s)
}

// FromPeaks turns detected peak sample indices into intervals in milliseconds.
// fs is the sampling rate of the signal the peaks were detected on.
func FromPeaks(peaks []int, fs float64) ([]float64, error) {
	if !(fs > 0) || math.IsInf(fs, 0) {
		return nil, common.Wrap(common.ErrorInvalidInput, "sampling rate %v must be positive", fs)
	}
	if len(peaks) < 2 {
		return nil, common.Wrap(common.ErrorInvalidInput, "need at least 2 peaks, got %d", len(peaks))
	}

	res := make([]float64, 0, len(peaks)-1)
	for i := 1; i < len(peaks); i++ {
		diff := peaks[i] - peaks[i-1]
		if diff <= 0 {
			return nil, common.Wrap(common.ErrorInvalidInput, "peak %d at %d does not follow %d",
				i, peaks[i], peaks[i-1])
		}
		res = append(res, float64(diff)*(1/fs)*1000)
	}
	return res, nil
}

// ToSeconds returns a copy of intervals expressed in seconds.
func ToSeconds(intervals []float64, unit Unit) ([]float64, error) {
	var scale float64
	switch unit {
	case Milliseconds:
		scale = 1000
	case Seconds:
		scale = 1
	default:
		return nil, common.Wrap(common.ErrorInvalidValue, "unknown interval unit %d", int(unit))
	}

	res := make([]float64, len(intervals))
	for i, v := range intervals {
		res[i] = v / scale
	}
	return res, nil
}
