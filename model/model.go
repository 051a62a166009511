package model

import (
	"fmt"
	"math"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
)

// PairedSeries is the unit passed between the time axis, resampling and segmentation stages.
// Values[i] was observed at Times[i].
type PairedSeries struct {
	Values []float64 `json:"values"`
	Times  []float64 `json:"times"`
}

func NewPairedSeries(values, times []float64) PairedSeries {
	return PairedSeries{Values: values, Times: times}
}

func (s PairedSeries) Len() int {
	return len(s.Values)
}

func (s PairedSeries) IsEmpty() bool {
	return len(s.Values) == 0
}

// Duration returns the time between the first and the last sample.
func (s PairedSeries) Duration() float64 {
	if len(s.Times) == 0 {
		return 0
	}
	return s.Times[len(s.Times)-1] - s.Times[0]
}

// Slice copies samples [lo, hi) so the result shares no memory with s.
func (s PairedSeries) Slice(lo, hi int) PairedSeries {
	values := make([]float64, hi-lo)
	times := make([]float64, hi-lo)
	copy(values, s.Values[lo:hi])
	copy(times, s.Times[lo:hi])
	return PairedSeries{Values: values, Times: times}
}

func (s PairedSeries) DebugString() string {
	return fmt.Sprintf("len: %v, duration: %v", s.Len(), s.Duration())
}

// Validate checks equal lengths, finite samples and strictly increasing times.
func (s PairedSeries) Validate() error {
	if len(s.Values) != len(s.Times) {
		return common.Wrap(common.ErrorInvalidInput, "values has %d samples, times has %d",
			len(s.Values), len(s.Times))
	}
	for i := range s.Values {
		if math.IsNaN(s.Values[i]) || math.IsInf(s.Values[i], 0) {
			return common.Wrap(common.ErrorInvalidInput, "value %d is not finite", i)
		}
		if math.IsNaN(s.Times[i]) || math.IsInf(s.Times[i], 0) {
			return common.Wrap(common.ErrorInvalidInput, "time %d is not finite", i)
		}
		if i > 0 && s.Times[i] <= s.Times[i-1] {
			return common.Wrap(common.ErrorNonMonotonicTime, "times[%d]=%v after times[%d]=%v",
				i, s.Times[i], i-1, s.Times[i-1])
		}
	}
	return nil
}

// Segment is a contiguous time slice of a uniform series.
// Full windows own samples in [Begin, End), the last full window owns [Begin, End].
// A Partial segment is the trailing remainder and may be shorter than the window size,
// it owns (Begin, End] when it follows full windows.
type Segment struct {
	Index    int          `json:"index"`
	Begin    float64      `json:"begin"`
	End      float64      `json:"end"`
	Closed   bool         `json:"closed"`
	LeftOpen bool         `json:"left_open,omitempty"`
	Partial  bool         `json:"partial"`
	Series   PairedSeries `json:"series"`
}

func (s Segment) Len() int {
	return s.Series.Len()
}

// Duration is the actual covered time, which for a partial segment is below the window size.
func (s Segment) Duration() float64 {
	return s.Series.Duration()
}

// Contains reports whether t falls inside the nominal bounds of the segment.
func (s Segment) Contains(t float64) bool {
	if t < s.Begin || (s.LeftOpen && t == s.Begin) {
		return false
	}
	if s.Closed {
		return t <= s.End
	}
	return t < s.End
}

// Recording is one independent interval series, e.g. the RR intervals of a single patient.
type Recording struct {
	ID        string    `json:"id"`
	Intervals []float64 `json:"intervals"`
}
