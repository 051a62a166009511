// Package segment splits a uniformly sampled series into overlapping fixed duration windows.
//
// With step = windowSize - overlap and total = times[len-1], the number of full windows is
//
//	N = floor((total - windowSize) / step) + 1
//
// Window i covers [i*step, i*step+windowSize). The last full window is closed on the right so
// the sample landing exactly on its end is kept. With keepLast, samples after N*step that the
// full windows did not reach are returned as one trailing partial segment.
package segment

import (
	"math"
	"sort"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
	"github.com/rhenanbartels/rri-rqa-analysis/model"
)

// countTolerance keeps floor from losing a window to rounding in (total-windowSize)/step.
const countTolerance = 1e-9

// Step validates the window parameters and returns windowSize - overlap.
func Step(windowSize, overlap float64) (float64, error) {
	if !(windowSize > 0) || math.IsInf(windowSize, 0) {
		return 0, common.NewStageError(common.StageSegment, "window_size", windowSize,
			common.Wrap(common.ErrorInvalidWindow, "window size must be positive"))
	}
	if !(overlap >= 0) || overlap >= windowSize {
		return 0, common.NewStageError(common.StageSegment, "overlap", overlap,
			common.Wrap(common.ErrorInvalidWindow, "overlap must be in [0, %v)", windowSize))
	}
	step := windowSize - overlap
	if !(step > 0) {
		return 0, common.NewStageError(common.StageSegment, "overlap", overlap,
			common.Wrap(common.ErrorInvalidWindow, "step %v must be positive", step))
	}
	return step, nil
}

// FullWindowCount returns N for a series lasting total seconds.
func FullWindowCount(total, windowSize, step float64) int {
	if total < windowSize {
		return 0
	}
	return int(math.Floor((total-windowSize)/step+countTolerance)) + 1
}

// Split cuts series into windows. series must be non empty with strictly increasing times.
func Split(series model.PairedSeries, windowSize, overlap float64, keepLast bool) ([]model.Segment, error) {
	step, err := Step(windowSize, overlap)
	if err != nil {
		return nil, err
	}
	if series.IsEmpty() {
		return nil, common.NewStageError(common.StageSegment, "series", 0,
			common.Wrap(common.ErrorInvalidInput, "empty series"))
	}
	if err := series.Validate(); err != nil {
		return nil, common.NewStageError(common.StageSegment, "series", series.DebugString(), err)
	}

	times := series.Times
	total := times[len(times)-1]
	n := FullWindowCount(total, windowSize, step)

	segments := make([]model.Segment, 0, n+1)
	for i := 0; i < n; i++ {
		begin := float64(i) * step
		end := begin + windowSize
		closed := i == n-1

		lo := sort.SearchFloat64s(times, begin)
		var hi int
		if closed {
			hi = searchAfter(times, end)
		} else {
			hi = sort.SearchFloat64s(times, end)
		}
		if hi <= lo {
			return nil, common.NewStageError(common.StageSegment, "window_index", i,
				common.Wrap(common.ErrorEmptySegment, "no samples in window [%v, %v]", begin, end))
		}

		segments = append(segments, model.Segment{
			Index:  i,
			Begin:  begin,
			End:    end,
			Closed: closed,
			Series: series.Slice(lo, hi),
		})
	}

	if !keepLast {
		return segments, nil
	}

	begin := float64(n) * step
	lo, leftOpen := 0, n > 0
	if n > 0 {
		lastFull := segments[n-1].Series.Times
		if lastFull[len(lastFull)-1] >= total {
			return segments, nil
		}
		lo = searchAfter(times, begin)
	}
	if lo >= len(times) {
		return segments, nil
	}

	segments = append(segments, model.Segment{
		Index:    n,
		Begin:    begin,
		End:      total,
		Closed:   true,
		LeftOpen: leftOpen,
		Partial:  true,
		Series:   series.Slice(lo, len(times)),
	})
	return segments, nil
}

// searchAfter returns the index of the first time strictly greater than t.
func searchAfter(times []float64, t float64) int {
	return sort.Search(len(times), func(i int) bool {
		return times[i] > t
	})
}
