// Package resample interpolates an irregular series onto a uniform time grid.
package resample

import (
	"math"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
	"github.com/rhenanbartels/rri-rqa-analysis/model"
	"gonum.org/v1/gonum/interp"
)

// Interpolant passes exactly through the samples it was fitted on.
// Outside [first, last] it holds the first or last sample value.
type Interpolant struct {
	method    Method
	predictor interp.Predictor
	first     float64
	last      float64
}

func (ip *Interpolant) Method() Method {
	return ip.method
}

// At evaluates the interpolant at time t.
func (ip *Interpolant) At(t float64) float64 {
	return ip.predictor.Predict(t)
}

// Domain returns the first and last fitted time.
func (ip *Interpolant) Domain() (float64, float64) {
	return ip.first, ip.last
}

// Fit builds the interpolant of series with the given method.
func Fit(series model.PairedSeries, method Method) (*Interpolant, error) {
	predictor, err := method.newPredictor()
	if err != nil {
		return nil, common.NewStageError(common.StageResample, "method", string(method), err)
	}
	if err := series.Validate(); err != nil {
		return nil, common.NewStageError(common.StageResample, "series", series.DebugString(), err)
	}
	if series.Len() < method.MinPoints() {
		return nil, common.NewStageError(common.StageResample, "points", series.Len(),
			common.Wrap(common.ErrorInsufficientData, "%s interpolation needs at least %d points",
				string(method), method.MinPoints()))
	}

	if err := predictor.Fit(series.Times, series.Values); err != nil {
		return nil, common.NewStageError(common.StageResample, "method", string(method),
			common.Wrap(common.ErrorInsufficientData, "%v", err))
	}

	return &Interpolant{
		method:    method,
		predictor: predictor,
		first:     series.Times[0],
		last:      series.Times[series.Len()-1],
	}, nil
}

// Resample interpolates series onto a targetFs grid with a natural cubic spline.
func Resample(series model.PairedSeries, targetFs float64) (model.PairedSeries, error) {
	return ResampleWith(series, targetFs, DefaultMethod)
}

// ResampleWith is Resample with an explicit interpolation method.
func ResampleWith(series model.PairedSeries, targetFs float64, method Method) (model.PairedSeries, error) {
	if !(targetFs > 0) || math.IsInf(targetFs, 0) {
		return model.PairedSeries{}, common.NewStageError(common.StageResample, "target_fs", targetFs,
			common.Wrap(common.ErrorInvalidInput, "target sampling rate must be positive"))
	}

	ip, err := Fit(series, method)
	if err != nil {
		return model.PairedSeries{}, err
	}

	times, err := Grid(ip.last, targetFs)
	if err != nil {
		return model.PairedSeries{}, common.NewStageError(common.StageResample, "target_fs", targetFs, err)
	}

	values := make([]float64, len(times))
	for i, t := range times {
		values[i] = ip.At(t)
	}
	return model.NewPairedSeries(values, times), nil
}
