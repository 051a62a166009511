// Package pipeline runs raw intervals through the time axis, resampling, segmentation and
// analysis stages. Stages of one recording run in sequence, independent recordings may run
// concurrently.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rhenanbartels/rri-rqa-analysis/common"
	"github.com/rhenanbartels/rri-rqa-analysis/model"
	"github.com/rhenanbartels/rri-rqa-analysis/resample"
	"github.com/rhenanbartels/rri-rqa-analysis/rqa"
	"github.com/rhenanbartels/rri-rqa-analysis/report"
	"github.com/rhenanbartels/rri-rqa-analysis/rri"
	"github.com/rhenanbartels/rri-rqa-analysis/segment"
	"github.com/rhenanbartels/rri-rqa-analysis/timeaxis"
	"github.com/rhenanbartels/rri-rqa-analysis/utils"
	"go.uber.org/zap"
)

type Options struct {
	// Unit of the incoming intervals. The time axis is always built in seconds.
	Unit         rri.Unit
	ResamplingFs float64
	Method       resample.Method
	WindowSize   float64
	Overlap      float64
	KeepLast     bool
	Settings     model.AnalysisSettings
	// Workers bounds concurrent recordings in RunBatch.
	Workers int
}

func DefaultOptions() Options {
	return Options{
		Unit:         rri.Milliseconds,
		ResamplingFs: 4,
		Method:       resample.DefaultMethod,
		WindowSize:   180,
		Overlap:      90,
		KeepLast:     false,
		Settings:     model.DefaultAnalysisSettings(),
		Workers:      4,
	}
}

type Pipeline struct {
	opts     Options
	driver   *rqa.Driver
	reporter report.Reporter
}

// New validates opts up front so a misconfigured run fails before touching any recording.
// reporter may be nil.
func New(opts Options, analyzer rqa.Analyzer, reporter report.Reporter) (*Pipeline, error) {
	method, err := resample.ParseMethod(string(opts.Method))
	if err != nil {
		return nil, common.NewStageError(common.StageResample, "method", string(opts.Method), err)
	}
	opts.Method = method
	if _, err := rri.ToSeconds(nil, opts.Unit); err != nil {
		return nil, common.NewStageError(common.StageTimeAxis, "unit", int(opts.Unit), err)
	}
	if _, err := resample.Grid(0, opts.ResamplingFs); err != nil {
		return nil, common.NewStageError(common.StageResample, "target_fs", opts.ResamplingFs, err)
	}
	if _, err := segment.Step(opts.WindowSize, opts.Overlap); err != nil {
		return nil, err
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	driver, err := rqa.NewDriver(analyzer, opts.Settings)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		opts:     opts,
		driver:   driver,
		reporter: reporter,
	}, nil
}

func (p *Pipeline) Options() Options {
	return p.opts
}

// Resampled returns the interval values on the uniform grid.
func (p *Pipeline) Resampled(intervals []float64) (model.PairedSeries, error) {
	seconds, err := rri.ToSeconds(intervals, p.opts.Unit)
	if err != nil {
		return model.PairedSeries{}, common.NewStageError(common.StageTimeAxis, "unit", int(p.opts.Unit), err)
	}
	axis, err := timeaxis.Build(seconds)
	if err != nil {
		return model.PairedSeries{}, err
	}

	values := make([]float64, len(intervals))
	copy(values, intervals)
	return resample.ResampleWith(model.NewPairedSeries(values, axis), p.opts.ResamplingFs, p.opts.Method)
}

// Segments is the raw intervals in, segments out entry point.
func (p *Pipeline) Segments(intervals []float64) ([]model.Segment, error) {
	uniform, err := p.Resampled(intervals)
	if err != nil {
		return nil, err
	}
	return segment.Split(uniform, p.opts.WindowSize, p.opts.Overlap, p.opts.KeepLast)
}

// Run segments one recording, analyzes every segment and reports the result.
func (p *Pipeline) Run(ctx context.Context, recording model.Recording) (*model.RunReport, error) {
	if recording.ID == "" {
		recording.ID = uuid.NewString()
	}
	run := &model.RunReport{
		RunID:       uuid.NewString(),
		RecordingID: recording.ID,
		Settings:    p.driver.Settings(),
		StartedAt:   time.Now().UnixMilli(),
	}
	logger := utils.GetLogger(ctx).With(zap.String("run", run.RunID), zap.String("recording", recording.ID))
	ctx = utils.WithLogger(ctx, logger)

	logger.Info("run started", zap.Int("intervals", len(recording.Intervals)))

	segments, err := p.Segments(recording.Intervals)
	if err != nil {
		logFailure(logger, err)
		return nil, err
	}
	logger.Info("segmentation done", zap.Int("segmentCount", len(segments)),
		zap.Float64("windowSize", p.opts.WindowSize), zap.Float64("overlap", p.opts.Overlap))

	reports, err := p.driver.Run(ctx, segments)
	if err != nil {
		logFailure(logger, err)
		return nil, err
	}
	run.Segments = reports
	run.FinishedAt = time.Now().UnixMilli()

	if p.reporter != nil {
		if err := p.reporter.Report(ctx, run); err != nil {
			err = common.NewStageError(common.StageReport, "recording", recording.ID, err)
			logFailure(logger, err)
			return nil, err
		}
	}
	return run, nil
}

func logFailure(logger *zap.Logger, err error) {
	fields := []zap.Field{zap.Error(err)}
	if stageErr, ok := common.AsStageError(err); ok {
		fields = append(fields, zap.String("stage", stageErr.Stage), zap.String("param", stageErr.Param),
			zap.Any("value", stageErr.Value))
	}
	logger.Error("run failed", fields...)
}
